// internal/repository/appointment_repository.go
package repository

import (
	"context"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	Status     domain.AppointmentStatus
	CustomerID string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

type AppointmentRepository interface {
	List(ctx context.Context, businessID string, filter AppointmentFilter) ([]domain.Appointment, error)
	GetByID(ctx context.Context, businessID, id string) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) error
	Update(ctx context.Context, a *domain.Appointment) error
	UpdateStatus(ctx context.Context, businessID, id string, status domain.AppointmentStatus) error
	Delete(ctx context.Context, businessID, id string) error
	CountByStatus(ctx context.Context, businessID string, status domain.AppointmentStatus) (int, error)
}

type PaymentRepository interface {
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Payment, error)
	ListByAppointment(ctx context.Context, businessID, appointmentID string) ([]domain.Payment, error)
	Create(ctx context.Context, businessID string, p *domain.Payment) error
	UpdateStatus(ctx context.Context, businessID, id string, status domain.PaymentStatus) error
}
