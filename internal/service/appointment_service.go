// internal/service/appointment_service.go
package service

import (
	"context"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// AppointmentService owns the booking flow: creation defaults the amount
// from the service catalog, and completion updates the customer's visit
// record and the service's popularity.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	customers    repository.CustomerRepository
	catalog      repository.ServiceRepository
	payments     repository.PaymentRepository
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	customers repository.CustomerRepository,
	catalog repository.ServiceRepository,
	payments repository.PaymentRepository,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		customers:    customers,
		catalog:      catalog,
		payments:     payments,
	}
}

func (s *AppointmentService) List(ctx context.Context, businessID string, filter repository.AppointmentFilter) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, businessID, filter)
}

func (s *AppointmentService) Get(ctx context.Context, businessID, id string) (*domain.Appointment, error) {
	return s.appointments.GetByID(ctx, businessID, id)
}

// Book validates the referenced customer and service and creates the
// appointment. A zero total amount defaults to the catalog price.
func (s *AppointmentService) Book(ctx context.Context, a *domain.Appointment) error {
	if _, err := s.customers.GetByID(ctx, a.BusinessID, a.CustomerID); err != nil {
		return fmt.Errorf("customer: %w", err)
	}
	svc, err := s.catalog.GetByID(ctx, a.BusinessID, a.ServiceID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if a.TotalAmount == 0 {
		a.TotalAmount = svc.Price
	}
	return s.appointments.Create(ctx, a)
}

func (s *AppointmentService) Update(ctx context.Context, a *domain.Appointment) error {
	return s.appointments.Update(ctx, a)
}

func (s *AppointmentService) Delete(ctx context.Context, businessID, id string) error {
	return s.appointments.Delete(ctx, businessID, id)
}

// SetStatus transitions the appointment. Completion bumps the customer's
// visit counter and the service's popularity; both are best effort.
func (s *AppointmentService) SetStatus(ctx context.Context, businessID, id string, status domain.AppointmentStatus) error {
	switch status {
	case domain.AppointmentPending, domain.AppointmentConfirmed,
		domain.AppointmentInProgress, domain.AppointmentCompleted,
		domain.AppointmentCancelled:
	default:
		return fmt.Errorf("invalid appointment status %q", status)
	}

	a, err := s.appointments.GetByID(ctx, businessID, id)
	if err != nil {
		return err
	}

	if err := s.appointments.UpdateStatus(ctx, businessID, id, status); err != nil {
		return err
	}

	if status == domain.AppointmentCompleted && a.Status != domain.AppointmentCompleted {
		if err := s.customers.RecordVisit(ctx, businessID, a.CustomerID); err != nil {
			log.Warn().Err(err).Str("customer_id", a.CustomerID).Msg("record visit failed")
		}
		if err := s.catalog.IncrementPopularity(ctx, businessID, a.ServiceID); err != nil {
			log.Warn().Err(err).Str("service_id", a.ServiceID).Msg("bump popularity failed")
		}
	}
	return nil
}

func (s *AppointmentService) Payments(ctx context.Context, businessID, appointmentID string) ([]domain.Payment, error) {
	return s.payments.ListByAppointment(ctx, businessID, appointmentID)
}

func (s *AppointmentService) AllPayments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	return s.payments.ListByBusiness(ctx, businessID)
}

// RecordPayment registers a payment against an appointment.
func (s *AppointmentService) RecordPayment(ctx context.Context, businessID string, p *domain.Payment) error {
	if p.Amount <= 0 {
		return fmt.Errorf("payment amount must be positive")
	}
	return s.payments.Create(ctx, businessID, p)
}

func (s *AppointmentService) SetPaymentStatus(ctx context.Context, businessID, paymentID string, status domain.PaymentStatus) error {
	switch status {
	case domain.PaymentPending, domain.PaymentCompleted, domain.PaymentFailed:
	default:
		return fmt.Errorf("invalid payment status %q", status)
	}
	return s.payments.UpdateStatus(ctx, businessID, paymentID, status)
}
