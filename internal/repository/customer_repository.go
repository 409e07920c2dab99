// internal/repository/customer_repository.go
package repository

import (
	"context"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context, businessID, search string, limit, offset int) ([]domain.Customer, error)
	GetByID(ctx context.Context, businessID, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, businessID, id string) error
	Count(ctx context.Context, businessID string) (int, error)
	RecordVisit(ctx context.Context, businessID, customerID string) error

	ListVehicles(ctx context.Context, businessID, customerID string) ([]domain.Vehicle, error)
	AddVehicle(ctx context.Context, businessID string, v *domain.Vehicle) error
	RemoveVehicle(ctx context.Context, businessID, customerID, vehicleID string) error
}
