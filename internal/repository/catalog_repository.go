// internal/repository/catalog_repository.go
package repository

import (
	"context"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context, businessID string, activeOnly bool) ([]domain.Service, error)
	GetByID(ctx context.Context, businessID, id string) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, businessID, id string) error
	IncrementPopularity(ctx context.Context, businessID, id string) error
}
