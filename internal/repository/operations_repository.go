// internal/repository/operations_repository.go
package repository

import (
	"context"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

type ExpenseRepository interface {
	List(ctx context.Context, businessID, category string, limit, offset int) ([]domain.Expense, error)
	GetByID(ctx context.Context, businessID, id string) (*domain.Expense, error)
	Create(ctx context.Context, e *domain.Expense) error
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, businessID, id string) error
	SetReceiptURL(ctx context.Context, businessID, id, url string) error
}

type InventoryRepository interface {
	List(ctx context.Context, businessID, category string) ([]domain.InventoryItem, error)
	GetByID(ctx context.Context, businessID, id string) (*domain.InventoryItem, error)
	Create(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, businessID, id string) error
	AdjustStock(ctx context.Context, businessID, id string, delta int) error
	ListLowStock(ctx context.Context, businessID string) ([]domain.InventoryItem, error)
	CountLowStock(ctx context.Context, businessID string) (int, error)
}

type EmployeeRepository interface {
	List(ctx context.Context, businessID string, activeOnly bool) ([]domain.Employee, error)
	GetByID(ctx context.Context, businessID, id string) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, businessID, id string) error
}

// ServiceRecordRepository stores the walk-in wash log. Records are
// immutable once written; there is no update.
type ServiceRecordRepository interface {
	List(ctx context.Context, businessID string, limit, offset int) ([]domain.ServiceRecord, error)
	GetByID(ctx context.Context, businessID, id string) (*domain.ServiceRecord, error)
	Create(ctx context.Context, r *domain.ServiceRecord) error
	Delete(ctx context.Context, businessID, id string) error
}

type FeedbackRepository interface {
	List(ctx context.Context, businessID string, limit, offset int) ([]domain.Feedback, error)
	Create(ctx context.Context, f *domain.Feedback) error
	Delete(ctx context.Context, businessID, id string) error
}
