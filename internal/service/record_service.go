// internal/service/record_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

// RecordService owns the walk-in wash log. Logging a record validates the
// referenced service and employee and snapshots the catalog price and
// duration when the caller leaves them zero.
type RecordService struct {
	records   repository.ServiceRecordRepository
	catalog   repository.ServiceRepository
	employees repository.EmployeeRepository
}

func NewRecordService(
	records repository.ServiceRecordRepository,
	catalog repository.ServiceRepository,
	employees repository.EmployeeRepository,
) *RecordService {
	return &RecordService{records: records, catalog: catalog, employees: employees}
}

func (s *RecordService) List(ctx context.Context, businessID string, limit, offset int) ([]domain.ServiceRecord, error) {
	return s.records.List(ctx, businessID, limit, offset)
}

func (s *RecordService) Get(ctx context.Context, businessID, id string) (*domain.ServiceRecord, error) {
	return s.records.GetByID(ctx, businessID, id)
}

// Log validates and writes a walk-in record. Price and duration default
// from the catalog entry when zero; an explicit price is kept as-is.
func (s *RecordService) Log(ctx context.Context, rec *domain.ServiceRecord) error {
	svc, err := s.catalog.GetByID(ctx, rec.BusinessID, rec.ServiceID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if _, err := s.employees.GetByID(ctx, rec.BusinessID, rec.EmployeeID); err != nil {
		return fmt.Errorf("employee: %w", err)
	}

	if rec.ServicePrice == 0 {
		rec.ServicePrice = svc.Price
	}
	if rec.ServicePrice < 0 {
		return fmt.Errorf("service price must not be negative")
	}
	if rec.ServiceDuration == 0 {
		rec.ServiceDuration = svc.Duration
	}
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}
	return s.records.Create(ctx, rec)
}

func (s *RecordService) Delete(ctx context.Context, businessID, id string) error {
	return s.records.Delete(ctx, businessID, id)
}
