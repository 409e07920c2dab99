// internal/repository/postgres/service_record_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

type ServiceRecordRepo struct {
	db *DB
}

func NewServiceRecordRepo(db *DB) *ServiceRecordRepo {
	return &ServiceRecordRepo{db: db}
}

func (r *ServiceRecordRepo) List(ctx context.Context, businessID string, limit, offset int) ([]domain.ServiceRecord, error) {
	rows := []domain.ServiceRecord{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, service_id, employee_id, vehicle_plate,
		       vehicle_type, payment_method, service_price, service_duration,
		       completed_at, created_at, updated_at
		FROM service_records
		WHERE business_id = $1
		ORDER BY completed_at DESC
		LIMIT $2 OFFSET $3`, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select service records: %w", err)
	}
	return rows, nil
}

func (r *ServiceRecordRepo) GetByID(ctx context.Context, businessID, id string) (*domain.ServiceRecord, error) {
	var rec domain.ServiceRecord
	err := r.db.GetContext(ctx, &rec, `
		SELECT id, business_id, service_id, employee_id, vehicle_plate,
		       vehicle_type, payment_method, service_price, service_duration,
		       completed_at, created_at, updated_at
		FROM service_records
		WHERE business_id = $1 AND id = $2`, businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service record: %w", err)
	}
	return &rec, nil
}

func (r *ServiceRecordRepo) Create(ctx context.Context, rec *domain.ServiceRecord) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO service_records (business_id, service_id, employee_id,
			vehicle_plate, vehicle_type, payment_method, service_price,
			service_duration, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		rec.BusinessID, rec.ServiceID, rec.EmployeeID, rec.VehiclePlate,
		rec.VehicleType, rec.PaymentMethod, rec.ServicePrice,
		rec.ServiceDuration, rec.CompletedAt,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert service record: %w", err)
	}
	return nil
}

func (r *ServiceRecordRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM service_records WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete service record: %w", err)
	}
	return checkAffected(res)
}
