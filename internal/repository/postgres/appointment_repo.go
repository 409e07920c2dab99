// internal/repository/postgres/appointment_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

type AppointmentRepo struct {
	db *DB
}

func NewAppointmentRepo(db *DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

const appointmentColumns = `id, business_id, customer_id, service_id, vehicle_id,
	scheduled_date, status, total_amount, notes, created_at, updated_at`

func (r *AppointmentRepo) List(ctx context.Context, businessID string, filter repository.AppointmentFilter) ([]domain.Appointment, error) {
	conds := []string{"business_id = $1"}
	args := []interface{}{businessID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("scheduled_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("scheduled_date < $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, filter.Offset)

	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE %s
		ORDER BY scheduled_date DESC LIMIT $%d OFFSET $%d`,
		appointmentColumns, strings.Join(conds, " AND "), len(args)-1, len(args))

	rows := []domain.Appointment{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select appointments: %w", err)
	}
	return rows, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.GetContext(ctx, &a, fmt.Sprintf(
		`SELECT %s FROM appointments WHERE business_id = $1 AND id = $2`, appointmentColumns),
		businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	if a.Status == "" {
		a.Status = domain.AppointmentPending
	}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO appointments (business_id, customer_id, service_id, vehicle_id,
		                          scheduled_date, status, total_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		a.BusinessID, a.CustomerID, a.ServiceID, a.VehicleID,
		a.ScheduledAt, a.Status, a.TotalAmount, a.Notes,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepo) Update(ctx context.Context, a *domain.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET customer_id = $3, service_id = $4, vehicle_id = $5,
		    scheduled_date = $6, status = $7, total_amount = $8, notes = $9,
		    updated_at = NOW()
		WHERE business_id = $1 AND id = $2`,
		a.BusinessID, a.ID, a.CustomerID, a.ServiceID, a.VehicleID,
		a.ScheduledAt, a.Status, a.TotalAmount, a.Notes)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return checkAffected(res)
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, businessID, id string, status domain.AppointmentStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments SET status = $3, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`, businessID, id, status)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	return checkAffected(res)
}

func (r *AppointmentRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM appointments WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return checkAffected(res)
}

func (r *AppointmentRepo) CountByStatus(ctx context.Context, businessID string, status domain.AppointmentStatus) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM appointments WHERE business_id = $1 AND status = $2`,
		businessID, status)
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}
