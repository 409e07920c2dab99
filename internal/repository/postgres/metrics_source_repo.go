// internal/repository/postgres/metrics_source_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

// MetricsSourceRepo is the tenant-scoped data reader behind the metrics
// pipeline (it implements metrics.SourceReader). Every query filters by
// business id before anything else, and nullable numeric columns are
// normalized to zero here so the reducer never sees missing values.
type MetricsSourceRepo struct {
	db *DB
}

func NewMetricsSourceRepo(db *DB) *MetricsSourceRepo {
	return &MetricsSourceRepo{db: db}
}

func (r *MetricsSourceRepo) Appointments(ctx context.Context, businessID string) ([]domain.Appointment, error) {
	rows := []domain.Appointment{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, customer_id, service_id, vehicle_id,
		       scheduled_date, COALESCE(status, 'pending') AS status,
		       COALESCE(total_amount, 0) AS total_amount, notes,
		       created_at, updated_at
		FROM appointments
		WHERE business_id = $1`, businessID)
	if err != nil {
		return nil, fmt.Errorf("select appointments: %w", err)
	}
	return rows, nil
}

func (r *MetricsSourceRepo) Expenses(ctx context.Context, businessID string) ([]domain.Expense, error) {
	rows := []domain.Expense{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, category, description,
		       COALESCE(amount, 0) AS amount, expense_date,
		       COALESCE(status, 'pending') AS status, employee_id,
		       receipt_url, created_at, updated_at
		FROM expenses
		WHERE business_id = $1`, businessID)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	return rows, nil
}

// Payments carry no business_id column; tenant scoping joins through the
// owning appointment.
func (r *MetricsSourceRepo) Payments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	rows := []domain.Payment{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT p.id, p.appointment_id, COALESCE(p.amount, 0) AS amount,
		       p.payment_method, COALESCE(p.status, 'pending') AS status,
		       p.transaction_id, p.created_at
		FROM payments p
		JOIN appointments a ON a.id = p.appointment_id
		WHERE a.business_id = $1`, businessID)
	if err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	return rows, nil
}

func (r *MetricsSourceRepo) Feedback(ctx context.Context, businessID string) ([]domain.Feedback, error) {
	rows := []domain.Feedback{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, customer_id, appointment_id,
		       COALESCE(rating, 0) AS rating, comment, created_at
		FROM feedback
		WHERE business_id = $1`, businessID)
	if err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}
	return rows, nil
}
