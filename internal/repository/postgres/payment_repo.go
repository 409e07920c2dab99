// internal/repository/postgres/payment_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

type PaymentRepo struct {
	db *DB
}

func NewPaymentRepo(db *DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) ListByBusiness(ctx context.Context, businessID string) ([]domain.Payment, error) {
	rows := []domain.Payment{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT p.id, p.appointment_id, p.amount, p.payment_method, p.status,
		       p.transaction_id, p.created_at
		FROM payments p
		JOIN appointments a ON a.id = p.appointment_id
		WHERE a.business_id = $1
		ORDER BY p.created_at DESC`, businessID)
	if err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	return rows, nil
}

func (r *PaymentRepo) ListByAppointment(ctx context.Context, businessID, appointmentID string) ([]domain.Payment, error) {
	rows := []domain.Payment{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT p.id, p.appointment_id, p.amount, p.payment_method, p.status,
		       p.transaction_id, p.created_at
		FROM payments p
		JOIN appointments a ON a.id = p.appointment_id
		WHERE a.business_id = $1 AND p.appointment_id = $2
		ORDER BY p.created_at`, businessID, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("select appointment payments: %w", err)
	}
	return rows, nil
}

func (r *PaymentRepo) Create(ctx context.Context, businessID string, p *domain.Payment) error {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM appointments WHERE business_id = $1 AND id = $2)`,
		businessID, p.AppointmentID)
	if err != nil {
		return fmt.Errorf("check appointment: %w", err)
	}
	if !exists {
		return repository.ErrNotFound
	}

	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	err = r.db.QueryRowxContext(ctx, `
		INSERT INTO payments (appointment_id, amount, payment_method, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		p.AppointmentID, p.Amount, p.Method, p.Status, p.TransactionID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) UpdateStatus(ctx context.Context, businessID, id string, status domain.PaymentStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments p SET status = $3
		FROM appointments a
		WHERE a.id = p.appointment_id AND a.business_id = $1 AND p.id = $2`,
		businessID, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return checkAffected(res)
}
