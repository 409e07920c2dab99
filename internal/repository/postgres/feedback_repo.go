// internal/repository/postgres/feedback_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

type FeedbackRepo struct {
	db *DB
}

func NewFeedbackRepo(db *DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

func (r *FeedbackRepo) List(ctx context.Context, businessID string, limit, offset int) ([]domain.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	rows := []domain.Feedback{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, customer_id, appointment_id, rating, comment, created_at
		FROM feedback
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}
	return rows, nil
}

func (r *FeedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO feedback (business_id, customer_id, appointment_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		f.BusinessID, f.CustomerID, f.AppointmentID, f.Rating, f.Comment,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM feedback WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return checkAffected(res)
}
