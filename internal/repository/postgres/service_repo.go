// internal/repository/postgres/service_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

type ServiceRepo struct {
	db *DB
}

func NewServiceRepo(db *DB) *ServiceRepo {
	return &ServiceRepo{db: db}
}

func (r *ServiceRepo) List(ctx context.Context, businessID string, activeOnly bool) ([]domain.Service, error) {
	rows := []domain.Service{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, name, description, price, duration,
		       is_active, popularity, created_at, updated_at
		FROM services
		WHERE business_id = $1 AND ($2 = false OR is_active)
		ORDER BY popularity DESC, name`, businessID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("select services: %w", err)
	}
	return rows, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Service, error) {
	var s domain.Service
	err := r.db.GetContext(ctx, &s, `
		SELECT id, business_id, name, description, price, duration,
		       is_active, popularity, created_at, updated_at
		FROM services
		WHERE business_id = $1 AND id = $2`, businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO services (business_id, name, description, price, duration, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, popularity, created_at, updated_at`,
		s.BusinessID, s.Name, s.Description, s.Price, s.Duration, s.IsActive,
	).Scan(&s.ID, &s.Popularity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *ServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE services
		SET name = $3, description = $4, price = $5, duration = $6,
		    is_active = $7, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`,
		s.BusinessID, s.ID, s.Name, s.Description, s.Price, s.Duration, s.IsActive)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return checkAffected(res)
}

func (r *ServiceRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM services WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return checkAffected(res)
}

func (r *ServiceRepo) IncrementPopularity(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE services SET popularity = popularity + 1, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("bump service popularity: %w", err)
	}
	return checkAffected(res)
}
