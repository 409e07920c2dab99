// internal/repository/postgres/employee_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

type EmployeeRepo struct {
	db *DB
}

func NewEmployeeRepo(db *DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) List(ctx context.Context, businessID string, activeOnly bool) ([]domain.Employee, error) {
	rows := []domain.Employee{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, name, email, phone, position, salary,
		       hire_date, is_active, created_at, updated_at
		FROM employees
		WHERE business_id = $1 AND ($2 = false OR is_active)
		ORDER BY name`, businessID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("select employees: %w", err)
	}
	return rows, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Employee, error) {
	var e domain.Employee
	err := r.db.GetContext(ctx, &e, `
		SELECT id, business_id, name, email, phone, position, salary,
		       hire_date, is_active, created_at, updated_at
		FROM employees
		WHERE business_id = $1 AND id = $2`, businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO employees (business_id, name, email, phone, position,
		                       salary, hire_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		e.BusinessID, e.Name, e.Email, e.Phone, e.Position,
		e.Salary, e.HireDate, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name = $3, email = $4, phone = $5, position = $6, salary = $7,
		    is_active = $8, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`,
		e.BusinessID, e.ID, e.Name, e.Email, e.Phone, e.Position, e.Salary, e.IsActive)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return checkAffected(res)
}

func (r *EmployeeRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM employees WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return checkAffected(res)
}
