// internal/repository/postgres/expense_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

type ExpenseRepo struct {
	db *DB
}

func NewExpenseRepo(db *DB) *ExpenseRepo {
	return &ExpenseRepo{db: db}
}

func (r *ExpenseRepo) List(ctx context.Context, businessID, category string, limit, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 50
	}
	rows := []domain.Expense{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, category, description, amount, expense_date,
		       status, employee_id, receipt_url, created_at, updated_at
		FROM expenses
		WHERE business_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY expense_date DESC
		LIMIT $3 OFFSET $4`, businessID, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	return rows, nil
}

func (r *ExpenseRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Expense, error) {
	var e domain.Expense
	err := r.db.GetContext(ctx, &e, `
		SELECT id, business_id, category, description, amount, expense_date,
		       status, employee_id, receipt_url, created_at, updated_at
		FROM expenses
		WHERE business_id = $1 AND id = $2`, businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	if e.Status == "" {
		e.Status = domain.ExpensePending
	}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO expenses (business_id, category, description, amount,
		                      expense_date, status, employee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		e.BusinessID, e.Category, e.Description, e.Amount,
		e.ExpenseDate, e.Status, e.EmployeeID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) Update(ctx context.Context, e *domain.Expense) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenses
		SET category = $3, description = $4, amount = $5, expense_date = $6,
		    status = $7, employee_id = $8, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`,
		e.BusinessID, e.ID, e.Category, e.Description, e.Amount,
		e.ExpenseDate, e.Status, e.EmployeeID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return checkAffected(res)
}

func (r *ExpenseRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return checkAffected(res)
}

func (r *ExpenseRepo) SetReceiptURL(ctx context.Context, businessID, id, url string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenses SET receipt_url = $3, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`, businessID, id, url)
	if err != nil {
		return fmt.Errorf("set receipt url: %w", err)
	}
	return checkAffected(res)
}
