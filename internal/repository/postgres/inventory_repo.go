// internal/repository/postgres/inventory_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

type InventoryRepo struct {
	db *DB
}

func NewInventoryRepo(db *DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const inventoryColumns = `id, business_id, name, category, current_stock,
	minimum_stock, unit, cost_per_unit, supplier, last_restocked,
	created_at, updated_at`

func (r *InventoryRepo) List(ctx context.Context, businessID, category string) ([]domain.InventoryItem, error) {
	rows := []domain.InventoryItem{}
	err := r.db.SelectContext(ctx, &rows, fmt.Sprintf(`
		SELECT %s FROM inventory
		WHERE business_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY name`, inventoryColumns), businessID, category)
	if err != nil {
		return nil, fmt.Errorf("select inventory: %w", err)
	}
	return rows, nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, businessID, id string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.GetContext(ctx, &item, fmt.Sprintf(
		`SELECT %s FROM inventory WHERE business_id = $1 AND id = $2`, inventoryColumns),
		businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO inventory (business_id, name, category, current_stock,
		                       minimum_stock, unit, cost_per_unit, supplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		item.BusinessID, item.Name, item.Category, item.CurrentStock,
		item.MinimumStock, item.Unit, item.CostPerUnit, item.Supplier,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory
		SET name = $3, category = $4, current_stock = $5, minimum_stock = $6,
		    unit = $7, cost_per_unit = $8, supplier = $9, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`,
		item.BusinessID, item.ID, item.Name, item.Category, item.CurrentStock,
		item.MinimumStock, item.Unit, item.CostPerUnit, item.Supplier)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return checkAffected(res)
}

func (r *InventoryRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM inventory WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return checkAffected(res)
}

// AdjustStock moves the stock level by delta (negative for consumption) and
// stamps last_restocked on positive deltas. Stock never drops below zero.
func (r *InventoryRepo) AdjustStock(ctx context.Context, businessID, id string, delta int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE inventory
		SET current_stock = GREATEST(current_stock + $3, 0),
		    last_restocked = CASE WHEN $3 > 0 THEN NOW() ELSE last_restocked END,
		    updated_at = NOW()
		WHERE business_id = $1 AND id = $2`, businessID, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return checkAffected(res)
}

// ListLowStock returns items at or below their minimum stock, most depleted
// first.
func (r *InventoryRepo) ListLowStock(ctx context.Context, businessID string) ([]domain.InventoryItem, error) {
	rows := []domain.InventoryItem{}
	err := r.db.SelectContext(ctx, &rows, fmt.Sprintf(`
		SELECT %s FROM inventory
		WHERE business_id = $1 AND current_stock <= minimum_stock
		ORDER BY current_stock - minimum_stock, name`, inventoryColumns), businessID)
	if err != nil {
		return nil, fmt.Errorf("select low stock: %w", err)
	}
	return rows, nil
}

func (r *InventoryRepo) CountLowStock(ctx context.Context, businessID string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `
		SELECT COUNT(*) FROM inventory
		WHERE business_id = $1 AND current_stock <= minimum_stock`, businessID)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}
