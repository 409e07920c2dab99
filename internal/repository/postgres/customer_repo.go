// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct {
	db *DB
}

func NewCustomerRepo(db *DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) List(ctx context.Context, businessID, search string, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	rows := []domain.Customer{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, business_id, name, email, phone, loyalty_points,
		       total_visits, last_visit, created_at, updated_at
		FROM customers
		WHERE business_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%' OR phone ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`, businessID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	return rows, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, businessID, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, `
		SELECT id, business_id, name, email, phone, loyalty_points,
		       total_visits, last_visit, created_at, updated_at
		FROM customers
		WHERE business_id = $1 AND id = $2`, businessID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	vehicles, err := r.ListVehicles(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	c.Vehicles = vehicles
	return &c, nil
}

// Create inserts the customer and any initial vehicles atomically.
func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO customers (business_id, name, email, phone, loyalty_points, total_visits)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`,
			c.BusinessID, c.Name, c.Email, c.Phone, c.LoyaltyPoints, c.TotalVisits,
		).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}

		for i := range c.Vehicles {
			v := &c.Vehicles[i]
			v.CustomerID = c.ID
			err := tx.QueryRowxContext(ctx, `
				INSERT INTO vehicles (customer_id, make, model, year, plate_number, color)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id, created_at`,
				v.CustomerID, v.Make, v.Model, v.Year, v.PlateNumber, v.Color,
			).Scan(&v.ID, &v.CreatedAt)
			if err != nil {
				return fmt.Errorf("insert vehicle: %w", err)
			}
		}
		return nil
	})
}

func (r *CustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET name = $3, email = $4, phone = $5, loyalty_points = $6, updated_at = NOW()
		WHERE business_id = $1 AND id = $2`,
		c.BusinessID, c.ID, c.Name, c.Email, c.Phone, c.LoyaltyPoints)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return checkAffected(res)
}

func (r *CustomerRepo) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM customers WHERE business_id = $1 AND id = $2`, businessID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return checkAffected(res)
}

func (r *CustomerRepo) Count(ctx context.Context, businessID string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM customers WHERE business_id = $1`, businessID)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// RecordVisit bumps the visit counter and stamps the last visit; called
// when an appointment completes.
func (r *CustomerRepo) RecordVisit(ctx context.Context, businessID, customerID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET total_visits = total_visits + 1, last_visit = NOW(), updated_at = NOW()
		WHERE business_id = $1 AND id = $2`, businessID, customerID)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return checkAffected(res)
}

func (r *CustomerRepo) ListVehicles(ctx context.Context, businessID, customerID string) ([]domain.Vehicle, error) {
	rows := []domain.Vehicle{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT v.id, v.customer_id, v.make, v.model, v.year, v.plate_number, v.color, v.created_at
		FROM vehicles v
		JOIN customers c ON c.id = v.customer_id
		WHERE c.business_id = $1 AND v.customer_id = $2
		ORDER BY v.created_at`, businessID, customerID)
	if err != nil {
		return nil, fmt.Errorf("select vehicles: %w", err)
	}
	return rows, nil
}

func (r *CustomerRepo) AddVehicle(ctx context.Context, businessID string, v *domain.Vehicle) error {
	// Guard the tenant boundary before writing through the join.
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE business_id = $1 AND id = $2)`,
		businessID, v.CustomerID)
	if err != nil {
		return fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return repository.ErrNotFound
	}

	err = r.db.QueryRowxContext(ctx, `
		INSERT INTO vehicles (customer_id, make, model, year, plate_number, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		v.CustomerID, v.Make, v.Model, v.Year, v.PlateNumber, v.Color,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

func (r *CustomerRepo) RemoveVehicle(ctx context.Context, businessID, customerID, vehicleID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM vehicles v
		USING customers c
		WHERE c.id = v.customer_id AND c.business_id = $1
		  AND v.customer_id = $2 AND v.id = $3`,
		businessID, customerID, vehicleID)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
