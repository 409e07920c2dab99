// cmd/seed/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type dbKey struct{}

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	c.Context = context.WithValue(c.Context, dbKey{}, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey{}).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFrom(c *cli.Context) *sql.DB {
	db, _ := c.Context.Value(dbKey{}).(*sql.DB)
	return db
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Initialize and populate the car wash database",
		Commands: []*cli.Command{
			{
				Name:  "schema",
				Usage: "Apply the database schema (tables, enums, notify triggers)",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:    "schema-file",
						Usage:   "Path to the schema SQL file",
						Value:   "./db/schema.sql",
						EnvVars: []string{"SCHEMA_FILE"},
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runSchema,
			},
			{
				Name:  "demo",
				Usage: "Seed a demo business with six weeks of operating data",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:  "business-name",
						Usage: "Name of the demo business",
						Value: "Sparkle Car Wash",
					},
					&cli.IntFlag{
						Name:  "weeks",
						Usage: "Number of weeks of history to generate",
						Value: 6,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runDemo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSchema(c *cli.Context) error {
	schema, err := os.ReadFile(c.String("schema-file"))
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	if _, err := dbFrom(c).ExecContext(c.Context, string(schema)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("schema applied")
	return nil
}

func runDemo(c *cli.Context) error {
	db := dbFrom(c)
	ctx := c.Context
	rng := rand.New(rand.NewSource(42))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var businessID string
	err = tx.QueryRowContext(ctx,
		`INSERT INTO businesses (name) VALUES ($1) RETURNING id`,
		c.String("business-name"),
	).Scan(&businessID)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}

	serviceIDs, prices, err := seedServices(ctx, tx, businessID)
	if err != nil {
		return err
	}
	customerIDs, err := seedCustomers(ctx, tx, businessID, rng)
	if err != nil {
		return err
	}
	employeeIDs, err := seedEmployees(ctx, tx, businessID)
	if err != nil {
		return err
	}
	if err := seedInventory(ctx, tx, businessID); err != nil {
		return err
	}
	if err := seedHistory(ctx, tx, businessID, serviceIDs, prices, customerIDs, c.Int("weeks"), rng); err != nil {
		return err
	}
	if err := seedWalkIns(ctx, tx, businessID, serviceIDs, employeeIDs, c.Int("weeks"), rng); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}
	log.Printf("seeded business %s", businessID)
	return nil
}

func seedServices(ctx context.Context, tx *sql.Tx, businessID string) ([]string, []float64, error) {
	services := []struct {
		name     string
		price    float64
		duration int
	}{
		{"Express Wash", 500, 20},
		{"Standard Wash", 800, 35},
		{"Premium Wash & Wax", 1500, 60},
		{"Full Interior Detail", 3500, 120},
	}

	ids := make([]string, 0, len(services))
	prices := make([]float64, 0, len(services))
	for _, s := range services {
		var id string
		err := tx.QueryRowContext(ctx,
			`INSERT INTO services (business_id, name, price, duration, is_active)
			 VALUES ($1, $2, $3, $4, true) RETURNING id`,
			businessID, s.name, s.price, s.duration,
		).Scan(&id)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to seed service %q: %w", s.name, err)
		}
		ids = append(ids, id)
		prices = append(prices, s.price)
	}
	return ids, prices, nil
}

func seedCustomers(ctx context.Context, tx *sql.Tx, businessID string, rng *rand.Rand) ([]string, error) {
	names := []string{
		"Amina Odhiambo", "Brian Kiprotich", "Cynthia Wanjiru", "David Mwangi",
		"Esther Njeri", "Felix Otieno", "Grace Achieng", "Hassan Abdi",
		"Irene Chebet", "James Kamau", "Kevin Omondi", "Lucy Muthoni",
	}
	makes := []string{"Toyota", "Nissan", "Subaru", "Mazda", "Honda"}
	models := []string{"Axio", "Note", "Forester", "Demio", "Fit"}

	ids := make([]string, 0, len(names))
	for i, name := range names {
		var id string
		err := tx.QueryRowContext(ctx,
			`INSERT INTO customers (business_id, name, phone)
			 VALUES ($1, $2, $3) RETURNING id`,
			businessID, name, fmt.Sprintf("+2547%08d", 10000000+i),
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed customer %q: %w", name, err)
		}
		ids = append(ids, id)

		m := rng.Intn(len(makes))
		_, err = tx.ExecContext(ctx,
			`INSERT INTO vehicles (customer_id, make, model, year, plate_number)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, makes[m], models[m], 2012+rng.Intn(12), fmt.Sprintf("KD%c %03dX", 'A'+i, 100+i),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to seed vehicle for %q: %w", name, err)
		}
	}
	return ids, nil
}

func seedEmployees(ctx context.Context, tx *sql.Tx, businessID string) ([]string, error) {
	employees := []struct {
		name     string
		position string
		salary   float64
	}{
		{"Peter Njoroge", "manager", 45000},
		{"Mary Atieno", "cashier", 28000},
		{"Samuel Kiptoo", "washer", 22000},
		{"Janet Wairimu", "washer", 22000},
	}
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		var id string
		err := tx.QueryRowContext(ctx,
			`INSERT INTO employees (business_id, name, position, salary, hire_date, is_active)
			 VALUES ($1, $2, $3, $4, now() - interval '1 year', true) RETURNING id`,
			businessID, e.name, e.position, e.salary,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to seed employee %q: %w", e.name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// seedWalkIns logs a few walk-in washes per day, snapshotting price and
// duration from the catalog entry at insert time.
func seedWalkIns(ctx context.Context, tx *sql.Tx, businessID string, serviceIDs, employeeIDs []string, weeks int, rng *rand.Rand) error {
	methods := []string{"cash", "mobile"}
	vehicleTypes := []string{"sedan", "suv", "hatchback", "pickup", "van"}

	start := time.Now().AddDate(0, 0, -weeks*7)
	for day := 0; day < weeks*7; day++ {
		date := start.AddDate(0, 0, day)
		walkIns := 1 + rng.Intn(3)

		for w := 0; w < walkIns; w++ {
			si := rng.Intn(len(serviceIDs))
			completed := date.Add(time.Duration(9+rng.Intn(8)) * time.Hour)
			plate := fmt.Sprintf("KC%c %03d%c", 'A'+rng.Intn(26), 100+rng.Intn(900), 'A'+rng.Intn(26))

			_, err := tx.ExecContext(ctx,
				`INSERT INTO service_records (business_id, service_id, employee_id,
					vehicle_plate, vehicle_type, payment_method, service_price,
					service_duration, completed_at)
				 SELECT $1, s.id, $2, $3, $4, $5, s.price, s.duration, $6
				 FROM services s WHERE s.id = $7`,
				businessID, employeeIDs[rng.Intn(len(employeeIDs))], plate,
				vehicleTypes[rng.Intn(len(vehicleTypes))],
				methods[rng.Intn(len(methods))], completed, serviceIDs[si],
			)
			if err != nil {
				return fmt.Errorf("failed to seed service record: %w", err)
			}
		}
	}
	return nil
}

func seedInventory(ctx context.Context, tx *sql.Tx, businessID string) error {
	items := []struct {
		name, category, unit string
		stock, minimum       int
		cost                 float64
	}{
		{"Car Shampoo", "chemicals", "litre", 40, 10, 350},
		{"Wax Polish", "chemicals", "tin", 12, 5, 900},
		{"Microfibre Towels", "supplies", "piece", 60, 20, 150},
		{"Tyre Shine", "chemicals", "litre", 8, 10, 600},
	}
	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO inventory (business_id, name, category, current_stock, minimum_stock, unit, cost_per_unit)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			businessID, item.name, item.category, item.stock, item.minimum, item.unit, item.cost,
		)
		if err != nil {
			return fmt.Errorf("failed to seed inventory item %q: %w", item.name, err)
		}
	}
	return nil
}

// seedHistory writes completed appointments with payments, expenses and
// feedback spread over the trailing weeks, so the dashboard has a real
// series to aggregate on first run.
func seedHistory(ctx context.Context, tx *sql.Tx, businessID string, serviceIDs []string, prices []float64, customerIDs []string, weeks int, rng *rand.Rand) error {
	methods := []string{"cash", "card", "mobile"}
	categories := []string{"utilities", "supplies", "wages", "maintenance"}

	start := time.Now().AddDate(0, 0, -weeks*7)
	for day := 0; day < weeks*7; day++ {
		date := start.AddDate(0, 0, day)
		washes := 3 + rng.Intn(8)

		for w := 0; w < washes; w++ {
			si := rng.Intn(len(serviceIDs))
			ci := rng.Intn(len(customerIDs))
			scheduled := date.Add(time.Duration(8+rng.Intn(9)) * time.Hour)

			var appointmentID string
			err := tx.QueryRowContext(ctx,
				`INSERT INTO appointments (business_id, customer_id, service_id, scheduled_date, status, total_amount)
				 VALUES ($1, $2, $3, $4, 'completed', $5) RETURNING id`,
				businessID, customerIDs[ci], serviceIDs[si], scheduled, prices[si],
			).Scan(&appointmentID)
			if err != nil {
				return fmt.Errorf("failed to seed appointment: %w", err)
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO payments (appointment_id, amount, payment_method, status, created_at)
				 VALUES ($1, $2, $3, 'completed', $4)`,
				appointmentID, prices[si], methods[rng.Intn(len(methods))], scheduled,
			)
			if err != nil {
				return fmt.Errorf("failed to seed payment: %w", err)
			}

			if rng.Float64() < 0.3 {
				_, err = tx.ExecContext(ctx,
					`INSERT INTO feedback (business_id, customer_id, appointment_id, rating, created_at)
					 VALUES ($1, $2, $3, $4, $5)`,
					businessID, customerIDs[ci], appointmentID, 3+rng.Intn(3), scheduled,
				)
				if err != nil {
					return fmt.Errorf("failed to seed feedback: %w", err)
				}
			}
		}

		if rng.Float64() < 0.6 {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO expenses (business_id, category, description, amount, expense_date, status)
				 VALUES ($1, $2, $3, $4, $5, 'paid')`,
				businessID, categories[rng.Intn(len(categories))], "Daily operating expense",
				500+rng.Float64()*2500, date,
			)
			if err != nil {
				return fmt.Errorf("failed to seed expense: %w", err)
			}
		}
	}
	return nil
}
