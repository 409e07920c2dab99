// internal/domain/models.go
package domain

import "time"

// AppointmentStatus enumerates the lifecycle of a wash appointment.
type AppointmentStatus string

const (
	AppointmentPending    AppointmentStatus = "pending"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

// PaymentStatus enumerates payment states. Only completed payments count
// toward revenue.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// ExpenseStatus enumerates expense settlement states.
type ExpenseStatus string

const (
	ExpensePaid    ExpenseStatus = "paid"
	ExpensePending ExpenseStatus = "pending"
)

// Customer represents a customer record scoped to a business.
type Customer struct {
	ID            string     `json:"id" db:"id"`
	BusinessID    string     `json:"business_id" db:"business_id"`
	Name          string     `json:"name" db:"name"`
	Email         *string    `json:"email" db:"email"`
	Phone         *string    `json:"phone" db:"phone"`
	LoyaltyPoints int        `json:"loyalty_points" db:"loyalty_points"`
	TotalVisits   int        `json:"total_visits" db:"total_visits"`
	LastVisit     *time.Time `json:"last_visit" db:"last_visit"`
	Vehicles      []Vehicle  `json:"vehicles,omitempty" db:"-"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Vehicle represents a customer's vehicle.
type Vehicle struct {
	ID          string    `json:"id" db:"id"`
	CustomerID  string    `json:"customer_id" db:"customer_id"`
	Make        string    `json:"make" db:"make"`
	Model       string    `json:"model" db:"model"`
	Year        *int      `json:"year" db:"year"`
	PlateNumber *string   `json:"plate_number" db:"plate_number"`
	Color       *string   `json:"color" db:"color"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Service represents a catalog entry (wash package).
type Service struct {
	ID          string    `json:"id" db:"id"`
	BusinessID  string    `json:"business_id" db:"business_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Duration    int       `json:"duration" db:"duration"` // minutes
	IsActive    bool      `json:"is_active" db:"is_active"`
	Popularity  int       `json:"popularity" db:"popularity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Appointment represents a scheduled wash.
type Appointment struct {
	ID          string            `json:"id" db:"id"`
	BusinessID  string            `json:"business_id" db:"business_id"`
	CustomerID  string            `json:"customer_id" db:"customer_id"`
	ServiceID   string            `json:"service_id" db:"service_id"`
	VehicleID   *string           `json:"vehicle_id" db:"vehicle_id"`
	ScheduledAt time.Time         `json:"scheduled_date" db:"scheduled_date"`
	Status      AppointmentStatus `json:"status" db:"status"`
	TotalAmount float64           `json:"total_amount" db:"total_amount"`
	Notes       *string           `json:"notes" db:"notes"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// Payment represents a payment against an appointment. Tenant scoping runs
// through the appointment's business_id.
type Payment struct {
	ID            string        `json:"id" db:"id"`
	AppointmentID string        `json:"appointment_id" db:"appointment_id"`
	Amount        float64       `json:"amount" db:"amount"`
	Method        string        `json:"payment_method" db:"payment_method"` // cash, card, mobile, bank
	Status        PaymentStatus `json:"status" db:"status"`
	TransactionID *string       `json:"transaction_id" db:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// Expense represents an operating expense.
type Expense struct {
	ID          string        `json:"id" db:"id"`
	BusinessID  string        `json:"business_id" db:"business_id"`
	Category    string        `json:"category" db:"category"`
	Description string        `json:"description" db:"description"`
	Amount      float64       `json:"amount" db:"amount"`
	ExpenseDate time.Time     `json:"expense_date" db:"expense_date"`
	Status      ExpenseStatus `json:"status" db:"status"`
	EmployeeID  *string       `json:"employee_id" db:"employee_id"`
	ReceiptURL  *string       `json:"receipt_url" db:"receipt_url"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// Feedback represents a customer rating, 1-5.
type Feedback struct {
	ID            string    `json:"id" db:"id"`
	BusinessID    string    `json:"business_id" db:"business_id"`
	CustomerID    string    `json:"customer_id" db:"customer_id"`
	AppointmentID *string   `json:"appointment_id" db:"appointment_id"`
	Rating        int       `json:"rating" db:"rating"`
	Comment       *string   `json:"comment" db:"comment"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// InventoryItem represents a stocked consumable (soap, wax, towels).
type InventoryItem struct {
	ID            string     `json:"id" db:"id"`
	BusinessID    string     `json:"business_id" db:"business_id"`
	Name          string     `json:"name" db:"name"`
	Category      string     `json:"category" db:"category"`
	CurrentStock  int        `json:"current_stock" db:"current_stock"`
	MinimumStock  int        `json:"minimum_stock" db:"minimum_stock"`
	Unit          string     `json:"unit" db:"unit"`
	CostPerUnit   *float64   `json:"cost_per_unit" db:"cost_per_unit"`
	Supplier      *string    `json:"supplier" db:"supplier"`
	LastRestocked *time.Time `json:"last_restocked" db:"last_restocked"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// ServiceRecord logs a completed walk-in wash. Walk-ins skip the booking
// flow entirely: the vehicle is identified by plate, not a customer record,
// and the price and duration are snapshotted from the catalog at the time
// of service.
type ServiceRecord struct {
	ID              string    `json:"id" db:"id"`
	BusinessID      string    `json:"business_id" db:"business_id"`
	ServiceID       string    `json:"service_id" db:"service_id"`
	EmployeeID      string    `json:"employee_id" db:"employee_id"`
	VehiclePlate    string    `json:"vehicle_plate" db:"vehicle_plate"`
	VehicleType     string    `json:"vehicle_type" db:"vehicle_type"`
	PaymentMethod   string    `json:"payment_method" db:"payment_method"`
	ServicePrice    float64   `json:"service_price" db:"service_price"`
	ServiceDuration int       `json:"service_duration" db:"service_duration"` // minutes
	CompletedAt     time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Employee represents a staff record.
type Employee struct {
	ID         string    `json:"id" db:"id"`
	BusinessID string    `json:"business_id" db:"business_id"`
	Name       string    `json:"name" db:"name"`
	Email      *string   `json:"email" db:"email"`
	Phone      *string   `json:"phone" db:"phone"`
	Position   string    `json:"position" db:"position"`
	Salary     *float64  `json:"salary" db:"salary"`
	HireDate   time.Time `json:"hire_date" db:"hire_date"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
