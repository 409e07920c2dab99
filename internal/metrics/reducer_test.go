// internal/metrics/reducer_test.go
package metrics

import (
	"testing"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testDay() Day {
	start := time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC)
	return Day{Start: start, End: start.AddDate(0, 0, 1)}
}

func TestReduceRevenuePrefersPayments(t *testing.T) {
	b := dayBucket{
		appointments: []domain.Appointment{
			{CustomerID: "c1", Status: domain.AppointmentCompleted, TotalAmount: 500},
			{CustomerID: "c2", Status: domain.AppointmentCompleted, TotalAmount: 1000},
		},
		payments: []domain.Payment{
			{Status: domain.PaymentCompleted, Amount: 800},
		},
	}

	m := reduce(testDay(), b)

	// Payments win; appointment totals are not added on top.
	assert.Equal(t, 800.0, m.Revenue)
	assert.Equal(t, 2, m.WashCount)
	assert.Equal(t, 800.0, m.NetProfit)
}

func TestReduceFallsBackToAppointmentTotals(t *testing.T) {
	b := dayBucket{
		appointments: []domain.Appointment{
			{CustomerID: "c1", Status: domain.AppointmentCompleted, TotalAmount: 500},
			{CustomerID: "c2", Status: domain.AppointmentCompleted, TotalAmount: 700},
			{CustomerID: "c3", Status: domain.AppointmentCancelled, TotalAmount: 9999},
		},
		payments: []domain.Payment{
			// pending payments do not trigger the payment path
			{Status: domain.PaymentPending, Amount: 300},
		},
	}

	m := reduce(testDay(), b)

	assert.Equal(t, 1200.0, m.Revenue)
	assert.Equal(t, 2, m.WashCount)
}

func TestReduceCountsDistinctCustomers(t *testing.T) {
	b := dayBucket{
		appointments: []domain.Appointment{
			{CustomerID: "c1", Status: domain.AppointmentCompleted, TotalAmount: 500},
			{CustomerID: "c1", Status: domain.AppointmentCompleted, TotalAmount: 500},
			{CustomerID: "c2", Status: domain.AppointmentCompleted, TotalAmount: 500},
			{CustomerID: "c3", Status: domain.AppointmentPending, TotalAmount: 500},
		},
	}

	m := reduce(testDay(), b)

	assert.Equal(t, 3, m.WashCount)
	assert.Equal(t, 2, m.CustomerCount)
}

func TestReduceExpensesIgnoreStatus(t *testing.T) {
	b := dayBucket{
		expenses: []domain.Expense{
			{Amount: 300, Status: domain.ExpensePaid},
			{Amount: 200, Status: domain.ExpensePending},
		},
	}

	m := reduce(testDay(), b)

	assert.Equal(t, 500.0, m.Expenses)
	assert.Equal(t, -500.0, m.NetProfit)
}

func TestReduceAverageRating(t *testing.T) {
	b := dayBucket{
		feedback: []domain.Feedback{
			{Rating: 4}, {Rating: 5}, {Rating: 3},
		},
	}

	m := reduce(testDay(), b)
	assert.Equal(t, 4.0, m.AverageRating)
}

func TestReduceRatingRoundsToOneDecimal(t *testing.T) {
	b := dayBucket{
		feedback: []domain.Feedback{
			{Rating: 4}, {Rating: 4}, {Rating: 5},
		},
	}

	m := reduce(testDay(), b)
	assert.Equal(t, 4.3, m.AverageRating)
}

func TestReduceEmptyBucket(t *testing.T) {
	m := reduce(testDay(), dayBucket{})

	assert.Equal(t, 0.0, m.Revenue)
	assert.Equal(t, 0.0, m.Expenses)
	assert.Equal(t, 0, m.WashCount)
	assert.Equal(t, 0, m.CustomerCount)
	assert.Equal(t, 0.0, m.AverageRating)
	assert.Equal(t, 0.0, m.NetProfit)
	assert.False(t, m.Synthetic)
}
