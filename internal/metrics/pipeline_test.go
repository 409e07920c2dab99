// internal/metrics/pipeline_test.go
package metrics

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	appointments []domain.Appointment
	expenses     []domain.Expense
	payments     []domain.Payment
	feedback     []domain.Feedback

	appointmentsErr error
	expensesErr     error
}

func (s *stubReader) Appointments(ctx context.Context, businessID string) ([]domain.Appointment, error) {
	return s.appointments, s.appointmentsErr
}

func (s *stubReader) Expenses(ctx context.Context, businessID string) ([]domain.Expense, error) {
	return s.expenses, s.expensesErr
}

func (s *stubReader) Payments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	return s.payments, nil
}

func (s *stubReader) Feedback(ctx context.Context, businessID string) ([]domain.Feedback, error) {
	return s.feedback, nil
}

// fixedPipeline uses a seeded rng so runs are reproducible.
func fixedPipeline(reader SourceReader) *Pipeline {
	return NewPipeline(reader, WithBackfiller(NewBackfiller(rand.New(rand.NewSource(1)))))
}

func TestComputeEmptyBusinessID(t *testing.T) {
	p := fixedPipeline(&stubReader{})

	series, err := p.Compute(context.Background(), "", time.Now(), 30)
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestComputeThreeDayScenario(t *testing.T) {
	today := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	reader := &stubReader{
		appointments: []domain.Appointment{
			{CustomerID: "c1", Status: domain.AppointmentCompleted, TotalAmount: 600,
				ScheduledAt: time.Date(2024, 6, 28, 10, 0, 0, 0, time.UTC)},
			{CustomerID: "c2", Status: domain.AppointmentCompleted, TotalAmount: 900,
				ScheduledAt: time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)},
		},
		expenses: []domain.Expense{
			{Amount: 400, ExpenseDate: time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC)},
		},
		feedback: []domain.Feedback{
			{Rating: 4, CreatedAt: time.Date(2024, 6, 30, 11, 0, 0, 0, time.UTC)},
			{Rating: 5, CreatedAt: time.Date(2024, 6, 30, 11, 30, 0, 0, time.UTC)},
			{Rating: 3, CreatedAt: time.Date(2024, 6, 30, 11, 45, 0, 0, time.UTC)},
		},
	}

	p := fixedPipeline(reader)
	series, err := p.Compute(context.Background(), "biz-1", today, 3)
	require.NoError(t, err)
	require.Len(t, series, 3)

	// June 28: one completed wash, no payments
	assert.Equal(t, 600.0, series[0].Revenue)
	assert.Equal(t, 1, series[0].WashCount)
	assert.Equal(t, 600.0, series[0].NetProfit)

	// June 29: expense only
	assert.Equal(t, 0.0, series[1].Revenue)
	assert.Equal(t, 400.0, series[1].Expenses)
	assert.Equal(t, -400.0, series[1].NetProfit)

	// June 30: wash plus three ratings
	assert.Equal(t, 900.0, series[2].Revenue)
	assert.Equal(t, 4.0, series[2].AverageRating)

	// A 3-day window is entirely inside the protected tail.
	for _, m := range series {
		assert.False(t, m.Synthetic)
	}
}

func TestComputeSeriesIsOldestFirst(t *testing.T) {
	today := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	p := fixedPipeline(&stubReader{})

	series, err := p.Compute(context.Background(), "biz-1", today, 5)
	require.NoError(t, err)
	require.Len(t, series, 5)

	for i := 1; i < len(series); i++ {
		assert.True(t, series[i].Date.After(series[i-1].Date))
	}
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), series[4].Date)
}

func TestComputeSurvivesFetchFailures(t *testing.T) {
	today := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	reader := &stubReader{
		appointmentsErr: errors.New("connection reset"),
		expensesErr:     errors.New("connection reset"),
		payments: []domain.Payment{
			{Status: domain.PaymentCompleted, Amount: 800,
				CreatedAt: time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC)},
		},
	}

	p := fixedPipeline(reader)
	series, err := p.Compute(context.Background(), "biz-1", today, 3)
	require.NoError(t, err)
	require.Len(t, series, 3)

	// Failed kinds degrade to empty; the payment still lands.
	assert.Equal(t, 800.0, series[2].Revenue)
	assert.Equal(t, 0, series[2].WashCount)
	assert.Equal(t, 0.0, series[2].Expenses)
}

func TestComputeDefaultWindow(t *testing.T) {
	p := fixedPipeline(&stubReader{})

	series, err := p.Compute(context.Background(), "biz-1", time.Now(), 0)
	require.NoError(t, err)
	assert.Len(t, series, DefaultWindowDays)
}
