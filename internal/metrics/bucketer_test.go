// internal/metrics/bucketer_test.go
package metrics

import (
	"testing"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	today := time.Date(2024, 6, 30, 14, 30, 0, 0, time.UTC)

	days := Window(today, 3)
	require.Len(t, days, 3)

	assert.Equal(t, time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC), days[0].Start)
	assert.Equal(t, time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC), days[1].Start)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), days[2].Start)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), days[2].End)
}

func TestWindowDefaultsWhenNonPositive(t *testing.T) {
	today := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	assert.Len(t, Window(today, 0), DefaultWindowDays)
	assert.Len(t, Window(today, -5), DefaultWindowDays)
}

func TestWindowCrossesMonthBoundary(t *testing.T) {
	today := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	days := Window(today, 2)
	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), days[0].Start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), days[1].Start)
}

func TestDayContains(t *testing.T) {
	day := Day{
		Start: time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, day.Contains(day.Start))
	assert.True(t, day.Contains(time.Date(2024, 6, 29, 23, 59, 59, 0, time.UTC)))
	assert.False(t, day.Contains(day.End))
	assert.False(t, day.Contains(day.Start.Add(-time.Second)))
}

func TestPartitionAssignsByCalendarDay(t *testing.T) {
	today := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	window := Window(today, 3)

	data := SourceData{
		Appointments: []domain.Appointment{
			{ID: "a1", ScheduledAt: time.Date(2024, 6, 28, 9, 0, 0, 0, time.UTC)},
			{ID: "a2", ScheduledAt: time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)},
			// outside the window, dropped
			{ID: "a3", ScheduledAt: time.Date(2024, 6, 27, 10, 0, 0, 0, time.UTC)},
		},
		Expenses: []domain.Expense{
			{ID: "e1", ExpenseDate: time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC)},
		},
		Payments: []domain.Payment{
			{ID: "p1", CreatedAt: time.Date(2024, 6, 30, 8, 15, 0, 0, time.UTC)},
		},
		Feedback: []domain.Feedback{
			{ID: "f1", CreatedAt: time.Date(2024, 6, 28, 18, 0, 0, 0, time.UTC)},
		},
	}

	buckets := partition(window, data)
	require.Len(t, buckets, 3)

	assert.Len(t, buckets[0].appointments, 1)
	assert.Equal(t, "a1", buckets[0].appointments[0].ID)
	assert.Len(t, buckets[2].appointments, 1)
	assert.Equal(t, "a2", buckets[2].appointments[0].ID)

	assert.Len(t, buckets[1].expenses, 1)
	assert.Len(t, buckets[2].payments, 1)
	assert.Len(t, buckets[0].feedback, 1)
}

func TestPartitionNormalizesTimezones(t *testing.T) {
	today := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	window := Window(today, 2)

	// 2024-06-30 02:00 +03:00 is 2024-06-29 23:00 UTC: the window's local
	// calendar places it on the 29th.
	nairobi := time.FixedZone("EAT", 3*60*60)
	data := SourceData{
		Payments: []domain.Payment{
			{ID: "p1", CreatedAt: time.Date(2024, 6, 30, 2, 0, 0, 0, nairobi)},
		},
	}

	buckets := partition(window, data)
	require.Len(t, buckets, 2)
	assert.Len(t, buckets[0].payments, 1)
	assert.Empty(t, buckets[1].payments)
}
