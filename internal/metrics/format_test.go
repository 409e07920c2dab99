// internal/metrics/format_test.go
package metrics

import (
	"testing"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Jun 29", DayLabel(time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jan 2", DayLabel(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestDeltaPercent(t *testing.T) {
	assert.Equal(t, 50.0, DeltaPercent(150, 100))
	assert.Equal(t, -25.0, DeltaPercent(75, 100))
	assert.Equal(t, 0.0, DeltaPercent(150, 0))
	assert.Equal(t, 0.0, DeltaPercent(0, 0))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "KES 0.00"},
		{5, "KES 5.00"},
		{1234.5, "KES 1,234.50"},
		{12500, "KES 12,500.00"},
		{1234567.89, "KES 1,234,567.89"},
		{-450.75, "KES -450.75"},
		{999.999, "KES 1,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.amount, "KES"), "amount %v", tt.amount)
	}
}

func TestGrowthPointsDeltas(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }
	series := []domain.DailyMetric{
		{Date: d(28), Revenue: 1000, NetProfit: 600},
		{Date: d(29), Revenue: 1500, NetProfit: 900},
		{Date: d(30), Revenue: 0, NetProfit: 0},
	}

	points := GrowthPoints(series)
	require.Len(t, points, 3)

	assert.Equal(t, "Jun 28", points[0].Label)
	assert.Equal(t, "2024-06-28", points[0].Date)
	assert.Equal(t, 0.0, points[0].RevenueDelta)

	assert.Equal(t, 50.0, points[1].RevenueDelta)
	assert.Equal(t, 50.0, points[1].NetProfitDelta)

	assert.Equal(t, -100.0, points[2].RevenueDelta)
}

func TestSummarize(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC) }
	series := []domain.DailyMetric{
		{Date: d(28), Revenue: 1000, Expenses: 400, NetProfit: 600, WashCount: 4, AverageRating: 4.0},
		{Date: d(29), Revenue: 2000, Expenses: 500, NetProfit: 1500, WashCount: 6, AverageRating: 0},
		{Date: d(30), Revenue: 3000, Expenses: 600, NetProfit: 2400, WashCount: 10, AverageRating: 4.6},
	}

	s := Summarize(series)

	assert.Equal(t, 3, s.WindowDays)
	assert.Equal(t, 6000.0, s.TotalRevenue)
	assert.Equal(t, 1500.0, s.TotalExpenses)
	assert.Equal(t, 4500.0, s.TotalNetProfit)
	assert.Equal(t, 20, s.TotalWashes)
	assert.Equal(t, 300.0, s.AverageTicket)

	// Zero-rated days are excluded from the average.
	assert.Equal(t, 4.3, s.AverageRating)

	assert.Equal(t, 50.0, s.RevenueGrowthPct)
	assert.InDelta(t, 66.7, s.WashGrowthPct, 0.1)
	assert.Len(t, s.Points, 3)
}

func TestSummarizeEmptySeries(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.WindowDays)
	assert.Equal(t, 0.0, s.AverageTicket)
	assert.Equal(t, 0.0, s.AverageRating)
	assert.Equal(t, 0.0, s.RevenueGrowthPct)
	assert.Empty(t, s.Points)
}
