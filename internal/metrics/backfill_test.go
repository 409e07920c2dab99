// internal/metrics/backfill_test.go
package metrics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptySeries(n int) []domain.DailyMetric {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	series := make([]domain.DailyMetric, n)
	for i := range series {
		series[i].Date = start.AddDate(0, 0, i)
	}
	return series
}

func TestBackfillLeavesRecentDaysAlone(t *testing.T) {
	b := NewBackfiller(rand.New(rand.NewSource(1)))
	series := emptySeries(30)

	b.Apply(series)

	// The last 16 entries (daysAgo 0..15) stay untouched even when empty.
	for i := len(series) - 1 - recentDays; i < len(series); i++ {
		assert.False(t, series[i].Synthetic, "entry %d should not be synthesized", i)
		assert.Equal(t, 0.0, series[i].Revenue)
	}

	// Older empty entries are all synthesized.
	for i := 0; i < len(series)-1-recentDays; i++ {
		assert.True(t, series[i].Synthetic, "entry %d should be synthesized", i)
	}
}

func TestBackfillSkipsDaysWithActivity(t *testing.T) {
	b := NewBackfiller(rand.New(rand.NewSource(1)))
	series := emptySeries(30)
	series[0].Revenue = 250
	series[1].Expenses = 90
	series[2].WashCount = 1

	b.Apply(series)

	assert.False(t, series[0].Synthetic)
	assert.Equal(t, 250.0, series[0].Revenue)
	assert.False(t, series[1].Synthetic)
	assert.False(t, series[2].Synthetic)
	assert.True(t, series[3].Synthetic)
}

func TestBackfillValuesAreInBand(t *testing.T) {
	b := NewBackfiller(rand.New(rand.NewSource(7)))
	series := emptySeries(30)

	b.Apply(series)

	for i, m := range series {
		if !m.Synthetic {
			continue
		}
		// base band 2000-7000 plus the +-1000 seasonal swing
		assert.GreaterOrEqual(t, m.Revenue, 1000.0, "entry %d", i)
		assert.LessOrEqual(t, m.Revenue, 8000.0, "entry %d", i)
		assert.Greater(t, m.Expenses, 0.0, "entry %d", i)
		assert.GreaterOrEqual(t, m.WashCount, 5, "entry %d", i)
		assert.LessOrEqual(t, m.WashCount, 20, "entry %d", i)
		assert.GreaterOrEqual(t, m.AverageRating, 3.5, "entry %d", i)
		assert.LessOrEqual(t, m.AverageRating, 5.0, "entry %d", i)
		assert.InDelta(t, m.Revenue-m.Expenses, m.NetProfit, 1e-9, "entry %d", i)
	}
}

func TestBackfillIsDeterministicForFixedSeed(t *testing.T) {
	a := emptySeries(30)
	b := emptySeries(30)

	NewBackfiller(rand.New(rand.NewSource(99))).Apply(a)
	NewBackfiller(rand.New(rand.NewSource(99))).Apply(b)

	require.Equal(t, a, b)
}

func TestBackfillShortSeries(t *testing.T) {
	b := NewBackfiller(rand.New(rand.NewSource(1)))
	series := emptySeries(10)

	b.Apply(series)

	// Every entry is within the protected tail; nothing changes.
	for i, m := range series {
		assert.False(t, m.Synthetic, "entry %d", i)
	}
}
