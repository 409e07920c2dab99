// internal/metrics/format.go
package metrics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

// DayLabel renders a short month/day axis label, e.g. "Jun 29".
func DayLabel(t time.Time) string {
	return t.Format("Jan 2")
}

// DeltaPercent computes the day-over-day percentage change. Defined as 0
// when the previous value is 0.
func DeltaPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// FormatMoney renders an amount with the business currency code, two
// decimals and thousands grouping, e.g. "KES 12,500.00".
func FormatMoney(amount float64, code string) string {
	neg := amount < 0
	abs := math.Abs(amount)

	whole := int64(abs)
	cents := int64(math.Round((abs - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s.%02d", code, sign, b.String(), cents)
}

// GrowthPoints projects the series into chart-ready points with labels and
// deltas against the preceding day.
func GrowthPoints(series []domain.DailyMetric) []domain.GrowthPoint {
	points := make([]domain.GrowthPoint, len(series))
	for i, m := range series {
		p := domain.GrowthPoint{
			Label:     DayLabel(m.Date),
			Date:      m.Date.Format("2006-01-02"),
			Revenue:   m.Revenue,
			Expenses:  m.Expenses,
			NetProfit: m.NetProfit,
			WashCount: m.WashCount,
			Synthetic: m.Synthetic,
		}
		if i > 0 {
			prev := series[i-1]
			p.RevenueDelta = DeltaPercent(m.Revenue, prev.Revenue)
			p.NetProfitDelta = DeltaPercent(m.NetProfit, prev.NetProfit)
		}
		points[i] = p
	}
	return points
}

// Summarize aggregates the series for the growth analytics view. Growth
// percentages compare the two most recent days of the window.
func Summarize(series []domain.DailyMetric) domain.GrowthSummary {
	s := domain.GrowthSummary{
		WindowDays: len(series),
		Points:     GrowthPoints(series),
	}

	var ratingSum float64
	var ratedDays int
	for _, m := range series {
		s.TotalRevenue += m.Revenue
		s.TotalExpenses += m.Expenses
		s.TotalNetProfit += m.NetProfit
		s.TotalWashes += m.WashCount
		if m.AverageRating > 0 {
			ratingSum += m.AverageRating
			ratedDays++
		}
	}
	if s.TotalWashes > 0 {
		s.AverageTicket = s.TotalRevenue / float64(s.TotalWashes)
	}
	if ratedDays > 0 {
		s.AverageRating = roundRating(ratingSum / float64(ratedDays))
	}

	if n := len(series); n >= 2 {
		latest, prev := series[n-1], series[n-2]
		s.RevenueGrowthPct = DeltaPercent(latest.Revenue, prev.Revenue)
		s.WashGrowthPct = DeltaPercent(float64(latest.WashCount), float64(prev.WashCount))
	}
	return s
}
