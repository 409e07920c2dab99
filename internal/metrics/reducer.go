// internal/metrics/reducer.go
package metrics

import (
	"math"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

// reduce collapses one day's bucketed records into a DailyMetric.
//
// Revenue prefers the sum of completed payments; only when the day has no
// completed payment does it fall back to the completed appointments' totals.
// The two sources are never added together. Expenses count regardless of
// their settlement status.
func reduce(day Day, b dayBucket) domain.DailyMetric {
	var (
		completedTotal float64
		washCount      int
		customers      = map[string]struct{}{}
	)
	for _, a := range b.appointments {
		if a.Status != domain.AppointmentCompleted {
			continue
		}
		completedTotal += a.TotalAmount
		washCount++
		customers[a.CustomerID] = struct{}{}
	}

	var (
		paymentTotal float64
		paymentCount int
	)
	for _, p := range b.payments {
		if p.Status != domain.PaymentCompleted {
			continue
		}
		paymentTotal += p.Amount
		paymentCount++
	}

	revenue := completedTotal
	if paymentCount > 0 {
		revenue = paymentTotal
	}

	var expenses float64
	for _, e := range b.expenses {
		expenses += e.Amount
	}

	var rating float64
	if len(b.feedback) > 0 {
		var sum int
		for _, f := range b.feedback {
			sum += f.Rating
		}
		rating = float64(sum) / float64(len(b.feedback))
	}

	return domain.DailyMetric{
		Date:          day.Start,
		Revenue:       revenue,
		Expenses:      expenses,
		WashCount:     washCount,
		CustomerCount: len(customers),
		AverageRating: roundRating(rating),
		NetProfit:     revenue - expenses,
	}
}

// roundRating keeps one decimal place, matching what the dashboard renders.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
