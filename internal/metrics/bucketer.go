// internal/metrics/bucketer.go
package metrics

import (
	"time"

	"github.com/chemichemie/carwash-backend/internal/domain"
)

// Day is one calendar-day slot of the output window. Start is local
// midnight; End is the next local midnight (exclusive).
type Day struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls inside the day.
func (d Day) Contains(ts time.Time) bool {
	return !ts.Before(d.Start) && ts.Before(d.End)
}

// Window builds n consecutive day slots ending at today, oldest first.
// Day boundaries are taken in today's location so the series is stable
// across DST transitions.
func Window(today time.Time, n int) []Day {
	if n <= 0 {
		n = DefaultWindowDays
	}
	loc := today.Location()
	days := make([]Day, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
		days = append(days, Day{Start: start, End: start.AddDate(0, 0, 1)})
	}
	return days
}

// SourceData carries one tenant's raw records for the whole window. A nil
// slice means the kind contributed nothing (empty tenant or failed fetch).
type SourceData struct {
	Appointments []domain.Appointment
	Expenses     []domain.Expense
	Payments     []domain.Payment
	Feedback     []domain.Feedback
}

// dayBucket holds the records assigned to a single day slot.
type dayBucket struct {
	appointments []domain.Appointment
	expenses     []domain.Expense
	payments     []domain.Payment
	feedback     []domain.Feedback
}

// partition assigns every record to the day slot containing its relevant
// timestamp (appointment scheduled_date, expense expense_date, payment and
// feedback created_at). Records outside the window are dropped. Pure
// function: identical inputs always yield identical assignments.
func partition(window []Day, data SourceData) []dayBucket {
	buckets := make([]dayBucket, len(window))
	if len(window) == 0 {
		return buckets
	}

	loc := window[0].Start.Location()
	index := make(map[string]int, len(window))
	for i, d := range window {
		index[d.Start.Format("2006-01-02")] = i
	}

	// Index by local calendar date rather than scanning the interval list;
	// same assignment as the interval check.
	slot := func(ts time.Time) (int, bool) {
		i, ok := index[ts.In(loc).Format("2006-01-02")]
		return i, ok
	}

	for _, a := range data.Appointments {
		if i, ok := slot(a.ScheduledAt); ok {
			buckets[i].appointments = append(buckets[i].appointments, a)
		}
	}
	for _, e := range data.Expenses {
		if i, ok := slot(e.ExpenseDate); ok {
			buckets[i].expenses = append(buckets[i].expenses, e)
		}
	}
	for _, p := range data.Payments {
		if i, ok := slot(p.CreatedAt); ok {
			buckets[i].payments = append(buckets[i].payments, p)
		}
	}
	for _, f := range data.Feedback {
		if i, ok := slot(f.CreatedAt); ok {
			buckets[i].feedback = append(buckets[i].feedback, f)
		}
	}

	return buckets
}
