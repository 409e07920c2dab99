// internal/domain/metrics.go
package domain

import "time"

// DailyMetric is the reduced output tuple for one calendar day of the
// dashboard window. It is recomputed on demand and never persisted.
// Synthetic marks days whose values were backfilled with placeholder data
// because the tenant had no history for them.
type DailyMetric struct {
	Date          time.Time `json:"date"`
	Revenue       float64   `json:"revenue"`
	Expenses      float64   `json:"expenses"`
	WashCount     int       `json:"wash_count"`
	CustomerCount int       `json:"customer_count"`
	AverageRating float64   `json:"average_rating"`
	NetProfit     float64   `json:"net_profit"`
	Synthetic     bool      `json:"synthetic"`
}

// HasActivity reports whether the day saw any real business movement. Days
// with activity are never overwritten by the backfill policy.
func (m DailyMetric) HasActivity() bool {
	return m.Revenue != 0 || m.Expenses != 0 || m.WashCount != 0
}

// GrowthPoint is a chart-ready projection of a DailyMetric: a short axis
// label plus day-over-day percent deltas against the preceding day.
type GrowthPoint struct {
	Label          string  `json:"label"`
	Date           string  `json:"date"`
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	NetProfit      float64 `json:"net_profit"`
	WashCount      int     `json:"wash_count"`
	RevenueDelta   float64 `json:"revenue_delta_pct"`
	NetProfitDelta float64 `json:"net_profit_delta_pct"`
	Synthetic      bool    `json:"synthetic"`
}

// GrowthSummary aggregates the window for the growth analytics view.
type GrowthSummary struct {
	WindowDays       int           `json:"window_days"`
	TotalRevenue     float64       `json:"total_revenue"`
	TotalExpenses    float64       `json:"total_expenses"`
	TotalNetProfit   float64       `json:"total_net_profit"`
	TotalWashes      int           `json:"total_washes"`
	AverageTicket    float64       `json:"average_ticket"`
	AverageRating    float64       `json:"average_rating"`
	RevenueGrowthPct float64       `json:"revenue_growth_pct"`
	WashGrowthPct    float64       `json:"wash_growth_pct"`
	Points           []GrowthPoint `json:"points"`

	// Display strings carry the business currency, e.g. "KES 12,500.00".
	Currency              string `json:"currency"`
	TotalRevenueDisplay   string `json:"total_revenue_display"`
	TotalExpensesDisplay  string `json:"total_expenses_display"`
	TotalNetProfitDisplay string `json:"total_net_profit_display"`
}

// DashboardStats is the "today" snapshot for the dashboard cards.
type DashboardStats struct {
	TodayRevenue        float64 `json:"today_revenue"`
	TodayRevenueDisplay string  `json:"today_revenue_display"`
	TodayWashes         int     `json:"today_washes"`
	TodayCustomers      int     `json:"today_customers"`
	PendingAppointments int     `json:"pending_appointments"`
	ActiveCustomers     int     `json:"active_customers"`
	LowStockItems       int     `json:"low_stock_items"`
	AverageRating       float64 `json:"average_rating"`
}
