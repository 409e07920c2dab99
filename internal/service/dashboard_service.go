// internal/service/dashboard_service.go
package service

import (
	"context"

	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/metrics"
	"github.com/chemichemie/carwash-backend/internal/repository"
)

// DashboardService assembles the "today" snapshot cards. It reads the tail
// of the metrics series for today's numbers and counts the rest directly.
type DashboardService struct {
	metrics      *MetricsService
	appointments repository.AppointmentRepository
	customers    repository.CustomerRepository
	inventory    repository.InventoryRepository
}

func NewDashboardService(
	metrics *MetricsService,
	appointments repository.AppointmentRepository,
	customers repository.CustomerRepository,
	inventory repository.InventoryRepository,
) *DashboardService {
	return &DashboardService{
		metrics:      metrics,
		appointments: appointments,
		customers:    customers,
		inventory:    inventory,
	}
}

func (s *DashboardService) Stats(ctx context.Context, businessID string) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	if businessID == "" {
		return stats, nil
	}

	series, err := s.metrics.DailySeries(ctx, businessID, 0)
	if err != nil {
		return nil, err
	}
	if n := len(series); n > 0 {
		today := series[n-1]
		stats.TodayRevenue = today.Revenue
		stats.TodayWashes = today.WashCount
		stats.TodayCustomers = today.CustomerCount
		stats.AverageRating = today.AverageRating
	}
	stats.TodayRevenueDisplay = metrics.FormatMoney(stats.TodayRevenue, s.metrics.Currency())

	// Count failures degrade to zero cards rather than failing the view.
	if n, err := s.appointments.CountByStatus(ctx, businessID, domain.AppointmentPending); err == nil {
		stats.PendingAppointments = n
	}
	if n, err := s.customers.Count(ctx, businessID); err == nil {
		stats.ActiveCustomers = n
	}
	if n, err := s.inventory.CountLowStock(ctx, businessID); err == nil {
		stats.LowStockItems = n
	}

	return stats, nil
}
