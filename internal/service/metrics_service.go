// internal/service/metrics_service.go
package service

import (
	"context"
	"time"

	"github.com/chemichemie/carwash-backend/internal/cache"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/metrics"
	"github.com/rs/zerolog/log"
)

// MetricsService serves the dashboard/growth views: it runs the metrics
// pipeline, coalesces repeat requests through the cache, and re-triggers on
// change-feed events. Concurrent recomputes for the same tenant are not
// coordinated; the pipeline is idempotent and the last cache write wins.
type MetricsService struct {
	pipeline *metrics.Pipeline
	cache    cache.MetricsCache
	events   *broadcaster
	currency string
	now      func() time.Time
}

func NewMetricsService(pipeline *metrics.Pipeline, cacheImpl cache.MetricsCache, currencyCode string) *MetricsService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopMetricsCache()
	}
	if currencyCode == "" {
		currencyCode = "KES"
	}
	return &MetricsService{
		pipeline: pipeline,
		cache:    cacheImpl,
		events:   newBroadcaster(),
		currency: currencyCode,
		now:      time.Now,
	}
}

// Currency returns the configured business currency code.
func (s *MetricsService) Currency() string {
	return s.currency
}

// DailySeries returns the trailing daily metric series for the tenant.
func (s *MetricsService) DailySeries(ctx context.Context, businessID string, days int) ([]domain.DailyMetric, error) {
	if businessID == "" {
		return []domain.DailyMetric{}, nil
	}
	if days <= 0 {
		days = metrics.DefaultWindowDays
	}

	if series, ok, err := s.cache.GetSeries(ctx, businessID, days); err == nil && ok {
		return series, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("metrics: cache get failed")
	}

	series, err := s.pipeline.Compute(ctx, businessID, s.now(), days)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetSeries(ctx, businessID, days, series); err != nil {
		log.Warn().Err(err).Msg("metrics: cache set failed")
	}
	return series, nil
}

// Growth builds the growth analytics summary from the series.
func (s *MetricsService) Growth(ctx context.Context, businessID string, days int) (*domain.GrowthSummary, error) {
	series, err := s.DailySeries(ctx, businessID, days)
	if err != nil {
		return nil, err
	}
	summary := metrics.Summarize(series)
	summary.Currency = s.currency
	summary.TotalRevenueDisplay = metrics.FormatMoney(summary.TotalRevenue, s.currency)
	summary.TotalExpensesDisplay = metrics.FormatMoney(summary.TotalExpenses, s.currency)
	summary.TotalNetProfitDisplay = metrics.FormatMoney(summary.TotalNetProfit, s.currency)
	return &summary, nil
}

// Refresh drops the cached series and recomputes the default window.
func (s *MetricsService) Refresh(ctx context.Context, businessID string) ([]domain.DailyMetric, error) {
	if businessID == "" {
		return []domain.DailyMetric{}, nil
	}
	if err := s.cache.Invalidate(ctx, businessID); err != nil {
		log.Warn().Err(err).Msg("metrics: cache invalidate failed")
	}
	return s.DailySeries(ctx, businessID, metrics.DefaultWindowDays)
}

// HandleChange is wired to the realtime listener. It drops the tenant's
// cached series so the next read recomputes, and notifies stream
// subscribers. Must not block: called from the listener goroutine.
func (s *MetricsService) HandleChange(kind, businessID string) {
	if businessID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx, businessID); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("metrics: invalidate on change failed")
	}
	s.events.publish(ChangeEvent{Kind: kind, BusinessID: businessID})
}

// Subscribe returns a channel of change events for the tenant plus a cancel
// function the caller must invoke when done.
func (s *MetricsService) Subscribe(businessID string) (<-chan ChangeEvent, func()) {
	return s.events.subscribe(businessID)
}
