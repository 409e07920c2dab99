// internal/cache/metrics.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chemichemie/carwash-backend/internal/config"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	metricsKeyPrefix  = "metrics:daily"
	scanBatchSize     = 100
	defaultMetricsTTL = time.Minute
)

// MetricsCache caches the computed daily series per tenant and window. The
// series is cheap to recompute, so the cache is only a request-coalescing
// layer; the change feed invalidates it.
type MetricsCache interface {
	GetSeries(ctx context.Context, businessID string, days int) ([]domain.DailyMetric, bool, error)
	SetSeries(ctx context.Context, businessID string, days int, series []domain.DailyMetric) error
	Invalidate(ctx context.Context, businessID string) error
}

type redisMetricsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopMetricsCache struct{}

func NewMetricsCache(cfg config.CacheConfig) (MetricsCache, error) {
	if !cfg.Enabled {
		return &noopMetricsCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.MetricsTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultMetricsTTL
	}

	return &redisMetricsCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopMetricsCache() MetricsCache {
	return &noopMetricsCache{}
}

func seriesKey(businessID string, days int) string {
	return fmt.Sprintf("%s:%s:%d", metricsKeyPrefix, businessID, days)
}

func (c *redisMetricsCache) GetSeries(ctx context.Context, businessID string, days int) ([]domain.DailyMetric, bool, error) {
	payload, err := c.client.Get(ctx, seriesKey(businessID, days)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var series []domain.DailyMetric
	if err := json.Unmarshal(payload, &series); err != nil {
		return nil, false, fmt.Errorf("decode metrics cache: %w", err)
	}
	return series, true, nil
}

func (c *redisMetricsCache) SetSeries(ctx context.Context, businessID string, days int, series []domain.DailyMetric) error {
	payload, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("encode metrics cache: %w", err)
	}
	if err := c.client.Set(ctx, seriesKey(businessID, days), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisMetricsCache) Invalidate(ctx context.Context, businessID string) error {
	prefix := fmt.Sprintf("%s:%s:", metricsKeyPrefix, businessID)
	return deleteKeysWithPrefix(ctx, c.client, prefix, scanBatchSize)
}

func (c *noopMetricsCache) GetSeries(context.Context, string, int) ([]domain.DailyMetric, bool, error) {
	return nil, false, nil
}

func (c *noopMetricsCache) SetSeries(context.Context, string, int, []domain.DailyMetric) error {
	return nil
}

func (c *noopMetricsCache) Invalidate(context.Context, string) error {
	return nil
}
