// internal/api/handlers/analytics_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/cache"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/metrics"
	"github.com/chemichemie/carwash-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedReader struct{}

func (fixedReader) Appointments(ctx context.Context, businessID string) ([]domain.Appointment, error) {
	return []domain.Appointment{
		{CustomerID: "c1", Status: domain.AppointmentCompleted, TotalAmount: 750, ScheduledAt: time.Now()},
	}, nil
}

func (fixedReader) Expenses(ctx context.Context, businessID string) ([]domain.Expense, error) {
	return nil, nil
}

func (fixedReader) Payments(ctx context.Context, businessID string) ([]domain.Payment, error) {
	return nil, nil
}

func (fixedReader) Feedback(ctx context.Context, businessID string) ([]domain.Feedback, error) {
	return nil, nil
}

func newAnalyticsRouter(businessID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	pipeline := metrics.NewPipeline(fixedReader{},
		metrics.WithBackfiller(metrics.NewBackfiller(rand.New(rand.NewSource(1)))))
	metricsService := service.NewMetricsService(pipeline, cache.NewNoopMetricsCache(), "KES")
	h := NewAnalyticsHandler(metricsService)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.BusinessIDKey, businessID)
	})
	r.GET("/analytics/daily", h.GetDailyMetrics)
	r.GET("/analytics/growth", h.GetGrowth)
	r.GET("/analytics/stream", h.Stream)
	r.POST("/analytics/refresh", h.Refresh)
	return r
}

func TestGetDailyMetricsDefaultWindow(t *testing.T) {
	r := newAnalyticsRouter("biz-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/daily", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var series []domain.DailyMetric
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Len(t, series, metrics.DefaultWindowDays)

	today := series[len(series)-1]
	assert.Equal(t, 750.0, today.Revenue)
	assert.Equal(t, 1, today.WashCount)
}

func TestGetDailyMetricsCustomWindow(t *testing.T) {
	r := newAnalyticsRouter("biz-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/daily?days=7", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var series []domain.DailyMetric
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Len(t, series, 7)
}

func TestGetDailyMetricsIgnoresBadDaysParam(t *testing.T) {
	r := newAnalyticsRouter("biz-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/daily?days=banana", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var series []domain.DailyMetric
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Len(t, series, metrics.DefaultWindowDays)
}

func TestGetDailyMetricsNoBusiness(t *testing.T) {
	r := newAnalyticsRouter("")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/daily", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetGrowth(t *testing.T) {
	r := newAnalyticsRouter("biz-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/growth?days=7", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var summary domain.GrowthSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 7, summary.WindowDays)
	assert.Equal(t, 750.0, summary.TotalRevenue)
	assert.Equal(t, "KES 750.00", summary.TotalRevenueDisplay)
	assert.Len(t, summary.Points, 7)
}

func TestRefresh(t *testing.T) {
	r := newAnalyticsRouter("biz-1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/analytics/refresh", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var series []domain.DailyMetric
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Len(t, series, metrics.DefaultWindowDays)
}

func TestStreamRequiresBusiness(t *testing.T) {
	r := newAnalyticsRouter("")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/stream", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
