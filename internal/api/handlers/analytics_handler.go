// internal/api/handlers/analytics_handler.go
package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	metrics *service.MetricsService
}

func NewAnalyticsHandler(metrics *service.MetricsService) *AnalyticsHandler {
	return &AnalyticsHandler{metrics: metrics}
}

// GetDailyMetrics returns the trailing daily series for the caller's
// business. An unauthenticated-but-unattached profile gets an empty series.
func (h *AnalyticsHandler) GetDailyMetrics(c *gin.Context) {
	days := parsePositiveIntWithDefault(c.Query("days"), 0)

	series, err := h.metrics.DailySeries(c.Request.Context(), middleware.BusinessID(c), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute metrics"})
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetGrowth returns the growth analytics summary over the window.
func (h *AnalyticsHandler) GetGrowth(c *gin.Context) {
	days := parsePositiveIntWithDefault(c.Query("days"), 0)

	summary, err := h.metrics.Growth(c.Request.Context(), middleware.BusinessID(c), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute growth summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Refresh drops the cached series and recomputes it.
func (h *AnalyticsHandler) Refresh(c *gin.Context) {
	series, err := h.metrics.Refresh(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh metrics"})
		return
	}
	c.JSON(http.StatusOK, series)
}

// Stream pushes a "metrics" SSE event whenever the change feed fires for
// the caller's business, so dashboards can refetch without polling.
func (h *AnalyticsHandler) Stream(c *gin.Context) {
	businessID := middleware.BusinessID(c)
	if businessID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "no business attached to session"})
		return
	}

	events, cancel := h.metrics.Subscribe(businessID)
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("metrics", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func parsePositiveIntWithDefault(value string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func parseNonNegativeInt(value string) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v >= 0 {
		return v
	}
	return 0
}
