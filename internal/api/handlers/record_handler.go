// internal/api/handlers/record_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RecordHandler serves the walk-in wash log.
type RecordHandler struct {
	records *service.RecordService
}

func NewRecordHandler(records *service.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

func (h *RecordHandler) List(c *gin.Context) {
	rows, err := h.records.List(
		c.Request.Context(),
		middleware.BusinessID(c),
		parsePositiveIntWithDefault(c.Query("limit"), 50),
		parseNonNegativeInt(c.Query("offset")),
	)
	if err != nil {
		log.Error().Err(err).Msg("list service records failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service records"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *RecordHandler) Get(c *gin.Context) {
	rec, err := h.records.Get(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch service record")
		return
	}
	c.JSON(http.StatusOK, rec)
}

type recordRequest struct {
	ServiceID       string     `json:"service_id" binding:"required"`
	EmployeeID      string     `json:"employee_id" binding:"required"`
	VehiclePlate    string     `json:"vehicle_plate" binding:"required"`
	VehicleType     string     `json:"vehicle_type" binding:"required"`
	PaymentMethod   string     `json:"payment_method" binding:"required,oneof=cash card mobile bank"`
	ServicePrice    float64    `json:"service_price" binding:"omitempty,gt=0"`
	ServiceDuration int        `json:"service_duration" binding:"omitempty,gt=0"`
	CompletedAt     *time.Time `json:"completed_at"`
}

func (h *RecordHandler) Create(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := &domain.ServiceRecord{
		BusinessID:      middleware.BusinessID(c),
		ServiceID:       req.ServiceID,
		EmployeeID:      req.EmployeeID,
		VehiclePlate:    req.VehiclePlate,
		VehicleType:     req.VehicleType,
		PaymentMethod:   req.PaymentMethod,
		ServicePrice:    req.ServicePrice,
		ServiceDuration: req.ServiceDuration,
	}
	if req.CompletedAt != nil {
		rec.CompletedAt = *req.CompletedAt
	}
	if err := h.records.Log(c.Request.Context(), rec); err != nil {
		respondRepoError(c, err, "failed to create service record")
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.records.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete service record")
		return
	}
	c.Status(http.StatusNoContent)
}
