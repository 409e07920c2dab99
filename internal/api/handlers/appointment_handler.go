// internal/api/handlers/appointment_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/chemichemie/carwash-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AppointmentHandler struct {
	appointments *service.AppointmentService
}

func NewAppointmentHandler(appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	filter := repository.AppointmentFilter{
		Status:     domain.AppointmentStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		Limit:      parsePositiveIntWithDefault(c.Query("limit"), 50),
		Offset:     parseNonNegativeInt(c.Query("offset")),
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		filter.To = &to
	}

	rows, err := h.appointments.List(c.Request.Context(), middleware.BusinessID(c), filter)
	if err != nil {
		log.Error().Err(err).Msg("list appointments failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	a, err := h.appointments.Get(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch appointment")
		return
	}
	c.JSON(http.StatusOK, a)
}

type appointmentRequest struct {
	CustomerID  string    `json:"customer_id" binding:"required"`
	ServiceID   string    `json:"service_id" binding:"required"`
	VehicleID   *string   `json:"vehicle_id"`
	ScheduledAt time.Time `json:"scheduled_date" binding:"required"`
	TotalAmount float64   `json:"total_amount"`
	Notes       *string   `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Appointment{
		BusinessID:  middleware.BusinessID(c),
		CustomerID:  req.CustomerID,
		ServiceID:   req.ServiceID,
		VehicleID:   req.VehicleID,
		ScheduledAt: req.ScheduledAt,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}
	if err := h.appointments.Book(c.Request.Context(), a); err != nil {
		respondRepoError(c, err, "failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := &domain.Appointment{
		ID:          c.Param("id"),
		BusinessID:  middleware.BusinessID(c),
		CustomerID:  req.CustomerID,
		ServiceID:   req.ServiceID,
		VehicleID:   req.VehicleID,
		ScheduledAt: req.ScheduledAt,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}
	// Status changes go through the dedicated endpoint.
	existing, err := h.appointments.Get(c.Request.Context(), a.BusinessID, a.ID)
	if err != nil {
		respondRepoError(c, err, "failed to update appointment")
		return
	}
	a.Status = existing.Status

	if err := h.appointments.Update(c.Request.Context(), a); err != nil {
		respondRepoError(c, err, "failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.appointments.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete appointment")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status domain.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.appointments.SetStatus(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), req.Status)
	if err != nil {
		respondRepoError(c, err, "failed to update status")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAllPayments returns every payment recorded for the business.
func (h *AppointmentHandler) ListAllPayments(c *gin.Context) {
	rows, err := h.appointments.AllPayments(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		log.Error().Err(err).Msg("list payments failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AppointmentHandler) ListPayments(c *gin.Context) {
	rows, err := h.appointments.Payments(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, rows)
}

type paymentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"payment_method" binding:"required,oneof=cash card mobile bank"`
	TransactionID *string `json:"transaction_id"`
}

func (h *AppointmentHandler) CreatePayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := &domain.Payment{
		AppointmentID: c.Param("id"),
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        domain.PaymentCompleted,
		TransactionID: req.TransactionID,
	}
	if err := h.appointments.RecordPayment(c.Request.Context(), middleware.BusinessID(c), p); err != nil {
		respondRepoError(c, err, "failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *AppointmentHandler) UpdatePaymentStatus(c *gin.Context) {
	var req struct {
		Status domain.PaymentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.appointments.SetPaymentStatus(c.Request.Context(), middleware.BusinessID(c), c.Param("payment_id"), req.Status)
	if err != nil {
		respondRepoError(c, err, "failed to update payment status")
		return
	}
	c.Status(http.StatusNoContent)
}
