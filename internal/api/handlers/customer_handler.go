// internal/api/handlers/customer_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CustomerHandler struct {
	customers repository.CustomerRepository
}

func NewCustomerHandler(customers repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(c *gin.Context) {
	limit := parsePositiveIntWithDefault(c.Query("limit"), 50)
	offset := parseNonNegativeInt(c.Query("offset"))

	rows, err := h.customers.List(c.Request.Context(), middleware.BusinessID(c), c.Query("search"), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("list customers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customers.GetByID(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

type customerRequest struct {
	Name          string           `json:"name" binding:"required"`
	Email         *string          `json:"email"`
	Phone         *string          `json:"phone"`
	LoyaltyPoints int              `json:"loyalty_points"`
	Vehicles      []vehicleRequest `json:"vehicles"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := &domain.Customer{
		BusinessID:    middleware.BusinessID(c),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		LoyaltyPoints: req.LoyaltyPoints,
	}
	for _, v := range req.Vehicles {
		customer.Vehicles = append(customer.Vehicles, domain.Vehicle{
			Make:        v.Make,
			Model:       v.Model,
			Year:        v.Year,
			PlateNumber: v.PlateNumber,
			Color:       v.Color,
		})
	}
	if err := h.customers.Create(c.Request.Context(), customer); err != nil {
		log.Error().Err(err).Msg("create customer failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := &domain.Customer{
		ID:            c.Param("id"),
		BusinessID:    middleware.BusinessID(c),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		LoyaltyPoints: req.LoyaltyPoints,
	}
	if err := h.customers.Update(c.Request.Context(), customer); err != nil {
		respondRepoError(c, err, "failed to update customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

type vehicleRequest struct {
	Make        string  `json:"make" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        *int    `json:"year"`
	PlateNumber *string `json:"plate_number"`
	Color       *string `json:"color"`
}

func (h *CustomerHandler) AddVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle := &domain.Vehicle{
		CustomerID:  c.Param("id"),
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PlateNumber: req.PlateNumber,
		Color:       req.Color,
	}
	if err := h.customers.AddVehicle(c.Request.Context(), middleware.BusinessID(c), vehicle); err != nil {
		respondRepoError(c, err, "failed to add vehicle")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *CustomerHandler) RemoveVehicle(c *gin.Context) {
	err := h.customers.RemoveVehicle(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), c.Param("vehicle_id"))
	if err != nil {
		respondRepoError(c, err, "failed to remove vehicle")
		return
	}
	c.Status(http.StatusNoContent)
}

// respondRepoError maps repository errors to HTTP responses.
func respondRepoError(c *gin.Context, err error, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	log.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
