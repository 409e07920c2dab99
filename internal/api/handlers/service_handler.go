// internal/api/handlers/service_handler.go
package handlers

import (
	"net/http"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ServiceHandler serves the wash package catalog.
type ServiceHandler struct {
	catalog repository.ServiceRepository
}

func NewServiceHandler(catalog repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

func (h *ServiceHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	rows, err := h.catalog.List(c.Request.Context(), middleware.BusinessID(c), activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("list services failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.catalog.GetByID(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

type serviceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	IsActive    *bool   `json:"is_active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := &domain.Service{
		BusinessID:  middleware.BusinessID(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if err := h.catalog.Create(c.Request.Context(), svc); err != nil {
		log.Error().Err(err).Msg("create service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := &domain.Service{
		ID:          c.Param("id"),
		BusinessID:  middleware.BusinessID(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if err := h.catalog.Update(c.Request.Context(), svc); err != nil {
		respondRepoError(c, err, "failed to update service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}
