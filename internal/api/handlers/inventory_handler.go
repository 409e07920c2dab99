// internal/api/handlers/inventory_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InventoryHandler struct {
	inventory repository.InventoryRepository
}

func NewInventoryHandler(inventory repository.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.inventory.List(c.Request.Context(), middleware.BusinessID(c), c.Query("category"))
	if err != nil {
		log.Error().Err(err).Msg("list inventory failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	rows, err := h.inventory.ListLowStock(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		log.Error().Err(err).Msg("list low stock failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch low stock items"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.inventory.GetByID(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

type inventoryRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	CurrentStock int      `json:"current_stock" binding:"gte=0"`
	MinimumStock int      `json:"minimum_stock" binding:"gte=0"`
	Unit         string   `json:"unit" binding:"required"`
	CostPerUnit  *float64 `json:"cost_per_unit"`
	Supplier     *string  `json:"supplier"`
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &domain.InventoryItem{
		BusinessID:   middleware.BusinessID(c),
		Name:         req.Name,
		Category:     req.Category,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
		Supplier:     req.Supplier,
	}
	if err := h.inventory.Create(c.Request.Context(), item); err != nil {
		log.Error().Err(err).Msg("create inventory item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &domain.InventoryItem{
		ID:           c.Param("id"),
		BusinessID:   middleware.BusinessID(c),
		Name:         req.Name,
		Category:     req.Category,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
		Supplier:     req.Supplier,
	}
	if err := h.inventory.Update(c.Request.Context(), item); err != nil {
		respondRepoError(c, err, "failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.inventory.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}

// AdjustStock applies a signed delta to the current stock. Restocks (positive
// deltas) also refresh last_restocked.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.inventory.AdjustStock(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), req.Delta)
	if err != nil {
		respondRepoError(c, err, "failed to adjust stock")
		return
	}
	c.JSON(http.StatusOK, gin.H{"adjusted_at": time.Now().UTC()})
}
