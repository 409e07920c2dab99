// internal/api/handlers/expense_handler.go
package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/domain"
	"github.com/chemichemie/carwash-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxReceiptBytes caps receipt uploads at 10 MiB.
const maxReceiptBytes = 10 << 20

type ExpenseHandler struct {
	expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	rows, err := h.expenses.List(
		c.Request.Context(),
		middleware.BusinessID(c),
		c.Query("category"),
		parsePositiveIntWithDefault(c.Query("limit"), 50),
		parseNonNegativeInt(c.Query("offset")),
	)
	if err != nil {
		log.Error().Err(err).Msg("list expenses failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	e, err := h.expenses.Get(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch expense")
		return
	}
	c.JSON(http.StatusOK, e)
}

type expenseRequest struct {
	Category    string               `json:"category" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Amount      float64              `json:"amount" binding:"required,gte=0"`
	ExpenseDate time.Time            `json:"expense_date" binding:"required"`
	Status      domain.ExpenseStatus `json:"status" binding:"omitempty,oneof=paid pending"`
	EmployeeID  *string              `json:"employee_id"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &domain.Expense{
		BusinessID:  middleware.BusinessID(c),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Status:      req.Status,
		EmployeeID:  req.EmployeeID,
	}
	if e.Status == "" {
		e.Status = domain.ExpensePending
	}
	if err := h.expenses.Create(c.Request.Context(), e); err != nil {
		log.Error().Err(err).Msg("create expense failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &domain.Expense{
		ID:          c.Param("id"),
		BusinessID:  middleware.BusinessID(c),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Status:      req.Status,
		EmployeeID:  req.EmployeeID,
	}
	if e.Status == "" {
		e.Status = domain.ExpensePending
	}
	if err := h.expenses.Update(c.Request.Context(), e); err != nil {
		respondRepoError(c, err, "failed to update expense")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenses.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadReceipt accepts a multipart form with a "receipt" file field and
// attaches the uploaded object to the expense.
func (h *ExpenseHandler) UploadReceipt(c *gin.Context) {
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receipt file is required"})
		return
	}
	if fileHeader.Size > maxReceiptBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "receipt exceeds the size limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("open receipt upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read receipt"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxReceiptBytes))
	if err != nil {
		log.Error().Err(err).Msg("read receipt upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read receipt"})
		return
	}

	url, err := h.expenses.AttachReceipt(
		c.Request.Context(),
		middleware.BusinessID(c),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		respondRepoError(c, err, "failed to attach receipt")
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt_url": url})
}
