// internal/api/handlers/employee_handler.go
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

type EmployeeHandler struct {
	employees repository.EmployeeRepository
}

func NewEmployeeHandler(employees repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	rows, err := h.employees.List(c.Request.Context(), middleware.BusinessID(c), activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("list employees failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employees"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	e, err := h.employees.GetByID(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "failed to fetch employee")
		return
	}
	c.JSON(http.StatusOK, e)
}

type employeeRequest struct {
	Name     string     `json:"name" binding:"required"`
	Email    *string    `json:"email" binding:"omitempty,email"`
	Phone    *string    `json:"phone"`
	Position string     `json:"position" binding:"required"`
	Salary   *float64   `json:"salary"`
	HireDate *time.Time `json:"hire_date"`
	IsActive *bool      `json:"is_active"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &domain.Employee{
		BusinessID: middleware.BusinessID(c),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   time.Now(),
		IsActive:   true,
	}
	if req.HireDate != nil {
		e.HireDate = *req.HireDate
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	if err := h.employees.Create(c.Request.Context(), e); err != nil {
		log.Error().Err(err).Msg("create employee failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &domain.Employee{
		ID:         c.Param("id"),
		BusinessID: middleware.BusinessID(c),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   time.Now(),
		IsActive:   true,
	}
	if req.HireDate != nil {
		e.HireDate = *req.HireDate
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	if err := h.employees.Update(c.Request.Context(), e); err != nil {
		respondRepoError(c, err, "failed to update employee")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employees.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondRepoError(c, err, "failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}
