// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/chemichemie/carwash-backend/internal/api/handlers"
	"github.com/chemichemie/carwash-backend/internal/api/middleware"
	"github.com/chemichemie/carwash-backend/internal/repository"
	"github.com/chemichemie/carwash-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles the dependencies the router wires into handlers.
type Services struct {
	Metrics      *service.MetricsService
	Dashboard    *service.DashboardService
	Appointments *service.AppointmentService
	Expenses     *service.ExpenseService
	Records      *service.RecordService
	Customers    repository.CustomerRepository
	Catalog      repository.ServiceRepository
	Inventory    repository.InventoryRepository
	Employees    repository.EmployeeRepository
	Feedback     repository.FeedbackRepository
}

func NewRouter(services *Services, jwtSecret string, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	apiGroup.Use(middleware.Auth(jwtSecret))

	if services == nil {
		return router
	}

	if services.Metrics != nil {
		analyticsHandler := handlers.NewAnalyticsHandler(services.Metrics)
		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.GET("/daily", analyticsHandler.GetDailyMetrics)
			analyticsGroup.GET("/growth", analyticsHandler.GetGrowth)
			analyticsGroup.GET("/stream", analyticsHandler.Stream)
			analyticsGroup.POST("/refresh", analyticsHandler.Refresh)
		}
	}

	if services.Dashboard != nil {
		dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
		apiGroup.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	if services.Customers != nil {
		customerHandler := handlers.NewCustomerHandler(services.Customers)
		customerGroup := apiGroup.Group("/customers")
		{
			customerGroup.GET("", customerHandler.List)
			customerGroup.POST("", customerHandler.Create)
			customerGroup.GET("/:id", customerHandler.Get)
			customerGroup.PUT("/:id", customerHandler.Update)
			customerGroup.DELETE("/:id", customerHandler.Delete)
			customerGroup.POST("/:id/vehicles", customerHandler.AddVehicle)
			customerGroup.DELETE("/:id/vehicles/:vehicle_id", customerHandler.RemoveVehicle)
		}
	}

	if services.Catalog != nil {
		serviceHandler := handlers.NewServiceHandler(services.Catalog)
		serviceGroup := apiGroup.Group("/services")
		{
			serviceGroup.GET("", serviceHandler.List)
			serviceGroup.POST("", serviceHandler.Create)
			serviceGroup.GET("/:id", serviceHandler.Get)
			serviceGroup.PUT("/:id", serviceHandler.Update)
			serviceGroup.DELETE("/:id", serviceHandler.Delete)
		}
	}

	if services.Appointments != nil {
		appointmentHandler := handlers.NewAppointmentHandler(services.Appointments)
		appointmentGroup := apiGroup.Group("/appointments")
		{
			appointmentGroup.GET("", appointmentHandler.List)
			appointmentGroup.POST("", appointmentHandler.Create)
			appointmentGroup.GET("/:id", appointmentHandler.Get)
			appointmentGroup.PUT("/:id", appointmentHandler.Update)
			appointmentGroup.DELETE("/:id", appointmentHandler.Delete)
			appointmentGroup.PATCH("/:id/status", appointmentHandler.UpdateStatus)
			appointmentGroup.GET("/:id/payments", appointmentHandler.ListPayments)
			appointmentGroup.POST("/:id/payments", appointmentHandler.CreatePayment)
		}
		apiGroup.GET("/payments", appointmentHandler.ListAllPayments)
		apiGroup.PATCH("/payments/:payment_id/status", appointmentHandler.UpdatePaymentStatus)
	}

	if services.Expenses != nil {
		expenseHandler := handlers.NewExpenseHandler(services.Expenses)
		expenseGroup := apiGroup.Group("/expenses")
		{
			expenseGroup.GET("", expenseHandler.List)
			expenseGroup.POST("", expenseHandler.Create)
			expenseGroup.GET("/:id", expenseHandler.Get)
			expenseGroup.PUT("/:id", expenseHandler.Update)
			expenseGroup.DELETE("/:id", expenseHandler.Delete)
			expenseGroup.POST("/:id/receipt", expenseHandler.UploadReceipt)
		}
	}

	if services.Records != nil {
		recordHandler := handlers.NewRecordHandler(services.Records)
		recordGroup := apiGroup.Group("/service_records")
		{
			recordGroup.GET("", recordHandler.List)
			recordGroup.POST("", recordHandler.Create)
			recordGroup.GET("/:id", recordHandler.Get)
			recordGroup.DELETE("/:id", recordHandler.Delete)
		}
	}

	if services.Inventory != nil {
		inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
		inventoryGroup := apiGroup.Group("/inventory")
		{
			inventoryGroup.GET("", inventoryHandler.List)
			inventoryGroup.GET("/low_stock", inventoryHandler.ListLowStock)
			inventoryGroup.POST("", inventoryHandler.Create)
			inventoryGroup.GET("/:id", inventoryHandler.Get)
			inventoryGroup.PUT("/:id", inventoryHandler.Update)
			inventoryGroup.DELETE("/:id", inventoryHandler.Delete)
			inventoryGroup.PATCH("/:id/stock", inventoryHandler.AdjustStock)
		}
	}

	if services.Employees != nil {
		employeeHandler := handlers.NewEmployeeHandler(services.Employees)
		employeeGroup := apiGroup.Group("/employees")
		{
			employeeGroup.GET("", employeeHandler.List)
			employeeGroup.POST("", middleware.RequireRole("owner"), employeeHandler.Create)
			employeeGroup.GET("/:id", employeeHandler.Get)
			employeeGroup.PUT("/:id", employeeHandler.Update)
			employeeGroup.DELETE("/:id", employeeHandler.Delete)
		}
	}

	if services.Feedback != nil {
		feedbackHandler := handlers.NewFeedbackHandler(services.Feedback)
		feedbackGroup := apiGroup.Group("/feedback")
		{
			feedbackGroup.GET("", feedbackHandler.List)
			feedbackGroup.POST("", feedbackHandler.Create)
			feedbackGroup.DELETE("/:id", feedbackHandler.Delete)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
