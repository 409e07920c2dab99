// cmd/server/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chemichemie/carwash-backend/internal/api"
	"github.com/chemichemie/carwash-backend/internal/cache"
	"github.com/chemichemie/carwash-backend/internal/config"
	"github.com/chemichemie/carwash-backend/internal/metrics"
	"github.com/chemichemie/carwash-backend/internal/realtime"
	"github.com/chemichemie/carwash-backend/internal/repository/postgres"
	"github.com/chemichemie/carwash-backend/internal/service"
	"github.com/chemichemie/carwash-backend/internal/storage"
	"github.com/chemichemie/carwash-backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Repositories
	customerRepo := postgres.NewCustomerRepo(db)
	appointmentRepo := postgres.NewAppointmentRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	serviceRepo := postgres.NewServiceRepo(db)
	expenseRepo := postgres.NewExpenseRepo(db)
	inventoryRepo := postgres.NewInventoryRepo(db)
	employeeRepo := postgres.NewEmployeeRepo(db)
	feedbackRepo := postgres.NewFeedbackRepo(db)
	recordRepo := postgres.NewServiceRecordRepo(db)
	sourceRepo := postgres.NewMetricsSourceRepo(db)

	metricsCache, err := cache.NewMetricsCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Metrics cache unavailable, running without it")
		metricsCache = cache.NewNoopMetricsCache()
	}

	var objects storage.ObjectStorage
	if cfg.Storage.Enabled {
		minioClient, err := storage.NewMinioClient(cfg.Storage)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
		objects = minioClient
	}

	// Services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pipeline := metrics.NewPipeline(sourceRepo, metrics.WithBackfiller(metrics.NewBackfiller(rng)))
	metricsService := service.NewMetricsService(pipeline, metricsCache, cfg.Metrics.CurrencyCode)
	dashboardService := service.NewDashboardService(metricsService, appointmentRepo, customerRepo, inventoryRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, customerRepo, serviceRepo, paymentRepo)
	expenseService := service.NewExpenseService(expenseRepo, objects)
	recordService := service.NewRecordService(recordRepo, serviceRepo, employeeRepo)

	// Change feed: source table writes invalidate the tenant's cached
	// series and fan out to stream subscribers.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener := realtime.NewListener(cfg.Database.DSN())
	listener.Subscribe(metricsService.HandleChange)
	go func() {
		if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Log.Error().Err(err).Msg("Realtime listener stopped")
		}
	}()

	router := api.NewRouter(&api.Services{
		Metrics:      metricsService,
		Dashboard:    dashboardService,
		Appointments: appointmentService,
		Expenses:     expenseService,
		Records:      recordService,
		Customers:    customerRepo,
		Catalog:      serviceRepo,
		Inventory:    inventoryRepo,
		Employees:    employeeRepo,
		Feedback:     feedbackRepo,
	}, cfg.Auth.JWTSecret, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
