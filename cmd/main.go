package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	closeHearingHandler "github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers/close_hearing"
	getHearingHandler "github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers/get_hearing"
	getRequestHearingsHandler "github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers/get_request_hearings"
	getWeeklyAvailabilityHandler "github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers/get_weekly_availability"
	rescheduleHearingHandler "github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers/reschedule_hearing"
	scheduleHearingHandler "github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/handlers/schedule_hearing"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/api/middleware"
	"github.com/Aytsuu/CIUDAD-APP-sub041/internal/config"
	scheduleRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/schedule"
	serviceRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/service"
	slotRepo "github.com/Aytsuu/CIUDAD-APP-sub041/internal/infra/storage/slot"
	caseServiceClient "github.com/Aytsuu/CIUDAD-APP-sub041/internal/integrations/caseservice"
	allocatorService "github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/allocator"
	hearingsService "github.com/Aytsuu/CIUDAD-APP-sub041/internal/service/hearings"
	closeHearingUC "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/close_hearing"
	getWeeklyAvailabilityUC "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/get_weekly_availability"
	rescheduleHearingUC "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/reschedule_hearing"
	scheduleHearingUC "github.com/Aytsuu/CIUDAD-APP-sub041/internal/usecase/schedule_hearing"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/dbmetrics"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/logger"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/metrics"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/simpletxmanager"
	"github.com/Aytsuu/CIUDAD-APP-sub041/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting summon scheduling service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	caseClient := caseServiceClient.NewClient(
		cfg.CaseService.URL,
		time.Duration(cfg.CaseService.Timeout)*time.Second,
		log,
	)
	log.Info("Case service client initialized (url=%s timeout=%ds)",
		cfg.CaseService.URL, cfg.CaseService.Timeout)

	var (
		slotRepository     *slotRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		serviceRepository  *serviceRepo.Repository
	)

	// Transaction manager interface shared by the allocator and use cases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	allocator := allocatorService.NewService(
		slotRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	hearingsSvc := hearingsService.NewService(
		scheduleRepository,
		caseClient,
		log,
	)

	scheduleHearingUseCase := scheduleHearingUC.NewUseCase(
		allocator,
		scheduleRepository,
		serviceRepository,
		slotRepository,
		caseClient,
		log,
	)
	rescheduleHearingUseCase := rescheduleHearingUC.NewUseCase(
		allocator,
		scheduleRepository,
		serviceRepository,
		slotRepository,
		txMgr,
		log,
	)
	closeHearingUseCase := closeHearingUC.NewUseCase(
		allocator,
		scheduleRepository,
		caseClient,
		log,
	)
	getWeeklyAvailabilityUseCase := getWeeklyAvailabilityUC.NewUseCase(
		slotRepository,
		serviceRepository,
		log,
	)

	scheduleHearing := scheduleHearingHandler.NewHandler(scheduleHearingUseCase, log)
	rescheduleHearing := rescheduleHearingHandler.NewHandler(rescheduleHearingUseCase, log)
	closeHearing := closeHearingHandler.NewHandler(closeHearingUseCase, log)
	getWeeklyAvailability := getWeeklyAvailabilityHandler.NewHandler(getWeeklyAvailabilityUseCase, log)
	getHearing := getHearingHandler.NewHandler(hearingsSvc, log)
	getRequestHearings := getRequestHearingsHandler.NewHandler(hearingsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/availability", getWeeklyAvailability.Handle).Methods(http.MethodGet)

	// Protected routes, staff identity required
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/hearings", scheduleHearing.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/hearings/{scheduleId}", getHearing.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hearings/{scheduleId}/reschedule", rescheduleHearing.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/hearings/{scheduleId}/close", closeHearing.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requests/{requestId}/hearings", getRequestHearings.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
