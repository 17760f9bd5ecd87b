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

	cancelBookingHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/confirm_booking"
	createDraftHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/create_draft"
	deleteDraftHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/delete_draft"
	getCalendarHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/get_calendar"
	getDraftHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/get_draft"
	getServicesHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/get_services"
	getStaffHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/get_staff"
	getTimeSlotsHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/get_time_slots"
	logoutHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/logout"
	updateSelectionHandler "github.com/m04kA/SLN-BookingFlow/internal/api/handlers/update_selection"
	"github.com/m04kA/SLN-BookingFlow/internal/api/middleware"
	"github.com/m04kA/SLN-BookingFlow/internal/config"
	draftRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/draft"
	sessionRepo "github.com/m04kA/SLN-BookingFlow/internal/infra/storage/session"
	salonAPIClient "github.com/m04kA/SLN-BookingFlow/internal/integrations/salonapi"
	availabilityService "github.com/m04kA/SLN-BookingFlow/internal/service/availability"
	bookingsService "github.com/m04kA/SLN-BookingFlow/internal/service/bookings"
	catalogService "github.com/m04kA/SLN-BookingFlow/internal/service/catalog"
	draftsService "github.com/m04kA/SLN-BookingFlow/internal/service/drafts"
	sessionService "github.com/m04kA/SLN-BookingFlow/internal/service/session"
	confirmBookingUC "github.com/m04kA/SLN-BookingFlow/internal/usecase/confirm_booking"
	getCalendarUC "github.com/m04kA/SLN-BookingFlow/internal/usecase/get_calendar"
	getTimeSlotsUC "github.com/m04kA/SLN-BookingFlow/internal/usecase/get_time_slots"
	"github.com/m04kA/SLN-BookingFlow/pkg/dbmetrics"
	"github.com/m04kA/SLN-BookingFlow/pkg/logger"
	"github.com/m04kA/SLN-BookingFlow/pkg/metrics"
	"github.com/m04kA/SLN-BookingFlow/pkg/simpletxmanager"
	"github.com/m04kA/SLN-BookingFlow/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SLN-BookingFlow...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент API салона
	salonClient := salonAPIClient.NewClient(
		cfg.SalonAPI.URL,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Salon API client initialized (url=%s, timeout=%ds)", cfg.SalonAPI.URL, cfg.SalonAPI.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		draftRepository   *draftRepo.Repository
		sessionRepository *sessionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		draftRepository = draftRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	horizonMonth := time.Month(cfg.Booking.HorizonMonth)
	draftTTL := time.Duration(cfg.Booking.DraftTTLHours) * time.Hour

	// Инициализируем сервисы
	resolver := availabilityService.NewResolver(salonClient, log)
	sessionSvc := sessionService.NewService(sessionRepository, log)
	catalogSvc := catalogService.NewService(salonClient, log)
	bookingSvc := bookingsService.NewService(salonClient, log)
	draftSvc := draftsService.NewService(
		draftRepository,
		salonClient,
		txMgr,
		resolver,
		horizonMonth,
		log,
	)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(draftRepository, horizonMonth, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(draftRepository, resolver, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		draftRepository,
		salonClient,
		sessionSvc,
		resolver,
		log,
	)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(draftSvc, sessionSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(draftSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getStaff := getStaffHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix. Bearer токен опционален на всех маршрутах:
	// решение об авторизации принимается на шаге подтверждения
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.BearerToken)

	// --- Черновики бронирования ---
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", deleteDraft.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/drafts/{draftId}/selection", updateSelection.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/drafts/{draftId}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Справочники филиала ---
	api.HandleFunc("/branches/{branchId}/staff", getStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}/services", getServices.Handle).Methods(http.MethodGet)

	// --- Созданные бронирования ---
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Сессия ---
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// Фоновая очистка брошенных черновиков
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				if _, err := draftSvc.CleanupExpired(cleanupCtx, draftTTL); err != nil {
					log.Error("Draft cleanup failed: %v", err)
				}
			}
		}
	}()
	log.Info("Draft cleanup started (ttl=%s)", draftTTL)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	cancelCleanup()

	// Останавливаем сбор метрик connection pool
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

	log.Info("Server stopped gracefully")
}
