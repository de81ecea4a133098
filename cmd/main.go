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

	bookingWizardHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/booking_wizard"
	cancelBookingHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/cancel_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/get_booking"
	getCustomerProfileHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/get_customer_profile"
	getDashboardHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/get_dashboard"
	getProviderBookingsHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/get_provider_bookings"
	getProviderProfileHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/get_provider_profile"
	getSessionHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/get_session"
	listBookingsHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/list_bookings"
	listCategoriesHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/list_categories"
	listServicesHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/register"
	searchProvidersHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/search_providers"
	submitServiceHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/submit_service"
	updateBookingStatusHandler "github.com/m04kA/SMC-UrbanServices/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-UrbanServices/internal/api/middleware"
	"github.com/m04kA/SMC-UrbanServices/internal/config"
	staticCatalog "github.com/m04kA/SMC-UrbanServices/internal/infra/catalog"
	bookingRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/booking"
	"github.com/m04kA/SMC-UrbanServices/internal/infra/storage/local"
	sessionRepo "github.com/m04kA/SMC-UrbanServices/internal/infra/storage/session"
	bookingsService "github.com/m04kA/SMC-UrbanServices/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-UrbanServices/internal/service/catalog"
	dashboardService "github.com/m04kA/SMC-UrbanServices/internal/service/dashboard"
	registrationService "github.com/m04kA/SMC-UrbanServices/internal/service/registration"
	sessionService "github.com/m04kA/SMC-UrbanServices/internal/service/session"
	bookingWizardUC "github.com/m04kA/SMC-UrbanServices/internal/usecase/booking_wizard"
	getAvailableSlotsUC "github.com/m04kA/SMC-UrbanServices/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-UrbanServices/pkg/dbmetrics"
	"github.com/m04kA/SMC-UrbanServices/pkg/logger"
	"github.com/m04kA/SMC-UrbanServices/pkg/metrics"
)

// ItemStore хранилище именованных записей, общее для бронирований и сессии
type ItemStore interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}

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

	log.Info("Starting SMC-UrbanServices...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Открываем хранилище записей
	store, closeStore, err := openStore(ctx, cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer closeStore()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(store, cfg.Storage.BookingsKey)
	sessionRepository := sessionRepo.NewRepository(store, cfg.Storage.SessionKey)
	catalog := staticCatalog.New()

	if cfg.Storage.SeedDemoBookings {
		seeded, err := bookingRepository.Seed(ctx, catalog.DemoBookings())
		if err != nil {
			log.Fatal("Failed to seed demo bookings: %v", err)
		}
		if seeded {
			log.Info("Demo bookings seeded (%d records)", len(catalog.DemoBookings()))
		}
	}

	// Восстанавливаем сессию
	sessionHolder := sessionService.NewHolder(sessionRepository, metricsCollector, log)
	if err := sessionHolder.Restore(ctx); err != nil {
		log.Fatal("Failed to restore session: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, metricsCollector, log)
	catalogSvc := catalogService.NewService(catalog, log)
	dashboardSvc := dashboardService.NewService(bookingRepository, catalog, log)
	registrationSvc := registrationService.NewService(log)

	// Инициализируем use cases
	bookingWizardUseCase := bookingWizardUC.NewUseCase(
		bookingRepository,
		catalog,
		sessionHolder,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalog, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(sessionHolder, log)
	logout := logoutHandler.NewHandler(sessionHolder, log)
	getSession := getSessionHandler.NewHandler(log)
	register := registerHandler.NewHandler(registrationSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc)
	searchProviders := searchProvidersHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc)
	submitService := submitServiceHandler.NewHandler(catalogSvc, log)
	getProviderProfile := getProviderProfileHandler.NewHandler(dashboardSvc, log)
	getCustomerProfile := getCustomerProfileHandler.NewHandler(dashboardSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(dashboardSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	wizard := bookingWizardHandler.NewHandler(bookingWizardUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.HTTPMetrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identity(sessionHolder))

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// --- Сессия ---
	api.HandleFunc("/session/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/session/logout", logout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/registrations", register.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers", searchProviders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}", getProviderProfile.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/wizards", wizard.Open).Methods(http.MethodPost)
	api.HandleFunc("/wizards/{wizardId}", wizard.Get).Methods(http.MethodGet)
	api.HandleFunc("/wizards/{wizardId}", wizard.Close).Methods(http.MethodDelete)
	api.HandleFunc("/wizards/{wizardId}/service", wizard.SetService).Methods(http.MethodPut)
	api.HandleFunc("/wizards/{wizardId}/details", wizard.SetDetails).Methods(http.MethodPut)
	api.HandleFunc("/wizards/{wizardId}/payment", wizard.SetPayment).Methods(http.MethodPut)
	api.HandleFunc("/wizards/{wizardId}/next", wizard.Next).Methods(http.MethodPost)
	api.HandleFunc("/wizards/{wizardId}/back", wizard.Back).Methods(http.MethodPost)
	api.HandleFunc("/wizards/{wizardId}/submit", wizard.Submit).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют активную сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireIdentity(log))

	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", getCustomerProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/services", submitService.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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

// openStore выбирает хранилище записей по storage.driver
func openStore(
	ctx context.Context,
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (ItemStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		// Подключаемся к базе данных
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var executor local.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		store := local.NewPostgresStore(executor)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	case config.StorageDriverRedis:
		client := local.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
		store := local.NewRedisStore(client, cfg.Redis.KeyPrefix)
		if err := store.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (address=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
		return store, func() { client.Close() }, nil

	default:
		log.Warn("Using in-memory storage: bookings and session are lost on restart")
		return local.NewMemoryStore(), func() {}, nil
	}
}
