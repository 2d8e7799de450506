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

	cancelBookingHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/create_booking"
	createServiceHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/delete_service"
	getAdminBookingsHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/get_admin_bookings"
	getAdminStatsHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/get_admin_stats"
	getAvailableSlotsHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/get_booking"
	getServiceHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/get_service"
	getUserBookingsHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/get_user_bookings"
	listServicesHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/list_services"
	updateBookingHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/update_booking"
	updateServiceHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/update_service"
	updateStatusHandler "github.com/herlindaapr/beautybook-service/internal/api/handlers/update_status"
	"github.com/herlindaapr/beautybook-service/internal/api/middleware"
	"github.com/herlindaapr/beautybook-service/internal/config"
	"github.com/herlindaapr/beautybook-service/internal/domain"
	bookingRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/booking"
	serviceRepo "github.com/herlindaapr/beautybook-service/internal/infra/storage/service"
	identityClient "github.com/herlindaapr/beautybook-service/internal/integrations/identity"
	bookingsService "github.com/herlindaapr/beautybook-service/internal/service/bookings"
	catalogService "github.com/herlindaapr/beautybook-service/internal/service/catalog"
	createBookingUC "github.com/herlindaapr/beautybook-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/herlindaapr/beautybook-service/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/herlindaapr/beautybook-service/internal/usecase/reschedule_booking"
	"github.com/herlindaapr/beautybook-service/pkg/dbmetrics"
	"github.com/herlindaapr/beautybook-service/pkg/logger"
	"github.com/herlindaapr/beautybook-service/pkg/metrics"
	"github.com/herlindaapr/beautybook-service/pkg/simpletxmanager"
	"github.com/herlindaapr/beautybook-service/pkg/txmanager"
	"github.com/herlindaapr/beautybook-service/pkg/types"
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

	log.Info("Starting BeautyBook-Service...")
	log.Info("Configuration loaded from config.toml")

	// Рабочие часы студии (проверены при загрузке конфигурации)
	hours := domain.BusinessHours{
		OpenTime:      types.TimeString(cfg.BusinessHours.OpenTime),
		CloseTime:     types.TimeString(cfg.BusinessHours.CloseTime),
		BufferMinutes: cfg.BusinessHours.BufferMinutes,
	}
	log.Info("Business hours: %s-%s, buffer=%dm", hours.OpenTime, hours.CloseTime, hours.BufferMinutes)

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

	// Инициализируем клиент identity-сервиса
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s, timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		serviceRepository *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		identity,
		txMgr,
		hours,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		txMgr,
		hours,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		hours,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	getAdminStats := getAdminStatsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Доступное время для записи
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Все бронирования с фильтрацией
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)

	// Workflow статусов
	admin.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Сводка для панели администратора
	admin.HandleFunc("/stats", getAdminStats.Handle).Methods(http.MethodGet)

	// Управление каталогом услуг
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

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
