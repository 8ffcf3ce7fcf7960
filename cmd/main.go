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

	autoSelectSlotHandler "github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers/auto_select_slot"
	bookSlotHandler "github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers/book_slot"
	checkServiceabilityHandler "github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers/check_serviceability"
	getAvailableSlotsHandler "github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers/get_booking"
	getOrderBookingHandler "github.com/freshkart/FK-DeliverySlotsService/internal/api/handlers/get_order_booking"
	"github.com/freshkart/FK-DeliverySlotsService/internal/api/middleware"
	"github.com/freshkart/FK-DeliverySlotsService/internal/config"
	availabilityRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/availability"
	bookingRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/booking"
	slotConfigRepo "github.com/freshkart/FK-DeliverySlotsService/internal/infra/storage/slotconfig"
	bookingsService "github.com/freshkart/FK-DeliverySlotsService/internal/service/bookings"
	autoSelectSlotUC "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/auto_select_slot"
	bookSlotUC "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/book_slot"
	checkServiceabilityUC "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/check_serviceability"
	getAvailableSlotsUC "github.com/freshkart/FK-DeliverySlotsService/internal/usecase/get_available_slots"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/dbmetrics"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/logger"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/metrics"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/simpletxmanager"
	"github.com/freshkart/FK-DeliverySlotsService/pkg/txmanager"
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

	log.Info("Starting FK-DeliverySlotsService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		configRepository       *slotConfigRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
	)

	// Интерфейс transaction manager (используется в use case бронирования)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		configRepository = slotConfigRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		configRepository = slotConfigRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		configRepository,
		availabilityRepository,
		log,
	)

	autoSelectSlotUseCase := autoSelectSlotUC.NewUseCase(
		getAvailableSlotsUseCase,
		log,
	)

	bookSlotUseCase := bookSlotUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		log,
	)

	checkServiceabilityUseCase := checkServiceabilityUC.NewUseCase(
		configRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	autoSelectSlot := autoSelectSlotHandler.NewHandler(autoSelectSlotUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	checkServiceability := checkServiceabilityHandler.NewHandler(checkServiceabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getOrderBooking := getOrderBookingHandler.NewHandler(bookingSvc, log)

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

	// Проверка обслуживаемости пинкода
	api.HandleFunc("/pincodes/{pincode}/serviceability",
		checkServiceability.Handle).Methods(http.MethodGet)

	// Доступные слоты доставки для пинкода
	api.HandleFunc("/pincodes/{pincode}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Автоматический подбор лучшего слота
	api.HandleFunc("/pincodes/{pincode}/best-slot",
		autoSelectSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Бронирование слота для заказа
	protected.HandleFunc("/bookings", bookSlot.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Получение бронирования по заказу
	protected.HandleFunc("/orders/{orderId}/booking", getOrderBooking.Handle).Methods(http.MethodGet)

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
