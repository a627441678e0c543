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

	cancelBookingHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/get_booking"
	getStudioHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/get_studio"
	getStudioPackageHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/get_studio_package"
	getStudioPackagesHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/get_studio_packages"
	healthHandler "github.com/m04kA/SMC-StudioBookingService/internal/api/handlers/health"
	"github.com/m04kA/SMC-StudioBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBookingService/internal/config"
	catalogCache "github.com/m04kA/SMC-StudioBookingService/internal/infra/cache/catalog"
	"github.com/m04kA/SMC-StudioBookingService/internal/infra/migrations"
	appointmentRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/customer"
	slotRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/slot"
	studioRepo "github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/studio"
	"github.com/m04kA/SMC-StudioBookingService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-StudioBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-StudioBookingService/internal/service/catalog"
	cancelBookingUC "github.com/m04kA/SMC-StudioBookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-StudioBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
	"github.com/m04kA/SMC-StudioBookingService/pkg/metrics"
	"github.com/m04kA/SMC-StudioBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-StudioBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopBackgroundCh := make(chan struct{})

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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Оборачиваем БД: с метриками запросов и пула или без
	var wrappedDB *dbmetrics.DB
	if metricsCollector != nil {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopBackgroundCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	studioRepository := studioRepo.NewRepository(wrappedDB)
	packageRepository := catalogRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кеш публичного каталога (если включен)
	var cache catalogService.Cache
	if cfg.Cache.Enabled {
		redisClient, err := catalogCache.NewClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		catalog := catalogCache.New(redisClient, cfg.Cache.TTL())
		defer catalog.Close()
		cache = catalog
		log.Info("Catalog cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Cache.TTL())
	}

	// Транспорт уведомлений
	publisher, err := newPublisher(cfg.Notifications, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to init notification transport: %v", err)
	}
	bookingNotifier := notifier.New(publisher, log)
	defer bookingNotifier.Close()
	log.Info("Booking notifications via %s", cfg.Notifications.Transport)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(studioRepository, packageRepository, cache, log)
	bookingSvc := bookingsService.NewService(appointmentRepository, customerRepository, packageRepository, slotRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		studioRepository,
		packageRepository,
		slotRepository,
		log,
		getAvailableSlotsUC.Options{
			DefaultWindowDays:   cfg.Booking.DefaultWindowDays,
			EnforceNoticeWindow: cfg.Booking.EnforceNoticeWindow,
		},
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		packageRepository,
		slotRepository,
		studioRepository,
		customerRepository,
		appointmentRepository,
		bookingNotifier,
		txMgr,
		metricsCollector,
		log,
		createBookingUC.Options{
			EnforceNoticeWindow: cfg.Booking.EnforceNoticeWindow,
			NotifyTimeout:       cfg.Booking.NotifyTimeout(),
		},
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		slotRepository,
		bookingNotifier,
		txMgr,
		metricsCollector,
		log,
		cfg.Booking.NotifyTimeout(),
	)

	// Инициализируем handlers
	getStudio := getStudioHandler.NewHandler(catalogSvc, log)
	getStudioPackages := getStudioPackagesHandler.NewHandler(catalogSvc, log)
	getStudioPackage := getStudioPackageHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	public := r.PathPrefix("/public").Subrouter()

	// ============================================================
	// КАТАЛОГ И ДОСТУПНОСТЬ (только чтение)
	// ============================================================

	public.HandleFunc("/studios/{slug}", getStudio.Handle).Methods(http.MethodGet)
	public.HandleFunc("/studios/{slug}/packages", getStudioPackages.Handle).Methods(http.MethodGet)
	public.HandleFunc("/studios/{slug}/packages/{packageSlug}", getStudioPackage.Handle).Methods(http.MethodGet)
	public.HandleFunc("/studios/{studioId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	public.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// БРОНИРОВАНИЕ И ОТМЕНА (с ограничением частоты)
	// ============================================================

	mutating := public.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL(), log).
			WithTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		go limiter.RunCleanup(time.Minute, stopBackgroundCh)
		mutating.Use(limiter.Middleware())
		log.Info("Rate limit enabled (%d req/min, burst=%d, trusted_proxies=%d)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, len(cfg.RateLimit.TrustedProxies))
	}

	mutating.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	mutating.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи (метрики пула, очистка rate limiter)
	close(stopBackgroundCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уведомлений, запущенных до остановки
	createBookingUseCase.Wait()
	cancelBookingUseCase.Wait()

	log.Info("Server stopped gracefully")
}

// newPublisher выбирает транспорт событий бронирования
func newPublisher(n config.NotificationsConfig, redis config.RedisConfig, log *logger.Logger) (notifier.Publisher, error) {
	switch n.Transport {
	case config.NotificationsAsynq:
		return notifier.NewAsynqPublisher(redis.Addr, redis.Password, redis.DB, notifier.AsynqOptions{
			Queue:    n.Queue,
			MaxRetry: n.MaxRetry,
		}), nil
	case config.NotificationsRabbitMQ:
		return notifier.NewAMQPPublisher(n.RabbitMQURL, n.Exchange)
	default:
		return notifier.NewLogPublisher(log), nil
	}
}
