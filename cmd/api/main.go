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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	getNotificationsHandler "github.com/m04kA/SMC-CampBooking/internal/api/handlers/get_notifications"
	getSlotsHandler "github.com/m04kA/SMC-CampBooking/internal/api/handlers/get_slots"
	getUnreadCountHandler "github.com/m04kA/SMC-CampBooking/internal/api/handlers/get_unread_count"
	markNotificationReadHandler "github.com/m04kA/SMC-CampBooking/internal/api/handlers/mark_notification_read"
	subscribePushHandler "github.com/m04kA/SMC-CampBooking/internal/api/handlers/subscribe_push"
	"github.com/m04kA/SMC-CampBooking/internal/api/middleware"
	"github.com/m04kA/SMC-CampBooking/internal/config"
	"github.com/m04kA/SMC-CampBooking/internal/infra/cache"
	"github.com/m04kA/SMC-CampBooking/internal/infra/migrations"
	bookingRepo "github.com/m04kA/SMC-CampBooking/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/SMC-CampBooking/internal/infra/storage/notification"
	subscriptionRepo "github.com/m04kA/SMC-CampBooking/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-CampBooking/internal/infra/webpush"
	"github.com/m04kA/SMC-CampBooking/internal/scheduler"
	notificationsService "github.com/m04kA/SMC-CampBooking/internal/service/notifications"
	getSlotsUC "github.com/m04kA/SMC-CampBooking/internal/usecase/get_slots"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
	"github.com/m04kA/SMC-CampBooking/pkg/metrics"
	"github.com/m04kA/SMC-CampBooking/pkg/types"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-CampBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if cfg.Database.AutoMigrate {
		if err := migrations.Run(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	subscriptionRepository := subscriptionRepo.NewRepository(db)
	notificationRepository := notificationRepo.NewRepository(db)

	// Push-отправитель (без VAPID ключей уведомления только сохраняются)
	var pushSender notificationsService.PushSender
	if cfg.Push.Enabled() {
		pushSender = webpush.NewSender(webpush.Config{
			PublicKey:  cfg.Push.VAPIDPublicKey,
			PrivateKey: cfg.Push.VAPIDPrivateKey,
			Subject:    cfg.Push.VAPIDSubject,
			TTL:        cfg.Push.TTL,
			Timeout:    time.Duration(cfg.Push.Timeout) * time.Second,
		}, log)
		log.Info("Web push enabled (subject=%s)", cfg.Push.VAPIDSubject)
	} else {
		log.Warn("VAPID keys are not configured, push delivery disabled")
	}

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(
		bookingRepository,
		subscriptionRepository,
		notificationRepository,
		pushSender,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	// DayStart и DayEnd уже проверены в config.Validate
	dayStart, _ := types.NewTimeStringFromString(cfg.Booking.DayStart)
	dayEnd, _ := types.NewTimeStringFromString(cfg.Booking.DayEnd)
	getSlotsUseCase := getSlotsUC.NewUseCase(
		bookingRepository,
		getSlotsUC.Schedule{
			DayStart:           dayStart,
			DayEnd:             dayEnd,
			StepMinutes:        cfg.Booking.SlotStepMinutes,
			MaxBookingsPerSlot: cfg.Booking.MaxBookingsPerSlot,
			DaysAhead:          cfg.Booking.CalendarDaysAhead,
		},
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	subscribePush := subscribePushHandler.NewHandler(notificationSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	getUnreadCount := getUnreadCountHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Слоты на дату
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Push-подписка бронирования
	api.HandleFunc("/subscribe", subscribePush.Handle).Methods(http.MethodPost)

	// Уведомления пользователя
	api.HandleFunc("/notifications/{id:[0-9]+}/read", markNotificationRead.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{phone}/unread-count", getUnreadCount.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{phone}", getNotifications.Handle).Methods(http.MethodGet)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Планировщик напоминаний
	var reminderScheduler *scheduler.Scheduler
	var redisClient *redis.Client
	if cfg.Scheduler.Enabled {
		var ledger scheduler.Ledger
		if cfg.Redis.Enabled {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				log.Warn("Redis is unavailable (addr=%s): %v, reminders fall back to database checks", cfg.Redis.Addr, err)
			} else {
				log.Info("Connected to redis (addr=%s)", cfg.Redis.Addr)
			}
			ledger = cache.NewReminderLedger(redisClient, 0)
		}

		job := scheduler.NewReminderJob(
			bookingRepository,
			notificationRepository,
			notificationSvc,
			ledger,
			metricsCollector,
			log,
		)
		reminderScheduler, err = scheduler.New(cfg.Scheduler.Spec, job, log)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		reminderScheduler.Start()
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if reminderScheduler != nil {
		if err := reminderScheduler.Stop(shutdownCtx); err != nil {
			log.Error("Scheduler did not stop in time: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
