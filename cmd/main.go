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

	cancelReservationHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/create_reservation"
	deleteFacilityHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/delete_facility"
	deleteSlotTemplateHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/delete_slot_template"
	getDayScheduleHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/get_day_schedule"
	getFacilitiesHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/get_facilities"
	getFacilityReservationsHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/get_facility_reservations"
	getReservationHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/get_reservation"
	getUserBanHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/get_user_ban"
	getUserReservationsHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/get_user_reservations"
	setReservationStatusHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/set_reservation_status"
	upsertFacilityHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/upsert_facility"
	upsertSlotTemplateHandler "github.com/m04kA/UniSport-ReservationService/internal/api/handlers/upsert_slot_template"
	"github.com/m04kA/UniSport-ReservationService/internal/api/middleware"
	"github.com/m04kA/UniSport-ReservationService/internal/config"
	"github.com/m04kA/UniSport-ReservationService/internal/infra/cache/slotcache"
	banRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/ban"
	facilityRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/reservation"
	slotTemplateRepo "github.com/m04kA/UniSport-ReservationService/internal/infra/storage/slottemplate"
	userDirectoryClient "github.com/m04kA/UniSport-ReservationService/internal/integrations/userdirectory"
	"github.com/m04kA/UniSport-ReservationService/internal/notifications"
	facilitiesService "github.com/m04kA/UniSport-ReservationService/internal/service/facilities"
	reservationsService "github.com/m04kA/UniSport-ReservationService/internal/service/reservations"
	cancelReservationUC "github.com/m04kA/UniSport-ReservationService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/UniSport-ReservationService/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/m04kA/UniSport-ReservationService/internal/usecase/get_day_schedule"
	setReservationStatusUC "github.com/m04kA/UniSport-ReservationService/internal/usecase/set_reservation_status"
	"github.com/m04kA/UniSport-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UniSport-ReservationService/pkg/logger"
	"github.com/m04kA/UniSport-ReservationService/pkg/metrics"
	"github.com/m04kA/UniSport-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/UniSport-ReservationService/pkg/txmanager"
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

	log.Info("Starting UniSport-ReservationService...")
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

	// Клиент справочника пользователей (email для уведомлений)
	userClient := userDirectoryClient.NewClient(
		cfg.UserDirectory.URL,
		time.Duration(cfg.UserDirectory.Timeout)*time.Second,
		log,
	)
	log.Info("User directory client initialized (url=%s timeout=%ds)",
		cfg.UserDirectory.URL, cfg.UserDirectory.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository  *reservationRepo.Repository
		slotTemplateRepository *slotTemplateRepo.Repository
		facilityRepository     *facilityRepo.Repository
		banRepository          *banRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		slotTemplateRepository = slotTemplateRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		banRepository = banRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		slotTemplateRepository = slotTemplateRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		banRepository = banRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Redis-кэш расписаний (если включен)
	var (
		scheduleCache  getDayScheduleUC.SlotCache
		adminSlotCache facilitiesService.SlotCache
		redisSlotCache *slotcache.Cache
	)
	if cfg.Cache.Enabled {
		redisSlotCache = slotcache.New(
			cfg.Cache.Addr,
			cfg.Cache.Password,
			cfg.Cache.DB,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		)
		defer redisSlotCache.Close()
		scheduleCache = redisSlotCache
		adminSlotCache = redisSlotCache
		log.Info("Slot schedule cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Почта и уведомления
	mailer := notifications.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Pass,
		cfg.SMTP.From,
	)
	notifier := notifications.NewNotifier(
		userClient,
		facilityRepository,
		mailer,
		log,
		cfg.Notifications.SendConfirmationEmail,
		cfg.Notifications.SendCancellationEmail,
		cfg.Notifications.SendNoShowEmail,
	)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, banRepository, log)
	facilitiesSvc := facilitiesService.NewService(
		facilityRepository,
		slotTemplateRepository,
		adminSlotCache,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		slotTemplateRepository,
		txMgr,
		notifier,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		notifier,
		log,
	)
	setReservationStatusUseCase := setReservationStatusUC.NewUseCase(
		reservationRepository,
		banRepository,
		txMgr,
		notifier,
		log,
		cfg.NoShowBan.Enabled,
		cfg.NoShowBan.Days,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		slotTemplateRepository,
		reservationRepository,
		scheduleCache,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	setReservationStatus := setReservationStatusHandler.NewHandler(setReservationStatusUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getUserBan := getUserBanHandler.NewHandler(reservationsSvc, log)
	getFacilityReservations := getFacilityReservationsHandler.NewHandler(reservationsSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getFacilities := getFacilitiesHandler.NewHandler(facilitiesSvc, log)
	upsertFacility := upsertFacilityHandler.NewHandler(facilitiesSvc, log)
	deleteFacility := deleteFacilityHandler.NewHandler(facilitiesSvc, log)
	upsertSlotTemplate := upsertSlotTemplateHandler.NewHandler(facilitiesSvc, log)
	deleteSlotTemplate := deleteSlotTemplateHandler.NewHandler(facilitiesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список спортивных объектов
	api.HandleFunc("/facilities", getFacilities.HandleList).Methods(http.MethodGet)

	// Спортивный объект по ID
	api.HandleFunc("/facilities/{facilityId}", getFacilities.HandleGet).Methods(http.MethodGet)

	// Расписание объекта на дату: свободные/занятые слоты
	api.HandleFunc("/facilities/{facilityId}/day-schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Текущая блокировка пользователя за неявку (UI решает, давать ли бронировать)
	protected.HandleFunc("/users/{userId}/ban", getUserBan.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Завершение / отметка неявки
	admin.HandleFunc("/reservations/{reservationId}/status", setReservationStatus.Handle).Methods(http.MethodPatch)

	// Бронирования спортивного объекта
	admin.HandleFunc("/facilities/{facilityId}/reservations", getFacilityReservations.Handle).Methods(http.MethodGet)

	// --- Управление объектами и слотами ---
	admin.HandleFunc("/facilities", upsertFacility.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/facilities/{facilityId}", upsertFacility.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/facilities/{facilityId}", deleteFacility.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/facilities/{facilityId}/slots", getFacilities.HandleListSlots).Methods(http.MethodGet)
	admin.HandleFunc("/slots", upsertSlotTemplate.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{slotId}", upsertSlotTemplate.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/slots/{slotId}", deleteSlotTemplate.Handle).Methods(http.MethodDelete)

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
