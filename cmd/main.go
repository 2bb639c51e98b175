package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	backBookingHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/back_booking"
	continueBookingHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/continue_booking"
	discoverMentorsHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/discover_mentors"
	getAvailableSlotsHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/get_available_slots"
	getBookingDraftHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/get_booking_draft"
	getConfirmationHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/get_confirmation"
	healthHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/health"
	listMentorApplicationsHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/list_mentor_applications"
	listPaymentsHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/list_payments"
	listUsersHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/list_users"
	resetBookingHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/reset_booking"
	selectSlotHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/select_slot"
	startBookingHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/start_booking"
	updateDetailsHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/update_details"
	validateMentorHandler "github.com/m04kA/SMC-MentorBooking/internal/api/handlers/validate_mentor"
	"github.com/m04kA/SMC-MentorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MentorBooking/internal/config"
	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/internal/infra/lock"
	draftRepo "github.com/m04kA/SMC-MentorBooking/internal/infra/storage/draft"
	"github.com/m04kA/SMC-MentorBooking/internal/integrations/mentoringapi"
	confirmationService "github.com/m04kA/SMC-MentorBooking/internal/service/confirmation"
	directoryService "github.com/m04kA/SMC-MentorBooking/internal/service/directory"
	wizardService "github.com/m04kA/SMC-MentorBooking/internal/service/wizard"
	createSessionUC "github.com/m04kA/SMC-MentorBooking/internal/usecase/create_session"
	getAvailableSlotsUC "github.com/m04kA/SMC-MentorBooking/internal/usecase/get_available_slots"
	startBookingUC "github.com/m04kA/SMC-MentorBooking/internal/usecase/start_booking"
	"github.com/m04kA/SMC-MentorBooking/internal/worker/draftexpiry"
	"github.com/m04kA/SMC-MentorBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MentorBooking/pkg/logger"
	"github.com/m04kA/SMC-MentorBooking/pkg/metrics"
	"github.com/m04kA/SMC-MentorBooking/pkg/txmanager"
)

// draftStore общий интерфейс postgres- и in-memory репозиториев черновиков
type draftStore interface {
	Get(ctx context.Context, menteeID string) (*domain.BookingDraft, error)
	Save(ctx context.Context, draft *domain.BookingDraft) error
	Delete(ctx context.Context, menteeID string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// txManager общий интерфейс транзакций БД и локальных транзакций
type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// submissionLocker блокировка отправки черновика
type submissionLocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
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

	log.Info("Starting SMC-MentorBooking...")
	log.Info("Configuration loaded from %s", configPath)

	defaultLocation, err := time.LoadLocation(cfg.Booking.DefaultTimezone)
	if err != nil {
		log.Fatal("Failed to load default timezone %q: %v", cfg.Booking.DefaultTimezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	health := healthHandler.NewHandler(cfg.Metrics.ServiceName, log)

	// Хранилище черновиков и транзакции
	var (
		drafts draftStore
		txMgr  txManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var recorder dbmetrics.Recorder
		if cfg.Metrics.Enabled {
			recorder = metricsCollector
		}
		wrappedDB := dbmetrics.WrapWithDefault(db, recorder, cfg.Database.DBName, stopMetricsCh)

		drafts = draftRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		health.Critical("postgres", wrappedDB.PingContext)

	default:
		drafts = draftRepo.NewMemoryRepository()
		txMgr = txmanager.NewLocalManager()
		log.Warn("Drafts are kept in memory: state is lost on restart and not shared between instances")
	}

	// Блокировка отправки: redis для нескольких инстансов, иначе в памяти процесса
	var locker submissionLocker
	if cfg.Redis.Enabled {
		rdb, err := lock.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()

		locker = lock.NewRedisLocker(rdb, time.Duration(cfg.Redis.LockTTL)*time.Second)
		health.Optional("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)
	} else {
		locker = lock.NewLocalLocker()
	}

	// Клиент бэкенда маркетплейса
	mentoringClient := mentoringapi.NewClient(
		cfg.MentoringAPI.URL,
		cfg.MentoringAPI.Token,
		time.Duration(cfg.MentoringAPI.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Mentoring API client initialized (url=%s, timeout=%ds)", cfg.MentoringAPI.URL, cfg.MentoringAPI.Timeout)

	// Инициализируем use cases
	startBookingUseCase := startBookingUC.NewUseCase(
		mentoringClient,
		drafts,
		txMgr,
		metricsCollector,
		defaultLocation,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		drafts,
		txMgr,
		defaultLocation,
		cfg.Booking.ScrollThresholdPx,
		log,
	)
	createSessionUseCase := createSessionUC.NewUseCase(
		drafts,
		mentoringClient,
		locker,
		txMgr,
		metricsCollector,
		defaultLocation,
		log,
	)

	// Инициализируем сервисы
	wizardSvc := wizardService.NewService(
		drafts,
		createSessionUseCase,
		txMgr,
		metricsCollector,
		defaultLocation,
		log,
	)
	confirmationSvc := confirmationService.NewService(
		drafts,
		txMgr,
		metricsCollector,
		defaultLocation,
		cfg.Booking.CalendarLocation,
		log,
	)
	directorySvc := directoryService.NewService(mentoringClient, log)

	// Инициализируем handlers
	startBooking := startBookingHandler.NewHandler(startBookingUseCase, log)
	getBookingDraft := getBookingDraftHandler.NewHandler(wizardSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	selectSlot := selectSlotHandler.NewHandler(wizardSvc, log)
	updateDetails := updateDetailsHandler.NewHandler(wizardSvc, log)
	continueBooking := continueBookingHandler.NewHandler(wizardSvc, log)
	backBooking := backBookingHandler.NewHandler(wizardSvc, log)
	getConfirmation := getConfirmationHandler.NewHandler(confirmationSvc, log)
	resetBooking := resetBookingHandler.NewHandler(confirmationSvc, log)
	discoverMentors := discoverMentorsHandler.NewHandler(directorySvc, log)
	listPayments := listPaymentsHandler.NewHandler(directorySvc, log)
	listUsers := listUsersHandler.NewHandler(directorySvc, log)
	listMentorApplications := listMentorApplicationsHandler.NewHandler(directorySvc, log)
	validateMentor := validateMentorHandler.NewHandler(directorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверки для оркестратора (публичные)
	r.HandleFunc("/health/live", health.Liveness).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", health.Readiness).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер бронирования ---
	protected.HandleFunc("/bookings/draft", startBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/draft", getBookingDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/draft", resetBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/draft/dates", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/draft/dates/scroll", getAvailableSlots.HandleScroll).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/draft/slot", selectSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/draft/details", updateDetails.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/draft/continue", continueBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/draft/back", backBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/draft/confirmation", getConfirmation.Handle).Methods(http.MethodGet)

	// --- Каталог и платежи менти ---
	protected.HandleFunc("/mentors", discoverMentors.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments", listPayments.Handle).Methods(http.MethodGet)

	// --- Администрирование (X-User-Role: admin) ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(middleware.RoleAdmin))

	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/mentors", listMentorApplications.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/mentors/{mentorId}/validation", validateMentor.Handle).Methods(http.MethodPatch)

	// Очистка заброшенных черновиков
	workerCtx, stopWorker := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	expiry := draftexpiry.New(
		drafts,
		cfg.Booking.DraftTTLDuration(),
		time.Duration(cfg.Booking.ExpiryCheckInterval)*time.Second,
		log,
	)
	workers.Add(1)
	go func() {
		defer workers.Done()
		expiry.Run(workerCtx)
	}()

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	stopWorker()
	workers.Wait()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
