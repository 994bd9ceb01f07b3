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

	cancelAppointmentHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/cancel_appointment"
	confirmAppointmentHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/create_appointment"
	deleteSlotHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/delete_slot"
	getAppointmentHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableDatesHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/get_available_dates"
	getBookingSlotsHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/get_booking_slots"
	getCalendarHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/get_calendar"
	getDayScheduleHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/get_day_schedule"
	getUserAppointmentsHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/get_user_appointments"
	setSlotStatusHandler "github.com/m04kA/CWT-SchedulingService/internal/api/handlers/set_slot_status"
	"github.com/m04kA/CWT-SchedulingService/internal/api/middleware"
	"github.com/m04kA/CWT-SchedulingService/internal/config"
	quoteRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/quote"
	recordsStore "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/records"
	slotRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/timeslot"
	userRepo "github.com/m04kA/CWT-SchedulingService/internal/infra/storage/user"
	appointmentsService "github.com/m04kA/CWT-SchedulingService/internal/service/appointments"
	scheduleService "github.com/m04kA/CWT-SchedulingService/internal/service/schedule"
	confirmAppointmentUC "github.com/m04kA/CWT-SchedulingService/internal/usecase/confirm_appointment"
	createAppointmentUC "github.com/m04kA/CWT-SchedulingService/internal/usecase/create_appointment"
	getCalendarUC "github.com/m04kA/CWT-SchedulingService/internal/usecase/get_calendar"
	"github.com/m04kA/CWT-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/CWT-SchedulingService/pkg/logger"
	"github.com/m04kA/CWT-SchedulingService/pkg/metrics"
	"github.com/m04kA/CWT-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/CWT-SchedulingService/pkg/txmanager"
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

	log.Info("Starting CWT-SchedulingService...")
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

	// Интерфейс для transaction manager (используется в services и usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем хранилище коллекций (с метриками или без)
	var collections *recordsStore.Store

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		collections = recordsStore.NewStore(wrappedDB, log)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		collections = recordsStore.NewStore(db, log)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем репозитории поверх хранилища коллекций
	slotRepository := slotRepo.NewRepository(collections, log)
	quoteRepository := quoteRepo.NewRepository(collections, log)
	userRepository := userRepo.NewRepository(collections, log)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		slotRepository,
		quoteRepository,
		userRepository,
		txMgr,
		cfg.Booking.HorizonDays,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		quoteRepository,
		userRepository,
		log,
	)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(
		slotRepository,
		quoteRepository,
		userRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		slotRepository,
		quoteRepository,
		txMgr,
		cfg.Booking.HorizonDays,
		log,
	)
	confirmAppointmentUseCase := confirmAppointmentUC.NewUseCase(
		slotRepository,
		quoteRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(scheduleSvc, log)
	getBookingSlots := getBookingSlotsHandler.NewHandler(scheduleSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(confirmAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	setSlotStatus := setSlotStatusHandler.NewHandler(scheduleSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(scheduleSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(scheduleSvc, log)

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
	// PUBLIC ROUTES (клиентский контур бронирования)
	// ============================================================

	// Даты месяца, доступные для бронирования
	api.HandleFunc("/booking/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/booking/slots", getBookingSlots.Handle).Methods(http.MethodGet)

	// Создание заявки на замер
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Встречи клиента
	api.HandleFunc("/users/{userRef}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (админский контур, требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Календарь ---
	// Сетка месяца со сведенным состоянием ячеек
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Детализация одного дня
	protected.HandleFunc("/schedule/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	// Установка статуса слота (no-slot удаляет запись)
	protected.HandleFunc("/slots/{date}/{period}", setSlotStatus.Handle).Methods(http.MethodPut)

	// Удаление слота по идентификатору
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Встречи ---
	// Просмотр встречи
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Подтверждение встречи
	protected.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPatch)

	// Отмена встречи
	protected.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик пула соединений
	close(stopMetricsCh)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
