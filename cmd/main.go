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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	fulfillSubscriptionHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/fulfill_subscription"
	getCalendarDaysHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_calendar_days"
	getDeliveryStatusHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_delivery_status"
	getSubscriptionScheduleHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_subscription_schedule"
	scheduleDeliveryHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/schedule_delivery"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryService/internal/config"
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/infra/cronjobs"
	closureRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/closure"
	subscriptionRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/subscription"
	hebcalClient "github.com/m04kA/SMC-DeliveryService/internal/integrations/hebcal"
	"github.com/m04kA/SMC-DeliveryService/internal/integrations/staticcal"
	"github.com/m04kA/SMC-DeliveryService/internal/service/calendar"
	"github.com/m04kA/SMC-DeliveryService/internal/service/cutoff"
	"github.com/m04kA/SMC-DeliveryService/internal/service/recurrence"
	"github.com/m04kA/SMC-DeliveryService/internal/service/scheduler"
	advanceSubscriptionUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/advance_subscription"
	getCalendarDaysUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_calendar_days"
	getDeliveryStatusUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_status"
	getSubscriptionScheduleUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_subscription_schedule"
	scheduleDeliveryUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/schedule_delivery"
	"github.com/m04kA/SMC-DeliveryService/pkg/logger"
	"github.com/m04kA/SMC-DeliveryService/pkg/metrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/txmanager"
	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.Options{Format: cfg.Logs.Format})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-DeliveryService...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load store timezone: %v", err)
	}
	restDay, err := cfg.RestWeekday()
	if err != nil {
		log.Fatal("Invalid rest day: %v", err)
	}

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

	// Инициализируем репозитории
	subscriptionRepository := subscriptionRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Источники праздников в порядке из конфигурации, первый найденный праздник выигрывает
	oracle := calendar.NewMultiOracle(buildOracles(cfg, db, metricsCollector, log)...)
	log.Info("Holiday sources: %v", cfg.Calendar.Sources)

	// Инициализируем сервисы
	holidayCalendar := calendar.NewCalendar(oracle, calendar.Config{
		RestDay:           restDay,
		RestDayEveReduced: cfg.Calendar.RestDayEveReduced,
	})

	cutoffPolicy, err := cutoff.NewPolicy(cutoff.Config{
		RegularCutoff: types.TimeString(cfg.Cutoff.Regular),
		ReducedCutoff: types.TimeString(cfg.Cutoff.Reduced),
		WindowStart:   types.TimeString(cfg.Cutoff.WindowStart),
	})
	if err != nil {
		log.Fatal("Failed to initialize cutoff policy: %v", err)
	}

	deliveryScheduler, err := scheduler.NewScheduler(holidayCalendar, cutoffPolicy, scheduler.Config{
		Location:      loc,
		LookaheadDays: cfg.Calendar.LookaheadDays,
	})
	if err != nil {
		log.Fatal("Failed to initialize delivery scheduler: %v", err)
	}

	projector, err := recurrence.NewProjector(holidayCalendar, cutoffPolicy, recurrence.Config{
		Location:      loc,
		LookaheadDays: cfg.Calendar.LookaheadDays,
		ShiftPolicy:   domain.ShiftPolicy(cfg.Calendar.ShiftPolicy),
	})
	if err != nil {
		log.Fatal("Failed to initialize recurrence projector: %v", err)
	}

	log.Info("Store calendar: timezone=%s, rest_day=%s, lookahead=%d days, shift_policy=%s",
		cfg.Store.Timezone, cfg.Calendar.RestDay, cfg.Calendar.LookaheadDays, projector.ShiftPolicy())

	// Инициализируем use cases
	scheduleDeliveryUseCase := scheduleDeliveryUC.NewUseCase(
		deliveryScheduler,
		projector,
		cutoffPolicy,
		metricsCollector,
		log,
	)

	getDeliveryStatusUseCase := getDeliveryStatusUC.NewUseCase(deliveryScheduler, log)

	getCalendarDaysUseCase := getCalendarDaysUC.NewUseCase(holidayCalendar, loc, log)

	getSubscriptionScheduleUseCase := getSubscriptionScheduleUC.NewUseCase(
		subscriptionRepository,
		projector,
		holidayCalendar,
		loc,
		log,
	)

	advanceSubscriptionUseCase := advanceSubscriptionUC.NewUseCase(
		subscriptionRepository,
		projector,
		holidayCalendar,
		txMgr,
		metricsCollector,
		advanceSubscriptionUC.Config{Location: loc, BatchSize: cfg.Sweep.BatchSize},
		log,
	)

	// Инициализируем handlers
	scheduleDelivery := scheduleDeliveryHandler.NewHandler(scheduleDeliveryUseCase, log)
	getDeliveryStatus := getDeliveryStatusHandler.NewHandler(getDeliveryStatusUseCase, log)
	getCalendarDays := getCalendarDaysHandler.NewHandler(getCalendarDaysUseCase, log)
	getSubscriptionSchedule := getSubscriptionScheduleHandler.NewHandler(getSubscriptionScheduleUseCase, log)
	fulfillSubscription := fulfillSubscriptionHandler.NewHandler(advanceSubscriptionUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доставка ---
	// Расчет даты доставки для заказа
	api.HandleFunc("/deliveries/schedule", scheduleDelivery.Handle).Methods(http.MethodPost)

	// Статус для баннера витрины
	api.HandleFunc("/deliveries/status", getDeliveryStatus.Handle).Methods(http.MethodGet)

	// Календарь работы магазина
	api.HandleFunc("/calendar/days", getCalendarDays.Handle).Methods(http.MethodGet)

	// --- Подписки ---
	// Ближайшие доставки по подписке
	api.HandleFunc("/subscriptions/{subscriptionId}/schedule", getSubscriptionSchedule.Handle).Methods(http.MethodGet)

	// Доставка выполнена, перенос на следующий цикл
	api.HandleFunc("/subscriptions/{subscriptionId}/fulfilled", fulfillSubscription.Handle).Methods(http.MethodPost)

	// Периодический перенос просроченных подписок
	var sweeper *cronjobs.Sweeper
	if cfg.Sweep.Enabled {
		sweeper = cronjobs.NewSweeper(
			advanceSubscriptionUseCase,
			cfg.Sweep.Cron,
			time.Duration(cfg.Sweep.Timeout)*time.Second,
			loc,
			log,
		)
		if err := sweeper.Start(); err != nil {
			log.Fatal("Failed to start subscription sweep: %v", err)
		}
	}

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

	if sweeper != nil {
		sweeper.Stop()
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

// buildOracles собирает источники праздников, каждый оборачивается метриками
func buildOracles(cfg *config.Config, db *sql.DB, m *metrics.Metrics, log *logger.Logger) []calendar.NamedOracle {
	sources := make([]calendar.NamedOracle, 0, len(cfg.Calendar.Sources))

	for _, name := range cfg.Calendar.Sources {
		var oracle calendar.HolidayOracle
		switch name {
		case config.SourceHebcal:
			oracle = hebcalClient.NewClient(
				cfg.Hebcal.URL,
				time.Duration(cfg.Hebcal.Timeout)*time.Second,
				cfg.Hebcal.Israel,
				log,
			)
			log.Info("Hebcal client initialized (url=%s, timeout=%ds, israel=%t)",
				cfg.Hebcal.URL, cfg.Hebcal.Timeout, cfg.Hebcal.Israel)
		case config.SourceClosures:
			oracle = closureRepo.NewRepository(db)
		case config.SourceStatic:
			entries := make([]staticcal.Entry, 0, len(cfg.Calendar.Holidays))
			for _, h := range cfg.Calendar.Holidays {
				// даты уже проверены в config.Validate
				date, _ := domain.ParseCalendarDate(h.Date)
				entries = append(entries, staticcal.Entry{Date: date, Name: h.Name})
			}
			oracle = staticcal.NewCalendar(entries)
			log.Info("Static holidays loaded: %d", len(entries))
		default:
			continue
		}

		named := calendar.NamedOracle{Name: name, Oracle: oracle}
		sources = append(sources, calendar.NamedOracle{
			Name:   name,
			Oracle: calendar.NewInstrumentedOracle(named, m, log),
		})
	}

	return sources
}
