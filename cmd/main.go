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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CourtBookingService/internal/access"
	createBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_booking"
	createCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_court"
	deleteBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_booking"
	deleteCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_court"
	deleteUserHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_user"
	getBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking"
	getCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_court"
	getMyBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_my_bookings"
	getUserHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_user"
	listBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_bookings"
	listCourtsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_courts"
	listUsersHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/login"
	registerUserHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/register_user"
	updateBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_booking"
	updateCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_court"
	updateUserHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_user"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/auth"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	userRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-CourtBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	usersService "github.com/m04kA/SMC-CourtBookingService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	updateBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
)

func main() {
	// Подхватываем .env (если есть) до чтения конфигурации:
	// оттуда приходят DB_PASSWORD и JWT_SECRET
	_ = godotenv.Load()

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

	log.Info("Starting SMC-CourtBookingService...")
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

	// Менеджер JWT
	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		time.Duration(cfg.Auth.TokenTTL)*time.Minute,
	)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		courtRepository   *courtRepo.Repository
		userRepository    *userRepo.Repository
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
		courtRepository = courtRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	courtSvc := courtsService.NewService(courtRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	authSvc := authService.NewService(userRepository, tokens, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация пользователя
	api.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// Вход
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	requireOp := func(op access.Operation, h http.HandlerFunc) http.Handler {
		return middleware.RequireOperation(op, log)(h)
	}

	// --- Бронирования ---
	protected.Handle("/bookings", requireOp(access.OpCreateBooking, createBooking.Handle)).Methods(http.MethodPost)
	protected.Handle("/bookings", requireOp(access.OpListBookings, listBookings.Handle)).Methods(http.MethodGet)
	protected.Handle("/bookings/my", requireOp(access.OpMyBookings, getMyBookings.Handle)).Methods(http.MethodGet)
	protected.Handle("/bookings/{bookingId}", requireOp(access.OpGetBooking, getBooking.Handle)).Methods(http.MethodGet)
	protected.Handle("/bookings/{bookingId}", requireOp(access.OpUpdateBooking, updateBooking.Handle)).Methods(http.MethodPut)
	protected.Handle("/bookings/{bookingId}", requireOp(access.OpDeleteBooking, deleteBooking.Handle)).Methods(http.MethodDelete)

	// --- Корты (создание/изменение/удаление — только админ) ---
	protected.Handle("/courts", requireOp(access.OpCreateCourt, createCourt.Handle)).Methods(http.MethodPost)
	protected.Handle("/courts", requireOp(access.OpListCourts, listCourts.Handle)).Methods(http.MethodGet)
	protected.Handle("/courts/{courtId}", requireOp(access.OpGetCourt, getCourt.Handle)).Methods(http.MethodGet)
	protected.Handle("/courts/{courtId}", requireOp(access.OpUpdateCourt, updateCourt.Handle)).Methods(http.MethodPut)
	protected.Handle("/courts/{courtId}", requireOp(access.OpDeleteCourt, deleteCourt.Handle)).Methods(http.MethodDelete)

	// --- Пользователи ---
	protected.Handle("/users", requireOp(access.OpListUsers, listUsers.Handle)).Methods(http.MethodGet)
	protected.Handle("/users/{userId}", requireOp(access.OpGetUser, getUser.Handle)).Methods(http.MethodGet)
	protected.Handle("/users/{userId}", requireOp(access.OpUpdateUser, updateUser.Handle)).Methods(http.MethodPut)
	protected.Handle("/users/{userId}", requireOp(access.OpDeleteUser, deleteUser.Handle)).Methods(http.MethodDelete)

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
