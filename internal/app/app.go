package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rent-a-shelf/internal/config"
	"rent-a-shelf/internal/database"
	"rent-a-shelf/internal/handler"
	"rent-a-shelf/internal/mailer"
	"rent-a-shelf/internal/middleware"
	"rent-a-shelf/internal/repository"
	"rent-a-shelf/internal/router"
	"rent-a-shelf/internal/service"
	"rent-a-shelf/internal/token"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, database.PoolSettings{
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	statusRepo := repository.NewStatusRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	branchRepo := repository.NewBranchRepository(pool)
	shelfRepo := repository.NewShelfRepository(pool)
	shelfTypeRepo := repository.NewShelfTypeRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	paymentMethodRepo := repository.NewPaymentMethodRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	slog.Info("database ready")

	sessionTokens := token.NewSessionService(cfg.JWTSecret, cfg.SessionTokenTTL)
	resetTokens := token.NewResetService(cfg.JWTSecret, cfg.ResetTokenTTL)
	resetMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.ResetLinkBase)

	authService := service.NewAuthService(employeeRepo, resetMailer, sessionTokens, resetTokens, cfg.StoreTimeout)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Status:   handler.NewStatusHandler(service.NewStatusService(statusRepo)),
		Branch:   handler.NewBranchHandler(service.NewBranchService(branchRepo)),
		Employee: handler.NewEmployeeHandler(service.NewEmployeeService(employeeRepo)),
		Shelf:    handler.NewShelfHandler(service.NewShelfService(shelfRepo, shelfTypeRepo)),
		Client:   handler.NewClientHandler(service.NewClientService(clientRepo)),
		Payment:  handler.NewPaymentHandler(service.NewPaymentService(paymentMethodRepo, paymentRepo)),

		HealthCheck: db.Health,
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
