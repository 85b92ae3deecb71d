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

	goredis "github.com/redis/go-redis/v9"

	"github.com/kirinyoku/entrydesk/internal/auth"
	"github.com/kirinyoku/entrydesk/internal/config"
	"github.com/kirinyoku/entrydesk/internal/postgres"
	"github.com/kirinyoku/entrydesk/internal/redis"
	postgresrepo "github.com/kirinyoku/entrydesk/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/entrydesk/internal/repository/redis"
	"github.com/kirinyoku/entrydesk/internal/service"
	"github.com/kirinyoku/entrydesk/internal/service/admission"
	httpgin "github.com/kirinyoku/entrydesk/internal/transport/http/gin"
	"github.com/kirinyoku/entrydesk/internal/uow"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	handles    *postgres.Handles
	rdb        *goredis.Client
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx := context.Background()

	// Initialize dependencies
	publicDSN, err := cfg.Backend.AnonDSN()
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	serviceDSN, err := cfg.Backend.ServiceDSN()
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}

	if cfg.Migrations.Path != "" {
		if err := postgres.RunMigrations(serviceDSN, cfg.Migrations.Path, logger); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	handles, err := postgres.NewHandles(ctx, publicDSN, serviceDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redis.New(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		handles.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(handles.Service, handles.Public)
	sessions := redisrepo.NewSessionStore(redisrepo.New(rdb))
	pubsub := redisrepo.NewTicketsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, "login", cfg.Admin.LoginRateLimit, cfg.Admin.LoginRateWindow)

	// Initialize services
	services := service.NewServices(store, uow.NewUoW(store), sessions, pubsub, limiter, logger, service.Config{
		Admission: admission.Config{ResetClearsAudit: cfg.Entry.ResetClearsAudit},
		Password:  auth.NewPassword(cfg.Admin.Password, cfg.Admin.PasswordHash),
		Tokens:    auth.NewTokens(cfg.Admin.TokenSecret, cfg.Admin.TokenTTL),
	})

	// Initialize Gin router
	router := httpgin.NewRouter(services, httpgin.Config{
		SecureCookies:  cfg.IsProduction(),
		AllowOrigins:   cfg.Server.AllowOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
	}, logger)

	return &App{
		cfg:     cfg,
		logger:  logger,
		handles: handles,
		rdb:     rdb,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer a.close()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}

func (a *App) close() {
	if err := a.rdb.Close(); err != nil {
		a.logger.Warn("failed to close redis client", "error", err)
	}
	a.handles.Close()
}
