package bootstrap

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

	cacheadapter "github.com/inkwell/bookshop/internal/adapters/cache"
	httpadapter "github.com/inkwell/bookshop/internal/adapters/http"
	"github.com/inkwell/bookshop/internal/adapters/payments"
	"github.com/inkwell/bookshop/internal/adapters/postgres"
	"github.com/inkwell/bookshop/internal/adapters/security"
	"github.com/inkwell/bookshop/internal/adapters/storage"
	"github.com/inkwell/bookshop/internal/application"
	"github.com/inkwell/bookshop/internal/domain"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping bookshop api", "http_port", cfg.HTTPPort)

	// Secrets are checked at use time, not startup: catalog browsing must
	// keep working on an instance with no payment or signing credentials.
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty; login and token verification will fail until it is set")
	}
	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is empty; checkout session creation will fail until it is set")
	}
	if cfg.AuthMode == application.AuthModeLegacyEmail {
		logger.Warn("legacy email authorization mode enabled; request-supplied emails are trusted")
	}

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	repos := postgres.NewRepositories(db)

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			DefaultRole:          domain.RoleUser,
			AuthMode:             cfg.AuthMode,
			TokenTTL:             cfg.TokenTTL,
			FailedLoginThreshold: cfg.FailedThreshold,
			LockoutDuration:      cfg.LockoutDuration,
			Currency:             cfg.Currency,
			FrontendBaseURL:      cfg.FrontendBaseURL,
		},
		Users:      repos.Users,
		Books:      repos.Books,
		Categories: repos.Categories,
		Lockouts:   cacheadapter.NewRedisLockoutStore(redisClient),
		Hasher:     security.NewBcryptHasher(cfg.BcryptCost),
		Tokens:     security.NewHMACSigner(cfg.JWTSecret),
		Checkout:   payments.NewStripeCheckout(cfg.StripeSecretKey),
		Images:     storage.NewDiskImageStore(cfg.UploadDir),
	})

	handler := httpadapter.NewHandler(svc, cfg.UploadDir)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		cleanupFn: func(ctx context.Context) {
			_ = redisClient.Close()
			_ = sqlDB.Close()
		},
	}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
