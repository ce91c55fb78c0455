package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/redis"
	timeProvider "github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/tracing"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, cfg.Environment, appLogger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			appLogger.Warn("Tracer shutdown failed", map[string]any{"error": err.Error()})
		}
	}()

	var appMetrics *metrics.Metrics
	var dbOpts []database.Option
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New()
		dbOpts = append(dbOpts,
			database.WithQueryRecorder(appMetrics),
			database.WithPoolStatsRecorder(appMetrics),
		)
	}

	// Connect to the database
	dbManager := database.NewManager(database.NewConfig(cfg), appLogger, tp, dbOpts...)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Database close failed", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.RunMigrations(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	healthDeps := map[string]handler.Pinger{"database": dbManager}

	var cacheDeps cacheDependencies
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, cfg.Redis, appLogger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		cacheDeps = newCacheDependencies(redisClient, cfg.Redis.DesignTTL, appMetrics, tp)
		healthDeps["redis"] = redisClient
	}

	svc := buildServices(cfg, dbManager, cacheDeps, appMetrics, tp, appLogger)

	if cfg.Environment == config.Development {
		created, err := migration.CreateDefaultUsers(ctx, svc.users, migration.DefaultAccounts)
		if err != nil {
			appLogger.Error("Failed to create default users", map[string]any{"error": err.Error()})
		} else if created > 0 {
			appLogger.Info("Default users created", map[string]any{"count": created})
		}
	}

	deps := routes.Dependencies{
		Config:  cfg,
		Logger:  appLogger,
		Metrics: appMetrics,
		Limiter: cacheDeps.limiter,
	}

	router := gin.New()
	routes.SetupMiddlewares(router, deps)
	routes.SetupRoutes(router, routes.Handlers{
		Generation: handler.NewGenerationHandler(svc.generation, appLogger),
		Design:     handler.NewDesignHandler(svc.designs, appLogger),
		User:       handler.NewUserHandler(svc.users, svc.credits, appLogger),
		Payment:    handler.NewPaymentHandler(svc.payments, appLogger),
		Health:     handler.NewHealthHandler(healthDeps, 2*time.Second, appLogger),
	}, deps)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
