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

	"go-task-api/internal/config"
	"go-task-api/internal/handler"
	"go-task-api/internal/middleware"
	"go-task-api/internal/router"
	"go-task-api/internal/service"
	"go-task-api/internal/store"
	"go-task-api/internal/store/memory"
	"go-task-api/internal/store/postgres"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var st store.Store
	var cleanupFuncs []func()

	if cfg.DatabaseURL != "" {
		slog.Info("connecting to PostgreSQL")
		pg, err := postgres.NewStore(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := pg.EnsureSchema(context.Background()); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}

		st = pg
		cleanupFuncs = append(cleanupFuncs, pg.Close)
	} else {
		slog.Warn("DATABASE_URL not set; using in-memory store, data will not survive a restart")
		st = memory.NewStore()
	}

	authService, err := service.NewAuthService(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost, st)
	if err != nil {
		for _, cleanup := range cleanupFuncs {
			cleanup()
		}
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	taskService := service.NewTaskService(st)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)

	appRouter := router.New(cfg, authMiddleware, authHandler, taskHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, cleanupFuncs: cleanupFuncs}, nil
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

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
