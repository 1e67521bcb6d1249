package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/saqibullah/diabetes-predictor/api"
	"github.com/saqibullah/diabetes-predictor/buildinfo"
	"github.com/saqibullah/diabetes-predictor/config"
	"github.com/saqibullah/diabetes-predictor/logging"
	"github.com/saqibullah/diabetes-predictor/predictor"
	"github.com/saqibullah/diabetes-predictor/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logging.FromContext(ctx).Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	ctx = logging.WithLogger(ctx, logger)

	logger.Infow("starting",
		"name", buildinfo.Info.Name(),
		"tag", buildinfo.Info.Tag(),
		"built", buildinfo.Info.Time(),
	)

	gin.SetMode(cfg.GinMode)
	handlers := api.NewHandlers(predictor.GlucoseRule{}, cfg.MaxBodyBytes)
	router := api.NewRouter(api.RouterConfig{AllowedOrigins: cfg.AllowedOrigins, HealthCheck: cfg.HealthCheck}, logger, handlers)

	srv, err := server.New(cfg.Addr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	err = srv.ServeHTTPHandler(ctx, router, server.Options{
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
	logger.Infow("stopped", "error", err)
	return err
}
