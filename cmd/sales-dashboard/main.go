// Package main содержит точку входа дашборда продаж.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	salesdashboard "github.com/magabrotheeeer/sales-dashboard/internal/app/sales-dashboard"
	"github.com/magabrotheeeer/sales-dashboard/internal/config"
	"github.com/magabrotheeeer/sales-dashboard/internal/lib/sl"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

// @title        Sales Dashboard API
// @version      1.0
// @description  Proxy for the product transaction dataset and its filtered views.
// @BasePath     /
func main() {
	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	logger.Info("starting sales-dashboard", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := salesdashboard.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize sales-dashboard app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("sales-dashboard stopped with error", sl.Err(err))
		os.Exit(1)
	}
	logger.Info("sales-dashboard stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev, envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
