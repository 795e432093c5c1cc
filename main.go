package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"prompt-optimizer/backend/internal/app"
	"prompt-optimizer/backend/internal/config"
	"prompt-optimizer/backend/internal/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	configPath := config.ConfigPathFromEnv()
	appConfigService := config.NewAppConfigService(configPath)
	appConfig, err := appConfigService.LoadAppConfig()
	if err != nil {
		slog.Error("failed to load app config", "path", configPath, "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(appConfig.Log.Level, appConfig.Log.Format, os.Stderr)

	application, err := app.New(appConfig, appConfigService, configPath)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Serve(ctx, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
