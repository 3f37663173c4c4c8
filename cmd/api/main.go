package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "taskmanager/internal/adapter/http"
	"taskmanager/pkg/config"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)

	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	appLogger, err := logger.NewAppLogger("taskmanager")

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer appLogger.Sync()

	tel, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "taskmanager",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		MetricsPort:    cfg.Telemetry.MetricsPort,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(context.Background())

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)
	metrics.StartSystemMetrics(ctx)

	if err := api.StartServer(ctx, cfg, metrics, appLogger); err != nil {
		log.Fatal("Server error:", err)
	}

	appLogger.Logger.Info("Shutting down gracefully...")
}
