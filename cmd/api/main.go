package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "todotrack/internal/adapter/http"
	"todotrack/pkg/config"
	"todotrack/pkg/telemetry"
)

func main() {
	ctx := context.Background()

	logger, err := config.NewAppLogger("todotrack", os.Getenv("LOKI_URL"))

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	otlpEndpoint := os.Getenv("OTLP_ENDPOINT")

	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	environment := "development"

	if os.Getenv("GIN_MODE") == "release" {
		environment = "production"
	}

	tel, err := telemetry.InitTelemetry(telemetry.TelemetryConfig{
		ServiceName:    "todotrack",
		ServiceVersion: "1.0.0",
		Environment:    environment,
		MetricsPort:    "9091",
		OTLPEndpoint:   otlpEndpoint,
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(ctx)

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)
	metrics.StartSystemMetrics(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		appConfig := config.GetDefaultConfig()

		if os.Getenv("GIN_MODE") == "release" {
			appConfig.Environment = "production"
			appConfig.EnforceHTTPS = true
		}

		api.StartServerWithConfig(metrics, logger, appConfig)
	}()

	<-c
	logger.Logger.Info("Shutting down gracefully...")
}
