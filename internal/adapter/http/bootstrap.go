package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"todotrack/internal/adapter/database"
	"todotrack/internal/adapter/http/routes"
	"todotrack/pkg/config"
	"todotrack/pkg/telemetry"
)

func StartServer(metrics *telemetry.AppMetrics, logger *config.AppLogger) {
	StartServerWithConfig(metrics, logger, config.GetDefaultConfig())
}

func StartServerWithConfig(metrics *telemetry.AppMetrics, logger *config.AppLogger, appConfig *config.AppConfig) {
	db, err := database.NewDB()

	if err != nil {
		slog.Error("Database initialization failed", "error", err)
		os.Exit(1)
	}

	defer db.Close()

	container := NewContainer(db, logger)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		AuthHandler:     container.AuthHandler,
		TodoHandler:     container.TodoHandler,
		ActivityHandler: container.ActivityHandler,
		ReportHandler:   container.ReportHandler,
		CategoryHandler: container.CategoryHandler,
	}, metrics, logger, appConfig)

	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	slog.Info("Server starting",
		"port", port,
		"environment", appConfig.Environment,
		"rate_limit_enabled", appConfig.RateLimitEnabled,
		"https_enforced", appConfig.EnforceHTTPS)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
	}
}
