package http

import (
	"context"
	"log/slog"
	"os"

	"todotrack/internal/adapter/cache/memory"
	"todotrack/internal/adapter/cache/redis"
	"todotrack/internal/adapter/database"
	"todotrack/internal/adapter/database/repository"
	"todotrack/internal/adapter/http/handler"
	"todotrack/internal/core/port"
	"todotrack/internal/core/service"
	coretelemetry "todotrack/internal/core/telemetry"
	"todotrack/pkg/config"
)

type Container struct {
	TodoRepo     port.TodoRepository
	ActivityRepo port.ActivityRepository
	CategoryRepo port.CategoryRepository
	UserRepo     port.UserRepository

	Cache port.CacheRepository

	TodoService     port.TodoService
	ActivityService port.ActivityRecorder
	ReportService   port.ReportService
	CategoryService port.CategoryService
	AuthService     port.AuthService

	AuthHandler     *handler.AuthHandler
	TodoHandler     *handler.TodoHandler
	ActivityHandler *handler.ActivityHandler
	ReportHandler   *handler.ReportHandler
	CategoryHandler *handler.CategoryHandler
}

// NewContainer wires repositories, services, and handlers. The cache backend
// is Redis when REDIS_ADDR is set, in-process otherwise.
func NewContainer(db *database.DB, logger *config.AppLogger) *Container {
	probe := coretelemetry.NewOTelProbe(slog.Default())

	todoRepo := repository.NewTodoRepository(db, probe)
	activityRepo := repository.NewActivityRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	cacheRepo := newCacheRepository()

	activitySvc := service.NewActivityService(activityRepo)
	todoSvc := service.NewTodoService(todoRepo, activitySvc, cacheRepo)
	reportSvc := service.NewReportService(todoRepo, categoryRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	authSvc := service.NewAuthService(userRepo)

	return &Container{
		TodoRepo:     todoRepo,
		ActivityRepo: activityRepo,
		CategoryRepo: categoryRepo,
		UserRepo:     userRepo,

		Cache: cacheRepo,

		TodoService:     todoSvc,
		ActivityService: activitySvc,
		ReportService:   reportSvc,
		CategoryService: categorySvc,
		AuthService:     authSvc,

		AuthHandler:     handler.NewAuthHandler(authSvc),
		TodoHandler:     handler.NewTodoHandler(todoSvc, logger),
		ActivityHandler: handler.NewActivityHandler(activitySvc),
		ReportHandler:   handler.NewReportHandler(reportSvc),
		CategoryHandler: handler.NewCategoryHandler(categorySvc),
	}
}

func newCacheRepository() port.CacheRepository {
	addr := os.Getenv("REDIS_ADDR")

	if addr == "" {
		return memory.New()
	}

	cacheRepo, err := redis.New(context.Background(), addr)

	if err != nil {
		slog.Warn("Redis unavailable, falling back to in-process cache", "addr", addr, "error", err)
		return memory.New()
	}

	return cacheRepo
}
