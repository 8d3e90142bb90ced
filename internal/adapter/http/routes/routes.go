package routes

import (
	"todotrack/internal/adapter/http/handler"
	"todotrack/internal/adapter/http/middleware"
	"todotrack/pkg/auth"
	"todotrack/pkg/config"
	"todotrack/pkg/telemetry"

	"github.com/gin-gonic/gin"
)

type HandlersConfig struct {
	AuthHandler     *handler.AuthHandler
	TodoHandler     *handler.TodoHandler
	ActivityHandler *handler.ActivityHandler
	ReportHandler   *handler.ReportHandler
	CategoryHandler *handler.CategoryHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *config.AppLogger) *gin.Engine {
	return SetupRouterWithConfig(handlers, metrics, logger, config.GetDefaultConfig())
}

func SetupRouterWithConfig(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *config.AppLogger, appConfig *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	middleware.SetupGinMiddlewareWithConfig(router, "todotrack", metrics, logger, appConfig)

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	setupPublicRoutes(router, handlers)
	setupProtectedRoutes(router, handlers)

	return router
}

func setupPublicRoutes(router *gin.Engine, handlers HandlersConfig) {
	if handlers.AuthHandler == nil {
		return
	}

	public := router.Group("/")
	{
		public.POST("/signup", handlers.AuthHandler.SignUp)
		public.POST("/auth", handlers.AuthHandler.Auth)
	}
}

func setupProtectedRoutes(router *gin.Engine, handlers HandlersConfig) {
	protected := router.Group("/")
	protected.Use(auth.GinJwtMiddleware())
	{
		if handlers.TodoHandler != nil {
			protected.GET("/todos", handlers.TodoHandler.GetAllTodos)
			protected.POST("/todos", handlers.TodoHandler.CreateTodo)
			protected.PUT("/todos/:uuid", handlers.TodoHandler.UpdateTodo)
			protected.PATCH("/todos/:uuid/toggle", handlers.TodoHandler.ToggleComplete)
			protected.DELETE("/todos/:uuid", handlers.TodoHandler.DeleteByUUID)
			protected.DELETE("/todos", handlers.TodoHandler.DeleteAll)
		}

		if handlers.ActivityHandler != nil {
			protected.GET("/activity", handlers.ActivityHandler.GetRecent)
			protected.POST("/activity", handlers.ActivityHandler.Create)
		}

		if handlers.ReportHandler != nil {
			protected.GET("/reports", handlers.ReportHandler.GetReport)
		}

		if handlers.CategoryHandler != nil {
			protected.GET("/categories", handlers.CategoryHandler.GetAll)
			protected.POST("/categories", handlers.CategoryHandler.Create)
			protected.DELETE("/categories/:id", handlers.CategoryHandler.Delete)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouterForTests wires only routing and auth, with no telemetry or
// rate limiting, so handler tests stay fast and quiet.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	setupPublicRoutes(router, handlers)
	setupProtectedRoutes(router, handlers)

	return router
}
