package routes

import (
	"taskmanager/internal/adapter/http/handler"
	"taskmanager/pkg/auth"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/middleware"
	"taskmanager/pkg/telemetry"

	"github.com/gin-gonic/gin"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
	JWT         *auth.JWT
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, log *logger.AppLogger, limiter *middleware.RateLimiter) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	middleware.SetupGinMiddleware(router, "taskmanager", metrics, log)

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	if limiter != nil {
		router.Use(limiter.RateLimitMiddleware())
	}

	registerRoutes(router, handlers)

	return router
}

// SetupRouterForTests wires the same routes without telemetry or rate
// limiting.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerRoutes(router, handlers)

	return router
}

func registerRoutes(router *gin.Engine, handlers HandlersConfig) {
	if handlers.AuthHandler != nil {
		setupPublicRoutes(router, handlers.AuthHandler)
	}

	if handlers.UserHandler != nil || handlers.TaskHandler != nil {
		setupProtectedRoutes(router, handlers)
	}
}

func setupPublicRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	public := router.Group("/api/auth")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/register", authHandler.Register)
	}
}

func setupProtectedRoutes(router *gin.Engine, handlers HandlersConfig) {
	protected := router.Group("/api")

	if handlers.JWT != nil {
		protected.Use(handlers.JWT.GinMiddleware())
	}

	if handlers.UserHandler != nil {
		users := protected.Group("/users")
		{
			users.POST("", handlers.UserHandler.Create)
			users.GET("", handlers.UserHandler.GetAll)
			users.GET("/:id", handlers.UserHandler.GetByID)
			users.GET("/email/:email", handlers.UserHandler.GetByEmail)
			users.GET("/role/:role", handlers.UserHandler.GetByRole)
			users.PUT("/:id", handlers.UserHandler.Update)
			users.DELETE("/:id", handlers.UserHandler.Delete)
		}
	}

	if handlers.TaskHandler != nil {
		tasks := protected.Group("/tasks")
		{
			tasks.POST("", handlers.TaskHandler.Create)
			tasks.GET("", handlers.TaskHandler.GetAll)
			tasks.GET("/:id", handlers.TaskHandler.GetByID)
			tasks.PUT("/:id", handlers.TaskHandler.Update)
			tasks.DELETE("/:id", handlers.TaskHandler.Delete)
			tasks.POST("/:id/assign/:userId", handlers.TaskHandler.Assign)
			tasks.POST("/:id/status/:status", handlers.TaskHandler.ChangeStatus)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
