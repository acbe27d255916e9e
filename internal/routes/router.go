package routes

import (
	"time"

	"todo-api/internal/config"
	"todo-api/internal/controller"
	"todo-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with middleware and all routes registered.
func Router(cfg config.Config, h *controller.Handler) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Health for load balancers and probes
	router.GET("/health", controller.Health)

	router.GET("/todos", h.ListTodos)
	router.POST("/todos", h.CreateTodo)
	router.GET("/todos/:id", h.GetTodo)
	router.PUT("/todos/:id", h.UpdateTodo)
	router.DELETE("/todos/:id", h.DeleteTodo)

	router.POST("/todos/generate", h.GenerateTodos)
	router.GET("/todos/generate/info", h.GenerationInfo)

	return router
}
