package http

import (
	"github.com/gin-gonic/gin"

	"github.com/lonamusi/trending-collections/internal/auth"
	"github.com/lonamusi/trending-collections/internal/database"
)

// RouterConfig carries the dependencies of every endpoint. Passing one
// struct keeps the wiring explicit and testable — there are no package-level
// singletons anywhere in the request path.
type RouterConfig struct {
	Database       *database.Database
	TrendStore     TrendStore
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Registration and login are the only unauthenticated write paths
	authController := auth.NewAuthController(cfg.AuthService)
	authController.RegisterRoutes(router)

	trendsController := NewTrendsController(cfg.TrendStore)

	// Unauthenticated diagnostic read
	router.GET("/api/test-trends", trendsController.ListTrendsUnauthenticated)

	// Every trend endpoint requires a valid bearer token; deletion
	// additionally requires the admin flag, checked against live state.
	protected := router.Group("/api", cfg.AuthMiddleware.RequireAuth())
	protected.GET("/trends", trendsController.ListTrends)
	protected.GET("/trends/:id", trendsController.GetTrend)
	protected.POST("/trends", trendsController.CreateTrend)
	protected.PUT("/trends/:id", trendsController.UpdateTrend)
	protected.DELETE("/trends/:id", cfg.AuthMiddleware.RequireAdmin(), trendsController.DeleteTrend)

	return router
}
