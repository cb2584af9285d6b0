package router

import (
	"farmer-assist/backend/internal/api"
	"farmer-assist/backend/pkg/config"
	"farmer-assist/backend/pkg/di"
	"farmer-assist/backend/pkg/errors"
	"farmer-assist/backend/pkg/logger"
	"farmer-assist/backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	cfg := container.Config

	// Configure Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Use the logger middleware first to capture all requests
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(logger.Middleware(container.Logger))

	// Add custom error handler middleware
	engine.Use(errors.ErrorHandler())

	// Add custom recovery middleware with structured logging instead of default
	engine.Use(errors.RecoveryWithLogger())

	// Apply rate limiting to all routes
	rateLimiter := middleware.NewRateLimiter(container.Logger)
	engine.Use(rateLimiter.Middleware())

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.Engine.Use(corsMiddleware())

	chatHandler := api.NewChatHandler(r.Container.ChatService, r.Logger)
	lookupHandler := api.NewLookupHandler(r.Container.WeatherAdapter, r.Container.MarketAdapter, r.Logger)
	healthHandler := api.NewHealthHandler(r.Container.HealthChecker)

	// Chat UI page
	r.Engine.LoadHTMLGlob("templates/*.html")
	r.Engine.GET("/", api.Index)

	// API version 1 routes
	v1 := r.Engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)
		v1.POST("/chat", chatHandler.Chat)
		v1.GET("/history/:sessionId", chatHandler.History)
		v1.GET("/history/:sessionId/export", chatHandler.Export)
		v1.GET("/weather", lookupHandler.Weather)
		v1.GET("/market", lookupHandler.Market)
		v1.GET("/crops", lookupHandler.Crops)
	}

	// Legacy unprefixed routes for backward compatibility
	r.Engine.GET("/health", healthHandler.Health)
	r.Engine.POST("/chat", chatHandler.Chat)
	r.Engine.GET("/weather", lookupHandler.Weather)
	r.Engine.GET("/market", lookupHandler.Market)
	r.Engine.GET("/crops", lookupHandler.Crops)
	r.Engine.GET("/export", chatHandler.Export)
}

// corsMiddleware allows the chat UI to call the API from any origin
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, Authorization, Origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
