package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/comment-pulse/internal/logger"
	"github.com/jonesrussell/comment-pulse/internal/telemetry"
)

// SetupRoutes configures all API routes and middleware.
func SetupRoutes(router *gin.Engine, handler *Handler, tp *telemetry.Provider, log logger.Logger) {
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))

	// Health and metrics
	router.GET("/health", handler.HealthCheck)
	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", handler.Analyze)           // POST /api/v1/analyze
		v1.GET("/quick-analyze", handler.QuickAnalyze) // GET /api/v1/quick-analyze
	}
}
