package router

import (
	"github.com/gin-gonic/gin"

	"github.com/diatrack/diatrack-v2/backend/internal/api"
	"github.com/diatrack/diatrack-v2/backend/internal/middleware"
)

// SetupRouter configures the application routes. The rate limiter is
// optional; when nil (no redis configured) assessment submissions are not
// throttled.
func SetupRouter(
	assessmentHandler *api.AssessmentHandler,
	limiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.RateLimitMiddleware())
	}
	assessmentHandler.RegisterRoutes(v1)

	return router
}
