package api

import (
	"github.com/gin-gonic/gin"

	"github.com/streamlens/content-analysis/internal/ratelimit"
	"github.com/streamlens/content-analysis/internal/telemetry"
)

// RouteDeps carries everything route setup needs beyond the handler.
type RouteDeps struct {
	APIKey         string
	GlobalLimiter  *ratelimit.ClientLimiter
	AnalyzeLimiter *ratelimit.ClientLimiter
	Telemetry      *telemetry.Provider
}

// SetupRoutes configures all API routes. Health and metrics stay outside the
// rate-limited group so probes and scrapes are never throttled.
func SetupRoutes(router *gin.Engine, handler *Handler, deps RouteDeps) {
	router.GET("/health", handler.HealthCheck)
	if deps.Telemetry != nil {
		router.GET("/metrics", gin.WrapH(deps.Telemetry.Handler()))
	}

	limited := router.Group("/")
	limited.Use(RateLimitMiddleware(deps.GlobalLimiter, deps.Telemetry))

	analyze := limited.Group("/analyze")
	analyze.Use(
		AuthMiddleware(deps.APIKey, deps.Telemetry),
		RateLimitMiddleware(deps.AnalyzeLimiter, deps.Telemetry),
	)
	analyze.POST("", handler.Analyze)
}
