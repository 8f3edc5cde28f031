package api

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streamlens/content-analysis/internal/logger"
	"github.com/streamlens/content-analysis/internal/ratelimit"
	"github.com/streamlens/content-analysis/internal/telemetry"
)

// AuthMiddleware checks the X-API-KEY header against the configured secret
// using a constant-time comparison. Fail-closed: with no secret configured
// every request is rejected rather than letting the server run open.
func AuthMiddleware(apiKey string, tp *telemetry.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-API-KEY")
		if apiKey == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(apiKey)) != 1 {
			if tp != nil {
				tp.Metrics.AuthFailedTotal.Inc()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, errBody(errInvalidAPIKey))
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware rejects requests over the client's quota with 429.
func RateLimitMiddleware(limiter *ratelimit.ClientLimiter, tp *telemetry.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			if tp != nil {
				tp.Metrics.RateLimitedTotal.Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errBody(errRateLimited))
			return
		}
		c.Next()
	}
}

// ObserveMiddleware records request metrics and one structured log line per
// request. Health probes are skipped to keep the logs readable.
func ObserveMiddleware(log logger.Logger, tp *telemetry.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		if tp != nil {
			tp.Metrics.RequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
			tp.Metrics.RequestDuration.WithLabelValues(path).Observe(duration.Seconds())
		}

		if path == "/health" || path == "/metrics" {
			return
		}

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Duration("duration", duration),
			logger.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			log.Error("HTTP request failed", append(fields, logger.Any("errors", c.Errors.Errors()))...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}

// RecoveryMiddleware converts panics into opaque 500 responses. Nothing from
// the panic value reaches the client.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered",
					logger.Any("error", err),
					logger.String("path", c.Request.URL.Path),
					logger.String("method", c.Request.Method),
					logger.String("client_ip", c.ClientIP()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errBody(errAnalysisFailed))
			}
		}()
		c.Next()
	}
}
