package middleware

import (
	"storerating/internal/apperror"
	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects callers over their quota with 429. Keys are client IPs.
func RateLimit(limiter ratelimit.Limiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			response.Error(c, log, apperror.New(apperror.CodeRateLimit, ""))
			return
		}
		c.Next()
	}
}
