package middleware

import (
	"fmt"
	"time"

	"storerating/internal/apperror"
	"storerating/internal/logger"
	"storerating/internal/metrics"
	"storerating/internal/microservices/http-api/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags the request with an id, puts a request-scoped logger in
// its context and logs the outcome once the handler chain returns.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := log.WithFields(c.Request.Context(), map[string]any{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Zerolog(c.Request.Context()).Info()
		if status >= 500 {
			event = log.Zerolog(c.Request.Context()).Error()
		} else if status >= 400 {
			event = log.Zerolog(c.Request.Context()).Warn()
		}
		event.
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request completed")
	}
}

// Metrics records request counts and latency keyed by the matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// Recovery turns a panic into an INTERNAL_ERROR response.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				response.Error(c, log, apperror.Internal(err, "panic recovered"))
			}
		}()
		c.Next()
	}
}
