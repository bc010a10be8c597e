package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/logger"
	"github.com/guttosm/pantry-service/internal/service"
)

const logStoreTimeout = 5 * time.Second

// RequestLogger returns a middleware that logs HTTP request details in JSON format.
// It logs: request ID, method, path, status code, latency, IP, and user agent.
// Entries go to loggingService, which in the app is a LogWriter batching them off the request path.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		// Create structured log entry for console
		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		// Log level based on status code
		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		// Store in MongoDB if logging service is provided
		if loggingService != nil {
			entry := &model.LogEntry{
				Timestamp:  time.Now(),
				Level:      getLogLevel(statusCode),
				Message:    "HTTP request",
				RequestID:  requestID,
				Method:     method,
				Path:       path,
				StatusCode: statusCode,
				Duration:   latency.Milliseconds(),
				IP:         ip,
				UserAgent:  userAgent,
			}

			entry.UserID = GetUserID(c)
			entry.HouseholdID = c.GetString(ContextHouseholdID)
			if key := c.GetHeader(IdempotencyKeyHeader); key != "" {
				entry.WithField("idempotency_key", key)
				if c.Writer.Header().Get(IdempotencyReplayedHeader) == "true" {
					entry.WithField("idempotent_replay", true)
				}
			}

			storeLog(loggingService, entry)
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}

// storeLog hands entry to the logging service on a context detached from the request.
func storeLog(loggingService service.LoggingService, entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), logStoreTimeout)
	defer cancel()
	if err := loggingService.CreateLog(ctx, entry); err != nil {
		log := logger.Logger()
		log.Debug().Err(err).Str("request_id", entry.RequestID).Msg("Log entry not stored")
	}
}
