package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout bounds how long inventory and store calls may run for one request.
	Timeout time.Duration
	// ErrorMessage is used when no translator is loaded.
	ErrorMessage string
}

// DefaultTimeoutConfig returns sensible defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout puts a deadline on the request context.
// Handlers run on the request goroutine and pass the context down to the stores, so a
// slow MongoDB call returns context.DeadlineExceeded instead of holding the request.
// If the deadline passed and the handler wrote nothing, a 504 is sent.
// Panics propagate to Recovery unchanged.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}
		writeTimeout(c, cfg.ErrorMessage)
	}
}

func writeTimeout(c *gin.Context, fallback string) {
	message := fallback
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}
	c.AbortWithStatusJSON(http.StatusGatewayTimeout,
		dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
}

// TimeoutWithDuration is a convenience function to create timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
