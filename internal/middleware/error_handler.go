package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/logger"
)

// ErrorHandler answers requests whose handler recorded an error with c.Error but wrote
// nothing. Binding errors become a 400 about the request body; anything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		status, key := http.StatusInternalServerError, i18n.ErrKeyInternalError
		if err.IsType(gin.ErrorTypeBind) {
			status, key = http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody
		}

		log := logger.FromContext(c.Request.Context(), logger.Logger())
		event := log.Error()
		if status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Err(err.Err).
			Str("household_id", c.GetString(ContextHouseholdID)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("errors", len(c.Errors)).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(GetRequestID(c)))
	}
}
