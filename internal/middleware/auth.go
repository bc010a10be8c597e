package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/i18n"
)

// APIKeyHeader is the HTTP header name for API key authentication.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth lets a trusted gateway assert the identity headers read by HeaderIdentity.
// keys maps each API key to the household it may act for; an empty household lets the key
// act for any household. A bound key fills in a missing X-Household-ID and rejects a
// different one with 403, so one household's gateway key cannot read another's pantry.
// With no keys configured the middleware is a no-op.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			abortAPIKey(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
			return
		}
		household, ok := keys[key]
		if !ok {
			abortAPIKey(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
			return
		}

		if household != "" {
			asserted := strings.TrimSpace(c.GetHeader(HouseholdIDHeader))
			switch asserted {
			case "":
				c.Request.Header.Set(HouseholdIDHeader, household)
			case household:
			default:
				abortAPIKey(c, http.StatusForbidden, i18n.ErrKeyHouseholdNotAllowed)
				return
			}
		}

		c.Next()
	}
}

func abortAPIKey(c *gin.Context, status int, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c)))
}
