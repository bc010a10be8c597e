package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/service"
)

// Context keys set by the identity middlewares.
const (
	ContextUserID      = "user_id"
	ContextHouseholdID = "household_id"
	ContextClaims      = "user_claims"
)

// Identity headers trusted when authentication is disabled.
const (
	UserIDHeader      = "X-User-ID"
	HouseholdIDHeader = "X-Household-ID"
)

// JWTAuth returns a middleware that validates bearer tokens and stores the caller's identity.
func JWTAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.ValidateAccessToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// HeaderIdentity trusts X-User-ID and X-Household-ID. Only for deployments without authentication.
func HeaderIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			abortUnauthorized(c, i18n.ErrKeyIdentityRequired)
			return
		}
		setIdentity(c, &dto.Claims{
			UserID:      userID,
			HouseholdID: strings.TrimSpace(c.GetHeader(HouseholdIDHeader)),
		})
		c.Next()
	}
}

// GetScope returns the visibility scope of the authenticated caller.
func GetScope(c *gin.Context) (model.OwnerScope, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return model.OwnerScope{}, false
	}
	claims, ok := v.(*dto.Claims)
	if !ok || claims.UserID == "" {
		return model.OwnerScope{}, false
	}
	return claims.Scope(), true
}

// GetUserID returns the authenticated user id, or "" when the request is anonymous.
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func setIdentity(c *gin.Context, claims *dto.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextHouseholdID, claims.HouseholdID)
	c.Set(ContextClaims, claims)
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
