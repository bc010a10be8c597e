// Package app provides authentication initialization.
package app

import (
	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/service"
	"github.com/rs/zerolog/log"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// InitializeAuth returns the bearer token validator, or nil when identity comes from headers.
// Tokens are used when auth is enabled and no API keys are configured; API keys
// instead guard the trusted identity headers set by a gateway.
func InitializeAuth(cfg config.AuthConfig) service.TokenService {
	if !cfg.Enabled {
		log.Warn().Msg("Authentication disabled - trusting identity headers")
		return nil
	}
	if len(cfg.APIKeys) > 0 {
		log.Info().Int("keys", len(cfg.APIKeys)).Msg("API key authentication enabled")
		return nil
	}

	if cfg.JWTSecretKey == "" || cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn().Msg("JWT secret is the development default - set JWT_SECRET_KEY in production")
	}
	log.Info().Dur("access_token_ttl", cfg.AccessTokenTTL).Msg("JWT authentication enabled")
	return service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg))
}
