//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAuth(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.AuthConfig
		expectToken bool
	}{
		{
			name: "disabled",
			cfg:  config.AuthConfig{Enabled: false, JWTSecretKey: "secret"},
		},
		{
			name: "api keys keep header identity",
			cfg:  config.AuthConfig{Enabled: true, APIKeys: map[string]string{"k": ""}, JWTSecretKey: "secret"},
		},
		{
			name:        "jwt",
			cfg:         config.AuthConfig{Enabled: true, JWTSecretKey: "secret", AccessTokenTTL: time.Minute},
			expectToken: true,
		},
		{
			name:        "jwt with development secret",
			cfg:         config.AuthConfig{Enabled: true, JWTSecretKey: defaultJWTSecret, AccessTokenTTL: time.Minute},
			expectToken: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := InitializeAuth(tt.cfg)
			if !tt.expectToken {
				assert.Nil(t, tokens)
				return
			}
			require.NotNil(t, tokens)

			token, err := tokens.GenerateAccessToken(dto.Claims{UserID: "alice", HouseholdID: "home"})
			require.NoError(t, err)
			claims, err := tokens.ValidateAccessToken(context.Background(), token)
			require.NoError(t, err)
			assert.Equal(t, "alice", claims.UserID)
			assert.Equal(t, "home", claims.HouseholdID)
		})
	}
}
