//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/pantry-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name           string
		cfg            config.Config
		headers        map[string]string
		expectedStatus int
	}{
		{
			name: "header identity with in-memory store",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080", RateLimit: 100, RateWindow: time.Minute, CookRateLimit: 5},
			},
			headers:        map[string]string{"X-User-ID": "alice", "X-Household-ID": "home"},
			expectedStatus: http.StatusOK,
		},
		{
			name: "api keys guard the identity headers",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth:   config.AuthConfig{Enabled: true, APIKeys: map[string]string{"test-key": ""}},
			},
			headers:        map[string]string{"X-User-ID": "alice"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "jwt auth ignores identity headers",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Auth:   config.AuthConfig{Enabled: true, JWTSecretKey: "app-test-secret", AccessTokenTTL: time.Minute},
			},
			headers:        map[string]string{"X-User-ID": "alice"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "database enabled but unreachable falls back to memory",
			cfg: config.Config{
				Server: config.ServerConfig{Port: "8080"},
				Database: config.DatabaseConfig{
					Enabled:      true,
					URI:          "mongodb://invalid-host-that-does-not-exist:27017",
					DatabaseName: "pantry_test",
				},
			},
			headers:        map[string]string{"X-User-ID": "alice"},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, closeApp := InitializeApp(tt.cfg)
			defer closeApp()
			require.NotNil(t, router)

			req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}
