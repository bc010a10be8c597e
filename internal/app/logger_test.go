//go:build !integration

package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobalLogger undoes InitializeLogger's changes to the global logger after t.
func restoreGlobalLogger(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name       string
		logLevel   string
		wantLevels []string
	}{
		{
			name:       "defaults to info",
			wantLevels: []string{"info", "warn", "error"},
		},
		{
			name:       "debug shows planner detail",
			logLevel:   "debug",
			wantLevels: []string{"debug", "info", "warn", "error"},
		},
		{
			name:       "warn keeps conflicts and failures",
			logLevel:   "warn",
			wantLevels: []string{"warn", "error"},
		},
		{
			name:       "unknown level falls back to info",
			logLevel:   "verbose",
			wantLevels: []string{"info", "warn", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobalLogger(t)
			t.Setenv("LOG_LEVEL", tt.logLevel)
			t.Setenv("LOG_PRETTY", "false")

			var buf bytes.Buffer
			initializeLogger(&buf)
			log.Debug().Msg("selection planned")
			log.Info().Msg("stock added")
			log.Warn().Msg("concurrent update, retrying")
			log.Error().Msg("diff left a negative bucket")

			var levels []string
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
				assert.Equal(t, serviceName, entry["service"])
				assert.NotEmpty(t, entry["time"])
				levels = append(levels, entry["level"].(string))
			}
			assert.Equal(t, tt.wantLevels, levels)
		})
	}
}

func TestInitializeLogger_Pretty(t *testing.T) {
	restoreGlobalLogger(t)
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_PRETTY", "true")

	var buf bytes.Buffer
	initializeLogger(&buf)
	log.Info().Msg("location created")

	out := buf.String()
	assert.Contains(t, out, "location created")
	assert.Contains(t, out, serviceName)
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}
