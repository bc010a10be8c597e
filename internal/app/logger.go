// Package app provides logger initialization.
package app

import (
	"io"
	"os"

	"github.com/guttosm/pantry-service/internal/logger"
	"github.com/rs/zerolog/log"
)

const serviceName = "pantry-service"

// InitializeLogger initializes the JSON logger from LOG_LEVEL and LOG_PRETTY and tags every entry with the service name.
func InitializeLogger() {
	initializeLogger(os.Stderr)
}

func initializeLogger(w io.Writer) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	pretty := os.Getenv("LOG_PRETTY") == "true"
	logger.InitWithWriter(logLevel, pretty, w)
	log.Logger = log.With().Str("service", serviceName).Logger()
}
