// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// Without a database the inventory lives in memory and is lost on restart.
// The returned close function flushes queued logs and must run after the server stops.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	storage := InitializeStorage(dbComponents)

	// Initialize business services
	serviceComponents := InitializeServices(cfg, storage)

	tokens := InitializeAuth(cfg.Auth)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, tokens, cfg)

	router := http.NewRouter(routerComponents.Routes, routerComponents.HealthHandler, routerComponents.Config)
	return router, func() {
		if routerComponents.LogWriter != nil {
			routerComponents.LogWriter.Close()
		}
	}
}
