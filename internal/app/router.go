// Package app provides router configuration.
package app

import (
	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/http"
	"github.com/guttosm/pantry-service/internal/middleware"
	"github.com/guttosm/pantry-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        *http.InventoryRoutes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// LogWriter batches request and audit logs; nil without a database.
	LogWriter *middleware.LogWriter
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	tokens service.TokenService,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var logWriter *middleware.LogWriter
	if dbComponents != nil && dbComponents.LoggingService != nil {
		logWriter = middleware.NewLogWriter(dbComponents.LoggingService, middleware.DefaultLogWriterConfig())
		loggingService = logWriter
	}

	var handlerOpts []http.HandlerOption
	if cfg.Server.CookRateLimit > 0 {
		handlerOpts = append(handlerOpts,
			http.WithCookLimiter(middleware.NewRateLimiter(cfg.Server.CookRateLimit, cfg.Server.RateWindow)))
	}

	routes := http.NewInventoryRoutes(
		http.NewHandler(services.Inventory, handlerOpts...),
		http.NewLocationsHandler(services.Locations, quantity.UnitSystem(cfg.Inventory.DefaultUnitSystem)),
	)

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.SetStorage("mongodb")
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
		if dbComponents.PackagesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_packages", dbComponents.PackagesCircuitBreaker)
		}
		if dbComponents.LocationsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_locations", dbComponents.LocationsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker, http.Optional())
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		HouseholdRateLimit: cfg.Server.HouseholdRateLimit,
		EnableAuth:         cfg.Auth.Enabled,
		APIKeys:            cfg.Auth.APIKeys,
		EnableIdempotency:  true,
		IdempotencyTTL:     cfg.Server.IdempotencyTTL,
		RequestTimeout:     cfg.Server.RequestTimeout,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		LoggingService:     loggingService,
		TokenService:       tokens,
	}

	return &RouterComponents{
		Routes:        routes,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		LogWriter:     logWriter,
	}
}
