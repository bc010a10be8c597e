// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/circuitbreaker"
	"github.com/guttosm/pantry-service/internal/metrics"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/guttosm/pantry-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                      *repository.MongoDB
	PackagesRepo            repository.PackageRepositoryInterface
	LocationsRepo           repository.LocationRepositoryInterface
	LoggingService          service.LoggingService
	PackagesCircuitBreaker  *circuitbreaker.CircuitBreaker
	LocationsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker      *circuitbreaker.CircuitBreaker
}

// StorageComponents holds the stores the inventory services run against.
type StorageComponents struct {
	Packages  repository.PackageRepositoryInterface
	Locations repository.LocationRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	packagesCB := newCircuitBreaker("mongodb-packages", cfg)
	locationsCB := newCircuitBreaker("mongodb-locations", cfg)
	logsCB := newCircuitBreaker("mongodb-logs", cfg)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                      db,
		PackagesRepo:            repository.NewPackagesRepositoryWithCircuitBreaker(repository.NewPackagesRepository(db), packagesCB),
		LocationsRepo:           repository.NewLocationsRepositoryWithCircuitBreaker(repository.NewLocationsRepository(db), locationsCB),
		LoggingService:          service.NewLoggingService(logsRepo),
		PackagesCircuitBreaker:  packagesCB,
		LocationsCircuitBreaker: locationsCB,
		LogsCircuitBreaker:      logsCB,
	}
}

// InitializeStorage picks the MongoDB stores when available and in-memory stores otherwise.
func InitializeStorage(db *DatabaseComponents) *StorageComponents {
	if db != nil && db.PackagesRepo != nil && db.LocationsRepo != nil {
		return &StorageComponents{Packages: db.PackagesRepo, Locations: db.LocationsRepo}
	}

	log.Warn().Msg("Using in-memory inventory store")
	return &StorageComponents{
		Packages:  repository.NewMemoryPackagesRepository(),
		Locations: repository.NewMemoryLocationsRepository(),
	}
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.IsStoreFailure,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
		},
	})
}

// mongoChecker pings MongoDB for the readiness check.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check(ctx context.Context) error {
	return m.db.HealthCheck(ctx)
}
