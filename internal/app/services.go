// Package app provides service initialization.
package app

import (
	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/guttosm/pantry-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Inventory service.InventoryService
	Locations service.LocationService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config, storage *StorageComponents) *ServiceComponents {
	planner := inventory.NewPlanner(inventory.WithLeftoverPolicy(leftoverPolicy(cfg.Inventory)))

	opts := []service.InventoryOption{
		service.WithPlanner(planner),
		service.WithMaxConflictRetries(cfg.Inventory.MaxConflictRetries),
	}

	if estimator := initializeNutritionEstimator(cfg.LLM); estimator != nil {
		opts = append(opts, service.WithNutritionEstimator(estimator))
	}

	return &ServiceComponents{
		Inventory: service.NewInventoryService(storage.Packages, storage.Locations, opts...),
		Locations: service.NewLocationService(storage.Locations),
	}
}

// leftoverPolicy falls back to the defaults when no shelf life is configured.
func leftoverPolicy(cfg config.InventoryConfig) inventory.LeftoverPolicy {
	if cfg.LeftoverFridgeDays == 0 && cfg.LeftoverFreezerDays == 0 && cfg.LeftoverPantryDays == 0 {
		return inventory.DefaultLeftoverPolicy()
	}
	return inventory.LeftoverPolicy{
		FridgeDays:  cfg.LeftoverFridgeDays,
		FreezerDays: cfg.LeftoverFreezerDays,
		PantryDays:  cfg.LeftoverPantryDays,
	}
}

// initializeNutritionEstimator returns nil when the estimator is disabled or cannot be built;
// cooking then proceeds without an estimate.
func initializeNutritionEstimator(cfg config.LLMConfig) service.NutritionEstimator {
	if !cfg.Enabled {
		return nil
	}

	estimator, err := service.NewLLMNutritionEstimator(service.LLMConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create nutrition estimator - continuing without it")
		return nil
	}

	log.Info().Str("model", cfg.Model).Msg("Nutrition estimator enabled")
	return estimator
}
