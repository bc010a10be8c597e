//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/guttosm/pantry-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices(t *testing.T) {
	cfg := config.Config{
		Inventory: config.InventoryConfig{MaxConflictRetries: 2, DefaultUnitSystem: "metric"},
	}
	components := InitializeServices(cfg, InitializeStorage(nil))

	require.NotNil(t, components)
	require.NotNil(t, components.Inventory)
	require.NotNil(t, components.Locations)

	ctx := context.Background()
	scope := model.OwnerScope{UserID: "alice", HouseholdID: "home"}

	pantry, err := components.Locations.Create(ctx, scope, "Pantry", model.StoragePantry, true)
	require.NoError(t, err)

	pkgs, err := components.Inventory.AddStock(ctx, scope, service.AddStockInput{
		ItemName:     "Rice",
		Unit:         quantity.Gram,
		PackageSize:  decimal.NewFromInt(1000),
		FullPackages: 2,
		LocationID:   pantry.ID,
	})
	require.NoError(t, err)
	assert.Len(t, pkgs, 2)

	// Both services share the same store
	groups, err := components.Inventory.ListGroups(ctx, scope)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Total().Equal(decimal.NewFromInt(2000)))
}

func TestLeftoverPolicy(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.InventoryConfig
		expected inventory.LeftoverPolicy
	}{
		{
			name:     "unset falls back to defaults",
			cfg:      config.InventoryConfig{},
			expected: inventory.DefaultLeftoverPolicy(),
		},
		{
			name:     "configured days",
			cfg:      config.InventoryConfig{LeftoverFridgeDays: 4, LeftoverFreezerDays: 90, LeftoverPantryDays: 1},
			expected: inventory.LeftoverPolicy{FridgeDays: 4, FreezerDays: 90, PantryDays: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, leftoverPolicy(tt.cfg))
		})
	}
}

func TestInitializeNutritionEstimator(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	tests := []struct {
		name      string
		cfg       config.LLMConfig
		expectNil bool
	}{
		{
			name:      "disabled",
			cfg:       config.LLMConfig{Enabled: false, APIKey: "sk-test"},
			expectNil: true,
		},
		{
			name:      "enabled without a key",
			cfg:       config.LLMConfig{Enabled: true},
			expectNil: true,
		},
		{
			name:      "enabled with a key",
			cfg:       config.LLMConfig{Enabled: true, APIKey: "sk-test", Model: "gpt-4o-mini", Timeout: time.Second},
			expectNil: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator := initializeNutritionEstimator(tt.cfg)
			if tt.expectNil {
				assert.Nil(t, estimator)
			} else {
				assert.NotNil(t, estimator)
			}
		})
	}
}
