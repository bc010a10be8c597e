// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
// Quantities are decimals; they accept JSON numbers or numeric strings.
package dto

import (
	"strings"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

func knownUnit(field, value string) error {
	if _, err := quantity.ParseUnit(value); err != nil {
		return &ValidationError{Field: field, Message: "unknown unit"}
	}
	return nil
}

func nonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return &ValidationError{Field: field, Message: "must not be negative"}
	}
	return nil
}

// NutritionFactsRequest is per-serving nutrition supplied with stock or a recipe.
type NutritionFactsRequest struct {
	Calories        float64 `json:"calories" example:"320"`
	Protein         float64 `json:"protein" example:"12.5"`
	Carbs           float64 `json:"carbs" example:"40"`
	Fat             float64 `json:"fat" example:"9"`
	Fiber           float64 `json:"fiber" example:"3"`
	Sugar           float64 `json:"sugar" example:"5"`
	ServingSize     float64 `json:"serving_size" example:"250"`
	ServingSizeUnit string  `json:"serving_size_unit" example:"g"`
} // @name NutritionFactsRequest

// AddStockRequest represents the JSON request body for adding packages.
//
// @Description Adds full_packages unopened packages of package_size, plus one opened package holding opened_remaining when it is positive.
// @Example {"item_name": "Flour", "unit": "g", "package_size": 500, "full_packages": 2, "location_id": "pantry-1"}
type AddStockRequest struct {
	ItemName        string                 `json:"item_name" example:"Flour"`
	Unit            string                 `json:"unit" example:"g"`
	PackageSize     decimal.Decimal        `json:"package_size" swaggertype:"number" example:"500"`
	FullPackages    int                    `json:"full_packages" example:"2"`
	OpenedRemaining decimal.Decimal        `json:"opened_remaining" swaggertype:"number" example:"0"`
	ExpiryDate      *time.Time             `json:"expiry_date,omitempty" example:"2026-12-31T00:00:00Z"`
	LocationID      string                 `json:"location_id" example:"pantry-1"`
	IsPrivate       bool                   `json:"is_private"`
	Nutrition       *NutritionFactsRequest `json:"nutrition,omitempty"`
} // @name AddStockRequest

// Validate performs custom validation on the add stock request.
func (r *AddStockRequest) Validate() error {
	if err := required("item_name", r.ItemName); err != nil {
		return err
	}
	if err := knownUnit("unit", r.Unit); err != nil {
		return err
	}
	if !r.PackageSize.IsPositive() {
		return &ValidationError{Field: "package_size", Message: "must be positive"}
	}
	if r.FullPackages < 0 {
		return &ValidationError{Field: "full_packages", Message: "must not be negative"}
	}
	if err := nonNegative("opened_remaining", r.OpenedRemaining); err != nil {
		return err
	}
	return required("location_id", r.LocationID)
}

// SizeSelectionRequest is the amount requested from one package size.
type SizeSelectionRequest struct {
	FullCount     int             `json:"full_count" example:"1"`
	PartialAmount decimal.Decimal `json:"partial_amount" swaggertype:"number" example:"0.4"`
} // @name SizeSelectionRequest

// TransferRequest represents the JSON request body for move, spoil, consume and set_privacy.
//
// @Description Selects amounts per package size (keyed by size, e.g. "500") within one group.
// @Example {"group_key": "flour|g", "operation": "move", "selections": {"500": {"full_count": 1, "partial_amount": 100}}, "destination_location_id": "fridge-1"}
type TransferRequest struct {
	GroupKey              string                          `json:"group_key" example:"flour|g"`
	Operation             string                          `json:"operation" example:"move" enums:"move,spoil,consume,set_privacy"`
	Selections            map[string]SizeSelectionRequest `json:"selections"`
	DestinationLocationID string                          `json:"destination_location_id,omitempty" example:"fridge-1"`
	MakePrivate           bool                            `json:"make_private,omitempty"`
} // @name TransferRequest

// Validate performs custom validation on the transfer request.
func (r *TransferRequest) Validate() error {
	if err := required("group_key", r.GroupKey); err != nil {
		return err
	}
	if err := required("operation", r.Operation); err != nil {
		return err
	}
	if len(r.Selections) == 0 {
		return &ValidationError{Field: "selections", Message: "at least one package size is required"}
	}
	for size, sel := range r.Selections {
		if sel.FullCount < 0 {
			return &ValidationError{Field: "selections." + size + ".full_count", Message: "must not be negative"}
		}
		if err := nonNegative("selections."+size+".partial_amount", sel.PartialAmount); err != nil {
			return err
		}
	}
	return nil
}

// EatItemRequest asks for an amount of one group. An empty unit means the group's own unit.
type EatItemRequest struct {
	GroupKey string          `json:"group_key" example:"milk|ml"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" example:"250"`
	Unit     string          `json:"unit,omitempty" example:"ml"`
} // @name EatItemRequest

// EatRequest represents the JSON request body for eating from inventory.
type EatRequest struct {
	Items []EatItemRequest `json:"items"`
} // @name EatRequest

// Validate performs custom validation on the eat request.
func (r *EatRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "at least one item is required"}
	}
	for _, it := range r.Items {
		if err := required("items.group_key", it.GroupKey); err != nil {
			return err
		}
		if !it.Amount.IsPositive() {
			return &ValidationError{Field: "items.amount", Message: "must be positive"}
		}
		if it.Unit != "" {
			if err := knownUnit("items.unit", it.Unit); err != nil {
				return err
			}
		}
	}
	return nil
}

// IngredientRequest is one recipe line.
type IngredientRequest struct {
	Name   string          `json:"name" example:"flour"`
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"2"`
	Unit   string          `json:"unit" example:"cup"`
} // @name IngredientRequest

// LeftoverRequest stores some of the uneaten servings in a location.
type LeftoverRequest struct {
	LocationID string `json:"location_id" example:"fridge-1"`
	Servings   int    `json:"servings" example:"3"`
	IsPrivate  bool   `json:"is_private"`
} // @name LeftoverRequest

// CookRequest represents the JSON request body for cooking a recipe.
//
// @Description The full recipe is cooked; ingredients are scaled by (servings_eaten + leftover servings) / total_servings.
type CookRequest struct {
	RecipeName    string                 `json:"recipe_name" example:"Pancakes"`
	Ingredients   []IngredientRequest    `json:"ingredients"`
	TotalServings int                    `json:"total_servings" example:"4"`
	ServingsEaten int                    `json:"servings_eaten" example:"1"`
	Leftovers     []LeftoverRequest      `json:"leftovers,omitempty"`
	Nutrition     *NutritionFactsRequest `json:"nutrition,omitempty"`
} // @name CookRequest

// Validate performs custom validation on the cook request.
func (r *CookRequest) Validate() error {
	if r.TotalServings <= 0 {
		return &ValidationError{Field: "total_servings", Message: "must be positive"}
	}
	if r.ServingsEaten < 0 {
		return &ValidationError{Field: "servings_eaten", Message: "must not be negative"}
	}
	for _, ing := range r.Ingredients {
		if err := required("ingredients.name", ing.Name); err != nil {
			return err
		}
		if err := knownUnit("ingredients.unit", ing.Unit); err != nil {
			return err
		}
		if err := nonNegative("ingredients.amount", ing.Amount); err != nil {
			return err
		}
	}
	for _, l := range r.Leftovers {
		if l.Servings < 0 {
			return &ValidationError{Field: "leftovers.servings", Message: "must not be negative"}
		}
	}
	return nil
}

// CreateLocationRequest represents the JSON request body for adding a storage location.
type CreateLocationRequest struct {
	Name   string `json:"name" example:"Kitchen fridge"`
	Kind   string `json:"kind" example:"fridge" enums:"fridge,freezer,pantry"`
	Shared bool   `json:"shared" example:"true"`
} // @name CreateLocationRequest

// Validate performs custom validation on the location request.
func (r *CreateLocationRequest) Validate() error {
	if err := required("name", r.Name); err != nil {
		return err
	}
	if !model.StorageKind(r.Kind).Valid() {
		return &ValidationError{Field: "kind", Message: "must be fridge, freezer or pantry"}
	}
	return nil
}
