package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageResponse is one stored package.
type PackageResponse struct {
	ID               string          `json:"id" example:"6f1c2b7e-2c1a-4d7b-9d43-5f0e6b1f6a10"`
	ItemName         string          `json:"item_name" example:"Flour"`
	OriginalQuantity decimal.Decimal `json:"original_quantity" swaggertype:"string" example:"500"`
	TotalQuantity    decimal.Decimal `json:"total_quantity" swaggertype:"string" example:"320"`
	Unit             string          `json:"unit" example:"g"`
	ExpiryDate       *time.Time      `json:"expiry_date,omitempty"`
	LocationID       string          `json:"location_id" example:"pantry-1"`
	OwnerID          string          `json:"owner_id" example:"user-1"`
	IsPrivate        bool            `json:"is_private"`
	Version          int64           `json:"version" example:"3"`
} // @name PackageResponse

// BucketResponse is every package of one size within a group.
type BucketResponse struct {
	SizeKey      string            `json:"size_key" example:"500"`
	OriginalSize decimal.Decimal   `json:"original_size" swaggertype:"string" example:"500"`
	FullCount    int               `json:"full_count" example:"2"`
	PartialTotal decimal.Decimal   `json:"partial_total" swaggertype:"string" example:"320"`
	Total        decimal.Decimal   `json:"total" swaggertype:"string" example:"1320"`
	NextExpiry   *time.Time        `json:"next_expiry,omitempty"`
	Full         []PackageResponse `json:"full"`
	Partial      []PackageResponse `json:"partial"`
} // @name BucketResponse

// GroupResponse is every package of one item in one unit.
type GroupResponse struct {
	Key        string           `json:"key" example:"flour|g"`
	Name       string           `json:"name" example:"Flour"`
	Unit       string           `json:"unit" example:"g"`
	Total      decimal.Decimal  `json:"total" swaggertype:"string" example:"1320"`
	NextExpiry *time.Time       `json:"next_expiry,omitempty"`
	Buckets    []BucketResponse `json:"buckets"`
} // @name GroupResponse

// LocationGroupsResponse is the grouped inventory of one storage location.
type LocationGroupsResponse struct {
	LocationID string          `json:"location_id" example:"fridge-1"`
	Groups     []GroupResponse `json:"groups"`
} // @name LocationGroupsResponse

// MutationResponse summarizes an applied change and returns the refreshed inventory.
type MutationResponse struct {
	Updated  int             `json:"updated" example:"1"`
	Removed  int             `json:"removed" example:"2"`
	Inserted int             `json:"inserted" example:"1"`
	Groups   []GroupResponse `json:"groups"`
} // @name MutationResponse

// QuantityResponse is an amount with its unit.
type QuantityResponse struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"473.176473"`
	Unit   string          `json:"unit" example:"g"`
} // @name QuantityResponse

// DeductionResponse reports what was taken from a group.
type DeductionResponse struct {
	GroupKey    string           `json:"group_key" example:"flour|g"`
	ItemName    string           `json:"item_name" example:"Flour"`
	Requested   QuantityResponse `json:"requested"`
	Deducted    QuantityResponse `json:"deducted"`
	Ingredients []string         `json:"ingredients,omitempty"`
} // @name DeductionResponse

// ShortfallResponse reports an amount the inventory could not cover.
type ShortfallResponse struct {
	GroupKey    string           `json:"group_key" example:"flour|g"`
	ItemName    string           `json:"item_name" example:"Flour"`
	Missing     QuantityResponse `json:"missing"`
	Ingredients []string         `json:"ingredients,omitempty"`
} // @name ShortfallResponse

// UnmatchedResponse reports a recipe line that matched no inventory.
type UnmatchedResponse struct {
	Ingredient string `json:"ingredient" example:"saffron"`
	Reason     string `json:"reason" example:"no_match" enums:"no_match,incompatible_unit"`
} // @name UnmatchedResponse

// ConsumptionResponse is the outcome of eating or cooking.
type ConsumptionResponse struct {
	Deductions []DeductionResponse `json:"deductions"`
	Shortfalls []ShortfallResponse `json:"shortfalls,omitempty"`
	Unmatched  []UnmatchedResponse `json:"unmatched,omitempty"`
	Leftovers  []PackageResponse   `json:"leftovers,omitempty"`
	Groups     []GroupResponse     `json:"groups"`
} // @name ConsumptionResponse

// LocationResponse is a storage location.
type LocationResponse struct {
	ID          string    `json:"id" example:"fridge-1"`
	Name        string    `json:"name" example:"Kitchen fridge"`
	Kind        string    `json:"kind" example:"fridge"`
	OwnerID     string    `json:"owner_id" example:"user-1"`
	HouseholdID string    `json:"household_id,omitempty" example:"household-1"`
	CreatedAt   time.Time `json:"created_at"`
} // @name LocationResponse

// UnitsResponse lists the units offered for a measurement system.
type UnitsResponse struct {
	System string   `json:"system" example:"metric"`
	Units  []string `json:"units" example:"g,kg,ml,l,cup,tbsp,tsp,pcs"`
} // @name UnitsResponse
