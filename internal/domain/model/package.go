// Package model defines the core domain entities for the pantry service.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
)

// ErrInvalidPackage is returned when a package record breaks its invariants.
var ErrInvalidPackage = errors.New("invalid package")

// Package is one physical container of an item as purchased.
//
// @Description A tracked package with its purchased size and what remains of it
type Package struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	HouseholdID string `json:"household_id,omitempty"`
	ItemName    string `json:"item_name" example:"Flour"`
	// OriginalQuantity is the size the package had when added; it never changes.
	OriginalQuantity decimal.Decimal `json:"original_quantity" swaggertype:"number" example:"500"`
	// TotalQuantity is what remains now.
	TotalQuantity decimal.Decimal `json:"total_quantity" swaggertype:"number" example:"120"`
	Unit          quantity.Unit   `json:"unit" swaggertype:"string" example:"g"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	LocationID    string          `json:"location_id"`
	IsPrivate     bool            `json:"is_private"`
	ServingMacros *Macros         `json:"serving_macros,omitempty"`
	ServingSize   *ServingSize    `json:"serving_size,omitempty"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Original returns the purchased size as a Quantity.
func (p Package) Original() quantity.Quantity {
	return quantity.Quantity{Amount: p.OriginalQuantity, Unit: p.Unit}
}

// Remaining returns what is left as a Quantity.
func (p Package) Remaining() quantity.Quantity {
	return quantity.Quantity{Amount: p.TotalQuantity, Unit: p.Unit}
}

// IsFull reports whether nothing has been taken from the package.
func (p Package) IsFull() bool {
	return quantity.Equal(p.TotalQuantity, p.OriginalQuantity)
}

// NameKey is the case-insensitive item name used for grouping.
func (p Package) NameKey() string {
	return NormalizeName(p.ItemName)
}

// ExpiresBefore orders packages by expiry, with non-expiring packages last.
func ExpiresBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

// NormalizeName lower-cases and collapses whitespace in an item name.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Validate checks the package invariants.
func (p Package) Validate() error {
	switch {
	case strings.TrimSpace(p.ItemName) == "":
		return errors.Join(ErrInvalidPackage, errors.New("item name is required"))
	case !p.Unit.Valid():
		return errors.Join(ErrInvalidPackage, quantity.ErrUnknownUnit)
	case strings.TrimSpace(p.LocationID) == "":
		return errors.Join(ErrInvalidPackage, errors.New("location is required"))
	case !p.OriginalQuantity.IsPositive():
		return errors.Join(ErrInvalidPackage, errors.New("original quantity must be positive"))
	case p.TotalQuantity.IsNegative():
		return errors.Join(ErrInvalidPackage, quantity.ErrNegativeAmount)
	case quantity.Compare(p.TotalQuantity, p.OriginalQuantity) > 0:
		return errors.Join(ErrInvalidPackage, errors.New("remaining quantity exceeds original size"))
	}
	return nil
}

// OwnerScope identifies whose packages a caller may see.
type OwnerScope struct {
	UserID      string
	HouseholdID string
}

// VisibleTo reports whether the package can be seen by the scope.
// Private packages belong to their owner; shared ones to the whole household.
func (p Package) VisibleTo(scope OwnerScope) bool {
	if p.OwnerID == scope.UserID {
		return true
	}
	return !p.IsPrivate && scope.HouseholdID != "" && p.HouseholdID == scope.HouseholdID
}
