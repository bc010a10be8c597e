// Package quantity defines measurement units and exact arithmetic over quantities.
package quantity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Family groups units that can be converted into each other.
type Family string

const (
	// FamilyMass covers weight units.
	FamilyMass Family = "mass"
	// FamilyVolume covers liquid and kitchen measures.
	FamilyVolume Family = "volume"
	// FamilyCount covers discrete pieces.
	FamilyCount Family = "count"
)

// Unit is a measurement unit as stored on a package.
type Unit string

const (
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Ounce      Unit = "oz"
	Pound      Unit = "lbs"
	Milliliter Unit = "ml"
	Liter      Unit = "l"
	FluidOunce Unit = "fl oz"
	Gallon     Unit = "gallon"
	Cup        Unit = "cup"
	Tablespoon Unit = "tbsp"
	Teaspoon   Unit = "tsp"
	Piece      Unit = "pcs"
)

type unitInfo struct {
	family Family
	// toBase converts one unit into grams, milliliters or pieces.
	toBase decimal.Decimal
}

var units = map[Unit]unitInfo{
	Gram:       {FamilyMass, decimal.NewFromInt(1)},
	Kilogram:   {FamilyMass, decimal.NewFromInt(1000)},
	Ounce:      {FamilyMass, decimal.RequireFromString("28.349523125")},
	Pound:      {FamilyMass, decimal.RequireFromString("453.59237")},
	Milliliter: {FamilyVolume, decimal.NewFromInt(1)},
	Liter:      {FamilyVolume, decimal.NewFromInt(1000)},
	FluidOunce: {FamilyVolume, decimal.RequireFromString("29.5735295625")},
	Gallon:     {FamilyVolume, decimal.RequireFromString("3785.411784")},
	Cup:        {FamilyVolume, decimal.RequireFromString("236.5882365")},
	Tablespoon: {FamilyVolume, decimal.RequireFromString("14.78676478125")},
	Teaspoon:   {FamilyVolume, decimal.RequireFromString("4.92892159375")},
	Piece:      {FamilyCount, decimal.NewFromInt(1)},
}

var aliases = map[string]Unit{
	"g": Gram, "gram": Gram, "grams": Gram,
	"kg": Kilogram, "kilogram": Kilogram, "kilograms": Kilogram,
	"oz": Ounce, "ounce": Ounce, "ounces": Ounce,
	"lb": Pound, "lbs": Pound, "pound": Pound, "pounds": Pound,
	"ml": Milliliter, "milliliter": Milliliter, "milliliters": Milliliter,
	"l": Liter, "liter": Liter, "liters": Liter, "litre": Liter, "litres": Liter,
	"fl oz": FluidOunce, "floz": FluidOunce, "fl_oz": FluidOunce, "fluid ounce": FluidOunce, "fluid ounces": FluidOunce,
	"gallon": Gallon, "gallons": Gallon, "gal": Gallon,
	"cup": Cup, "cups": Cup,
	"tbsp": Tablespoon, "tablespoon": Tablespoon, "tablespoons": Tablespoon,
	"tsp": Teaspoon, "teaspoon": Teaspoon, "teaspoons": Teaspoon,
	"pcs": Piece, "pc": Piece, "piece": Piece, "pieces": Piece, "serving": Piece, "servings": Piece,
}

// ParseUnit resolves a user-supplied unit name.
func ParseUnit(s string) (Unit, error) {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if u, ok := aliases[key]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	_, ok := units[u]
	return ok
}

// Family returns the unit family, or an empty Family for unknown units.
func (u Unit) Family() Family {
	return units[u].family
}

// SameFamily reports whether quantities in u1 and u2 can be combined.
func SameFamily(u1, u2 Unit) bool {
	i1, ok1 := units[u1]
	i2, ok2 := units[u2]
	return ok1 && ok2 && i1.family == i2.family
}

// UnitSystem is the user's preferred measurement system for input forms.
type UnitSystem string

const (
	SystemUS     UnitSystem = "us"
	SystemMetric UnitSystem = "metric"
)

// UnitsFor lists the units offered in forms for the given system.
// Stored units are never rewritten based on this preference.
func UnitsFor(system UnitSystem) []Unit {
	if system == SystemUS {
		return []Unit{Ounce, Pound, FluidOunce, Gallon, Cup, Tablespoon, Teaspoon, Piece}
	}
	return []Unit{Gram, Kilogram, Milliliter, Liter, Cup, Tablespoon, Teaspoon, Piece}
}
