package quantity

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places amounts are normalised to.
// Equality and ordering are evaluated at this precision.
const Precision int32 = 6

var (
	// ErrIncompatibleUnit is returned for arithmetic across unit families.
	ErrIncompatibleUnit = errors.New("incompatible unit")
	// ErrInsufficientQuantity is returned when a subtraction would go negative.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	// ErrNegativeAmount is returned when constructing a negative quantity.
	ErrNegativeAmount = errors.New("quantity amount must not be negative")
	// ErrUnknownUnit is returned for unsupported unit names.
	ErrUnknownUnit = errors.New("unknown unit")
)

// Quantity is a non-negative amount expressed in a unit.
type Quantity struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   Unit            `json:"unit"`
}

// New builds a Quantity, rejecting negative amounts and unknown units.
func New(amount decimal.Decimal, unit Unit) (Quantity, error) {
	if !unit.Valid() {
		return Quantity{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	amount = Normalize(amount)
	if amount.IsNegative() {
		return Quantity{}, ErrNegativeAmount
	}
	return Quantity{Amount: amount, Unit: unit}, nil
}

// FromFloat is a convenience constructor for values decoded from JSON numbers.
func FromFloat(amount float64, unit Unit) (Quantity, error) {
	return New(decimal.NewFromFloat(amount), unit)
}

// Zero returns an empty quantity in unit u.
func Zero(u Unit) Quantity {
	return Quantity{Amount: decimal.Zero, Unit: u}
}

// Normalize rounds d to Precision.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(Precision)
}

// Equal compares two amounts at Precision.
func Equal(a, b decimal.Decimal) bool {
	return Normalize(a).Equal(Normalize(b))
}

// Compare compares two amounts at Precision.
func Compare(a, b decimal.Decimal) int {
	return Normalize(a).Cmp(Normalize(b))
}

// IsZero reports whether d is zero at Precision.
func IsZero(d decimal.Decimal) bool {
	return Normalize(d).IsZero()
}

// MinDecimal returns the smaller of a and b.
func MinDecimal(a, b decimal.Decimal) decimal.Decimal {
	if Compare(a, b) <= 0 {
		return a
	}
	return b
}

// IsZero reports whether the quantity is depleted.
func (q Quantity) IsZero() bool {
	return IsZero(q.Amount)
}

// Equal reports whether q and o denote the same amount in the same unit.
func (q Quantity) Equal(o Quantity) bool {
	return q.Unit == o.Unit && Equal(q.Amount, o.Amount)
}

func (q Quantity) String() string {
	return Normalize(q.Amount).String() + " " + string(q.Unit)
}

// Convert expresses q in unit to. Only same-family conversions are allowed.
func Convert(q Quantity, to Unit) (Quantity, error) {
	if q.Unit == to {
		return q, nil
	}
	if !SameFamily(q.Unit, to) {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s to %s", ErrIncompatibleUnit, q.Unit, to)
	}
	base := q.Amount.Mul(units[q.Unit].toBase)
	return Quantity{Amount: Normalize(base.Div(units[to].toBase)), Unit: to}, nil
}

// Add returns q1 + q2 expressed in q1's unit.
func Add(q1, q2 Quantity) (Quantity, error) {
	other, err := Convert(q2, q1.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Amount: Normalize(q1.Amount.Add(other.Amount)), Unit: q1.Unit}, nil
}

// Subtract returns q1 - q2 expressed in q1's unit.
// Callers that want clamping must clamp before calling.
func Subtract(q1, q2 Quantity) (Quantity, error) {
	other, err := Convert(q2, q1.Unit)
	if err != nil {
		return Quantity{}, err
	}
	result := Normalize(q1.Amount.Sub(other.Amount))
	if result.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: %s - %s", ErrInsufficientQuantity, q1, other)
	}
	return Quantity{Amount: result, Unit: q1.Unit}, nil
}
