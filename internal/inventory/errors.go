package inventory

import (
	"errors"
	"fmt"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRequest is returned when a request exceeds what is available or asks for nothing.
	ErrInvalidRequest = errors.New("invalid inventory request")
	// ErrInvariantViolation is returned when a planned diff fails its own conservation check.
	ErrInvariantViolation = errors.New("inventory invariant violation")
)

// RequestCode classifies why a request was rejected.
type RequestCode string

const (
	CodeUnknownOperation    RequestCode = "unknown_operation"
	CodeNegativeAmount      RequestCode = "negative_amount"
	CodeNothingRequested    RequestCode = "nothing_requested"
	CodeExceedsFullPackages RequestCode = "exceeds_full_packages"
	CodeExceedsPartial      RequestCode = "exceeds_partial_amount"
	CodeExceedsAvailable    RequestCode = "exceeds_available"
	CodeMissingDestination  RequestCode = "missing_destination"
	CodeUnknownBucket       RequestCode = "unknown_bucket"
	CodeInvalidServings     RequestCode = "invalid_servings"
	CodeInvalidItem         RequestCode = "invalid_item"
)

// RequestError describes a rejected request.
// Err, when set, is a cause callers may still match, such as quantity.ErrIncompatibleUnit.
type RequestError struct {
	Code   RequestCode
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrInvalidRequest, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, e.Detail)
}

// Is makes errors.Is(err, ErrInvalidRequest) match.
func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func invalid(code RequestCode, format string, args ...any) *RequestError {
	return &RequestError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// InvariantError carries the diff that failed verification so it can be logged in full.
type InvariantError struct {
	Reason   string
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Diff     model.Diff
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s (expected %s, got %s)", ErrInvariantViolation, e.Reason, e.Expected, e.Actual)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
