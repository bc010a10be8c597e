package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyIdentityRequired indicates the caller did not say who they are.
	ErrKeyIdentityRequired = "error.identity_required"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyGroupNotFound indicates an inventory group is unknown to the caller.
	ErrKeyGroupNotFound = "error.group_not_found"
	// ErrKeyLocationNotFound indicates a storage location is unknown to the caller.
	ErrKeyLocationNotFound = "error.location_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyConcurrentUpdate indicates the inventory changed while the request was applied.
	ErrKeyConcurrentUpdate = "error.concurrent_update"
	// ErrKeyIncompatibleUnit indicates quantities of different unit families were combined.
	ErrKeyIncompatibleUnit = "error.incompatible_unit"
	// ErrKeyValidation indicates a field of the request failed validation.
	ErrKeyValidation = "error.validation"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyIdempotencyKeyReused indicates an Idempotency-Key was sent again with a different request.
	ErrKeyIdempotencyKeyReused = "error.idempotency_key_reused"
	// ErrKeyIdempotencyInProgress indicates the first request with the same Idempotency-Key is still running.
	ErrKeyIdempotencyInProgress = "error.idempotency_in_progress"
	// ErrKeyHouseholdNotAllowed indicates an API key asserted a household it is not bound to.
	ErrKeyHouseholdNotAllowed = "error.household_not_allowed"
)

// RequestKey returns the key of the message explaining why the inventory engine rejected a request.
func RequestKey(code string) string {
	return "error.request." + code
}
