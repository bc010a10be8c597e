package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/pantry-service/internal/circuitbreaker"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/guttosm/pantry-service/internal/service"
)

// writeInventoryError maps inventory and store errors onto HTTP responses.
func writeInventoryError(builder *ResponseBuilder, err error) {
	var reqErr *inventory.RequestError
	var valErr *dto.ValidationError

	switch {
	case errors.As(err, &valErr):
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidation,
			map[string]string{"field": valErr.Field, "message": valErr.Message}, nil)
	case errors.Is(err, quantity.ErrIncompatibleUnit):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyIncompatibleUnit, nil)
	case errors.Is(err, service.ErrGroupNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyGroupNotFound, nil)
	case errors.Is(err, service.ErrLocationNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyLocationNotFound, nil)
	case errors.Is(err, repository.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	case errors.As(err, &reqErr):
		details := map[string]string{"reason": string(reqErr.Code)}
		if reqErr.Detail != "" {
			details["detail"] = reqErr.Detail
		}
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.RequestKey(string(reqErr.Code)), details, nil)
	case errors.Is(err, repository.ErrConcurrencyConflict):
		builder.Error(http.StatusConflict, i18n.ErrKeyConcurrentUpdate, nil)
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(builder.c.Request.Context().Err(), context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
	default:
		// Invariant violations land here; the service already logged the offending diff.
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
