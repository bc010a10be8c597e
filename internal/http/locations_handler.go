package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/middleware"
	"github.com/guttosm/pantry-service/internal/service"
)

// LocationsHandler serves storage locations and unit lists.
type LocationsHandler struct {
	locations     service.LocationService
	defaultSystem quantity.UnitSystem
}

// NewLocationsHandler creates a new LocationsHandler. An empty defaultSystem means metric.
func NewLocationsHandler(locations service.LocationService, defaultSystem quantity.UnitSystem) *LocationsHandler {
	if defaultSystem != quantity.SystemUS {
		defaultSystem = quantity.SystemMetric
	}
	return &LocationsHandler{locations: locations, defaultSystem: defaultSystem}
}

// List handles GET /api/locations requests.
//
// @Summary      List storage locations
// @Description  Returns the caller's locations and those shared with the caller's household.
// @Tags         Locations
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.LocationResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/locations [get]
func (h *LocationsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	locs, err := h.locations.List(c.Request.Context(), scope)
	if err != nil {
		writeInventoryError(builder, err)
		return
	}

	out := make([]dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, toLocationResponse(l))
	}
	builder.SuccessOK(out)
}

// Create handles POST /api/locations requests.
//
// @Summary      Create a storage location
// @Description  Adds a fridge, freezer or pantry owned by the caller. Shared locations are visible to the household.
// @Tags         Locations
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateLocationRequest true "Location"
// @Success      201 {object} dto.SuccessResponse{data=dto.LocationResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/locations [post]
func (h *LocationsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	req, ok := bindRequest[dto.CreateLocationRequest](c, builder)
	if !ok {
		return
	}

	loc, err := h.locations.Create(c.Request.Context(), scope, req.Name, model.StorageKind(req.Kind), req.Shared)
	if err != nil {
		writeInventoryError(builder, err)
		return
	}

	audit(c, "create_location", "Storage location created", nil, map[string]interface{}{
		"location_id": loc.ID,
		"kind":        string(loc.Kind),
		"shared":      req.Shared,
	})
	builder.SuccessCreated(toLocationResponse(*loc))
}

// Units handles GET /api/units requests.
//
// @Summary      List units for a measurement system
// @Description  Returns the units offered by input forms. Stored quantities keep their own unit.
// @Tags         Locations
// @Produce      json
// @Param        system query string false "Measurement system" Enums(us, metric)
// @Success      200 {object} dto.SuccessResponse{data=dto.UnitsResponse}
// @Failure      400 {object} dto.ErrorResponse "Unknown measurement system"
// @Router       /api/units [get]
func (h *LocationsHandler) Units(c *gin.Context) {
	builder := NewResponseBuilder(c)

	system := h.defaultSystem
	if s := c.Query("system"); s != "" {
		system = quantity.UnitSystem(s)
	}
	if system != quantity.SystemUS && system != quantity.SystemMetric {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidation,
			map[string]string{"field": "system", "message": "must be us or metric"}, nil)
		return
	}

	units := quantity.UnitsFor(system)
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, string(u))
	}
	builder.SuccessOK(dto.UnitsResponse{System: string(system), Units: names})
}
