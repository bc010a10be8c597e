package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// InventoryRoutes registers the inventory and location endpoints.
type InventoryRoutes struct {
	handler   *Handler
	locations *LocationsHandler
}

// NewInventoryRoutes creates a new InventoryRoutes instance. A nil locations handler skips its routes.
func NewInventoryRoutes(handler *Handler, locations *LocationsHandler) *InventoryRoutes {
	return &InventoryRoutes{handler: handler, locations: locations}
}

// RegisterRoutes registers routes that need a caller identity.
func (r *InventoryRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	if r.handler != nil {
		inv := rg.Group("/inventory")
		inv.GET("", r.handler.ListGroups)
		inv.GET("/by-location", r.handler.ListByLocation)
		inv.POST("/packages", r.handler.AddStock)
		inv.POST("/transfers", r.handler.Transfer)
		inv.DELETE("/groups/:key/buckets/:size", r.handler.DeleteBucket)
		inv.POST("/eat", r.handler.Eat)
		inv.POST("/cook", r.handler.Cook)
	}

	if r.locations != nil {
		rg.GET("/locations", r.locations.List)
		rg.POST("/locations", r.locations.Create)
	}
}

// RegisterPublicRoutes registers routes that need no identity.
func (r *InventoryRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	if r.locations != nil {
		rg.GET("/units", r.locations.Units)
	}
}
