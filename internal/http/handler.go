package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/guttosm/pantry-service/internal/middleware"
	"github.com/guttosm/pantry-service/internal/service"
)

// CookLimiter bounds how often a user may cook. Cooking may call the nutrition estimator.
type CookLimiter interface {
	TryAcquire(identifier string) bool
}

// Handler provides HTTP handlers for inventory routes.
type Handler struct {
	inventory   service.InventoryService
	cookLimiter CookLimiter
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCookLimiter guards the cook endpoint with a per-user limiter.
func WithCookLimiter(l CookLimiter) HandlerOption {
	return func(h *Handler) {
		h.cookLimiter = l
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(inventory service.InventoryService, opts ...HandlerOption) *Handler {
	h := &Handler{inventory: inventory}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListGroups handles GET /api/inventory requests.
//
// @Summary      List inventory groups
// @Description  Returns the caller's visible packages grouped by item and unit, then by original package size. Full packages and the opened pool are listed per size.
// @Tags         Inventory
// @Produce      json
// @Param        X-User-ID header string false "Caller id (when authentication is disabled)"
// @Param        X-Household-ID header string false "Household id (when authentication is disabled)"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.GroupResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/inventory [get]
func (h *Handler) ListGroups(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	groups, err := h.inventory.ListGroups(c.Request.Context(), scope)
	if err != nil {
		writeInventoryError(builder, err)
		return
	}
	builder.SuccessOK(toGroupResponses(groups))
}

// ListByLocation handles GET /api/inventory/by-location requests.
//
// @Summary      List inventory per location
// @Description  Returns the caller's visible packages grouped per storage location, then by item and package size.
// @Tags         Inventory
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.LocationGroupsResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/inventory/by-location [get]
func (h *Handler) ListByLocation(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	views, err := h.inventory.ListByLocation(c.Request.Context(), scope)
	if err != nil {
		writeInventoryError(builder, err)
		return
	}
	builder.SuccessOK(toLocationGroupsResponses(views))
}

// AddStock handles POST /api/inventory/packages requests.
//
// @Summary      Add stock
// @Description  Records full_packages unopened packages of package_size and, when opened_remaining is positive, one opened package. Supports idempotency via Idempotency-Key header.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddStockRequest true "Packages bought"
// @Success      201 {object} dto.SuccessResponse{data=[]dto.PackageResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Location not found"
// @Failure      422 {object} dto.ErrorResponse "Request cannot be applied"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/inventory/packages [post]
func (h *Handler) AddStock(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	req, ok := bindRequest[dto.AddStockRequest](c, builder)
	if !ok {
		return
	}
	unit, _ := quantity.ParseUnit(req.Unit)

	pkgs, err := h.inventory.AddStock(c.Request.Context(), scope, service.AddStockInput{
		ItemName:        req.ItemName,
		Unit:            unit,
		PackageSize:     req.PackageSize,
		FullPackages:    req.FullPackages,
		OpenedRemaining: req.OpenedRemaining,
		ExpiryDate:      req.ExpiryDate,
		LocationID:      req.LocationID,
		IsPrivate:       req.IsPrivate,
		Nutrition:       toNutritionFacts(req.Nutrition),
	})
	if err != nil {
		audit(c, "add_stock", "Adding stock failed", err, map[string]interface{}{"item_name": req.ItemName})
		writeInventoryError(builder, err)
		return
	}

	audit(c, "add_stock", "Stock added", nil, map[string]interface{}{
		"item_name":   req.ItemName,
		"unit":        string(unit),
		"packages":    len(pkgs),
		"location_id": req.LocationID,
	})
	builder.SuccessCreated(toPackageResponses(pkgs))
}

// Transfer handles POST /api/inventory/transfers requests.
//
// @Summary      Move, spoil, consume or re-scope packages
// @Description  Applies the operation to the selected full packages and partial amounts of each package size of one group. Partial amounts drain opened packages smallest first.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.TransferRequest true "Selection per package size"
// @Success      200 {object} dto.SuccessResponse{data=dto.MutationResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Group or location not found"
// @Failure      409 {object} dto.ErrorResponse "Inventory changed concurrently"
// @Failure      422 {object} dto.ErrorResponse "Request cannot be applied"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/inventory/transfers [post]
func (h *Handler) Transfer(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	req, ok := bindRequest[dto.TransferRequest](c, builder)
	if !ok {
		return
	}

	op := inventory.Operation(req.Operation)
	if !op.Valid() {
		writeInventoryError(builder, &inventory.RequestError{Code: inventory.CodeUnknownOperation, Detail: req.Operation})
		return
	}

	sel := make(inventory.Selection, len(req.Selections))
	for size, s := range req.Selections {
		sel[size] = inventory.SizeSelection{FullCount: s.FullCount, PartialAmount: s.PartialAmount}
	}

	res, err := h.inventory.Transfer(c.Request.Context(), scope, service.TransferInput{
		GroupKey:              req.GroupKey,
		Operation:             op,
		Selection:             sel,
		DestinationLocationID: req.DestinationLocationID,
		MakePrivate:           req.MakePrivate,
	})
	if err != nil {
		audit(c, req.Operation, "Transfer failed", err, map[string]interface{}{"group_key": req.GroupKey})
		writeInventoryError(builder, err)
		return
	}

	audit(c, req.Operation, "Transfer applied", nil, map[string]interface{}{
		"group_key":   req.GroupKey,
		"destination": req.DestinationLocationID,
		"updated":     len(res.Diff.Updates),
		"removed":     len(res.Diff.Removals),
		"inserted":    len(res.Diff.Insertions),
	})
	builder.SuccessOK(toMutationResponse(res))
}

// DeleteBucket handles DELETE /api/inventory/groups/:key/buckets/:size requests.
//
// @Summary      Delete a package size
// @Description  Removes every package of one original size within a group.
// @Tags         Inventory
// @Produce      json
// @Param        key path string true "Group key, e.g. flour|g"
// @Param        size path string true "Original package size, e.g. 500"
// @Success      200 {object} dto.SuccessResponse{data=dto.MutationResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Group not found"
// @Failure      409 {object} dto.ErrorResponse "Inventory changed concurrently"
// @Failure      422 {object} dto.ErrorResponse "Unknown package size"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/inventory/groups/{key}/buckets/{size} [delete]
func (h *Handler) DeleteBucket(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	groupKey, sizeKey := c.Param("key"), c.Param("size")
	res, err := h.inventory.DeleteBucket(c.Request.Context(), scope, groupKey, sizeKey)
	if err != nil {
		audit(c, "delete_bucket", "Deleting package size failed", err, map[string]interface{}{"group_key": groupKey, "size": sizeKey})
		writeInventoryError(builder, err)
		return
	}

	audit(c, "delete_bucket", "Package size deleted", nil, map[string]interface{}{
		"group_key": groupKey,
		"size":      sizeKey,
		"removed":   len(res.Diff.Removals),
	})
	builder.SuccessOK(toMutationResponse(res))
}

// Eat handles POST /api/inventory/eat requests.
//
// @Summary      Eat from inventory
// @Description  Deducts amounts of one or more groups. Amounts may be given in any unit of the group's family. Missing stock is reported as a shortfall.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.EatRequest true "Amounts to eat"
// @Success      200 {object} dto.SuccessResponse{data=dto.ConsumptionResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or incompatible unit"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Group not found"
// @Failure      409 {object} dto.ErrorResponse "Inventory changed concurrently"
// @Failure      422 {object} dto.ErrorResponse "Request cannot be applied"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/inventory/eat [post]
func (h *Handler) Eat(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	req, ok := bindRequest[dto.EatRequest](c, builder)
	if !ok {
		return
	}

	items := make([]service.EatItem, 0, len(req.Items))
	for _, it := range req.Items {
		var unit quantity.Unit
		if it.Unit != "" {
			unit, _ = quantity.ParseUnit(it.Unit)
		}
		items = append(items, service.EatItem{GroupKey: it.GroupKey, Amount: it.Amount, Unit: unit})
	}

	out, err := h.inventory.Eat(c.Request.Context(), scope, items)
	if err != nil {
		audit(c, "eat", "Eating failed", err, map[string]interface{}{"items": len(items)})
		writeInventoryError(builder, err)
		return
	}

	audit(c, "eat", "Food eaten", nil, map[string]interface{}{
		"items":      len(items),
		"deductions": len(out.Deductions),
		"shortfalls": len(out.Shortfalls),
	})
	builder.SuccessOK(toConsumptionResponse(out))
}

// Cook handles POST /api/inventory/cook requests.
//
// @Summary      Cook a recipe
// @Description  Deducts the recipe's ingredients scaled to the servings eaten plus stored, and stores leftovers per location. Without nutrition in the request, leftovers may be annotated by the nutrition estimator.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CookRequest true "Recipe and servings"
// @Success      200 {object} dto.SuccessResponse{data=dto.ConsumptionResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Location not found"
// @Failure      409 {object} dto.ErrorResponse "Inventory changed concurrently"
// @Failure      422 {object} dto.ErrorResponse "Request cannot be applied"
// @Failure      429 {object} dto.ErrorResponse "Too many cook requests"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/inventory/cook [post]
func (h *Handler) Cook(c *gin.Context) {
	builder := NewResponseBuilder(c)
	scope, ok := middleware.GetScope(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyIdentityRequired, nil)
		return
	}

	if h.cookLimiter != nil && !h.cookLimiter.TryAcquire("cook:"+scope.UserID) {
		builder.Error(http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded, nil)
		return
	}

	req, ok := bindRequest[dto.CookRequest](c, builder)
	if !ok {
		return
	}

	in := service.CookInput{
		RecipeName:    req.RecipeName,
		TotalServings: req.TotalServings,
		ServingsEaten: req.ServingsEaten,
		Nutrition:     toNutritionFacts(req.Nutrition),
	}
	for _, ing := range req.Ingredients {
		unit, _ := quantity.ParseUnit(ing.Unit)
		q, err := quantity.New(ing.Amount, unit)
		if err != nil {
			writeInventoryError(builder, &dto.ValidationError{Field: "ingredients.amount", Message: err.Error()})
			return
		}
		in.Ingredients = append(in.Ingredients, inventory.Ingredient{Name: ing.Name, Quantity: q})
	}
	for _, l := range req.Leftovers {
		in.Leftovers = append(in.Leftovers, inventory.LeftoverDestination{
			LocationID: l.LocationID,
			Servings:   l.Servings,
			IsPrivate:  l.IsPrivate,
		})
	}

	out, err := h.inventory.Cook(c.Request.Context(), scope, in)
	if err != nil {
		audit(c, "cook", "Cooking failed", err, map[string]interface{}{"recipe": req.RecipeName})
		writeInventoryError(builder, err)
		return
	}

	audit(c, "cook", "Recipe cooked", nil, map[string]interface{}{
		"recipe":     req.RecipeName,
		"deductions": len(out.Deductions),
		"unmatched":  len(out.Unmatched),
		"leftovers":  len(out.Leftovers),
	})
	builder.SuccessOK(toConsumptionResponse(out))
}

// bindRequest binds and validates the body, writing the error response on failure.
func bindRequest[T any](c *gin.Context, builder *ResponseBuilder) (*T, bool) {
	req, err := decodeRequest[T](c)
	if err == nil {
		return req, true
	}
	if _, isValidation := err.(*dto.ValidationError); isValidation {
		writeInventoryError(builder, err)
	} else {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	}
	return nil, false
}

// audit records the mutation through the logging service the router placed in the context.
func audit(c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	v, exists := c.Get("logging_service")
	if !exists {
		return
	}
	ls, ok := v.(service.LoggingService)
	if !ok || ls == nil {
		return
	}
	if err != nil {
		middleware.AuditLogError(ls, c, action, message, err, fields)
		return
	}
	middleware.AuditLog(ls, c, action, message, fields)
}
