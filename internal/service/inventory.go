package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/guttosm/pantry-service/internal/inventory"
	"github.com/guttosm/pantry-service/internal/logger"
	"github.com/guttosm/pantry-service/internal/metrics"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	// ErrGroupNotFound is returned when a group key matches nothing visible to the caller.
	ErrGroupNotFound = errors.New("inventory group not found")
	// ErrLocationNotFound is returned when a location does not exist or is not visible to the caller.
	ErrLocationNotFound = errors.New("storage location not found")
)

// DefaultMaxConflictRetries is how many times a conflicting diff is re-planned.
const DefaultMaxConflictRetries = 1

const (
	actionAddStock     = "add_stock"
	actionEat          = "eat"
	actionCook         = "cook"
	actionDeleteBucket = "delete_bucket"
)

// AddStockInput describes packages bought together: FullPackages unopened packages of
// PackageSize, plus optionally one opened package with OpenedRemaining left.
type AddStockInput struct {
	ItemName        string
	Unit            quantity.Unit
	PackageSize     decimal.Decimal
	FullPackages    int
	OpenedRemaining decimal.Decimal
	ExpiryDate      *time.Time
	LocationID      string
	IsPrivate       bool
	Nutrition       *model.NutritionFacts
}

// TransferInput selects amounts per package size within one group.
type TransferInput struct {
	GroupKey              string
	Operation             inventory.Operation
	Selection             inventory.Selection
	DestinationLocationID string
	MakePrivate           bool
}

// EatItem asks for an amount of one group. An empty unit means the group's unit.
type EatItem struct {
	GroupKey string
	Amount   decimal.Decimal
	Unit     quantity.Unit
}

// CookInput describes a recipe cooked in full.
type CookInput struct {
	RecipeName    string
	Ingredients   []inventory.Ingredient
	TotalServings int
	ServingsEaten int
	Leftovers     []inventory.LeftoverDestination
	Nutrition     *model.NutritionFacts
}

// MutationResult is the applied diff and the caller's inventory after it.
type MutationResult struct {
	Diff   model.Diff
	Groups []inventory.Group
}

// ConsumptionOutcome is the applied consumption and the caller's inventory after it.
type ConsumptionOutcome struct {
	inventory.ConsumptionResult
	Groups []inventory.Group
}

// InventoryService plans inventory changes against the current state and applies them.
type InventoryService interface {
	ListGroups(ctx context.Context, scope model.OwnerScope) ([]inventory.Group, error)
	ListByLocation(ctx context.Context, scope model.OwnerScope) ([]inventory.LocationGroups, error)
	AddStock(ctx context.Context, scope model.OwnerScope, in AddStockInput) ([]model.Package, error)
	Transfer(ctx context.Context, scope model.OwnerScope, in TransferInput) (*MutationResult, error)
	DeleteBucket(ctx context.Context, scope model.OwnerScope, groupKey, sizeKey string) (*MutationResult, error)
	Eat(ctx context.Context, scope model.OwnerScope, items []EatItem) (*ConsumptionOutcome, error)
	Cook(ctx context.Context, scope model.OwnerScope, in CookInput) (*ConsumptionOutcome, error)
}

// InventoryOption configures an InventoryServiceImpl.
type InventoryOption func(*InventoryServiceImpl)

// WithPlanner replaces the default planner.
func WithPlanner(p *inventory.Planner) InventoryOption {
	return func(s *InventoryServiceImpl) { s.planner = p }
}

// WithMaxConflictRetries sets how often a conflicting diff is re-planned. Negative values are ignored.
func WithMaxConflictRetries(n int) InventoryOption {
	return func(s *InventoryServiceImpl) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithNutritionEstimator annotates leftovers of recipes submitted without nutrition.
func WithNutritionEstimator(e NutritionEstimator) InventoryOption {
	return func(s *InventoryServiceImpl) { s.estimator = e }
}

// InventoryServiceImpl implements InventoryService.
type InventoryServiceImpl struct {
	packages   repository.PackageRepositoryInterface
	locations  repository.LocationRepositoryInterface
	planner    *inventory.Planner
	estimator  NutritionEstimator
	maxRetries int
	newID      func() string
	log        zerolog.Logger
}

// NewInventoryService creates an inventory service over the given stores.
func NewInventoryService(
	packages repository.PackageRepositoryInterface,
	locations repository.LocationRepositoryInterface,
	opts ...InventoryOption,
) *InventoryServiceImpl {
	s := &InventoryServiceImpl{
		packages:   packages,
		locations:  locations,
		planner:    inventory.NewPlanner(),
		maxRetries: DefaultMaxConflictRetries,
		newID:      uuid.NewString,
		log:        logger.Component("inventory"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListGroups returns the caller's inventory grouped by item and package size.
func (s *InventoryServiceImpl) ListGroups(ctx context.Context, scope model.OwnerScope) ([]inventory.Group, error) {
	pkgs, err := s.packages.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return inventory.GroupPackages(pkgs), nil
}

// ListByLocation returns the caller's inventory grouped per storage location.
func (s *InventoryServiceImpl) ListByLocation(ctx context.Context, scope model.OwnerScope) ([]inventory.LocationGroups, error) {
	pkgs, err := s.packages.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return inventory.GroupByLocation(pkgs), nil
}

// AddStock records newly bought packages.
func (s *InventoryServiceImpl) AddStock(ctx context.Context, scope model.OwnerScope, in AddStockInput) ([]model.Package, error) {
	start := time.Now()
	pkgs, err := s.newStock(ctx, scope, in)
	if err == nil {
		err = s.packages.Insert(ctx, pkgs)
	}
	s.record(actionAddStock, start, err)
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (s *InventoryServiceImpl) newStock(ctx context.Context, scope model.OwnerScope, in AddStockInput) ([]model.Package, error) {
	name := strings.TrimSpace(in.ItemName)
	if name == "" {
		return nil, &inventory.RequestError{Code: inventory.CodeInvalidItem, Detail: "item name is required"}
	}
	if !in.Unit.Valid() {
		return nil, &inventory.RequestError{Code: inventory.CodeInvalidItem, Detail: fmt.Sprintf("unknown unit %q", in.Unit), Err: quantity.ErrUnknownUnit}
	}
	if !in.PackageSize.IsPositive() {
		return nil, &inventory.RequestError{Code: inventory.CodeNegativeAmount, Detail: "package size must be positive"}
	}
	if in.FullPackages < 0 || in.OpenedRemaining.IsNegative() {
		return nil, &inventory.RequestError{Code: inventory.CodeNegativeAmount, Detail: "requested amounts must not be negative"}
	}
	if quantity.Compare(in.OpenedRemaining, in.PackageSize) >= 0 {
		return nil, &inventory.RequestError{Code: inventory.CodeExceedsPartial, Detail: "an opened package holds less than its size"}
	}
	if in.FullPackages == 0 && quantity.IsZero(in.OpenedRemaining) {
		return nil, &inventory.RequestError{Code: inventory.CodeNothingRequested, Detail: "no packages to add"}
	}
	if _, err := s.visibleLocation(ctx, scope, in.LocationID); err != nil {
		return nil, err
	}

	size := quantity.Normalize(in.PackageSize)
	build := func(total decimal.Decimal) model.Package {
		p := model.Package{
			ID:               s.newID(),
			OwnerID:          scope.UserID,
			HouseholdID:      scope.HouseholdID,
			ItemName:         name,
			OriginalQuantity: size,
			TotalQuantity:    quantity.Normalize(total),
			Unit:             in.Unit,
			ExpiryDate:       in.ExpiryDate,
			LocationID:       in.LocationID,
			IsPrivate:        in.IsPrivate,
		}
		if in.Nutrition != nil {
			macros, serving := in.Nutrition.PerServing, in.Nutrition.ServingSize
			p.ServingMacros = &macros
			p.ServingSize = &serving
		}
		return p
	}

	pkgs := make([]model.Package, 0, in.FullPackages+1)
	for i := 0; i < in.FullPackages; i++ {
		pkgs = append(pkgs, build(size))
	}
	if in.OpenedRemaining.IsPositive() {
		pkgs = append(pkgs, build(in.OpenedRemaining))
	}
	for _, p := range pkgs {
		if err := p.Validate(); err != nil {
			return nil, &inventory.RequestError{Code: inventory.CodeInvalidItem, Detail: "invalid package", Err: err}
		}
	}
	return pkgs, nil
}

// Transfer moves, spoils, consumes or re-scopes the selected amounts of a group.
func (s *InventoryServiceImpl) Transfer(ctx context.Context, scope model.OwnerScope, in TransferInput) (*MutationResult, error) {
	if in.Operation == inventory.OpMove && in.DestinationLocationID != "" {
		if _, err := s.visibleLocation(ctx, scope, in.DestinationLocationID); err != nil {
			return nil, err
		}
	}
	tmpl := inventory.TransferRequest{
		Operation:             in.Operation,
		DestinationLocationID: in.DestinationLocationID,
		MakePrivate:           in.MakePrivate,
		ActorID:               scope.UserID,
	}
	return s.mutate(ctx, scope, string(in.Operation), func(groups []inventory.Group) (model.Diff, error) {
		g, ok := inventory.FindGroup(groups, in.GroupKey)
		if !ok {
			return model.Diff{}, fmt.Errorf("%s: %w", in.GroupKey, ErrGroupNotFound)
		}
		return s.planner.PlanSelection(g, in.Selection, tmpl)
	})
}

// DeleteBucket removes every package of one size of a group.
func (s *InventoryServiceImpl) DeleteBucket(ctx context.Context, scope model.OwnerScope, groupKey, sizeKey string) (*MutationResult, error) {
	return s.mutate(ctx, scope, actionDeleteBucket, func(groups []inventory.Group) (model.Diff, error) {
		g, ok := inventory.FindGroup(groups, groupKey)
		if !ok {
			return model.Diff{}, fmt.Errorf("%s: %w", groupKey, ErrGroupNotFound)
		}
		size, err := decimal.NewFromString(sizeKey)
		if err != nil {
			return model.Diff{}, &inventory.RequestError{Code: inventory.CodeUnknownBucket, Detail: fmt.Sprintf("package size %q is not a number", sizeKey)}
		}
		b, ok := g.Bucket(inventory.SizeKey(size))
		if !ok {
			return model.Diff{}, &inventory.RequestError{Code: inventory.CodeUnknownBucket, Detail: fmt.Sprintf("no %s %s packages in %s", sizeKey, g.Unit, g.Name)}
		}
		return s.planner.PlanDeleteBucket(b)
	})
}

// Eat consumes amounts of one or more groups.
func (s *InventoryServiceImpl) Eat(ctx context.Context, scope model.OwnerScope, items []EatItem) (*ConsumptionOutcome, error) {
	var result inventory.ConsumptionResult
	mr, err := s.mutate(ctx, scope, actionEat, func(groups []inventory.Group) (model.Diff, error) {
		draws := make([]inventory.ItemDraw, 0, len(items))
		for _, it := range items {
			g, ok := inventory.FindGroup(groups, it.GroupKey)
			if !ok {
				return model.Diff{}, fmt.Errorf("%s: %w", it.GroupKey, ErrGroupNotFound)
			}
			unit := it.Unit
			if unit == "" {
				unit = g.Unit
			}
			amount, err := quantity.New(it.Amount, unit)
			if err != nil {
				return model.Diff{}, &inventory.RequestError{Code: inventory.CodeInvalidItem, Detail: g.Name, Err: err}
			}
			draws = append(draws, inventory.ItemDraw{Group: g, Amount: amount})
		}
		r, err := s.planner.Consume(draws)
		if err != nil {
			return model.Diff{}, err
		}
		result = r
		return r.Diff, nil
	})
	if err != nil {
		return nil, err
	}
	return &ConsumptionOutcome{ConsumptionResult: result, Groups: mr.Groups}, nil
}

// Cook deducts a recipe's ingredients and stores its leftovers.
func (s *InventoryServiceImpl) Cook(ctx context.Context, scope model.OwnerScope, in CookInput) (*ConsumptionOutcome, error) {
	plan := inventory.CookPlan{
		RecipeName:    strings.TrimSpace(in.RecipeName),
		Ingredients:   in.Ingredients,
		TotalServings: in.TotalServings,
		ServingsEaten: in.ServingsEaten,
		Nutrition:     in.Nutrition,
		ActorID:       scope.UserID,
		HouseholdID:   scope.HouseholdID,
	}
	for _, dest := range in.Leftovers {
		if dest.Servings > 0 && dest.LocationID != "" {
			loc, err := s.visibleLocation(ctx, scope, dest.LocationID)
			if err != nil {
				return nil, err
			}
			dest.Kind = loc.Kind
		}
		plan.Leftovers = append(plan.Leftovers, dest)
	}
	if plan.Nutrition == nil && plan.LeftoverServings() > 0 && s.estimator != nil {
		plan.Nutrition = s.estimateNutrition(ctx, plan)
	}

	var result inventory.ConsumptionResult
	mr, err := s.mutate(ctx, scope, actionCook, func(groups []inventory.Group) (model.Diff, error) {
		r, err := s.planner.ConsumeForRecipe(plan, groups)
		if err != nil {
			return model.Diff{}, err
		}
		result = r
		return r.Diff, nil
	})
	if err != nil {
		return nil, err
	}
	return &ConsumptionOutcome{ConsumptionResult: result, Groups: mr.Groups}, nil
}

// estimateNutrition never fails the cook action; a failed estimate only leaves leftovers unannotated.
func (s *InventoryServiceImpl) estimateNutrition(ctx context.Context, plan inventory.CookPlan) *model.NutritionFacts {
	facts, err := s.estimator.Estimate(ctx, plan.RecipeName, plan.Ingredients, plan.TotalServings)
	if err != nil {
		l := logger.FromContext(ctx, s.log)
		l.Warn().Err(err).Str("recipe", plan.RecipeName).Msg("nutrition estimate failed")
		return nil
	}
	return facts
}

// mutate plans against a fresh read and applies the diff. A concurrency conflict
// re-reads and re-plans up to maxRetries times before it is returned.
func (s *InventoryServiceImpl) mutate(
	ctx context.Context,
	scope model.OwnerScope,
	operation string,
	plan func(groups []inventory.Group) (model.Diff, error),
) (result *MutationResult, err error) {
	start := time.Now()
	defer func() { s.record(operation, start, err) }()
	l := logger.FromContext(ctx, s.log)

	for attempt := 0; ; attempt++ {
		groups, err := s.ListGroups(ctx, scope)
		if err != nil {
			return nil, err
		}

		diff, err := plan(groups)
		if err != nil {
			var inv *inventory.InvariantError
			if errors.As(err, &inv) {
				metrics.RecordInvariantViolation(operation)
				l.Error().
					Str("operation", operation).
					Str("user_id", scope.UserID).
					Str("reason", inv.Reason).
					Interface("diff", inv.Diff).
					Msg("planned diff rejected by invariant check")
			}
			return nil, err
		}

		err = s.packages.ApplyDiff(ctx, diff)
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			metrics.RecordConflict(operation)
			if attempt < s.maxRetries {
				l.Warn().Str("operation", operation).Int("attempt", attempt+1).Msg("concurrent update, re-planning")
				continue
			}
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("apply %s: %w", operation, err)
		}

		after, err := s.ListGroups(ctx, scope)
		if err != nil {
			return nil, err
		}
		return &MutationResult{Diff: diff, Groups: after}, nil
	}
}

func (s *InventoryServiceImpl) visibleLocation(ctx context.Context, scope model.OwnerScope, id string) (*model.Location, error) {
	if id == "" {
		return nil, &inventory.RequestError{Code: inventory.CodeMissingDestination, Detail: "a storage location is required"}
	}
	loc, err := s.locations.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", id, ErrLocationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if !loc.VisibleTo(scope) {
		return nil, fmt.Errorf("%s: %w", id, ErrLocationNotFound)
	}
	return loc, nil
}

func (s *InventoryServiceImpl) record(operation string, start time.Time, err error) {
	status := "success"
	switch {
	case err == nil:
	case errors.Is(err, inventory.ErrInvalidRequest), errors.Is(err, quantity.ErrIncompatibleUnit):
		status = "rejected"
	case errors.Is(err, repository.ErrConcurrencyConflict):
		status = "conflict"
	default:
		status = "error"
	}
	metrics.RecordInventoryOperation(operation, time.Since(start), status)
}
