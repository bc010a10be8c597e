package inventory

import (
	"strings"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
)

// Ingredient is one parsed recipe line.
type Ingredient struct {
	Name     string
	Quantity quantity.Quantity
}

// LeftoverDestination is where some of the uneaten servings are stored.
type LeftoverDestination struct {
	LocationID string
	Kind       model.StorageKind
	Servings   int
	IsPrivate  bool
}

// CookPlan describes a recipe cooked in full.
type CookPlan struct {
	RecipeName    string
	Ingredients   []Ingredient
	TotalServings int
	ServingsEaten int
	Leftovers     []LeftoverDestination
	Nutrition     *model.NutritionFacts
	ActorID       string
	HouseholdID   string
}

// LeftoverServings sums the servings stored across destinations.
func (c CookPlan) LeftoverServings() int {
	n := 0
	for _, l := range c.Leftovers {
		n += l.Servings
	}
	return n
}

// LeftoverPolicy is how many days leftovers keep in each kind of storage.
type LeftoverPolicy struct {
	FridgeDays  int
	FreezerDays int
	PantryDays  int
}

// DefaultLeftoverPolicy keeps leftovers three days chilled and sixty days frozen.
func DefaultLeftoverPolicy() LeftoverPolicy {
	return LeftoverPolicy{FridgeDays: 3, FreezerDays: 60, PantryDays: 3}
}

// ExpiryFor returns when leftovers stored in kind at now expire.
func (lp LeftoverPolicy) ExpiryFor(kind model.StorageKind, now time.Time) time.Time {
	days := lp.FridgeDays
	switch kind {
	case model.StorageFreezer:
		days = lp.FreezerDays
	case model.StoragePantry:
		days = lp.PantryDays
	}
	return now.AddDate(0, 0, days)
}

type recipeDraw struct {
	group       Group
	amount      decimal.Decimal
	ingredients []string
}

// ConsumeForRecipe deducts the full recipe's draw from the matching groups and creates leftovers.
// Unmatched lines and shortfalls are reported rather than failing the action.
func (p *Planner) ConsumeForRecipe(plan CookPlan, groups []Group) (ConsumptionResult, error) {
	if err := validateCookPlan(plan); err != nil {
		return ConsumptionResult{}, err
	}

	cooked := decimal.NewFromInt(int64(plan.ServingsEaten + plan.LeftoverServings()))
	factor := cooked.Div(decimal.NewFromInt(int64(plan.TotalServings)))

	var (
		result ConsumptionResult
		order  []string
		draws  = make(map[string]*recipeDraw)
	)
	for _, ing := range plan.Ingredients {
		if !ing.Quantity.Amount.IsPositive() {
			continue
		}
		g, ok := p.matcher.Match(ing, groups)
		if !ok {
			result.Unmatched = append(result.Unmatched, Unmatched{Ingredient: ing.Name, Reason: ReasonNoMatch})
			continue
		}
		needed := quantity.Quantity{Amount: quantity.Normalize(ing.Quantity.Amount.Mul(factor)), Unit: ing.Quantity.Unit}
		converted, err := quantity.Convert(needed, g.Unit)
		if err != nil {
			result.Unmatched = append(result.Unmatched, Unmatched{Ingredient: ing.Name, Reason: ReasonIncompatibleUnit})
			continue
		}

		rd, seen := draws[g.Key]
		if !seen {
			rd = &recipeDraw{group: g}
			draws[g.Key] = rd
			order = append(order, g.Key)
		}
		rd.amount = quantity.Normalize(rd.amount.Add(converted.Amount))
		rd.ingredients = append(rd.ingredients, ing.Name)
	}

	for _, key := range order {
		rd := draws[key]
		available := rd.group.Total()
		take := quantity.MinDecimal(rd.amount, available)
		if quantity.Compare(rd.amount, available) > 0 {
			result.Shortfalls = append(result.Shortfalls, Shortfall{
				GroupKey:    key,
				ItemName:    rd.group.Name,
				Missing:     quantity.Quantity{Amount: quantity.Normalize(rd.amount.Sub(available)), Unit: rd.group.Unit},
				Ingredients: rd.ingredients,
			})
		}
		if take.IsPositive() {
			diff, err := p.drawFromGroup(rd.group, take)
			if err != nil {
				return ConsumptionResult{}, err
			}
			result.Diff = result.Diff.Merge(diff)
		}
		result.Deductions = append(result.Deductions, Deduction{
			GroupKey:    key,
			ItemName:    rd.group.Name,
			Requested:   quantity.Quantity{Amount: rd.amount, Unit: rd.group.Unit},
			Deducted:    quantity.Quantity{Amount: take, Unit: rd.group.Unit},
			Ingredients: rd.ingredients,
		})
	}

	result.Leftovers = p.leftovers(plan)
	result.Diff.Insertions = append(result.Diff.Insertions, result.Leftovers...)
	return result, nil
}

func validateCookPlan(plan CookPlan) error {
	if plan.TotalServings <= 0 {
		return invalid(CodeInvalidServings, "total servings must be positive")
	}
	if plan.ServingsEaten < 0 {
		return invalid(CodeInvalidServings, "servings eaten must not be negative")
	}
	for _, l := range plan.Leftovers {
		if l.Servings < 0 {
			return invalid(CodeInvalidServings, "leftover servings must not be negative")
		}
		if l.Servings > 0 && l.LocationID == "" {
			return invalid(CodeMissingDestination, "leftovers need a storage location")
		}
	}
	if plan.ServingsEaten+plan.LeftoverServings() == 0 {
		return invalid(CodeInvalidServings, "no servings eaten or stored")
	}
	if plan.LeftoverServings() > 0 && strings.TrimSpace(plan.RecipeName) == "" {
		return invalid(CodeInvalidServings, "leftovers need a recipe name")
	}
	return nil
}

func (p *Planner) leftovers(plan CookPlan) []model.Package {
	now := p.now()
	var out []model.Package
	for _, dest := range plan.Leftovers {
		if dest.Servings == 0 {
			continue
		}
		servings := decimal.NewFromInt(int64(dest.Servings))
		expiry := p.leftover.ExpiryFor(dest.Kind, now)
		pkg := model.Package{
			ID:               p.newID(),
			OwnerID:          plan.ActorID,
			HouseholdID:      plan.HouseholdID,
			ItemName:         plan.RecipeName,
			OriginalQuantity: servings,
			TotalQuantity:    servings,
			Unit:             quantity.Piece,
			ExpiryDate:       &expiry,
			LocationID:       dest.LocationID,
			IsPrivate:        dest.IsPrivate,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if plan.Nutrition != nil {
			macros := plan.Nutrition.PerServing
			size := plan.Nutrition.ServingSize
			pkg.ServingMacros = &macros
			pkg.ServingSize = &size
		}
		out = append(out, pkg)
	}
	return out
}
