package inventory

import (
	"sort"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
)

// ItemDraw asks to consume an amount of one group.
type ItemDraw struct {
	Group  Group
	Amount quantity.Quantity
}

// Deduction reports how much was taken from a group.
type Deduction struct {
	GroupKey    string            `json:"group_key"`
	ItemName    string            `json:"item_name"`
	Requested   quantity.Quantity `json:"requested"`
	Deducted    quantity.Quantity `json:"deducted"`
	Ingredients []string          `json:"ingredients,omitempty"`
}

// Shortfall reports an amount that could not be covered by inventory.
type Shortfall struct {
	GroupKey    string            `json:"group_key"`
	ItemName    string            `json:"item_name"`
	Missing     quantity.Quantity `json:"missing"`
	Ingredients []string          `json:"ingredients,omitempty"`
}

// Unmatched reports a recipe line that could not be drawn from inventory.
type Unmatched struct {
	Ingredient string `json:"ingredient"`
	Reason     string `json:"reason"`
}

const (
	ReasonNoMatch          = "no_match"
	ReasonIncompatibleUnit = "incompatible_unit"
)

// ConsumptionResult is the outcome of an eat or cook action.
type ConsumptionResult struct {
	Diff       model.Diff
	Deductions []Deduction
	Unmatched  []Unmatched
	Shortfalls []Shortfall
	Leftovers  []model.Package
}

// Consume deducts each draw from its group, first-expire-first-out across buckets.
// Draws on the same group are added together. Asking for more than a group holds is rejected.
func (p *Planner) Consume(draws []ItemDraw) (ConsumptionResult, error) {
	if len(draws) == 0 {
		return ConsumptionResult{}, invalid(CodeNothingRequested, "nothing to eat")
	}

	type pending struct {
		group  Group
		amount decimal.Decimal
	}
	var (
		order  []string
		byKey  = make(map[string]*pending)
		result ConsumptionResult
	)
	for _, d := range draws {
		amount, err := quantity.Convert(d.Amount, d.Group.Unit)
		if err != nil {
			return ConsumptionResult{}, err
		}
		if !amount.Amount.IsPositive() {
			return ConsumptionResult{}, invalid(CodeNothingRequested, "nothing to eat from %s", d.Group.Name)
		}
		if pd, ok := byKey[d.Group.Key]; ok {
			pd.amount = quantity.Normalize(pd.amount.Add(amount.Amount))
			continue
		}
		byKey[d.Group.Key] = &pending{group: d.Group, amount: amount.Amount}
		order = append(order, d.Group.Key)
	}

	for _, key := range order {
		pd := byKey[key]
		available := pd.group.Total()
		if quantity.Compare(pd.amount, available) > 0 {
			return ConsumptionResult{}, invalid(CodeExceedsAvailable, "requested %s %s of %s, %s available",
				pd.amount, pd.group.Unit, pd.group.Name, available)
		}
		diff, err := p.drawFromGroup(pd.group, pd.amount)
		if err != nil {
			return ConsumptionResult{}, err
		}
		result.Diff = result.Diff.Merge(diff)
		q := quantity.Quantity{Amount: pd.amount, Unit: pd.group.Unit}
		result.Deductions = append(result.Deductions, Deduction{
			GroupKey:  key,
			ItemName:  pd.group.Name,
			Requested: q,
			Deducted:  q,
		})
	}
	return result, nil
}

// drawFromGroup consumes amount across buckets in expiry order, exhausting each before the next.
// Within a bucket the partial pool goes first, then whole full packages, and a fractional
// remainder opens one more full package.
func (p *Planner) drawFromGroup(g Group, amount decimal.Decimal) (model.Diff, error) {
	buckets := append([]Bucket(nil), g.Buckets...)
	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i].NextExpiry, buckets[j].NextExpiry
		if ExpiryEqual(a, b) {
			return buckets[i].OriginalSize.LessThan(buckets[j].OriginalSize)
		}
		return model.ExpiresBefore(a, b)
	})

	var diff model.Diff
	needed := quantity.Normalize(amount)
	for _, b := range buckets {
		if !needed.IsPositive() {
			break
		}

		partialTotal := b.PartialTotal()
		if quantity.Compare(needed, b.Total()) >= 0 {
			d, err := p.PlanTransfer(b, TransferRequest{Operation: OpConsume, FullPackages: len(b.Full), PartialAmount: partialTotal})
			if err != nil {
				return model.Diff{}, err
			}
			diff = diff.Merge(d)
			needed = quantity.Normalize(needed.Sub(b.Total()))
			continue
		}

		fromPartial := quantity.MinDecimal(needed, partialTotal)
		rest := quantity.Normalize(needed.Sub(fromPartial))
		fullCount := int(rest.Div(b.OriginalSize).Floor().IntPart())
		fraction := quantity.Normalize(rest.Sub(b.OriginalSize.Mul(decimal.NewFromInt(int64(fullCount)))))

		view := b
		if fraction.IsPositive() {
			view = openFullPackage(b, fullCount)
		}
		d, err := p.PlanTransfer(view, TransferRequest{
			Operation:     OpConsume,
			FullPackages:  fullCount,
			PartialAmount: quantity.Normalize(fromPartial.Add(fraction)),
		})
		if err != nil {
			return model.Diff{}, err
		}
		diff = diff.Merge(d)
		needed = decimal.Zero
	}

	if needed.IsPositive() {
		return model.Diff{}, invalid(CodeExceedsAvailable, "%s %s of %s could not be covered", needed, g.Unit, g.Name)
	}
	return diff, nil
}

// openFullPackage returns a view of b where the full package at index i joins the partial pool.
func openFullPackage(b Bucket, i int) Bucket {
	view := b
	view.Full = make([]model.Package, 0, len(b.Full)-1)
	view.Full = append(view.Full, b.Full[:i]...)
	view.Full = append(view.Full, b.Full[i+1:]...)
	view.Partial = append(append([]model.Package(nil), b.Partial...), b.Full[i])
	return view
}
