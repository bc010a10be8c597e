package inventory

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
)

// Operation is the kind of mutation applied to the selected packages.
type Operation string

const (
	OpMove       Operation = "move"
	OpSpoil      Operation = "spoil"
	OpConsume    Operation = "consume"
	OpSetPrivacy Operation = "set_privacy"
)

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	switch op {
	case OpMove, OpSpoil, OpConsume, OpSetPrivacy:
		return true
	}
	return false
}

// Relocates reports whether the operation keeps the quantity and only changes where it lives.
func (op Operation) Relocates() bool {
	return op == OpMove || op == OpSetPrivacy
}

// TransferRequest asks for whole full packages plus an amount from the partial pool.
type TransferRequest struct {
	Operation             Operation
	FullPackages          int
	PartialAmount         decimal.Decimal
	DestinationLocationID string
	MakePrivate           bool
	ActorID               string
}

// SizeSelection is the amount requested from one bucket.
type SizeSelection struct {
	FullCount     int
	PartialAmount decimal.Decimal
}

// Selection maps a bucket size key to the amount requested from it.
type Selection map[string]SizeSelection

// Planner turns requests into diffs. It holds no inventory state.
type Planner struct {
	newID    func() string
	now      func() time.Time
	matcher  Matcher
	leftover LeftoverPolicy
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithIDGenerator sets the generator for inserted package ids.
func WithIDGenerator(fn func() string) PlannerOption {
	return func(p *Planner) { p.newID = fn }
}

// WithClock sets the time source.
func WithClock(fn func() time.Time) PlannerOption {
	return func(p *Planner) { p.now = fn }
}

// WithMatcher sets the ingredient matcher used when cooking.
func WithMatcher(m Matcher) PlannerOption {
	return func(p *Planner) { p.matcher = m }
}

// WithLeftoverPolicy sets how long leftovers keep per storage kind.
func WithLeftoverPolicy(policy LeftoverPolicy) PlannerOption {
	return func(p *Planner) { p.leftover = policy }
}

// NewPlanner creates a Planner with uuid ids, the wall clock and substring matching.
func NewPlanner(opts ...PlannerOption) *Planner {
	p := &Planner{
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
		matcher:  SubstringMatcher{},
		leftover: DefaultLeftoverPolicy(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlanTransfer decides which packages of a bucket satisfy req and returns the diff.
// Nothing is returned for persistence unless the diff conserves quantity.
func (p *Planner) PlanTransfer(b Bucket, req TransferRequest) (model.Diff, error) {
	if err := validateTransfer(b, req); err != nil {
		return model.Diff{}, err
	}

	var diff model.Diff
	for _, pkg := range b.Full[:req.FullPackages] {
		if req.Operation.Relocates() {
			diff.Updates = append(diff.Updates, relocate(pkg, pkg.TotalQuantity, req))
		} else {
			diff.Removals = append(diff.Removals, model.Removal{ID: pkg.ID, ExpectedVersion: pkg.Version})
		}
	}

	partials := append([]model.Package(nil), b.Partial...)
	sortPartial(partials)

	needed := quantity.Normalize(req.PartialAmount)
	for _, pkg := range partials {
		if !needed.IsPositive() {
			break
		}
		if quantity.IsZero(pkg.TotalQuantity) {
			continue
		}

		take := quantity.MinDecimal(needed, pkg.TotalQuantity)
		remaining, err := quantity.Subtract(pkg.Remaining(), quantity.Quantity{Amount: take, Unit: pkg.Unit})
		if err != nil {
			return model.Diff{}, asRequestError(err)
		}
		needed = quantity.Normalize(needed.Sub(take))

		if remaining.IsZero() {
			if req.Operation.Relocates() {
				diff.Updates = append(diff.Updates, relocate(pkg, pkg.TotalQuantity, req))
			} else {
				diff.Removals = append(diff.Removals, model.Removal{ID: pkg.ID, ExpectedVersion: pkg.Version})
			}
			continue
		}

		diff.Updates = append(diff.Updates, model.Update{
			ID:              pkg.ID,
			TotalQuantity:   remaining.Amount,
			LocationID:      pkg.LocationID,
			IsPrivate:       pkg.IsPrivate,
			OwnerID:         pkg.OwnerID,
			ExpectedVersion: pkg.Version,
		})
		if req.Operation.Relocates() {
			diff.Insertions = append(diff.Insertions, p.split(pkg, take, req))
		}
	}

	if err := verifyConservation(b, req, diff); err != nil {
		return model.Diff{}, err
	}
	return diff, nil
}

// PlanSelection plans a per-size selection against the current group and merges the result.
// Any rejected bucket rejects the whole selection, and each bucket may be selected only once
// however its size is spelled.
func (p *Planner) PlanSelection(g Group, sel Selection, tmpl TransferRequest) (model.Diff, error) {
	keys := make([]string, 0, len(sel))
	for k := range sel {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		diff    model.Diff
		planned int
		sizes   = make(map[string]string, len(keys))
	)
	for _, k := range keys {
		s := sel[k]
		size, err := decimal.NewFromString(k)
		if err != nil {
			return model.Diff{}, invalid(CodeUnknownBucket, "package size %q is not a number", k)
		}
		sizeKey := SizeKey(size)
		if prev, dup := sizes[sizeKey]; dup {
			return model.Diff{}, invalid(CodeUnknownBucket, "package sizes %q and %q select the same bucket", prev, k)
		}
		sizes[sizeKey] = k
		b, ok := g.Bucket(sizeKey)
		if !ok {
			return model.Diff{}, invalid(CodeUnknownBucket, "no %s %s packages in %s", k, g.Unit, g.Name)
		}
		if s.FullCount == 0 && quantity.IsZero(s.PartialAmount) {
			continue
		}

		req := tmpl
		req.FullPackages = s.FullCount
		req.PartialAmount = s.PartialAmount
		d, err := p.PlanTransfer(b, req)
		if err != nil {
			return model.Diff{}, err
		}
		diff = diff.Merge(d)
		planned++
	}

	if planned == 0 {
		return model.Diff{}, invalid(CodeNothingRequested, "selection does not request anything")
	}
	return diff, nil
}

// PlanDeleteBucket removes every package of a bucket.
func (p *Planner) PlanDeleteBucket(b Bucket) (model.Diff, error) {
	pkgs := b.Packages()
	if len(pkgs) == 0 {
		return model.Diff{}, invalid(CodeNothingRequested, "bucket is empty")
	}
	var diff model.Diff
	for _, pkg := range pkgs {
		diff.Removals = append(diff.Removals, model.Removal{ID: pkg.ID, ExpectedVersion: pkg.Version})
	}
	return diff, nil
}

func validateTransfer(b Bucket, req TransferRequest) error {
	switch {
	case !req.Operation.Valid():
		return invalid(CodeUnknownOperation, "unknown operation %q", req.Operation)
	case req.FullPackages < 0 || req.PartialAmount.IsNegative():
		return invalid(CodeNegativeAmount, "requested amounts must not be negative")
	case req.FullPackages == 0 && quantity.IsZero(req.PartialAmount):
		return invalid(CodeNothingRequested, "nothing to %s", req.Operation)
	case req.FullPackages > len(b.Full):
		return invalid(CodeExceedsFullPackages, "requested %d full packages, %d available", req.FullPackages, len(b.Full))
	case quantity.Compare(req.PartialAmount, b.PartialTotal()) > 0:
		return invalid(CodeExceedsPartial, "requested %s %s from partial packages, %s available",
			quantity.Normalize(req.PartialAmount), b.Unit, b.PartialTotal())
	case req.Operation == OpMove && req.DestinationLocationID == "":
		return invalid(CodeMissingDestination, "move requires a destination location")
	}
	return nil
}

// relocate keeps the amount and rewrites location or privacy.
func relocate(pkg model.Package, total decimal.Decimal, req TransferRequest) model.Update {
	u := model.Update{
		ID:              pkg.ID,
		TotalQuantity:   total,
		LocationID:      pkg.LocationID,
		IsPrivate:       pkg.IsPrivate,
		OwnerID:         pkg.OwnerID,
		ExpectedVersion: pkg.Version,
	}
	switch req.Operation {
	case OpMove:
		u.LocationID = req.DestinationLocationID
	case OpSetPrivacy:
		u.IsPrivate = req.MakePrivate
		if req.MakePrivate && req.ActorID != "" {
			u.OwnerID = req.ActorID
		}
	}
	return u
}

// split creates the record that carries a sub-amount taken from pkg to its new place.
func (p *Planner) split(pkg model.Package, amount decimal.Decimal, req TransferRequest) model.Package {
	u := relocate(pkg, amount, req)
	now := p.now()
	return model.Package{
		ID:               p.newID(),
		OwnerID:          u.OwnerID,
		HouseholdID:      pkg.HouseholdID,
		ItemName:         pkg.ItemName,
		OriginalQuantity: pkg.OriginalQuantity,
		TotalQuantity:    amount,
		Unit:             pkg.Unit,
		ExpiryDate:       pkg.ExpiryDate,
		LocationID:       u.LocationID,
		IsPrivate:        u.IsPrivate,
		ServingMacros:    pkg.ServingMacros,
		ServingSize:      pkg.ServingSize,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// verifyConservation recomputes the moved or removed amount from the diff itself.
func verifyConservation(b Bucket, req TransferRequest, diff model.Diff) error {
	requested := quantity.Normalize(b.OriginalSize.Mul(decimal.NewFromInt(int64(req.FullPackages))).Add(req.PartialAmount))

	pkgs := b.Packages()
	byID := make(map[string]model.Package, len(pkgs))
	for _, pkg := range pkgs {
		byID[pkg.ID] = pkg
	}

	for _, u := range diff.Updates {
		if _, ok := byID[u.ID]; !ok {
			return &InvariantError{Reason: "update targets a package outside the bucket", Diff: diff}
		}
		if !u.TotalQuantity.IsPositive() {
			return &InvariantError{Reason: "update leaves a package at zero or below", Actual: u.TotalQuantity, Diff: diff}
		}
	}
	for _, ins := range diff.Insertions {
		if !quantity.Equal(ins.OriginalQuantity, b.OriginalSize) {
			return &InvariantError{Reason: "insertion changes package size", Expected: b.OriginalSize, Actual: ins.OriginalQuantity, Diff: diff}
		}
	}

	before := sumTotals(pkgs)
	after := sumTotals(diff.Apply(pkgs))
	removed := quantity.Normalize(before.Sub(after))

	if !req.Operation.Relocates() {
		if len(diff.Insertions) > 0 {
			return &InvariantError{Reason: "removal operation inserted packages", Diff: diff}
		}
		if !quantity.Equal(removed, requested) {
			return &InvariantError{Reason: "removed amount differs from request", Expected: requested, Actual: removed, Diff: diff}
		}
		return nil
	}

	if !removed.IsZero() {
		return &InvariantError{Reason: "relocation changed the bucket total", Expected: decimal.Zero, Actual: removed, Diff: diff}
	}
	relocated := decimal.Zero
	for _, u := range diff.Updates {
		if quantity.Equal(u.TotalQuantity, byID[u.ID].TotalQuantity) {
			relocated = relocated.Add(u.TotalQuantity)
		}
	}
	for _, ins := range diff.Insertions {
		relocated = relocated.Add(ins.TotalQuantity)
	}
	if !quantity.Equal(relocated, requested) {
		return &InvariantError{Reason: "relocated amount differs from request", Expected: requested, Actual: relocated, Diff: diff}
	}
	return nil
}

// asRequestError converts quantity.ErrInsufficientQuantity into a request rejection.
// The quantity error stays in Detail only and is not unwrappable from the result.
func asRequestError(err error) error {
	if errors.Is(err, quantity.ErrInsufficientQuantity) {
		return invalid(CodeExceedsAvailable, "not enough left: %v", err)
	}
	return err
}
