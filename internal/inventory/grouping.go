// Package inventory folds package records into groups and plans the diffs
// that move, spoil, consume or re-share quantities of them.
package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
)

// Bucket holds the packages of one group that share an original size.
type Bucket struct {
	GroupKey     string
	OriginalSize decimal.Decimal
	Unit         quantity.Unit
	Full         []model.Package
	Partial      []model.Package
	NextExpiry   *time.Time
}

// SizeKey is the canonical string form of the bucket size.
func (b Bucket) SizeKey() string {
	return SizeKey(b.OriginalSize)
}

// PartialTotal sums what remains across the partial pool.
func (b Bucket) PartialTotal() decimal.Decimal {
	return sumTotals(b.Partial)
}

// Total sums what remains across the whole bucket.
func (b Bucket) Total() decimal.Decimal {
	return quantity.Normalize(b.OriginalSize.Mul(decimal.NewFromInt(int64(len(b.Full)))).Add(b.PartialTotal()))
}

// Packages returns full packages followed by the partial pool.
func (b Bucket) Packages() []model.Package {
	out := make([]model.Package, 0, len(b.Full)+len(b.Partial))
	out = append(out, b.Full...)
	return append(out, b.Partial...)
}

// Group is every package sharing an item name and unit.
type Group struct {
	Key        string
	Name       string
	Unit       quantity.Unit
	Buckets    []Bucket
	NextExpiry *time.Time
}

// Total sums what remains across every bucket.
func (g Group) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range g.Buckets {
		total = total.Add(b.Total())
	}
	return quantity.Normalize(total)
}

// Packages flattens the group back into package records.
func (g Group) Packages() []model.Package {
	var out []model.Package
	for _, b := range g.Buckets {
		out = append(out, b.Packages()...)
	}
	return out
}

// Bucket finds the bucket for a size key.
func (g Group) Bucket(sizeKey string) (Bucket, bool) {
	for _, b := range g.Buckets {
		if b.SizeKey() == sizeKey {
			return b, true
		}
	}
	return Bucket{}, false
}

// LocationGroups is the grouped view of one storage location.
type LocationGroups struct {
	LocationID string
	Groups     []Group
}

// GroupKey builds the key used to partition packages into groups.
func GroupKey(itemName string, unit quantity.Unit) string {
	return model.NormalizeName(itemName) + "|" + string(unit)
}

// SplitGroupKey returns the name and unit encoded in a group key.
func SplitGroupKey(key string) (string, quantity.Unit) {
	i := strings.LastIndex(key, "|")
	if i < 0 {
		return key, ""
	}
	return key[:i], quantity.Unit(key[i+1:])
}

// SizeKey renders a package size at quantity precision.
func SizeKey(size decimal.Decimal) string {
	return quantity.Normalize(size).String()
}

// GroupPackages folds packages into groups and buckets.
// Groups are ordered by next expiry with non-expiring groups last.
func GroupPackages(packages []model.Package) []Group {
	byKey := make(map[string][]model.Package)
	for _, p := range packages {
		key := GroupKey(p.ItemName, p.Unit)
		byKey[key] = append(byKey[key], p)
	}

	groups := make([]Group, 0, len(byKey))
	for key, members := range byKey {
		groups = append(groups, buildGroup(key, members))
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i].NextExpiry, groups[j].NextExpiry
		if ExpiryEqual(a, b) {
			return groups[i].Key < groups[j].Key
		}
		return model.ExpiresBefore(a, b)
	})
	return groups
}

// GroupByLocation groups packages separately for every location, ordered by location id.
func GroupByLocation(packages []model.Package) []LocationGroups {
	byLocation := make(map[string][]model.Package)
	for _, p := range packages {
		byLocation[p.LocationID] = append(byLocation[p.LocationID], p)
	}

	out := make([]LocationGroups, 0, len(byLocation))
	for id, members := range byLocation {
		out = append(out, LocationGroups{LocationID: id, Groups: GroupPackages(members)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocationID < out[j].LocationID })
	return out
}

// FindGroup returns the group with the given key.
func FindGroup(groups []Group, key string) (Group, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

func buildGroup(key string, members []model.Package) Group {
	oldest := members[0]
	for _, p := range members[1:] {
		if p.CreatedAt.Before(oldest.CreatedAt) || (p.CreatedAt.Equal(oldest.CreatedAt) && p.ID < oldest.ID) {
			oldest = p
		}
	}

	bySize := make(map[string][]model.Package)
	for _, p := range members {
		k := SizeKey(p.OriginalQuantity)
		bySize[k] = append(bySize[k], p)
	}

	g := Group{Key: key, Name: strings.TrimSpace(oldest.ItemName), Unit: oldest.Unit}
	for _, pkgs := range bySize {
		b := buildBucket(key, pkgs)
		g.Buckets = append(g.Buckets, b)
		g.NextExpiry = earliest(g.NextExpiry, b.NextExpiry)
	}
	sort.Slice(g.Buckets, func(i, j int) bool {
		return g.Buckets[i].OriginalSize.LessThan(g.Buckets[j].OriginalSize)
	})
	return g
}

func buildBucket(key string, pkgs []model.Package) Bucket {
	b := Bucket{
		GroupKey:     key,
		OriginalSize: quantity.Normalize(pkgs[0].OriginalQuantity),
		Unit:         pkgs[0].Unit,
	}
	for _, p := range pkgs {
		if p.IsFull() {
			b.Full = append(b.Full, p)
		} else {
			b.Partial = append(b.Partial, p)
		}
		b.NextExpiry = earliest(b.NextExpiry, p.ExpiryDate)
	}
	sortFull(b.Full)
	sortPartial(b.Partial)
	return b
}

// sortFull orders full packages by expiry, then id.
func sortFull(pkgs []model.Package) {
	sort.Slice(pkgs, func(i, j int) bool {
		a, b := pkgs[i].ExpiryDate, pkgs[j].ExpiryDate
		if ExpiryEqual(a, b) {
			return pkgs[i].ID < pkgs[j].ID
		}
		return model.ExpiresBefore(a, b)
	})
}

// sortPartial orders the partial pool by remaining amount, then id.
func sortPartial(pkgs []model.Package) {
	sort.Slice(pkgs, func(i, j int) bool {
		if c := quantity.Compare(pkgs[i].TotalQuantity, pkgs[j].TotalQuantity); c != 0 {
			return c < 0
		}
		return pkgs[i].ID < pkgs[j].ID
	})
}

// ExpiryEqual reports whether two optional expiry dates are the same.
func ExpiryEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func earliest(a, b *time.Time) *time.Time {
	if model.ExpiresBefore(b, a) {
		return b
	}
	return a
}

func sumTotals(pkgs []model.Package) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pkgs {
		total = total.Add(p.TotalQuantity)
	}
	return quantity.Normalize(total)
}
