package model

import (
	"github.com/shopspring/decimal"
)

// Update rewrites the mutable fields of an existing package.
// ExpectedVersion is the version the plan was computed against.
type Update struct {
	ID              string          `json:"id"`
	TotalQuantity   decimal.Decimal `json:"total_quantity" swaggertype:"number"`
	LocationID      string          `json:"location_id"`
	IsPrivate       bool            `json:"is_private"`
	OwnerID         string          `json:"owner_id"`
	ExpectedVersion int64           `json:"expected_version"`
}

// Removal deletes a package that was depleted or discarded.
type Removal struct {
	ID              string `json:"id"`
	ExpectedVersion int64  `json:"expected_version"`
}

// Diff is the set of changes realizing one inventory operation.
type Diff struct {
	Updates    []Update  `json:"updates"`
	Removals   []Removal `json:"removals"`
	Insertions []Package `json:"insertions"`
}

// IsEmpty reports whether the diff changes nothing.
func (d Diff) IsEmpty() bool {
	return len(d.Updates) == 0 && len(d.Removals) == 0 && len(d.Insertions) == 0
}

// Merge appends other's operations to d.
func (d Diff) Merge(other Diff) Diff {
	d.Updates = append(d.Updates, other.Updates...)
	d.Removals = append(d.Removals, other.Removals...)
	d.Insertions = append(d.Insertions, other.Insertions...)
	return d
}

// RepeatedTarget returns the first package id that more than one update or removal names.
func (d Diff) RepeatedTarget() (string, bool) {
	seen := make(map[string]struct{}, len(d.Updates)+len(d.Removals))
	ids := make([]string, 0, len(d.Updates)+len(d.Removals))
	for _, u := range d.Updates {
		ids = append(ids, u.ID)
	}
	for _, r := range d.Removals {
		ids = append(ids, r.ID)
	}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}

// Apply returns the packages that result from applying d to pkgs.
// Packages not mentioned by the diff are returned unchanged.
func (d Diff) Apply(pkgs []Package) []Package {
	updates := make(map[string]Update, len(d.Updates))
	for _, u := range d.Updates {
		updates[u.ID] = u
	}
	removed := make(map[string]struct{}, len(d.Removals))
	for _, r := range d.Removals {
		removed[r.ID] = struct{}{}
	}

	out := make([]Package, 0, len(pkgs)+len(d.Insertions))
	for _, p := range pkgs {
		if _, ok := removed[p.ID]; ok {
			continue
		}
		if u, ok := updates[p.ID]; ok {
			p.TotalQuantity = u.TotalQuantity
			p.LocationID = u.LocationID
			p.IsPrivate = u.IsPrivate
			p.OwnerID = u.OwnerID
			p.Version++
		}
		out = append(out, p)
	}
	return append(out, d.Insertions...)
}
