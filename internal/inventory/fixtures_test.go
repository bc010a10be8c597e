package inventory

import (
	"fmt"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(n int) *time.Time {
	t := testNow.AddDate(0, 0, n)
	return &t
}

func pkg(id, name, original, total string, unit quantity.Unit) model.Package {
	return model.Package{
		ID:               id,
		OwnerID:          "alice",
		HouseholdID:      "home",
		ItemName:         name,
		OriginalQuantity: dec(original),
		TotalQuantity:    dec(total),
		Unit:             unit,
		LocationID:       "fridge-1",
		Version:          1,
		CreatedAt:        testNow,
	}
}

func withExpiry(p model.Package, expiry *time.Time) model.Package {
	p.ExpiryDate = expiry
	return p
}

func newTestPlanner(opts ...PlannerOption) *Planner {
	n := 0
	base := []PlannerOption{
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("new-%d", n)
		}),
		WithClock(func() time.Time { return testNow }),
	}
	return NewPlanner(append(base, opts...)...)
}

func onlyGroup(pkgs ...model.Package) Group {
	groups := GroupPackages(pkgs)
	if len(groups) != 1 {
		panic(fmt.Sprintf("expected one group, got %d", len(groups)))
	}
	return groups[0]
}

func onlyBucket(pkgs ...model.Package) Bucket {
	g := onlyGroup(pkgs...)
	if len(g.Buckets) != 1 {
		panic(fmt.Sprintf("expected one bucket, got %d", len(g.Buckets)))
	}
	return g.Buckets[0]
}

func totalsByID(pkgs []model.Package) map[string]string {
	out := make(map[string]string, len(pkgs))
	for _, p := range pkgs {
		out[p.ID] = quantity.Normalize(p.TotalQuantity).String()
	}
	return out
}
