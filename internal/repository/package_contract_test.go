package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackage(id, owner string, private bool, total string) model.Package {
	expiry := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return model.Package{
		ID:               id,
		OwnerID:          owner,
		HouseholdID:      "home",
		ItemName:         "Flour",
		OriginalQuantity: decimal.RequireFromString("500"),
		TotalQuantity:    decimal.RequireFromString(total),
		Unit:             quantity.Gram,
		ExpiryDate:       &expiry,
		LocationID:       "pantry-1",
		IsPrivate:        private,
		ServingMacros:    &model.Macros{Calories: 364, Protein: 10.3},
	}
}

// runPackageRepositoryContract exercises behaviour every package store must share.
func runPackageRepositoryContract(t *testing.T, repo PackageRepositoryInterface) {
	ctx := context.Background()
	alice := model.OwnerScope{UserID: "alice", HouseholdID: "home"}
	bob := model.OwnerScope{UserID: "bob", HouseholdID: "home"}

	require.NoError(t, repo.Insert(ctx, []model.Package{
		testPackage("a-shared", "alice", false, "500"),
		testPackage("a-private", "alice", true, "120.5"),
		testPackage("b-private", "bob", true, "500"),
	}))

	t.Run("insert starts at version one", func(t *testing.T) {
		p, err := repo.Get(ctx, "a-private")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.Version)
		assert.True(t, p.TotalQuantity.Equal(decimal.RequireFromString("120.5")))
		require.NotNil(t, p.ServingMacros)
		assert.InDelta(t, 364, p.ServingMacros.Calories, 0.001)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := repo.Insert(ctx, []model.Package{testPackage("a-shared", "alice", false, "500")})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("visibility", func(t *testing.T) {
		pkgs, err := repo.List(ctx, bob)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a-shared", "b-private"}, ids(pkgs))

		pkgs, err = repo.List(ctx, model.OwnerScope{UserID: "carol"})
		require.NoError(t, err)
		assert.Empty(t, pkgs)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("apply diff", func(t *testing.T) {
		diff := model.Diff{
			Updates: []model.Update{{
				ID: "a-private", TotalQuantity: decimal.RequireFromString("70.5"),
				LocationID: "pantry-1", IsPrivate: true, OwnerID: "alice", ExpectedVersion: 1,
			}},
			Removals:   []model.Removal{{ID: "a-shared", ExpectedVersion: 1}},
			Insertions: []model.Package{testPackage("split-1", "alice", false, "50")},
		}
		require.NoError(t, repo.ApplyDiff(ctx, diff))

		pkgs, err := repo.List(ctx, alice)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a-private", "split-1"}, ids(pkgs))

		p, err := repo.Get(ctx, "a-private")
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.Version)
		assert.True(t, p.TotalQuantity.Equal(decimal.RequireFromString("70.5")))
		assert.True(t, p.OriginalQuantity.Equal(decimal.RequireFromString("500")))
	})

	t.Run("stale version aborts the whole diff", func(t *testing.T) {
		diff := model.Diff{
			Updates: []model.Update{{
				ID: "b-private", TotalQuantity: decimal.RequireFromString("1"),
				LocationID: "pantry-1", IsPrivate: true, OwnerID: "bob", ExpectedVersion: 1,
			}},
			Removals:   []model.Removal{{ID: "a-private", ExpectedVersion: 1}},
			Insertions: []model.Package{testPackage("split-2", "bob", false, "1")},
		}
		err := repo.ApplyDiff(ctx, diff)
		assert.ErrorIs(t, err, ErrConcurrencyConflict)

		p, err := repo.Get(ctx, "b-private")
		require.NoError(t, err)
		assert.True(t, p.TotalQuantity.Equal(decimal.RequireFromString("500")))
		assert.Equal(t, int64(1), p.Version)

		_, err = repo.Get(ctx, "split-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("package named twice is rejected", func(t *testing.T) {
		diff := model.Diff{
			Updates: []model.Update{
				{ID: "b-private", TotalQuantity: decimal.RequireFromString("400"), LocationID: "pantry-1", IsPrivate: true, OwnerID: "bob", ExpectedVersion: 1},
				{ID: "b-private", TotalQuantity: decimal.RequireFromString("300"), LocationID: "pantry-1", IsPrivate: true, OwnerID: "bob", ExpectedVersion: 1},
			},
		}
		assert.ErrorIs(t, repo.ApplyDiff(ctx, diff), ErrDuplicateID)

		diff = model.Diff{Removals: []model.Removal{{ID: "b-private", ExpectedVersion: 1}, {ID: "b-private", ExpectedVersion: 1}}}
		assert.ErrorIs(t, repo.ApplyDiff(ctx, diff), ErrDuplicateID)

		p, err := repo.Get(ctx, "b-private")
		require.NoError(t, err)
		assert.True(t, p.TotalQuantity.Equal(decimal.RequireFromString("500")))
		assert.Equal(t, int64(1), p.Version)
	})

	t.Run("removed package conflicts", func(t *testing.T) {
		err := repo.ApplyDiff(ctx, model.Diff{Removals: []model.Removal{{ID: "a-shared", ExpectedVersion: 1}}})
		assert.ErrorIs(t, err, ErrConcurrencyConflict)
	})
}

func ids(pkgs []model.Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.ID)
	}
	return out
}
