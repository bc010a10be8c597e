package inventory

import (
	"errors"
	"testing"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milkGroup() Group {
	return onlyGroup(
		withExpiry(pkg("big-full", "Milk", "2", "2", quantity.Liter), day(9)),
		withExpiry(pkg("small-part", "Milk", "1", "0.25", quantity.Liter), day(3)),
		withExpiry(pkg("small-full-a", "Milk", "1", "1", quantity.Liter), day(4)),
		withExpiry(pkg("small-full-b", "Milk", "1", "1", quantity.Liter), day(6)),
	)
}

// TestConsume tests first-expire-first-out deduction across buckets.
func TestConsume(t *testing.T) {
	tests := []struct {
		name     string
		amount   quantity.Quantity
		expected map[string]string
	}{
		{
			name:     "partial pool only",
			amount:   quantity.Quantity{Amount: dec("0.2"), Unit: quantity.Liter},
			expected: map[string]string{"big-full": "2", "small-part": "0.05", "small-full-a": "1", "small-full-b": "1"},
		},
		{
			name:     "opens a full package for the remainder",
			amount:   quantity.Quantity{Amount: dec("750"), Unit: quantity.Milliliter},
			expected: map[string]string{"big-full": "2", "small-full-a": "0.5", "small-full-b": "1"},
		},
		{
			name:     "whole packages after the partial pool",
			amount:   quantity.Quantity{Amount: dec("1.25"), Unit: quantity.Liter},
			expected: map[string]string{"big-full": "2", "small-full-b": "1"},
		},
		{
			name:     "spills into the next bucket",
			amount:   quantity.Quantity{Amount: dec("2.75"), Unit: quantity.Liter},
			expected: map[string]string{"big-full": "1.5"},
		},
		{
			name:     "everything",
			amount:   quantity.Quantity{Amount: dec("4.25"), Unit: quantity.Liter},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := milkGroup()
			result, err := newTestPlanner().Consume([]ItemDraw{{Group: g, Amount: tt.amount}})
			require.NoError(t, err)

			after := result.Diff.Apply(g.Packages())
			assert.Equal(t, tt.expected, totalsByID(after))
			assert.Empty(t, result.Diff.Insertions)
			for _, u := range result.Diff.Updates {
				assert.True(t, u.TotalQuantity.IsPositive())
			}

			require.Len(t, result.Deductions, 1)
			assert.Equal(t, quantity.Liter, result.Deductions[0].Deducted.Unit)
		})
	}
}

// TestConsume_Rejections tests requests that cannot be satisfied.
func TestConsume_Rejections(t *testing.T) {
	planner := newTestPlanner()

	_, err := planner.Consume([]ItemDraw{{Group: milkGroup(), Amount: quantity.Quantity{Amount: dec("4.3"), Unit: quantity.Liter}}})
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, CodeExceedsAvailable, reqErr.Code)

	_, err = planner.Consume([]ItemDraw{{Group: milkGroup(), Amount: quantity.Quantity{Amount: dec("1"), Unit: quantity.Gram}}})
	assert.ErrorIs(t, err, quantity.ErrIncompatibleUnit)

	_, err = planner.Consume([]ItemDraw{{Group: milkGroup(), Amount: quantity.Zero(quantity.Liter)}})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = planner.Consume(nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

// TestConsume_SameGroupTwice tests that repeated draws on a group are combined.
func TestConsume_SameGroupTwice(t *testing.T) {
	g := milkGroup()
	result, err := newTestPlanner().Consume([]ItemDraw{
		{Group: g, Amount: quantity.Quantity{Amount: dec("0.25"), Unit: quantity.Liter}},
		{Group: g, Amount: quantity.Quantity{Amount: dec("500"), Unit: quantity.Milliliter}},
	})
	require.NoError(t, err)

	require.Len(t, result.Deductions, 1)
	assert.True(t, result.Deductions[0].Deducted.Amount.Equal(dec("0.75")))
	after := result.Diff.Apply(g.Packages())
	assert.Equal(t, map[string]string{"big-full": "2", "small-full-a": "0.5", "small-full-b": "1"}, totalsByID(after))
}

// TestConsume_MultipleGroups tests eating from several groups at once.
func TestConsume_MultipleGroups(t *testing.T) {
	groups := GroupPackages([]model.Package{
		pkg("egg", "Eggs", "6", "6", quantity.Piece),
		pkg("ham", "Ham", "200", "200", quantity.Gram),
	})
	eggs, _ := FindGroup(groups, "eggs|pcs")
	ham, _ := FindGroup(groups, "ham|g")

	result, err := newTestPlanner().Consume([]ItemDraw{
		{Group: eggs, Amount: quantity.Quantity{Amount: dec("2"), Unit: quantity.Piece}},
		{Group: ham, Amount: quantity.Quantity{Amount: dec("200"), Unit: quantity.Gram}},
	})
	require.NoError(t, err)
	assert.Len(t, result.Deductions, 2)
	require.Len(t, result.Diff.Removals, 1)
	assert.Equal(t, "ham", result.Diff.Removals[0].ID)
	require.Len(t, result.Diff.Updates, 1)
	assert.True(t, result.Diff.Updates[0].TotalQuantity.Equal(dec("4")))
}
