package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_RepeatedTarget(t *testing.T) {
	tests := []struct {
		name   string
		diff   Diff
		wantID string
		want   bool
	}{
		{name: "empty", diff: Diff{}},
		{
			name: "distinct targets",
			diff: Diff{
				Updates:  []Update{{ID: "flour-1"}, {ID: "flour-2"}},
				Removals: []Removal{{ID: "flour-3"}},
			},
		},
		{
			name:   "same package updated twice",
			diff:   Diff{Updates: []Update{{ID: "flour-1"}, {ID: "flour-1"}}},
			wantID: "flour-1",
			want:   true,
		},
		{
			name:   "same package removed twice",
			diff:   Diff{Removals: []Removal{{ID: "milk-1"}, {ID: "milk-1"}}},
			wantID: "milk-1",
			want:   true,
		},
		{
			name: "updated and removed",
			diff: Diff{
				Updates:  []Update{{ID: "rice-1"}},
				Removals: []Removal{{ID: "rice-1"}},
			},
			wantID: "rice-1",
			want:   true,
		},
		{
			name:   "merged plans touching one package",
			diff:   Diff{Updates: []Update{{ID: "oats-1"}}}.Merge(Diff{Updates: []Update{{ID: "oats-1"}}}),
			wantID: "oats-1",
			want:   true,
		},
		{
			name: "insertions are not targets",
			diff: Diff{Updates: []Update{{ID: "left-1"}}, Insertions: []Package{{ID: "left-1"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.diff.RepeatedTarget()
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
