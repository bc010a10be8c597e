package inventory

import (
	"sort"
	"strings"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/domain/quantity"
)

// Matcher picks the inventory group a recipe ingredient should be drawn from.
// It may return a group whose unit is incompatible; the caller reports that as unmatched.
type Matcher interface {
	Match(ingredient Ingredient, groups []Group) (Group, bool)
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(ingredient Ingredient, groups []Group) (Group, bool)

// Match calls f.
func (f MatcherFunc) Match(ingredient Ingredient, groups []Group) (Group, bool) {
	return f(ingredient, groups)
}

// SubstringMatcher matches names case-insensitively: equal names first, then either name
// containing the other. Within each tier it prefers a compatible unit, then the longer
// group name, then the group that expires first. An equal name in an incompatible unit
// still wins over a compatible partial match, so the caller reports it as unmatched.
type SubstringMatcher struct{}

type candidate struct {
	group      Group
	exact      bool
	compatible bool
}

// Match implements Matcher.
func (SubstringMatcher) Match(ingredient Ingredient, groups []Group) (Group, bool) {
	name := model.NormalizeName(ingredient.Name)
	if name == "" {
		return Group{}, false
	}

	var candidates []candidate
	for _, g := range groups {
		groupName := model.NormalizeName(g.Name)
		exact := groupName == name
		if !exact && !strings.Contains(groupName, name) && !strings.Contains(name, groupName) {
			continue
		}
		candidates = append(candidates, candidate{
			group:      g,
			exact:      exact,
			compatible: quantity.SameFamily(ingredient.Quantity.Unit, g.Unit),
		})
	}
	if len(candidates) == 0 {
		return Group{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.exact != b.exact {
			return a.exact
		}
		if a.compatible != b.compatible {
			return a.compatible
		}
		if la, lb := len(a.group.Name), len(b.group.Name); la != lb {
			return la > lb
		}
		if !ExpiryEqual(a.group.NextExpiry, b.group.NextExpiry) {
			return model.ExpiresBefore(a.group.NextExpiry, b.group.NextExpiry)
		}
		return a.group.Key < b.group.Key
	})
	return candidates[0].group, true
}
