package classify

import (
	"slices"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// ResolveType returns the label of the first rule with a keyword present in
// normalized text. Rule order is the priority; it is never re-sorted.
//
// A later rule that lists the winning label in Overrides, and whose own
// keywords also match, replaces it. This is how fabric keywords turn a
// generic panel into a canvas board.
func ResolveType(norm string, rules []domain.TypeRule, defaultLabel string) string {
	for i := range rules {
		if !containsAny(norm, rules[i].Keywords) {
			continue
		}

		label := rules[i].Label
		for j := i + 1; j < len(rules); j++ {
			if slices.Contains(rules[j].Overrides, label) &&
				containsAny(norm, rules[j].Keywords) {
				return rules[j].Label
			}
		}
		return label
	}
	return defaultLabel
}
