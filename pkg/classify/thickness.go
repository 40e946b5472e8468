package classify

import (
	"math"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// ResolveThickness maps the frame-bar dimensions in normalized text to a
// thickness label. The smallest-area pair in the text is taken as the
// frame-bar spec, since it is physically smaller than the canvas itself.
// Only rules listing sizeNumber are considered, and the closest rule must
// be within tolerance on the summed per-axis difference.
//
// Callers are responsible for the exclusion-keyword check and for only
// calling this once a catalog size code has been resolved.
func ResolveThickness(
	norm string,
	sizeNumber int,
	rules []domain.ThicknessRule,
	tolerance float64,
) (string, bool) {
	if len(rules) == 0 {
		return "", false
	}

	bar, ok := SmallestPair(ExtractPairs(norm))
	if !ok {
		return "", false
	}

	bestIdx := -1
	bestScore := math.Inf(1)
	for i := range rules {
		r := &rules[i]
		if !r.AppliesTo(sizeNumber) {
			continue
		}
		score := math.Abs(r.Width-bar.Width) + math.Abs(r.Height-bar.Height)
		if score < bestScore && withinTolerance(score, tolerance) {
			bestIdx, bestScore = i, score
		}
	}

	if bestIdx < 0 {
		return "", false
	}
	return rules[bestIdx].Label, true
}
