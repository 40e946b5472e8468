package classify

import (
	"regexp"
	"strconv"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// pairRegex matches "W x H" dimension pairs. The separator may be x, × or *.
// Examples: "53x45.5", "22.7 × 15.8", "4*1.8".
var pairRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)[\s\p{Zs}]*[x×*][\s\p{Zs}]*(\d+(?:\.\d+)?)`)

// Shape is the outcome of rectangular size extraction.
type Shape string

// Shape constants.
const (
	ShapeNone     Shape = ""
	ShapeRect     Shape = "rect"
	ShapeRound    Shape = "round"
	ShapeTriangle Shape = "triangle"
)

// SizeResult is the output of ExtractRectSize. Size is only meaningful when
// Shape is ShapeRect.
type SizeResult struct {
	Shape Shape
	Size  domain.Dimension
}

// ExtractPairs returns every non-overlapping dimension pair in normalized
// text, in order of appearance.
func ExtractPairs(norm string) []domain.Dimension {
	matches := pairRegex.FindAllStringSubmatch(norm, -1)
	if len(matches) == 0 {
		return nil
	}

	pairs := make([]domain.Dimension, 0, len(matches))
	for _, m := range matches {
		w, errW := strconv.ParseFloat(m[1], 64)
		h, errH := strconv.ParseFloat(m[2], 64)
		if errW != nil || errH != nil {
			continue
		}
		pairs = append(pairs, domain.Dimension{Width: w, Height: h})
	}
	return pairs
}

// LargestPair returns the pair with the largest area. The first pair wins
// on ties; zero-area pairs never win.
func LargestPair(pairs []domain.Dimension) (domain.Dimension, bool) {
	var best domain.Dimension
	bestArea := 0.0
	found := false
	for _, p := range pairs {
		if a := p.Area(); a > bestArea {
			best, bestArea, found = p, a, true
		}
	}
	return best, found
}

// SmallestPair returns the pair with the smallest area. The first pair wins
// on ties.
func SmallestPair(pairs []domain.Dimension) (domain.Dimension, bool) {
	if len(pairs) == 0 {
		return domain.Dimension{}, false
	}
	best := pairs[0]
	for _, p := range pairs[1:] {
		if p.Area() < best.Area() {
			best = p
		}
	}
	return best, true
}

// ExtractRectSize finds the primary rectangular size in normalized text.
// Text carrying a round keyword short-circuits to ShapeRound. Otherwise the
// largest-area pair is taken as the product size, since descriptions often
// also list frame-bar and packaging dimensions.
func ExtractRectSize(norm string, roundKeywords []string) SizeResult {
	if containsAny(norm, roundKeywords) {
		return SizeResult{Shape: ShapeRound}
	}

	best, ok := LargestPair(ExtractPairs(norm))
	if !ok {
		return SizeResult{Shape: ShapeNone}
	}
	return SizeResult{Shape: ShapeRect, Size: best}
}
