package classify

import (
	"math"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// toleranceEpsilon absorbs float representation error so that a difference
// exactly at the configured tolerance is accepted.
const toleranceEpsilon = 1e-9

func withinTolerance(diff, tolerance float64) bool {
	return diff <= tolerance+toleranceEpsilon
}

// alignment is the per-axis difference between a pair and a catalog entry
// for one orientation.
type alignment struct {
	dw, dh float64
}

func (a alignment) score() float64 {
	return a.dw + a.dh
}

func (a alignment) within(tolerance float64) bool {
	return withinTolerance(a.dw, tolerance) && withinTolerance(a.dh, tolerance)
}

// MatchSize resolves a dimension pair to the closest catalog entry. Each
// entry is scored in both its stored and its swapped orientation and the
// better orientation counts. An entry is eligible only when both axes of
// that orientation are within tolerance. The lowest eligible score wins and
// the first entry wins exact ties.
func MatchSize(d domain.Dimension, entries []domain.SizeEntry, tolerance float64) (domain.SizeEntry, bool) {
	bestIdx := -1
	bestScore := math.Inf(1)

	for i := range entries {
		e := &entries[i]
		direct := alignment{
			dw: math.Abs(e.Width - d.Width),
			dh: math.Abs(e.Height - d.Height),
		}
		swapped := alignment{
			dw: math.Abs(e.Width - d.Height),
			dh: math.Abs(e.Height - d.Width),
		}

		var score float64
		var eligible bool
		switch ds, ss := direct.score(), swapped.score(); {
		case ds < ss:
			score, eligible = ds, direct.within(tolerance)
		case ss < ds:
			score, eligible = ss, swapped.within(tolerance)
		default:
			// Equal scores: either orientation may qualify, which keeps
			// matching symmetric under a width/height swap.
			score, eligible = ds, direct.within(tolerance) || swapped.within(tolerance)
		}

		if eligible && score < bestScore {
			bestIdx, bestScore = i, score
		}
	}

	if bestIdx < 0 {
		return domain.SizeEntry{}, false
	}
	return entries[bestIdx], true
}

// SizeNumber extracts the numeric part of a size code ("10F" -> 10).
// Returns (0, false) when the code carries no digits.
func SizeNumber(code string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, code)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatSize renders an unmatched pair as a literal "WxH" suffix.
func formatSize(d domain.Dimension) string {
	return FormatNumber(d.Width) + "x" + FormatNumber(d.Height)
}
