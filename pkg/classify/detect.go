package classify

import (
	"regexp"
	"strconv"
)

// triangleRegex captures the first number following the "triangle" token.
// Examples: "triangle 45", "triangle-shape 30.5cm".
var triangleRegex = regexp.MustCompile(`triangle[^0-9]*([0-9]{1,3}(?:\.[0-9]+)?)`)

// diameterRegex captures the number following a diameter marker.
// Examples: "dia 30", "dia.40cm", "ø25", "⌀ 12.5".
var diameterRegex = regexp.MustCompile(`(?:dia|ø|⌀)[^0-9]*([0-9]{1,3}(?:\.[0-9]+)?)`)

// firstNumberRegex matches the first number anywhere in the text.
var firstNumberRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Round is the result of round-shape detection.
type Round struct {
	Diameter    float64
	HasDiameter bool
}

// DetectTriangle returns the number following "triangle" in normalized
// text. Returns (0, false) when the text is not a triangle product.
func DetectTriangle(norm string) (float64, bool) {
	m := triangleRegex.FindStringSubmatch(norm)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DetectRound reports whether normalized text describes a round canvas.
// A diameter marker followed by a number gives the diameter directly.
// Otherwise any round keyword marks the text round and the first number in
// the text, which may be unrelated to the diameter, is used.
func DetectRound(norm string, keywords []string) (Round, bool) {
	if m := diameterRegex.FindStringSubmatch(norm); len(m) > 1 {
		if d, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Round{Diameter: d, HasDiameter: true}, true
		}
	}

	if !containsAny(norm, keywords) {
		return Round{}, false
	}

	if m := firstNumberRegex.FindString(norm); m != "" {
		if d, err := strconv.ParseFloat(m, 64); err == nil {
			return Round{Diameter: d, HasDiameter: true}, true
		}
	}
	return Round{}, true
}
