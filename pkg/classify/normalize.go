// Package classify implements the canvas classification pipeline: text
// normalization, shape and size detection, catalog matching, thickness
// resolution and keyword-priority type resolution.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// dotRunRegex matches runs of two or more dots. Only runs between two
// digits are treated as numeric typos.
var dotRunRegex = regexp.MustCompile(`\.{2,}`)

// Normalize repairs doubled decimal points between digits ("3..8" becomes
// "3.8"), trims surrounding whitespace and folds the text to lower case.
// Every detector expects its input to have passed through Normalize.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = repairDecimalTypos(s)
	s = strings.TrimSpace(s)
	// Casers carry state, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

func repairDecimalTypos(s string) string {
	locs := dotRunRegex.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start == 0 || end >= len(s) || !isDigit(s[start-1]) || !isDigit(s[end]) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteByte('.')
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// containsAny reports whether s contains any of the keywords as a substring.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// FormatNumber renders a dimension the way it appears in labels: the
// shortest decimal form, without trailing zeros ("30", "22.7").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
