package sheet

import (
	"strings"
	"unicode"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// LocateHeader scans rows top to bottom for the first row carrying any
// column marker. Within that row the last matching cell wins for each
// column. Later rows are never inspected, even if they would add columns.
// Every index in the result is -1 when not found.
func LocateHeader(rows [][]string) domain.HeaderLocation {
	loc := domain.HeaderLocation{
		HeaderRow:         -1,
		ItemColumn:        -1,
		DescriptionColumn: -1,
		QuantityColumn:    -1,
		CartonColumn:      -1,
	}

	for i, row := range rows {
		found := false
		for j, cell := range row {
			n := normCell(cell)
			if n == "" {
				continue
			}
			if strings.Contains(n, "ITEMNO") {
				loc.ItemColumn, found = j, true
			}
			if strings.HasPrefix(n, "DESC") {
				loc.DescriptionColumn, found = j, true
			}
			if strings.HasPrefix(n, "QTY") || strings.HasPrefix(n, "QUANTITY") {
				loc.QuantityColumn, found = j, true
			}
			if strings.HasPrefix(n, "CTN") || strings.HasPrefix(n, "CARTON") {
				loc.CartonColumn, found = j, true
			}
		}
		if found {
			loc.HeaderRow = i
			return loc
		}
	}
	return loc
}

// Recognized reports whether a header location is usable: a header row was
// found and it names a description or quantity column. An item-code column
// on its own gives nothing to classify or report.
func Recognized(loc domain.HeaderLocation) bool {
	return loc.HeaderRow >= 0 && (loc.DescriptionColumn >= 0 || loc.QuantityColumn >= 0)
}

// normCell uppercases a header cell and strips all whitespace so that
// "Our Item No." and "ITEM  NO" compare equal.
func normCell(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
