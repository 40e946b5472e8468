// Package sheet turns the rows of one spreadsheet sheet into classified
// row records.
package sheet

import (
	"strings"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// RowClassifier labels a row from its item code and full row text.
// *classify.Classifier satisfies it.
type RowClassifier interface {
	ClassifyRow(itemCode, text string) string
}

// Process locates the header of a sheet and classifies every data row
// below it. A row is classified only when it has an item code or a
// quantity; the text classified is the whole row joined with spaces, so
// size and fabric details in unlabelled columns still count. Rows with no
// label, item code, description or quantity are dropped.
func Process(name string, rows [][]string, c RowClassifier) (domain.SheetResult, error) {
	if len(rows) == 0 {
		return domain.SheetResult{}, ErrEmptySheet
	}

	loc := LocateHeader(rows)
	if !Recognized(loc) {
		return domain.SheetResult{}, &LayoutError{Sheet: name}
	}

	res := domain.SheetResult{
		Name:   name,
		Header: loc,
		Rows:   make([]domain.RowRecord, 0, len(rows)-loc.HeaderRow-1),
	}

	for _, row := range rows[loc.HeaderRow+1:] {
		rec := domain.RowRecord{
			ItemCode:    cell(row, loc.ItemColumn),
			Description: cell(row, loc.DescriptionColumn),
			Quantity:    cell(row, loc.QuantityColumn),
			CartonCount: cell(row, loc.CartonColumn),
		}

		if rec.ItemCode != "" || rec.Quantity != "" {
			rec.ResultLabel = c.ClassifyRow(rec.ItemCode, strings.Join(row, " "))
		}

		if rec.ResultLabel == "" && rec.ItemCode == "" && rec.Description == "" && rec.Quantity == "" {
			continue
		}
		res.Rows = append(res.Rows, rec)
	}

	return res, nil
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
