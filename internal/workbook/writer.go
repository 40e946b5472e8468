package workbook

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

const (
	// maxSheetName is the xlsx limit on worksheet name length.
	maxSheetName = 31

	// itemColumnWidth is the fixed width of the item-code column.
	itemColumnWidth = 15

	resultSuffix  = "_result"
	summarySuffix = "_summary"
)

// ErrNoSheets is returned when there is nothing to write.
var ErrNoSheets = errors.New("no classified sheets to write")

var (
	resultHeader  = []string{"RESULT", "ITEM NO", "DESCRIPTION", "QUANTITY"}
	summaryHeader = []string{"Serial", "Our Item No.", "Description", "Quantity"}
)

// Write encodes results as an xlsx workbook. Each input sheet produces a
// "<name>_result" sheet (label, item code, description, quantity and, when
// the input had one, carton count) followed by a "<name>_summary" sheet
// with a serial number column.
func Write(w io.Writer, results []domain.SheetResult) error {
	f, err := Build(results)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // in-memory file

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Build assembles the result workbook in memory.
func Build(results []domain.SheetResult) (*excelize.File, error) {
	if len(results) == 0 {
		return nil, ErrNoSheets
	}

	f := excelize.NewFile()
	b := &builder{f: f, used: make(map[string]bool)}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close() //nolint:errcheck,gosec // discarding
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	b.headerStyle = headerStyle

	for i := range results {
		if err := b.addSheets(&results[i]); err != nil {
			f.Close() //nolint:errcheck,gosec // discarding
			return nil, err
		}
	}

	// NewFile always starts with a default sheet; drop it once real
	// sheets exist.
	if !b.used["Sheet1"] {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			f.Close() //nolint:errcheck,gosec // discarding
			return nil, fmt.Errorf("removing default sheet: %w", err)
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

type builder struct {
	f           *excelize.File
	headerStyle int
	used        map[string]bool
}

func (b *builder) addSheets(res *domain.SheetResult) error {
	header := resultHeader
	if res.Header.HasCarton() {
		header = append(append([]string{}, resultHeader...), "CARTON")
	}

	resultRows := make([][]any, len(res.Rows))
	summaryRows := make([][]any, len(res.Rows))
	for i, r := range res.Rows {
		row := []any{r.ResultLabel, r.ItemCode, r.Description, cellValue(r.Quantity)}
		if res.Header.HasCarton() {
			row = append(row, cellValue(r.CartonCount))
		}
		resultRows[i] = row
		summaryRows[i] = []any{i + 1, r.ItemCode, r.Description, cellValue(r.Quantity)}
	}

	if err := b.writeSheet(res.Name+resultSuffix, header, resultRows, 1); err != nil {
		return err
	}
	return b.writeSheet(res.Name+summarySuffix, summaryHeader, summaryRows, 1)
}

// writeSheet creates a sheet, writes the header and rows, and sizes the
// columns to their longest value. The column at itemCol is fixed width.
func (b *builder) writeSheet(name string, header []string, rows [][]any, itemCol int) error {
	name = b.uniqueName(name)
	if _, err := b.f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", name, err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := b.f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return fmt.Errorf("writing header of %q: %w", name, err)
	}
	if err := b.f.SetRowStyle(name, 1, 1, b.headerStyle); err != nil {
		return fmt.Errorf("styling header of %q: %w", name, err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := b.f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing row %d of %q: %w", i+2, name, err)
		}
	}

	for col, width := range columnWidths(header, rows, itemCol) {
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := b.f.SetColWidth(name, colName, colName, width); err != nil {
			return fmt.Errorf("sizing column %s of %q: %w", colName, name, err)
		}
	}
	return nil
}

// uniqueName truncates a sheet name to the xlsx limit and disambiguates
// names that collide after truncation.
func (b *builder) uniqueName(name string) string {
	candidate := truncate(name, maxSheetName)
	for n := 2; b.used[candidate]; n++ {
		suffix := "~" + strconv.Itoa(n)
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	b.used[candidate] = true
	return candidate
}

// columnWidths returns len+2 of the longest value in each column, with the
// item column pinned to itemColumnWidth.
func columnWidths(header []string, rows [][]any, itemCol int) []float64 {
	widths := make([]float64, len(header))
	for i, h := range header {
		widths[i] = float64(utf8.RuneCountInString(h))
	}
	for _, row := range rows {
		for i, v := range row {
			if i >= len(widths) {
				break
			}
			if n := float64(utf8.RuneCountInString(fmt.Sprint(v))); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}
	if itemCol >= 0 && itemCol < len(widths) {
		widths[itemCol] = itemColumnWidth
	}
	return widths
}

// cellValue writes numeric quantities as numbers so they stay summable in
// the result workbook.
func cellValue(s string) any {
	if s == "" {
		return ""
	}
	// ParseFloat accepts "inf" and "NaN", which are not numbers in a sheet.
	if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return n
	}
	return s
}

func truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes])
}
