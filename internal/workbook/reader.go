// Package workbook reads uploaded xlsx workbooks into plain row grids and
// writes classified sheets back out as a result workbook.
package workbook

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook is returned when the uploaded bytes are not a
// readable xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Sheet is one worksheet as an ordered grid of cell strings. Rows may be
// ragged; absent trailing cells are simply missing.
type Sheet struct {
	Name string
	Rows [][]string
}

// Read decodes every worksheet in r, in workbook order. Cell values are
// returned as displayed, so numbers keep the precision the supplier typed.
func Read(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}
	defer f.Close() //nolint:errcheck // read-only file, nothing to flush

	names := f.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: reading sheet %q: %w", ErrInvalidWorkbook, name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}
