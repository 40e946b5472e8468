package sheet

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedLayout is returned when no header row can be located.
var ErrUnrecognizedLayout = errors.New("unrecognized sheet layout")

// ErrEmptySheet is returned for a sheet with no rows at all. Callers skip
// such sheets rather than failing the workbook.
var ErrEmptySheet = errors.New("sheet is empty")

// LayoutError names the sheet whose header could not be located.
type LayoutError struct {
	Sheet string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("sheet %q: %s", e.Sheet, ErrUnrecognizedLayout)
}

// Unwrap lets errors.Is match ErrUnrecognizedLayout.
func (e *LayoutError) Unwrap() error {
	return ErrUnrecognizedLayout
}
