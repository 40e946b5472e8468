// Package domain defines the core business types for the canvas classifier.
package domain

import "time"

// SizeEntry is a named canvas size from the reference catalog.
// Code is a size number followed by an orientation suffix (F, P, M, S).
type SizeEntry struct {
	Width  float64 `json:"width"  yaml:"w"`
	Height float64 `json:"height" yaml:"h"`
	Code   string  `json:"code"   yaml:"code"`
}

// ThicknessRule maps a frame-bar dimension pair to a thickness label.
// A rule only applies to the size numbers listed in SizeNumbers.
type ThicknessRule struct {
	Width       float64 `json:"width"        yaml:"w"`
	Height      float64 `json:"height"       yaml:"h"`
	Label       string  `json:"label"        yaml:"label"`
	SizeNumbers []int   `json:"size_numbers" yaml:"nos"`
}

// AppliesTo reports whether the rule is valid for the given size number.
func (r *ThicknessRule) AppliesTo(sizeNumber int) bool {
	for _, n := range r.SizeNumbers {
		if n == sizeNumber {
			return true
		}
	}
	return false
}

// TypeRule is one entry of the ordered type rule list. The first rule with
// a matching keyword wins; Overrides lists earlier labels this rule may
// replace when its own keywords are also present.
type TypeRule struct {
	Label     string   `json:"label"               yaml:"label"`
	Keywords  []string `json:"keywords"            yaml:"keywords"`
	Overrides []string `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// ManualOverride pins the label for a specific supplier item code.
// UpdatedAt is only set for overrides read from the database.
type ManualOverride struct {
	ItemCode  string     `json:"item_code"            yaml:"item_code" db:"item_code"`
	Label     string     `json:"label"                yaml:"label"     db:"label"`
	Code      string     `json:"code"                 yaml:"code"      db:"code"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"-"         db:"updated_at"`
}

// Dimension is a width/height pair scanned out of free text.
type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width * height.
func (d Dimension) Area() float64 {
	return d.Width * d.Height
}

// RowRecord is one classified spreadsheet row.
type RowRecord struct {
	ResultLabel string `json:"result"`
	ItemCode    string `json:"item_code"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	CartonCount string `json:"carton_count,omitempty"`
}

// HeaderLocation holds the header row and column offsets found in a sheet.
// Every index is -1 when not found.
type HeaderLocation struct {
	HeaderRow         int `json:"header_row"`
	ItemColumn        int `json:"item_column"`
	DescriptionColumn int `json:"description_column"`
	QuantityColumn    int `json:"quantity_column"`
	CartonColumn      int `json:"carton_column"`
}

// HasCarton reports whether a carton-count column was located.
func (h HeaderLocation) HasCarton() bool {
	return h.CartonColumn >= 0
}

// SheetResult is the classified content of one input sheet.
type SheetResult struct {
	Name   string         `json:"name"`
	Header HeaderLocation `json:"header"`
	Rows   []RowRecord    `json:"rows"`
}
