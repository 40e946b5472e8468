package classify

import (
	"strings"

	"github.com/donaldgifford/canvas-classifier/pkg/catalog"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// Result explains how a label was derived.
type Result struct {
	Label      string            `json:"label"`
	InDomain   bool              `json:"in_domain"`
	Override   bool              `json:"override,omitempty"`
	BaseType   string            `json:"base_type,omitempty"`
	Shape      Shape             `json:"shape,omitempty"`
	Size       *domain.Dimension `json:"size,omitempty"`
	Code       string            `json:"code,omitempty"`
	SizeNumber *int              `json:"size_number,omitempty"`
	Thickness  string            `json:"thickness,omitempty"`
	Diameter   *float64          `json:"diameter,omitempty"`
}

// Classifier turns free-text product descriptions into labels. It holds an
// immutable catalog and an immutable override snapshot, so one value can
// be shared by any number of goroutines.
type Classifier struct {
	cat       *catalog.Catalog
	overrides map[string]domain.ManualOverride
}

// New creates a Classifier bound to cat. The catalog's static overrides are
// the initial override set.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{
		cat:       cat,
		overrides: cat.OverrideMap(),
	}
}

// WithOverrides returns a copy of the classifier using the given override
// snapshot instead of the current one. The map must not be modified after
// the call.
func (c *Classifier) WithOverrides(overrides map[string]domain.ManualOverride) *Classifier {
	return &Classifier{cat: c.cat, overrides: overrides}
}

// Catalog returns the reference catalog the classifier was built with.
func (c *Classifier) Catalog() *catalog.Catalog {
	return c.cat
}

// ClassifyText returns the label for a free-text description, or "" when
// the text is not about a canvas or panel product.
func (c *Classifier) ClassifyText(text string) string {
	return c.Explain(text).Label
}

// ClassifyRow labels one spreadsheet row. A manual override for itemCode
// bypasses inference entirely.
func (c *Classifier) ClassifyRow(itemCode, text string) string {
	return c.ExplainRow(itemCode, text).Label
}

// ExplainRow is ClassifyRow with the derivation details.
func (c *Classifier) ExplainRow(itemCode, text string) Result {
	if itemCode != "" {
		if ov, ok := c.overrides[itemCode]; ok {
			label := ov.Label
			if label == "" {
				label = c.cat.DefaultTypeLabel
			}
			return Result{
				Label:    strings.TrimSpace(label + " " + ov.Code),
				InDomain: true,
				Override: true,
				BaseType: label,
				Code:     ov.Code,
			}
		}
	}
	return c.Explain(text)
}

// Explain runs the full pipeline on text. Shape detection takes priority
// over size inference: triangle first, then round, then rectangular size.
func (c *Classifier) Explain(text string) Result {
	norm := Normalize(text)
	if !containsAny(norm, c.cat.DomainMarkers) {
		return Result{}
	}

	base := ResolveType(norm, c.cat.TypeRules, c.cat.DefaultTypeLabel)
	res := Result{InDomain: true, BaseType: base}
	labels := c.cat.Labels
	isBoard := base == labels.Board

	if n, ok := DetectTriangle(norm); ok {
		res.Shape = ShapeTriangle
		res.Label = labels.Triangle + " " + FormatNumber(n)
		if isBoard {
			res.Label = labels.Board + " " + res.Label
		}
		return res
	}

	if r, ok := DetectRound(norm, c.cat.RoundKeywords); ok {
		res.Shape = ShapeRound
		diameter := ""
		// A zero diameter is treated as missing.
		if r.HasDiameter && r.Diameter != 0 {
			res.Diameter = &r.Diameter
			diameter = FormatNumber(r.Diameter)
		}
		if isBoard {
			res.Label = joinLabel(labels.Board, labels.BoardRound, diameter)
		} else {
			res.Label = joinLabel(labels.Round, diameter)
		}
		return res
	}

	finalType := base
	suffix := ""

	size := ExtractRectSize(norm, c.cat.RoundKeywords)
	res.Shape = size.Shape
	if size.Shape == ShapeRect {
		res.Size = &size.Size
		if entry, ok := MatchSize(size.Size, c.cat.Sizes, c.cat.SizeTolerance); ok {
			res.Code = entry.Code
			suffix = entry.Code
			if num, ok := SizeNumber(entry.Code); ok {
				res.SizeNumber = &num
				if label, ok := c.thickness(norm, num); ok {
					res.Thickness = label
					finalType = label
				}
			}
		} else {
			suffix = formatSize(size.Size)
		}
	}

	res.Label = joinLabel(finalType, suffix)
	return res
}

// thickness applies the exclusion keywords before resolving a thickness
// label for a matched size number.
func (c *Classifier) thickness(norm string, sizeNumber int) (string, bool) {
	if containsAny(norm, c.cat.ThicknessExclusions) {
		return "", false
	}
	return ResolveThickness(norm, sizeNumber, c.cat.ThicknessRules, c.cat.ThicknessTolerance)
}

func joinLabel(parts ...string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}
