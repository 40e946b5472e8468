// Package catalog loads and validates the reference tables the classifier
// matches against: canvas sizes, type rules, thickness rules, keyword sets
// and manual overrides.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is the full reference configuration for one classifier instance.
// It is treated as read-only once returned by Load, Parse or Default.
type Catalog struct {
	Sizes               []domain.SizeEntry      `yaml:"sizes"                json:"sizes"`
	TypeRules           []domain.TypeRule       `yaml:"type_rules"           json:"type_rules"`
	RoundKeywords       []string                `yaml:"round_keywords"       json:"round_keywords"`
	ThicknessRules      []domain.ThicknessRule  `yaml:"thickness_rules"      json:"thickness_rules"`
	ThicknessExclusions []string                `yaml:"thickness_exclusions" json:"thickness_exclusions"`
	Overrides           []domain.ManualOverride `yaml:"overrides"            json:"overrides"`
	SizeTolerance       float64                 `yaml:"size_tolerance"       json:"size_tolerance"`
	ThicknessTolerance  float64                 `yaml:"thickness_tolerance"  json:"thickness_tolerance"`
	DefaultTypeLabel    string                  `yaml:"default_type_label"   json:"default_type_label"`
	DomainMarkers       []string                `yaml:"domain_markers"       json:"domain_markers"`
	Labels              Labels                  `yaml:"labels"               json:"labels"`
}

// Labels is the fixed vocabulary used when composing shape labels.
type Labels struct {
	Board      string `yaml:"board"       json:"board"`       // base type that selects board shape labels
	Triangle   string `yaml:"triangle"    json:"triangle"`    // "<triangle> <n>"
	Round      string `yaml:"round"       json:"round"`       // "<round> <diameter>"
	BoardRound string `yaml:"board_round" json:"board_round"` // "<board> <board_round> <diameter>"
}

// Default returns the embedded reference catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog YAML file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // catalog path from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	applyDefaults(c)
	foldKeywords(c)

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}

// OverrideMap indexes the static overrides by item code.
func (c *Catalog) OverrideMap() map[string]domain.ManualOverride {
	m := make(map[string]domain.ManualOverride, len(c.Overrides))
	for _, o := range c.Overrides {
		m[o.ItemCode] = o
	}
	return m
}

func applyDefaults(c *Catalog) {
	if len(c.DomainMarkers) == 0 {
		c.DomainMarkers = []string{"canvas", "panel"}
	}
	if c.Labels.Board == "" {
		c.Labels.Board = "캔버스보드"
	}
	if c.Labels.Triangle == "" {
		c.Labels.Triangle = "삼각형"
	}
	if c.Labels.Round == "" {
		c.Labels.Round = "원형캔버스 지름"
	}
	if c.Labels.BoardRound == "" {
		c.Labels.BoardRound = "원형"
	}
}

// foldKeywords lowercases every keyword so they compare against
// normalized text.
func foldKeywords(c *Catalog) {
	fold := func(in []string) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	for i := range c.TypeRules {
		c.TypeRules[i].Keywords = fold(c.TypeRules[i].Keywords)
	}
	c.RoundKeywords = fold(c.RoundKeywords)
	c.ThicknessExclusions = fold(c.ThicknessExclusions)
	c.DomainMarkers = fold(c.DomainMarkers)
}

func validate(c *Catalog) error {
	var errs []error

	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("sizes must not be empty"))
	}
	for i, s := range c.Sizes {
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("sizes[%d]: width and height must be positive", i))
		}
		if !strings.ContainsAny(s.Code, "0123456789") {
			errs = append(errs, fmt.Errorf("sizes[%d]: code %q has no size number", i, s.Code))
		}
	}

	seen := make(map[string]bool, len(c.TypeRules))
	for i, r := range c.TypeRules {
		if r.Label == "" {
			errs = append(errs, fmt.Errorf("type_rules[%d]: label is required", i))
		}
		if len(r.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("type_rules[%d]: at least one keyword is required", i))
		}
		for _, target := range r.Overrides {
			if !seen[target] {
				errs = append(errs, fmt.Errorf(
					"type_rules[%d]: overrides %q which is not an earlier rule", i, target,
				))
			}
		}
		seen[r.Label] = true
	}

	for i, r := range c.ThicknessRules {
		if r.Label == "" {
			errs = append(errs, fmt.Errorf("thickness_rules[%d]: label is required", i))
		}
		if len(r.SizeNumbers) == 0 {
			errs = append(errs, fmt.Errorf("thickness_rules[%d]: nos must not be empty", i))
		}
	}

	for i, o := range c.Overrides {
		if o.ItemCode == "" {
			errs = append(errs, fmt.Errorf("overrides[%d]: item_code is required", i))
		}
	}

	if c.SizeTolerance < 0 {
		errs = append(errs, errors.New("size_tolerance must not be negative"))
	}
	if c.ThicknessTolerance < 0 {
		errs = append(errs, errors.New("thickness_tolerance must not be negative"))
	}
	if c.DefaultTypeLabel == "" {
		errs = append(errs, errors.New("default_type_label is required"))
	}

	return errors.Join(errs...)
}
