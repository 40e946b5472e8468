// Package validate checks generated dashboards and rule files: every
// PromQL expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/canvas-classifier/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// histogram series carry one of these suffixes on top of the registered name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and checks its selectors against known.
func Expr(expr string, known map[string]bool) Result {
	var res Result
	checkExpr(&res, "expr", expr, known)
	return res
}

// Dashboard walks the JSON form of a built dashboard and validates every
// target expression it finds. Panels without targets produce a warning.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	panels, _ := doc["panels"].([]any)
	for _, p := range panels {
		walkPanel(&res, p, known)
	}
	return res
}

// Rules validates every expression in a PrometheusRule CR.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Name()
			if name == "" {
				res.errorf("%s: rule without record or alert name", g.Name)
				continue
			}
			checkExpr(&res, g.Name+"/"+name, r.Expr, known)
		}
	}
	return res
}

func walkPanel(res *Result, p any, known map[string]bool) {
	panel, ok := p.(map[string]any)
	if !ok {
		return
	}
	title, _ := panel["title"].(string)

	if panel["type"] == "row" {
		inner, _ := panel["panels"].([]any)
		for _, ip := range inner {
			walkPanel(res, ip, known)
		}
		return
	}

	targets, _ := panel["targets"].([]any)
	if len(targets) == 0 {
		res.warnf("panel %q has no targets", title)
		return
	}
	for _, t := range targets {
		target, _ := t.(map[string]any)
		expr, _ := target["expr"].(string)
		if expr == "" {
			res.errorf("panel %q: target without expression", title)
			continue
		}
		checkExpr(res, fmt.Sprintf("panel %q", title), expr, known)
	}
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: parsing %q: %v", where, expr, err)
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
