package span

import (
	"sort"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
)

// TemplateInfo is a template together with its units in render order.
type TemplateInfo struct {
	Template string
	Units    []MatchUnit
}

// Parse scans template for both span kinds and merges them into render order.
func Parse(template string) (*TemplateInfo, error) {
	units, err := Merge(ScanFunctions(template), ScanFields(template))
	if err != nil {
		return nil, err
	}
	return &TemplateInfo{Template: template, Units: units}, nil
}

// Merge drops every field unit strictly inside a function unit and returns the
// rest in render order: all function units before all field units, each group
// by descending Begin, ties by descending End.
func Merge(functions, fields []MatchUnit) ([]MatchUnit, error) {
	for _, u := range functions {
		if u.Kind != KindFunction {
			return nil, errs.Matchf("function list holds a %s unit %q", u.Kind, u.Content)
		}
	}
	for _, u := range fields {
		if u.Kind != KindField {
			return nil, errs.Matchf("field list holds a %s unit %q", u.Kind, u.Content)
		}
	}

	result := make([]MatchUnit, 0, len(functions)+len(fields))
	result = append(result, functions...)
	for _, f := range fields {
		if !containedInAny(f, functions) {
			result = append(result, f)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Kind != b.Kind {
			return a.Kind == KindFunction
		}
		if a.Begin != b.Begin {
			return a.Begin > b.Begin
		}
		return a.End > b.End
	})
	return result, nil
}

func containedInAny(field MatchUnit, functions []MatchUnit) bool {
	for _, g := range functions {
		if field.Begin > g.Begin && field.End < g.End {
			return true
		}
	}
	return false
}
