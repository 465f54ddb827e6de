package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/span"
)

// CalledFunctions returns the sorted, unique names of every function called
// anywhere in expression.
func CalledFunctions(expression string) ([]string, error) {
	expr, err := Parse(expression)
	if err != nil {
		return nil, err
	}
	functions := make(map[string]struct{})
	collectFunctions(expr, functions)
	return sortedKeys(functions), nil
}

// TemplateFunctions returns the sorted, unique names of every function called
// from the function spans of template. Field spans are replaced by a
// placeholder before parsing, since their values are only known at render
// time.
func TemplateFunctions(template string) ([]string, error) {
	functions := make(map[string]struct{})
	for _, unit := range span.ScanFunctions(template) {
		inner := unit.Inner()
		for _, f := range span.ScanFields(inner) {
			inner = strings.ReplaceAll(inner, f.Content, "0")
		}
		expr, err := Parse(inner)
		if err != nil {
			return nil, fmt.Errorf("function span %q: %w", unit.Content, err)
		}
		collectFunctions(expr, functions)
	}
	return sortedKeys(functions), nil
}

// Unknown filters names down to those the engine does not expose.
func (e *Engine) Unknown(names []string) []string {
	var unknown []string
	for _, name := range names {
		if !e.Has(name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// collectFunctions walks the syntax tree looking only for function calls.
func collectFunctions(expr hclsyntax.Expression, functions map[string]struct{}) {
	hclsyntax.VisitAll(expr, func(node hclsyntax.Node) hcl.Diagnostics {
		if call, ok := node.(*hclsyntax.FunctionCallExpr); ok {
			functions[call.Name] = struct{}{}
		}
		return nil
	})
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
