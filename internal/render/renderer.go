package render

import (
	"fmt"
	"strings"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/span"
)

// Evaluator is the evaluation engine boundary: it runs an expression with a
// set of bound variables and returns a data-model value.
type Evaluator interface {
	Eval(expression string, bindings map[string]any) (any, error)
}

// Renderer turns (record, template) pairs into text. It holds no per-call
// state and is safe for concurrent use.
type Renderer struct {
	eval Evaluator
}

// New creates a Renderer that submits function spans to eval.
func New(eval Evaluator) *Renderer {
	return &Renderer{eval: eval}
}

// Render resolves every span of template against rec.
func (r *Renderer) Render(rec *jsonval.Record, template string) (string, error) {
	info, err := span.Parse(template)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", template, err)
	}
	return r.RenderInfo(rec, info)
}

// RenderInfo resolves the units of info in render order, replacing every
// occurrence of each unit's text with its value.
func (r *Renderer) RenderInfo(rec *jsonval.Record, info *span.TemplateInfo) (string, error) {
	out := info.Template
	for i, unit := range info.Units {
		var (
			value string
			err   error
		)
		switch unit.Kind {
		case span.KindField:
			value, err = ResolveField(rec, unit)
		case span.KindFunction:
			value, err = r.EvalFunction(rec, unit)
		default:
			err = errs.Matchf("unknown unit kind %s", unit.Kind)
		}
		if err != nil {
			return "", fmt.Errorf("unit %d %q: %w", i, unit.Content, err)
		}
		out = strings.ReplaceAll(out, unit.Content, value)
	}
	return out, nil
}

// EvalFunction resolves the field spans nested in a function unit, then
// evaluates the first function span of the result with no bound variables.
func (r *Renderer) EvalFunction(rec *jsonval.Record, unit span.MatchUnit) (string, error) {
	if unit.Kind != span.KindFunction {
		return "", errs.Matchf("expected a FUNCTION unit, got %s", unit)
	}

	replaced := unit.Content
	fields := span.ScanFields(replaced)
	for i := len(fields) - 1; i >= 0; i-- {
		value, err := ResolveField(rec, fields[i])
		if err != nil {
			return "", fmt.Errorf("field %q: %w", fields[i].Content, err)
		}
		replaced = strings.ReplaceAll(replaced, fields[i].Content, value)
	}

	fn, ok := span.FirstFunction(replaced)
	expression := ""
	if ok {
		expression = fn.Inner()
	}
	if expression == "" {
		return "", errs.Emptyf("expression in function span %q", unit.Content)
	}

	result, err := r.eval.Eval(expression, nil)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate %q: %w", expression, err)
	}
	return jsonval.Stringify(result), nil
}
