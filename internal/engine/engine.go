package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/inmemorystore"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Engine evaluates expressions written in HCL native syntax against a fixed
// function table. It is built once and is safe for concurrent use.
type Engine struct {
	functions map[string]function.Function
	parsed    *inmemorystore.Store[hclsyntax.Expression]
	renderer  *render.Renderer
}

// New builds an engine exposing the named functions from reg. An empty names
// list exposes every registered function. Names reg does not know are logged
// and skipped.
func New(ctx context.Context, reg *registry.Registry, names ...string) *Engine {
	logger := ctxlog.FromContext(ctx)
	e := &Engine{
		functions: make(map[string]function.Function),
		parsed:    inmemorystore.New[hclsyntax.Expression](),
	}
	e.renderer = render.New(e)

	known, unknown := reg.Resolve(names)
	for _, name := range unknown {
		logger.Warn("Skipping unknown function.", "name", name)
	}
	for _, name := range known {
		factory, _ := reg.Lookup(name)
		e.functions[name] = factory(e)
	}
	logger.Debug("Evaluation engine built.", "functions", len(e.functions))
	return e
}

// Has reports whether the engine exposes a function called name.
func (e *Engine) Has(name string) bool {
	_, ok := e.functions[name]
	return ok
}

// Eval evaluates expression with bindings as its only variables. Binding
// values are data-model values (records, lists, strings, numbers, bools, nil).
func (e *Engine) Eval(expression string, bindings map[string]any) (any, error) {
	expr, err := e.parse(expression)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]cty.Value, len(bindings))
	for name, v := range bindings {
		cv, err := ctyval.ToCty(v)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}
		vars[name] = cv
	}

	val, diags := expr.Value(&hcl.EvalContext{
		Variables: vars,
		Functions: e.functions,
	})
	if diags.HasErrors() {
		return nil, evalError(expression, diags)
	}
	return ctyval.FromCty(val)
}

// Render resolves template against rec, submitting function spans to e.
func (e *Engine) Render(rec *jsonval.Record, template string) (string, error) {
	return e.renderer.Render(rec, template)
}

func (e *Engine) parse(expression string) (hclsyntax.Expression, error) {
	return e.parsed.GetOrCompute(expression, func() (hclsyntax.Expression, error) {
		return Parse(expression)
	})
}

// Parse parses expression in HCL native syntax.
func Parse(expression string) (hclsyntax.Expression, error) {
	if expression == "" {
		return nil, errs.Emptyf("expression")
	}
	expr, diags := hclsyntax.ParseExpression([]byte(expression), "expression", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, &errs.SyntaxError{Expression: expression, Err: errors.New(diags.Error())}
	}
	return expr, nil
}

// evalError keeps the error a function implementation returned so callers can
// still match on it; any other diagnostic is reported as a syntax error.
func evalError(expression string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if extra, ok := hcl.DiagnosticExtra[hclsyntax.FunctionCallDiagExtra](diag); ok {
			if callErr := extra.FunctionCallError(); callErr != nil {
				return fmt.Errorf("%s(): %w", extra.CalledFunctionName(), callErr)
			}
		}
	}
	return &errs.SyntaxError{Expression: expression, Err: errors.New(diags.Error())}
}
