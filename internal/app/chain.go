package app

import (
	"context"
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/config"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/dimension"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/engine"
)

// expressive is implemented by every unit built from an expression.
type expressive interface {
	Expression() string
	Args() []string
}

// buildChain turns summary definitions into a checked summary chain, one unit
// per definition.
func buildChain(ctx context.Context, eng *engine.Engine, defs []*config.SummaryDefinition) (dimension.SummaryChain, error) {
	logger := ctxlog.FromContext(ctx)
	var (
		builder dimension.Builder
		chain   dimension.SummaryChain
	)
	for _, def := range defs {
		unit := &dimension.SummaryUnit{Name: def.Name}
		for i, st := range def.Stages {
			u, err := builder.Build(dimension.FunctionType(st.Type), st.Args...)
			if err != nil {
				return nil, fmt.Errorf("summary '%s', stage %d: %w", def.Name, i, err)
			}
			unit.Stages = append(unit.Stages, u)
		}
		if len(unit.Stages) > 0 {
			if err := dimension.CheckChain(unit.Stages, dimension.ShapeList); err != nil {
				return nil, fmt.Errorf("summary '%s': %w", def.Name, err)
			}
		}
		for _, name := range unknownFunctions(ctx, eng, unit.Stages) {
			logger.Warn("Summary calls a function the engine does not expose.", "summary", def.Name, "function", name)
		}
		chain = append(chain, unit)
	}
	return chain, nil
}

// unknownFunctions lists the functions called by units, from their
// expressions and template arguments, that eng does not expose.
func unknownFunctions(ctx context.Context, eng *engine.Engine, units []dimension.Unit) []string {
	logger := ctxlog.FromContext(ctx)
	seen := make(map[string]struct{})
	var called []string
	add := func(names []string) {
		for _, n := range names {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				called = append(called, n)
			}
		}
	}

	for _, u := range units {
		e, ok := u.(expressive)
		if !ok || u.Variant() == dimension.VariantOutputString {
			continue
		}
		if expr := e.Expression(); expr != "" {
			names, err := engine.CalledFunctions(expr)
			if err != nil {
				logger.Warn("Stage expression does not parse.", "stage", u.String(), "error", err)
			}
			add(names)
		}
		for _, arg := range e.Args() {
			names, err := engine.TemplateFunctions(arg)
			if err != nil {
				logger.Warn("Stage template does not parse.", "stage", u.String(), "error", err)
			}
			add(names)
		}
	}
	return eng.Unknown(called)
}
