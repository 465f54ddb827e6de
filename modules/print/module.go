// Package print provides a pass-through function that logs the values an
// expression produces, for debugging summary configurations.
package print

import (
	"log/slog"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Logger receives the printed values; slog.Default when nil.
	Logger *slog.Logger
}

// Register registers the print function.
func (m *Module) Register(r *registry.Registry) {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r.Register("print", registry.Static(printFunc(logger)))
}

// printFunc logs its value, with an optional label, and returns it unchanged.
func printFunc(logger *slog.Logger) function.Function {
	return function.New(&function.Spec{
		Description: "Logs a value and returns it unchanged.",
		Params: []function.Parameter{
			{
				Name:             "value",
				Type:             cty.DynamicPseudoType,
				AllowNull:        true,
				AllowDynamicType: true,
			},
		},
		VarParam: &function.Parameter{Name: "label", Type: cty.String},
		Type: func(args []cty.Value) (cty.Type, error) {
			return args[0].Type(), nil
		},
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			v, err := ctyval.FromCty(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			attrs := []any{"type", jsonval.TypeName(v), "value", jsonval.Stringify(v)}
			if len(args) > 1 {
				attrs = append(attrs, "label", args[1].AsString())
			}
			logger.Info("Printing value.", attrs...)
			return args[0], nil
		},
	})
}
