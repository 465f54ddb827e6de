package env_vars

import (
	"os"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Lookup reads a variable; os.LookupEnv when nil.
	Lookup func(name string) (string, bool)
}

// Register registers the env function.
func (m *Module) Register(r *registry.Registry) {
	lookup := m.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	r.Register("env", registry.Static(envFunc(lookup)))
}

// envFunc returns the value of an environment variable, or the optional
// default when it is unset.
func envFunc(lookup func(string) (string, bool)) function.Function {
	return function.New(&function.Spec{
		Description: "Reads an environment variable.",
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		VarParam: &function.Parameter{Name: "default", Type: cty.String},
		Type:     function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if v, ok := lookup(args[0].AsString()); ok {
				return cty.StringVal(v), nil
			}
			if len(args) > 1 {
				return args[1], nil
			}
			return cty.StringVal(""), nil
		},
	})
}
