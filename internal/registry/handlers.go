package registry

import (
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty/function"
)

// Factory builds a function bound to env. It is called once, when the engine
// resolves the configured function names.
type Factory func(env Env) function.Function

// Static wraps a function that needs nothing from the engine.
func Static(fn function.Function) Factory {
	return func(Env) function.Function { return fn }
}

// Register adds a function factory under name.
func (r *Registry) Register(name string, factory Factory) {
	if name == "" {
		panic("function name must not be empty")
	}
	if factory == nil {
		panic(fmt.Sprintf("function '%s' registered with a nil factory", name))
	}
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("function with name '%s' already registered", name))
	}
	slog.Debug("Registering function.", "name", name)
	r.factories[name] = factory
}
