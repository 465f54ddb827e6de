package registry

import (
	"sort"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
)

// Module is the interface that every function module implements to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Env is what a function implementation may call back into at call time:
// the evaluation engine and the template renderer built on it.
type Env interface {
	Eval(expression string, bindings map[string]any) (any, error)
	Render(rec *jsonval.Record, template string) (string, error)
}

// Registry holds the function factories contributed by modules, keyed by the
// name expressions call them with. It is filled once at startup and only read
// afterwards.
type Registry struct {
	factories map[string]Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterModules registers every module in order.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, mod := range modules {
		mod.Register(r)
	}
}
