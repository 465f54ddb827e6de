package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
)

// Resolve splits configured function names into those with a registered
// factory and those without. An empty configuration selects every registered
// function. Duplicates are dropped; order of first appearance is kept.
func (r *Registry) Resolve(names []string) (known, unknown []string) {
	if len(names) == 0 {
		return r.Names(), nil
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := r.factories[name]; ok {
			known = append(known, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	return known, unknown
}

// ValidateNames reports every configured name without a registered factory.
// Unknown names are not fatal to the engine; callers log the error and carry
// on without those functions.
func (r *Registry) ValidateNames(ctx context.Context, names []string) error {
	logger := ctxlog.FromContext(ctx)
	_, unknown := r.Resolve(names)
	if len(unknown) == 0 {
		logger.Debug("All configured function names are registered.", "count", len(names))
		return nil
	}
	errs := make([]string, 0, len(unknown))
	for _, name := range unknown {
		errs = append(errs, fmt.Sprintf("function '%s' is configured but not registered", name))
	}
	return fmt.Errorf("function registry validation failed:\n- %s", strings.Join(errs, "\n- "))
}
