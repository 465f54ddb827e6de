package config

import (
	"context"
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model. Files of other formats are ignored.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// MultiLoader runs several loaders over the same paths and merges their
// models in loader order.
type MultiLoader []Loader

// Load implements Loader.
func (m MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	merged := &Model{}
	for i, l := range m {
		model, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(model); err != nil {
			return nil, fmt.Errorf("failed to merge configuration from loader %d: %w", i, err)
		}
	}
	logger.Debug("Configuration merged.", "loaders", len(m), "summaries", len(merged.Summaries), "functions", len(merged.Functions))
	return merged, nil
}
