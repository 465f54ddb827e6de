package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"golang.org/x/sync/errgroup"
)

// Run renders the report of every input document and writes them to the
// output writer in input order, each under a `== <path> ==` header. Inputs
// are processed concurrently, bounded by the configured worker count. A unit
// failure only truncates that input's report; an unreadable input fails the
// run.
func (a *App) Run(ctx context.Context, inputs []string) error {
	runID := uuid.NewString()
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", runID))
	logger := ctxlog.FromContext(ctx)
	logger.Info("🚀 Starting summary run.", "inputs", len(inputs), "units", len(a.chain), "workers", a.config.Workers)
	start := time.Now()

	reports := make([]string, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Workers)
	for i, path := range inputs {
		g.Go(func() error {
			list, err := readList(path)
			if err != nil {
				return fmt.Errorf("input %s: %w", path, err)
			}
			reports[i] = a.summary.Run(ctxlog.With(gctx, "input", path), list, a.chain)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range inputs {
		if _, err := fmt.Fprintf(a.outW, "== %s ==\n%s\n", path, reports[i]); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	logger.Info("🏁 Summary run finished.", "duration", time.Since(start))
	return nil
}

// Render returns the report for list produced by the unit called name, or by
// the whole chain when name is empty. The partial report is returned together
// with the failure that cut it short.
func (a *App) Render(ctx context.Context, list *jsonval.List, name string) (string, error) {
	chain, err := a.chain.Select(name)
	if err != nil {
		return "", err
	}
	return a.summary.RunErr(ctxlog.WithLogger(ctx, a.logger), list, chain)
}
