package executor

import (
	"context"
	"strings"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/dimension"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
)

// Summary runs every unit of a summary chain against the same source list and
// concatenates their outputs.
type Summary struct {
	Stream *Stream
}

// NewSummary creates a Summary running each unit through stream.
func NewSummary(stream *Stream) *Summary {
	return &Summary{Stream: stream}
}

// Run returns the concatenated outputs of chain. The first failing unit is
// logged and ends the run; whatever was produced before it is returned.
func (s *Summary) Run(ctx context.Context, list *jsonval.List, chain dimension.SummaryChain) string {
	out, _ := s.RunErr(ctx, list, chain)
	return out
}

// RunErr is Run that also returns the failure that cut the report short, if
// any. The partial report is returned either way.
func (s *Summary) RunErr(ctx context.Context, list *jsonval.List, chain dimension.SummaryChain) (string, error) {
	logger := ctxlog.FromContext(ctx)
	if len(chain) == 0 {
		logger.Warn("Summary chain is empty, returning an empty report.")
		return "", nil
	}

	var b strings.Builder
	for i, unit := range chain {
		if len(unit.Stages) == 0 {
			logger.Debug("Skipping summary unit without stages.", "unit", i, "name", unit.Name)
			continue
		}
		out, err := s.Stream.Run(ctx, list, unit.Stages)
		if err != nil {
			logger.Error("Summary unit failed, returning partial report.", "unit", i, "name", unit.Name, "error", err)
			return b.String(), err
		}
		b.WriteString(out)
	}
	logger.Debug("Summary chain finished.", "units", len(chain))
	return b.String(), nil
}
