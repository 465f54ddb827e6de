package executor

import (
	"context"
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/dimension"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
)

// Stream runs one dimension chain over one input.
type Stream struct {
	Env registry.Env
}

// NewStream creates a Stream submitting expressions to env.
func NewStream(env registry.Env) *Stream {
	return &Stream{Env: env}
}

// Run folds units over root left to right and returns the final string. root
// must be a record or a list, and the chain must pass CheckChain for root's
// shape. A stage failure is returned with the stage index and descriptor.
func (s *Stream) Run(ctx context.Context, root any, units []dimension.Unit) (string, error) {
	logger := ctxlog.FromContext(ctx)

	shape, ok := dimension.ShapeOf(root)
	if !ok || shape == dimension.ShapeString {
		return "", errs.TypeMismatch("chain root", "record or list", jsonval.TypeName(root))
	}
	if err := dimension.CheckChain(units, shape); err != nil {
		return "", fmt.Errorf("invalid chain: %w", err)
	}

	value := root
	for i, unit := range units {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		out, err := unit.Exec(s.Env, value)
		if err != nil {
			return "", fmt.Errorf("stage %d %s: %w", i, unit, err)
		}
		logger.Debug("Stage finished.", "stage", i, "variant", unit.Variant().String(), "output", jsonval.TypeName(out))
		value = out
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case *jsonval.List:
		return "", fmt.Errorf("chain ends in a list, not a string: %w", errs.TypeMismatch("final value", jsonval.TypeString, jsonval.TypeList))
	default:
		return "", errs.TypeMismatch("final value", jsonval.TypeString, jsonval.TypeName(value))
	}
}
