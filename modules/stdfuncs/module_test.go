package stdfuncs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/engine"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/stdfuncs"
)

func newEngine() *engine.Engine {
	reg := registry.New()
	reg.RegisterModules(&stdfuncs.Module{})
	return engine.New(context.Background(), reg)
}

func TestHelpers(t *testing.T) {
	e := newEngine()
	bindings := map[string]any{
		"list":   jsonval.NewList(int64(1), int64(2), int64(3)),
		"entity": jsonval.RecordOf("a", int64(1), "b", int64(2)),
		"name":   "Ann",
	}

	testCases := []struct {
		expression string
		expected   any
	}{
		{`upper(name)`, "ANN"},
		{`lower("ABC")`, "abc"},
		{`trimspace("  x ")`, "x"},
		{`format("%s-%d", name, 7)`, "Ann-7"},
		{`substr("summary", 0, 3)`, "sum"},
		{`add(1, 2)`, int64(3)},
		{`sub(5, 7)`, int64(-2)},
		{`max(1, 9, 4)`, int64(9)},
		{`min(1, 9, 4)`, int64(1)},
		{`length(list)`, int64(3)},
		{`length(entity)`, int64(2)},
		{`length("héllo")`, int64(5)},
		{`length(null)`, int64(0)},
		{`length(["a", "b"])`, int64(2)},
	}
	for _, tc := range testCases {
		t.Run(tc.expression, func(t *testing.T) {
			got, err := e.Eval(tc.expression, bindings)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLength_Mismatch(t *testing.T) {
	_, err := newEngine().Eval(`length(true)`, nil)
	require.Error(t, err)
	assert.True(t, errs.IsTypeMismatch(err))
}
