package executor_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctxlog"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/dimension"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/engine"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/executor"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/stdfuncs"
)

func newStream(t *testing.T) *executor.Stream {
	t.Helper()
	reg := registry.New()
	reg.RegisterModules(&shaping.Module{}, &stdfuncs.Module{})
	return executor.NewStream(engine.New(context.Background(), reg))
}

func build(t *testing.T, ft dimension.FunctionType, args ...string) dimension.Unit {
	t.Helper()
	u, err := dimension.Builder{}.Build(ft, args...)
	require.NoError(t, err)
	return u
}

func groups(t *testing.T) *jsonval.List {
	t.Helper()
	list, err := jsonval.DecodeList([]byte(`[{"g":"A","v":1},{"g":"B","v":2.5},{"g":"A","v":3}]`))
	require.NoError(t, err)
	return list
}

// bucketCounts renders "KEY=count" per classification bucket, comma separated.
func bucketCounts(t *testing.T) []dimension.Unit {
	return []dimension.Unit{
		build(t, dimension.List2EntityClassify, "g"),
		build(t, dimension.Entity2ListClassifiedSummary, "_%KEY%_=#{classifiedSize(list, aviatorArgs)}#", ""),
		build(t, dimension.List2StringJoin, ","),
	}
}

func TestStream_Run(t *testing.T) {
	s := newStream(t)
	ctx := context.Background()

	t.Run("record root", func(t *testing.T) {
		rec := jsonval.RecordOf("name", "Ann")
		out, err := s.Run(ctx, rec, []dimension.Unit{build(t, dimension.Entity2StringCommon, "Hello ${name}")})
		require.NoError(t, err)
		assert.Equal(t, "Hello Ann", out)
	})

	t.Run("list root through several shapes", func(t *testing.T) {
		out, err := s.Run(ctx, groups(t), bucketCounts(t))
		require.NoError(t, err)
		assert.Equal(t, "A=2,B=1", out)
	})

	t.Run("sum of a field", func(t *testing.T) {
		out, err := s.Run(ctx, groups(t), []dimension.Unit{build(t, dimension.List2StringSummaryByField, "v")})
		require.NoError(t, err)
		assert.Equal(t, "6.5", out)
	})

	t.Run("sorted then extracted", func(t *testing.T) {
		out, err := s.Run(ctx, groups(t), []dimension.Unit{
			build(t, dimension.ListAdvancedFieldSort, "v"),
			build(t, dimension.ListAdvancedExtractor, "${v}"),
			build(t, dimension.List2StringJoin, " < "),
		})
		require.NoError(t, err)
		assert.Equal(t, "1 < 3 < 2.5", out, "non-integer values sort last")
	})
}

func TestStream_Run_Errors(t *testing.T) {
	s := newStream(t)
	ctx := context.Background()

	testCases := []struct {
		name  string
		root  any
		units []dimension.Unit
		check func(t *testing.T, err error)
	}{
		{
			name:  "string root",
			root:  "text",
			units: []dimension.Unit{dimension.Builder{}.Text("x")},
			check: func(t *testing.T, err error) { assert.True(t, errs.IsTypeMismatch(err)) },
		},
		{
			name:  "nil root",
			root:  nil,
			units: []dimension.Unit{dimension.Builder{}.Text("x")},
			check: func(t *testing.T, err error) { assert.True(t, errs.IsTypeMismatch(err)) },
		},
		{
			name:  "record chain on a list",
			root:  jsonval.NewList(),
			units: []dimension.Unit{build(t, dimension.Entity2StringCommon, "${x}")},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "invalid chain") },
		},
		{
			name:  "chain ending in a list",
			root:  jsonval.NewList(),
			units: []dimension.Unit{build(t, dimension.ListAdvancedFieldSort, "v")},
			check: func(t *testing.T, err error) { assert.True(t, errs.IsTypeMismatch(err)) },
		},
		{
			name:  "failing stage",
			root:  jsonval.NewList("not a record"),
			units: []dimension.Unit{build(t, dimension.List2StringSummaryByField, "v")},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.IsTypeMismatch(err))
				assert.ErrorContains(t, err, "stage 0")
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Run(ctx, tc.root, tc.units)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestStream_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newStream(t).Run(ctx, groups(t), bucketCounts(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummary_Run(t *testing.T) {
	summary := executor.NewSummary(newStream(t))
	chain := dimension.SummaryChain{
		{Name: "title", Stages: []dimension.Unit{dimension.Builder{}.Text("Groups: ")}},
		{Name: "counts", Stages: bucketCounts(t)},
		{Name: "empty"},
	}

	out, err := summary.RunErr(context.Background(), groups(t), chain)
	require.NoError(t, err)
	assert.Equal(t, "Groups: A=2,B=1", out)

	assert.Equal(t, "", summary.Run(context.Background(), groups(t), nil))
}

func TestSummary_Run_PartialOnFailure(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	summary := executor.NewSummary(newStream(t))
	chain := dimension.SummaryChain{
		{Name: "counts", Stages: bucketCounts(t)},
		{Name: "broken", Stages: []dimension.Unit{build(t, dimension.List2StringSummaryByField, "g")}},
		{Name: "never", Stages: []dimension.Unit{dimension.Builder{}.Text("unreachable")}},
	}

	out := summary.Run(ctx, groups(t), chain)
	assert.Equal(t, "A=2,B=1", out)
	assert.Contains(t, logs.String(), "Summary unit failed, returning partial report.")
	assert.Contains(t, logs.String(), "name=broken")

	out, err := summary.RunErr(ctx, groups(t), chain)
	assert.Equal(t, "A=2,B=1", out)
	assert.True(t, errs.IsTypeMismatch(err))
}

func TestSummary_Run_SharedAcrossGoroutines(t *testing.T) {
	summary := executor.NewSummary(newStream(t))
	chain := dimension.SummaryChain{{Name: "counts", Stages: bucketCounts(t)}}

	list := groups(t)
	done := make(chan string, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			done <- summary.Run(context.Background(), list, chain)
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, "A=2,B=1", <-done)
	}
}
