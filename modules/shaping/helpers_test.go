package shaping_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/engine"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/stdfuncs"
)

// newEngine builds an engine exposing every shaping and helper function.
func newEngine(t *testing.T, relations shaping.RelationStrategy) *engine.Engine {
	t.Helper()
	reg := registry.New()
	reg.RegisterModules(&shaping.Module{Relations: relations}, &stdfuncs.Module{})
	return engine.New(context.Background(), reg)
}

func records(t *testing.T, doc string) *jsonval.List {
	t.Helper()
	list, err := jsonval.DecodeList([]byte(doc))
	require.NoError(t, err)
	return list
}

func bucketSizes(rec *jsonval.Record) map[string]int {
	out := make(map[string]int, rec.Len())
	for _, k := range rec.Keys() {
		v, _ := rec.Get(k)
		out[k] = v.(*jsonval.List).Len()
	}
	return out
}
