package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
)

// Records decodes a JSON or YAML record list, failing the test on error.
func Records(t *testing.T, doc string) *jsonval.List {
	t.Helper()
	list, err := jsonval.DecodeList([]byte(doc))
	require.NoError(t, err, "invalid test document")
	return list
}

// Record decodes a single JSON or YAML record, failing the test on error.
func Record(t *testing.T, doc string) *jsonval.Record {
	t.Helper()
	v, err := jsonval.Decode([]byte(doc))
	require.NoError(t, err, "invalid test document")
	rec, ok := v.(*jsonval.Record)
	require.True(t, ok, "test document is a %s, not a record", jsonval.TypeName(v))
	return rec
}

// AssertLogged checks that every fragment appears on a single line of the log
// output.
func AssertLogged(t *testing.T, result *HarnessResult, fragments ...string) {
	t.Helper()
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if containsAll(line, fragments) {
			return
		}
	}
	require.Failf(t, "log line not found", "no log line contains all of %q", fragments)
}

func containsAll(s string, fragments []string) bool {
	for _, f := range fragments {
		if !strings.Contains(s, f) {
			return false
		}
	}
	return true
}
