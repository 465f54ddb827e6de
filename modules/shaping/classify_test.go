package shaping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
)

func TestClassify(t *testing.T) {
	list := records(t, `[{"g":"A"},{"g":"B"},{"g":"A"}]`)

	got, err := shaping.Classify(list, "g")
	require.NoError(t, err)
	assert.Equal(t, `{"A":[{"g":"A"},{"g":"A"}],"B":[{"g":"B"}]}`, jsonval.Stringify(got))
}

func TestClassify_DefaultBucket(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		expected map[string]int
		keys     []string
	}{
		{
			name:     "missing and empty values go last",
			doc:      `[{}, {"g":"A"}, {"g":""}, {"g":null}]`,
			expected: map[string]int{"A": 1, shaping.DefaultBucket: 3},
			keys:     []string{"A", shaping.DefaultBucket},
		},
		{
			name:     "merged into an explicit default bucket",
			doc:      `[{"g":"_NULL_"}, {"g":"B"}, {}]`,
			expected: map[string]int{shaping.DefaultBucket: 2, "B": 1},
			keys:     []string{shaping.DefaultBucket, "B"},
		},
		{
			name:     "empty list",
			doc:      `[]`,
			expected: map[string]int{},
			keys:     []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := shaping.Classify(records(t, tc.doc), "g")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, bucketSizes(got))
			assert.Equal(t, tc.keys, got.Keys())
		})
	}
}

func TestClassify_TotalCount(t *testing.T) {
	docs := []string{
		`[{"g":"A"},{"g":"B"},{"g":"A"},{},{"g":1},{"g":1.5},{"g":true}]`,
		`[{"h":"x"},{"h":"y"}]`,
		`[{"g":"_NULL_"},{"g":null},{"g":"x"}]`,
	}
	for _, doc := range docs {
		list := records(t, doc)
		got, err := shaping.Classify(list, "g")
		require.NoError(t, err)
		total := 0
		for _, n := range bucketSizes(got) {
			total += n
		}
		assert.Equal(t, list.Len(), total, doc)
	}
}

func TestClassify_RelationPath(t *testing.T) {
	list := records(t, `[
		{"route.relationInfo": {"city": "Oslo"}},
		{"route.relationInfo": {"city": "Rome"}},
		{"route.relationInfo": {"city": "Oslo"}}
	]`)
	got, err := shaping.Classify(list, "route@city")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Oslo": 2, "Rome": 1}, bucketSizes(got))
}

func TestClassify_NonRecordElement(t *testing.T) {
	_, err := shaping.Classify(jsonval.NewList("x"), "g")
	require.Error(t, err)
	assert.True(t, errs.IsTypeMismatch(err))
	assert.Contains(t, err.Error(), "expected record, got string")
}

func TestClassify_DoesNotModifyInput(t *testing.T) {
	list := records(t, `[{"g":"A"},{"g":"B"}]`)
	before := jsonval.Stringify(list)
	_, err := shaping.Classify(list, "g")
	require.NoError(t, err)
	assert.Equal(t, before, jsonval.Stringify(list))
}
