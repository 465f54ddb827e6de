package shaping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
)

func TestFieldSort(t *testing.T) {
	list := records(t, `[{"n":"10"},{"n":"9"},{"n":"x"},{"n":2},"str",{"n":"1"},{"n":"-3"},{"n":"9","tie":true}]`)
	before := jsonval.Stringify(list)

	got, err := shaping.FieldSort(list, "n")
	require.NoError(t, err)
	assert.Equal(t,
		`[{"n":"1"},{"n":2},{"n":"9"},{"n":"9","tie":true},{"n":"10"},{"n":"x"},"str",{"n":"-3"}]`,
		jsonval.Stringify(got))
	assert.Equal(t, before, jsonval.Stringify(list), "input list must be left untouched")
}

func TestFieldSort_Empty(t *testing.T) {
	got, err := shaping.FieldSort(jsonval.NewList(), "n")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	got, err = shaping.FieldSort(nil, "n")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
