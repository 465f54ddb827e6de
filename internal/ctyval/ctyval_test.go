package ctyval

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/zclconf/go-cty/cty"
)

func TestRoundTrip(t *testing.T) {
	rec := jsonval.RecordOf("b", int64(1), "a", "x")
	list := jsonval.NewList(rec)

	testCases := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"string", "s"},
		{"bool", true},
		{"int", int64(7)},
		{"float", 2.5},
		{"record", rec},
		{"list", list},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cv, err := ToCty(tc.value)
			require.NoError(t, err)
			back, err := FromCty(cv)
			require.NoError(t, err)
			assert.Equal(t, tc.value, back)
		})
	}
}

func TestCapsulesKeepIdentity(t *testing.T) {
	rec := jsonval.RecordOf("z", 1, "a", 2)
	back, err := AsRecord(RecordVal(rec))
	require.NoError(t, err)
	assert.Same(t, rec, back)
	assert.Equal(t, []string{"z", "a"}, back.Keys())
}

func TestToCty_Collections(t *testing.T) {
	cv, err := ToCty([]string{"a", "b"})
	require.NoError(t, err)
	strs, err := AsStrings(cv)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, strs)

	cv, err = ToCty([]string{})
	require.NoError(t, err)
	strs, err = AsStrings(cv)
	require.NoError(t, err)
	assert.Empty(t, strs)

	cv, err = ToCty([]any{"a", int64(1)})
	require.NoError(t, err)
	list, err := AsList(cv)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", int64(1)}, list.Items())

	cv, err = ToCty(decimal.RequireFromString("1.25"))
	require.NoError(t, err)
	d, err := AsDecimal(cv)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1.25")))

	_, err = ToCty(struct{}{})
	require.Error(t, err)
}

func TestFromCty_NativeObjects(t *testing.T) {
	v := cty.ObjectVal(map[string]cty.Value{
		"n": cty.NumberIntVal(2),
		"l": cty.TupleVal([]cty.Value{cty.StringVal("x")}),
	})
	rec, err := AsRecord(v)
	require.NoError(t, err)
	n, _ := rec.Get("n")
	assert.Equal(t, int64(2), n)
	assert.Equal(t, `{"l":["x"],"n":2}`, jsonval.Stringify(rec))
}

func TestAccessors_TypeMismatch(t *testing.T) {
	_, err := AsRecord(cty.StringVal("x"))
	assert.True(t, errs.IsTypeMismatch(err))
	assert.Contains(t, err.Error(), "expected record, got string")

	_, err = AsList(RecordVal(jsonval.NewRecord()))
	assert.True(t, errs.IsTypeMismatch(err))
	assert.Contains(t, err.Error(), "expected list, got record")

	_, err = AsString(ListVal(jsonval.NewList()))
	assert.True(t, errs.IsTypeMismatch(err))

	_, err = AsStrings(cty.TupleVal([]cty.Value{cty.NumberIntVal(1)}))
	assert.True(t, errs.IsTypeMismatch(err))

	_, err = AsDecimal(cty.StringVal("1"))
	assert.True(t, errs.IsTypeMismatch(err))
}

func TestAccessors_Null(t *testing.T) {
	rec, err := AsRecord(cty.NullVal(cty.DynamicPseudoType))
	require.NoError(t, err)
	assert.Nil(t, rec)

	list, err := AsList(cty.NullVal(ListType))
	require.NoError(t, err)
	assert.Nil(t, list)

	s, err := AsString(cty.NullVal(cty.String))
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = AsString(cty.NumberFloatVal(3.5))
	require.NoError(t, err)
	assert.Equal(t, "3.5", s)

	assert.Equal(t, "null", TypeName(cty.NullVal(RecordType)))
}
