package ctyval

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/zclconf/go-cty/cty"
)

// Capsule types carrying data-model containers through cty unchanged, so key
// order and element identity survive a function call.
var (
	RecordType = cty.Capsule("record", reflect.TypeOf(jsonval.Record{}))
	ListType   = cty.Capsule("list", reflect.TypeOf(jsonval.List{}))
)

// RecordVal wraps a record. A nil record becomes a null record value.
func RecordVal(r *jsonval.Record) cty.Value {
	if r == nil {
		return cty.NullVal(RecordType)
	}
	return cty.CapsuleVal(RecordType, r)
}

// ListVal wraps a list. A nil list becomes a null list value.
func ListVal(l *jsonval.List) cty.Value {
	if l == nil {
		return cty.NullVal(ListType)
	}
	return cty.CapsuleVal(ListType, l)
}

// ToCty converts a data-model value into a cty.Value.
func ToCty(v any) (cty.Value, error) {
	switch v := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return v, nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case *jsonval.Record:
		return RecordVal(v), nil
	case *jsonval.List:
		return ListVal(v), nil
	case []string:
		if len(v) == 0 {
			return cty.ListValEmpty(cty.String), nil
		}
		vals := make([]cty.Value, len(v))
		for i, s := range v {
			vals[i] = cty.StringVal(s)
		}
		return cty.ListVal(vals), nil
	case []any:
		vals := make([]cty.Value, len(v))
		for i, item := range v {
			cv, err := ToCty(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			vals[i] = cv
		}
		return cty.TupleVal(vals), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case float64:
		if math.IsNaN(v) {
			return cty.NilVal, fmt.Errorf("NaN is not a valid number")
		}
		return cty.NumberFloatVal(v), nil
	}
	if d, ok := jsonval.ToDecimal(v); ok {
		return cty.ParseNumberVal(d.String())
	}
	return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
}

// FromCty converts a cty.Value back into the data model. Integral numbers
// become int64, other numbers float64.
func FromCty(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty.Equals(RecordType):
		return v.EncapsulatedValue().(*jsonval.Record), nil
	case ty.Equals(ListType):
		return v.EncapsulatedValue().(*jsonval.List), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		return numberValue(v.AsBigFloat()), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		list := jsonval.NewList()
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := FromCty(elem)
			if err != nil {
				return nil, err
			}
			list.Append(native)
		}
		return list, nil
	case ty.IsObjectType() || ty.IsMapType():
		rec := jsonval.NewRecord()
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			native, err := FromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			rec.Set(key.AsString(), native)
		}
		return rec, nil
	}
	return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
}

func numberValue(bf *big.Float) any {
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return i
		}
	}
	f, _ := bf.Float64()
	return f
}

// TypeName names the type of v for mismatch reports.
func TypeName(v cty.Value) string {
	if v.IsNull() {
		return jsonval.TypeNull
	}
	switch ty := v.Type(); {
	case ty.Equals(RecordType):
		return jsonval.TypeRecord
	case ty.Equals(ListType):
		return jsonval.TypeList
	default:
		return ty.FriendlyName()
	}
}

// AsRecord reads v as a record. Null reads as a nil record; cty objects and
// maps are converted.
func AsRecord(v cty.Value) (*jsonval.Record, error) {
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	if ty.Equals(RecordType) || ty.IsObjectType() || ty.IsMapType() {
		native, err := FromCty(v)
		if err != nil {
			return nil, err
		}
		return native.(*jsonval.Record), nil
	}
	return nil, errs.TypeMismatch("", jsonval.TypeRecord, TypeName(v))
}

// AsList reads v as a list. Null reads as a nil list; cty lists, tuples and
// sets are converted.
func AsList(v cty.Value) (*jsonval.List, error) {
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	if ty.Equals(ListType) || ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		native, err := FromCty(v)
		if err != nil {
			return nil, err
		}
		return native.(*jsonval.List), nil
	}
	return nil, errs.TypeMismatch("", jsonval.TypeList, TypeName(v))
}

// AsString reads v as text. Numbers and bools are stringified; null reads as
// the empty string.
func AsString(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Number, cty.Bool:
		native, err := FromCty(v)
		if err != nil {
			return "", err
		}
		return jsonval.Stringify(native), nil
	}
	return "", errs.TypeMismatch("", jsonval.TypeString, TypeName(v))
}

// AsStrings reads v as a string array. A single string yields one element.
func AsStrings(v cty.Value) ([]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if v.Type() == cty.String {
		return []string{v.AsString()}, nil
	}
	list, err := AsList(v)
	if err != nil {
		return nil, errs.TypeMismatch("", "string array", TypeName(v))
	}
	out := make([]string, 0, list.Len())
	for i, item := range list.Items() {
		s, ok := item.(string)
		if !ok && item != nil {
			return nil, errs.TypeMismatch(fmt.Sprintf("element %d", i), jsonval.TypeString, jsonval.TypeName(item))
		}
		out = append(out, s)
	}
	return out, nil
}

// AsDecimal reads v as an exact decimal number.
func AsDecimal(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() || v.Type() != cty.Number {
		return decimal.Zero, errs.TypeMismatch("", jsonval.TypeNumber, TypeName(v))
	}
	return decimal.NewFromString(v.AsBigFloat().Text('g', -1))
}
