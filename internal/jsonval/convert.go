package jsonval

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// PrefixSeparator joins a type prefix and a field name in converted keys.
const PrefixSeparator = "."

// PrefixKey builds the key of a field converted from a value of type prefix.
func PrefixKey(prefix, key string) string {
	return prefix + PrefixSeparator + key
}

// FromStructs converts a slice of structs (or struct pointers) into a list of
// records. Every key carries the lowercased type name of the value it was read
// from, e.g. a Student's Name becomes "student.name" when tagged `json:"name"`.
// Nil fields are omitted.
func FromStructs(items any) (*List, error) {
	out := NewList()
	if items == nil {
		return out, nil
	}
	rv := reflect.ValueOf(items)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected a slice of structs, got %T", items)
	}
	for i := 0; i < rv.Len(); i++ {
		elem := indirect(rv.Index(i))
		if !elem.IsValid() {
			continue
		}
		if elem.Kind() != reflect.Struct {
			return nil, fmt.Errorf("element %d: expected a struct, got %s", i, elem.Type())
		}
		rec, err := structToRecord(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out.Append(rec)
	}
	return out, nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func structToRecord(v reflect.Value) (*Record, error) {
	t := v.Type()
	prefix := strings.ToLower(t.Name())
	rec := NewRecord()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName := strings.Split(tag, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		val, err := toValue(v.Field(i))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if val == nil {
			continue
		}
		rec.Set(PrefixKey(prefix, name), val)
	}
	return rec, nil
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

func toValue(v reflect.Value) (any, error) {
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil, nil
	}
	if v.Type().Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return string(text), nil
	}
	v = indirect(v)
	if !v.IsValid() {
		return nil, nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Struct:
		return structToRecord(v)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil, nil
		}
		list := NewList()
		for i := 0; i < v.Len(); i++ {
			item, err := toValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			list.Append(item)
		}
		return list, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", v.Type().Key())
		}
		if v.IsNil() {
			return nil, nil
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		rec := NewRecord()
		for _, k := range keys {
			item, err := toValue(v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key())))
			if err != nil {
				return nil, err
			}
			rec.Set(k, item)
		}
		return rec, nil
	}
	return nil, fmt.Errorf("unsupported kind %s", v.Kind())
}
