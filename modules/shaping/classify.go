package shaping

import (
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// DefaultBucket holds the records whose classification value resolves empty.
const DefaultBucket = "_NULL_"

// Classify buckets the records of list by the resolved value of field. Buckets
// keep the order in which their key first appears; the default bucket comes
// last.
func Classify(list *jsonval.List, field string) (*jsonval.Record, error) {
	result := jsonval.NewRecord()
	recs, err := records(NameClassify, list)
	if err != nil {
		return nil, err
	}

	var fallback []any
	for i, rec := range recs {
		key, err := render.ResolveName(rec, field)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", NameClassify, i, err)
		}
		if key == "" {
			fallback = append(fallback, rec)
			continue
		}
		appendTo(result, key, rec)
	}
	if len(fallback) > 0 {
		appendTo(result, DefaultBucket, fallback...)
	}
	return result, nil
}

func appendTo(buckets *jsonval.Record, key string, recs ...any) {
	if v, ok := buckets.Get(key); ok {
		v.(*jsonval.List).Append(recs...)
		return
	}
	buckets.Set(key, jsonval.NewList(recs...))
}

func classifyFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Buckets a list of records by a field or relation path.",
		Params:      params("list", "field"),
		Type:        function.StaticReturnType(ctyval.RecordType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			list, err := listArg(NameClassify, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			field, err := stringArg(NameClassify, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			rec, err := Classify(list, field)
			if err != nil {
				return cty.NilVal, err
			}
			return ctyval.RecordVal(rec), nil
		},
	})
}
