package shaping

import (
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Extract renders template against every record of list.
func Extract(env registry.Env, list *jsonval.List, template string) (*jsonval.List, error) {
	recs, err := records(NameExtractor, list)
	if err != nil {
		return nil, err
	}
	result := jsonval.NewList()
	for i, rec := range recs {
		s, err := env.Render(rec, template)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", NameExtractor, i, err)
		}
		result.Append(s)
	}
	return result, nil
}

// SubList returns the list held under field of rec. A nil record, a missing
// field or a null value yield an empty list.
func SubList(rec *jsonval.Record, field string) (*jsonval.List, error) {
	v, ok := rec.Get(field)
	if !ok || v == nil {
		return jsonval.NewList(), nil
	}
	list, ok := v.(*jsonval.List)
	if !ok {
		return nil, errs.TypeMismatch(fmt.Sprintf("%s: field %q", NameSubList, field), jsonval.TypeList, jsonval.TypeName(v))
	}
	return list, nil
}

func extractorFactory(env registry.Env) function.Function {
	return function.New(&function.Spec{
		Description: "Renders a template against every record of a list.",
		Params:      params("list", "template"),
		Type:        function.StaticReturnType(ctyval.ListType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			list, err := listArg(NameExtractor, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			template, err := stringArg(NameExtractor, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			out, err := Extract(env, list, template)
			if err != nil {
				return cty.NilVal, err
			}
			return ctyval.ListVal(out), nil
		},
	})
}

func subListFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Reads a nested list field from a record.",
		Params:      params("entity", "field"),
		Type:        function.StaticReturnType(ctyval.ListType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			rec, err := recordArg(NameSubList, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			field, err := stringArg(NameSubList, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			out, err := SubList(rec, field)
			if err != nil {
				return cty.NilVal, err
			}
			return ctyval.ListVal(out), nil
		},
	})
}
