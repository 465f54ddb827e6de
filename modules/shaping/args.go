package shaping

import (
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// params declares dynamically typed, nullable parameters. Every shaping
// function checks its own argument shapes so that a mismatch is reported with
// the data-model type names. A bare null literal is typed dynamic, so dynamic
// values must reach the implementation too.
func params(names ...string) []function.Parameter {
	out := make([]function.Parameter, len(names))
	for i, name := range names {
		out[i] = function.Parameter{
			Name:             name,
			Type:             cty.DynamicPseudoType,
			AllowNull:        true,
			AllowDynamicType: true,
		}
	}
	return out
}

func listArg(fn string, v cty.Value) (*jsonval.List, error) {
	list, err := ctyval.AsList(v)
	if err != nil {
		return nil, fmt.Errorf("%s: first argument: %w", fn, err)
	}
	return list, nil
}

func recordArg(fn string, v cty.Value) (*jsonval.Record, error) {
	rec, err := ctyval.AsRecord(v)
	if err != nil {
		return nil, fmt.Errorf("%s: first argument: %w", fn, err)
	}
	return rec, nil
}

func stringArg(fn string, v cty.Value) (string, error) {
	s, err := ctyval.AsString(v)
	if err != nil {
		return "", fmt.Errorf("%s: second argument: %w", fn, err)
	}
	return s, nil
}

// records checks that every element of list is a record.
func records(fn string, list *jsonval.List) ([]*jsonval.Record, error) {
	items := list.Items()
	out := make([]*jsonval.Record, 0, len(items))
	for i, item := range items {
		rec, ok := item.(*jsonval.Record)
		if !ok {
			return nil, errs.TypeMismatch(fmt.Sprintf("%s: element %d", fn, i), jsonval.TypeRecord, jsonval.TypeName(item))
		}
		out = append(out, rec)
	}
	return out, nil
}
