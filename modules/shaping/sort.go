package shaping

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

var digits = regexp.MustCompile(`^\d+$`)

type sortKey struct {
	value   int64
	numeric bool
}

// FieldSort returns the elements of list stably sorted by the integer value of
// field. Elements that are null, not records, or whose value is not a run of
// digits sort after every numeric one. list itself is left untouched.
func FieldSort(list *jsonval.List, field string) (*jsonval.List, error) {
	items := list.Items()
	keys := make([]sortKey, len(items))
	for i, item := range items {
		rec, ok := item.(*jsonval.Record)
		if !ok || rec == nil {
			continue
		}
		s, err := render.ResolveName(rec, field)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", NameFieldSort, i, err)
		}
		if !digits.MatchString(s) {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		keys[i] = sortKey{value: n, numeric: true}
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		if !ka.numeric || !kb.numeric {
			return ka.numeric && !kb.numeric
		}
		return ka.value < kb.value
	})

	sorted := make([]any, len(items))
	for i, idx := range order {
		sorted[i] = items[idx]
	}
	return jsonval.NewList(sorted...), nil
}

func fieldSortFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Sorts a list of records by the integer value of a field.",
		Params:      params("list", "field"),
		Type:        function.StaticReturnType(ctyval.ListType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			list, err := listArg(NameFieldSort, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			field, err := stringArg(NameFieldSort, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			out, err := FieldSort(list, field)
			if err != nil {
				return cty.NilVal, err
			}
			return ctyval.ListVal(out), nil
		},
	})
}
