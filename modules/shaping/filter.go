package shaping

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// ValueSeparator joins the accepted values of one filter key.
const ValueSeparator = "|"

var filterGroup = regexp.MustCompile(`\[([^)(=]*?)=([^)(=]*?)\]`)

// Condition accepts a record whose resolved Key equals any of Values.
type Condition struct {
	Key    string
	Values []string
}

// ParseFilter reads a sequence of [key=value] groups. Groups sharing a key
// are merged into one condition; conditions keep the order in which their key
// first appears.
func ParseFilter(expr string) ([]Condition, error) {
	if expr == "" {
		return nil, errs.Emptyf("filter expression")
	}
	var conds []Condition
	index := make(map[string]int)
	for _, m := range filterGroup.FindAllStringSubmatch(expr, -1) {
		key, value := m[1], m[2]
		if i, ok := index[key]; ok {
			conds[i].Values = append(conds[i].Values, value)
			continue
		}
		index[key] = len(conds)
		conds = append(conds, Condition{Key: key, Values: []string{value}})
	}
	return conds, nil
}

// ConditionsToFilter encodes key to |-separated values as a filter
// expression, keys in sorted order.
func ConditionsToFilter(conditions map[string]string) (string, error) {
	if conditions == nil {
		return "", errs.Emptyf("filter conditions")
	}
	keys := make([]string, 0, len(conditions))
	for k := range conditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range strings.Split(conditions[k], ValueSeparator) {
			fmt.Fprintf(&b, "[%s=%s]", k, v)
		}
	}
	return b.String(), nil
}

// FieldEqual keeps the records of list that satisfy at least one condition of
// the filter expression.
func FieldEqual(list *jsonval.List, expr string) (*jsonval.List, error) {
	conds, err := ParseFilter(expr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameFieldEqual, err)
	}
	recs, err := records(NameFieldEqual, list)
	if err != nil {
		return nil, err
	}
	result := jsonval.NewList()
	for i, rec := range recs {
		ok, err := matchAny(rec, conds)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", NameFieldEqual, i, err)
		}
		if ok {
			result.Append(rec)
		}
	}
	return result, nil
}

func matchAny(rec *jsonval.Record, conds []Condition) (bool, error) {
	for _, c := range conds {
		value, err := render.ResolveName(rec, c.Key)
		if err != nil {
			return false, err
		}
		if slices.Contains(c.Values, value) {
			return true, nil
		}
	}
	return false, nil
}

func fieldEqualFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Keeps the records matching any [key=value] group of a filter expression.",
		Params:      params("list", "filter"),
		Type:        function.StaticReturnType(ctyval.ListType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			list, err := listArg(NameFieldEqual, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			expr, err := stringArg(NameFieldEqual, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			out, err := FieldEqual(list, expr)
			if err != nil {
				return cty.NilVal, err
			}
			return ctyval.ListVal(out), nil
		},
	})
}
