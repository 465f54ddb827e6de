package shaping

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
)

// DefaultSeparator is what join uses when it is given no separator.
const DefaultSeparator = "，"

var hundred = decimal.NewFromInt(100)

// SumByField adds up field across every record of list. The field must hold
// a number on every record.
func SumByField(list *jsonval.List, field string) (float64, error) {
	recs, err := records(NameSumByField, list)
	if err != nil {
		return 0, err
	}
	total := decimal.Zero
	for i, rec := range recs {
		v, _ := rec.Get(field)
		if v == nil {
			return 0, fmt.Errorf("%s: element %d: %w", NameSumByField, i, errs.Emptyf("value of field %q", field))
		}
		if !jsonval.IsInteger(v) && !jsonval.IsFloat(v) {
			return 0, errs.TypeMismatch(fmt.Sprintf("%s: element %d field %q", NameSumByField, i, field), jsonval.TypeNumber, jsonval.TypeName(v))
		}
		d, _ := jsonval.ToDecimal(v)
		total = total.Add(d)
	}
	return total.InexactFloat64(), nil
}

// Join concatenates the strings of list with sep. Record elements contribute
// their TARGET field; elements of any other type are skipped.
func Join(list *jsonval.List, sep string) string {
	parts := make([]string, 0, list.Len())
	for _, item := range list.Items() {
		switch item := item.(type) {
		case string:
			parts = append(parts, item)
		case *jsonval.Record:
			v, _ := item.Get(registry.TargetKey)
			parts = append(parts, jsonval.Stringify(v))
		}
	}
	return strings.Join(parts, sep)
}

// ClassifiedSize counts the distinct resolved values of field across list, or
// the records of list when field is empty.
func ClassifiedSize(list *jsonval.List, field string) (int, error) {
	if field == "" {
		return list.Len(), nil
	}
	recs, err := records(NameClassifiedSize, list)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(recs))
	for i, rec := range recs {
		v, err := render.ResolveName(rec, field)
		if err != nil {
			return 0, fmt.Errorf("%s: element %d: %w", NameClassifiedSize, i, err)
		}
		seen[v] = struct{}{}
	}
	return len(seen), nil
}

// Percent formats min(a/b, 1) as a percentage with two decimal places.
func Percent(a, b decimal.Decimal) (string, error) {
	if b.IsZero() {
		return "", fmt.Errorf("%s: division by zero", NamePercent)
	}
	ratio := a.Div(b)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = decimal.NewFromInt(1)
	}
	return ratio.Mul(hundred).StringFixedBank(2) + "%", nil
}

func sumByFieldFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Sums a numeric field across a list of records.",
		Params:      params("list", "field"),
		Type:        function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			list, err := listArg(NameSumByField, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			field, err := stringArg(NameSumByField, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			sum, err := SumByField(list, field)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.NumberFloatVal(sum), nil
		},
	})
}

func joinFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Joins a list of strings, or the TARGET field of a list of records.",
		Params:      params("list", "separator"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			list, err := listArg(NameJoin, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			sep := DefaultSeparator
			if !args[1].IsNull() {
				if sep, err = stringArg(NameJoin, args[1]); err != nil {
					return cty.NilVal, err
				}
			}
			return cty.StringVal(Join(list, sep)), nil
		},
	})
}

func classifiedSizeFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Counts the distinct values of a field across a list of records.",
		Params:      params("list", "field"),
		Type:        function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			list, err := listArg(NameClassifiedSize, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			field, err := stringArg(NameClassifiedSize, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			n, err := ClassifiedSize(list, field)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.NumberIntVal(int64(n)), nil
		},
	})
}

func percentFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Formats a/b, capped at 1, as a percentage.",
		Params:      params("a", "b"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			operands := make([]decimal.Decimal, len(args))
			for i, arg := range args {
				n, err := convert.Convert(arg, cty.Number)
				if err != nil {
					return cty.NilVal, errs.TypeMismatch(fmt.Sprintf("%s: argument %d", NamePercent, i+1), jsonval.TypeNumber, ctyval.TypeName(arg))
				}
				if operands[i], err = ctyval.AsDecimal(n); err != nil {
					return cty.NilVal, fmt.Errorf("%s: argument %d: %w", NamePercent, i+1, err)
				}
			}
			s, err := Percent(operands[0], operands[1])
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(s), nil
		},
	})
}
