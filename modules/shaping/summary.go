package shaping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/span"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// KeyPlaceholder is replaced by the bucket key in a classified summary
// template.
const KeyPlaceholder = "_%KEY%_"

// ClassifiedSummary renders args[0] once per bucket of buckets. Each function
// span of the template is evaluated with the bucket bound as list; the n-th
// occurrence of aviatorArgs in the template is renamed aviatorArgs_n and bound
// to args[n+1]. The template must hold exactly one function span per bound
// value.
func ClassifiedSummary(env registry.Env, buckets *jsonval.Record, args []string) (*jsonval.List, error) {
	if len(args) == 0 {
		return nil, &errs.ArityError{What: NameClassifiedSummary + " arguments", Expected: 1, Actual: 0, AtLeast: true}
	}
	template, values := args[0], args[1:]
	if n := span.CountFunctions(template); n != len(values) {
		return nil, &errs.ArityError{
			What:     NameClassifiedSummary + " function spans against bound values",
			Expected: n,
			Actual:   len(values),
			Detail:   fmt.Sprintf("template %q, values %q", template, values),
		}
	}

	base := make(map[string]any, len(values)+1)
	for i, v := range values {
		name := registry.VarArgs + "_" + strconv.Itoa(i)
		template = renameArg(template, name)
		base[name] = v
	}

	result := jsonval.NewList()
	for _, key := range buckets.Keys() {
		raw, _ := buckets.Get(key)
		bucket, ok := raw.(*jsonval.List)
		if !ok && raw != nil {
			return nil, errs.TypeMismatch(fmt.Sprintf("%s: bucket %q", NameClassifiedSummary, key), jsonval.TypeList, jsonval.TypeName(raw))
		}
		out, err := summarizeBucket(env, strings.ReplaceAll(template, KeyPlaceholder, key), bucket, base)
		if err != nil {
			return nil, fmt.Errorf("%s: bucket %q: %w", NameClassifiedSummary, key, err)
		}
		result.Append(out)
	}
	return result, nil
}

func summarizeBucket(env registry.Env, template string, bucket *jsonval.List, base map[string]any) (string, error) {
	info, err := span.Parse(template)
	if err != nil {
		return "", err
	}
	bindings := make(map[string]any, len(base)+1)
	for k, v := range base {
		bindings[k] = v
	}
	bindings[registry.VarList] = bucket

	out := template
	for i, unit := range info.Units {
		if unit.Kind != span.KindFunction {
			return "", errs.Matchf("unit %d %q: only FUNCTION units may appear in a classified summary template", i, unit.Content)
		}
		expr := unit.Inner()
		if expr == "" {
			return "", errs.Emptyf("expression in function span %q", unit.Content)
		}
		v, err := env.Eval(expr, bindings)
		if err != nil {
			return "", fmt.Errorf("unit %d %q: %w", i, unit.Content, err)
		}
		out = strings.ReplaceAll(out, unit.Content, jsonval.Stringify(v))
	}
	return out, nil
}

// renameArg replaces the first aviatorArgs that is followed by a character
// other than '_' with name.
func renameArg(s, name string) string {
	for from := 0; ; {
		i := strings.Index(s[from:], registry.VarArgs)
		if i < 0 {
			return s
		}
		i += from
		end := i + len(registry.VarArgs)
		if end < len(s) && s[end] != '_' {
			return s[:i] + name + s[end:]
		}
		from = end
	}
}

func classifiedSummaryFactory(env registry.Env) function.Function {
	return function.New(&function.Spec{
		Description: "Renders a template of function spans once per bucket of a classified record.",
		Params:      params("entity", "args"),
		Type:        function.StaticReturnType(ctyval.ListType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			buckets, err := recordArg(NameClassifiedSummary, args[0])
			if err != nil {
				return cty.NilVal, err
			}
			templateArgs, err := ctyval.AsStrings(args[1])
			if err != nil {
				return cty.NilVal, fmt.Errorf("%s: second argument: %w", NameClassifiedSummary, err)
			}
			out, err := ClassifiedSummary(env, buckets, templateArgs)
			if err != nil {
				return cty.NilVal, err
			}
			return ctyval.ListVal(out), nil
		},
	})
}
