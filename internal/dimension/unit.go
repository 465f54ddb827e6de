package dimension

import (
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
)

// Unit is one typed stage of a dimension chain. Units are immutable once
// built and may be shared between concurrent runs.
type Unit interface {
	Variant() Variant
	In() Shape
	Out() Shape
	// Exec runs the stage on input, which must be of shape In.
	Exec(env registry.Env, input any) (any, error)
	String() string
}

// Variant names the closed set of unit kinds.
type Variant int

const (
	// VariantCommon renders its argument as a template against a record.
	VariantCommon Variant = iota
	VariantEntityToString
	VariantListToString
	VariantListToEntity
	VariantListAdvanced
	VariantEntityAdvanced
	VariantEntityToList
	// VariantOutputString ignores its input and returns its first argument.
	VariantOutputString
)

type variantInfo struct {
	name    string
	in, out Shape
	// minArgs and maxArgs bound the argument count; maxArgs < 0 is unbounded.
	minArgs, maxArgs int
}

var variants = [...]variantInfo{
	VariantCommon:         {"Common", ShapeRecord, ShapeString, 1, 1},
	VariantEntityToString: {"EntityToString", ShapeRecord, ShapeString, 1, 1},
	VariantListToString:   {"ListToString", ShapeList, ShapeString, 1, 1},
	VariantListToEntity:   {"ListToEntity", ShapeList, ShapeRecord, 1, 1},
	VariantListAdvanced:   {"ListAdvanced", ShapeList, ShapeList, 1, 1},
	VariantEntityAdvanced: {"EntityAdvanced", ShapeRecord, ShapeRecord, 1, 1},
	VariantEntityToList:   {"EntityToList", ShapeRecord, ShapeList, 1, -1},
	VariantOutputString:   {"OutputString", ShapeAny, ShapeString, 0, -1},
}

func (v Variant) valid() bool {
	return v >= 0 && int(v) < len(variants)
}

func (v Variant) info() variantInfo {
	if !v.valid() {
		return variantInfo{name: fmt.Sprintf("Variant(%d)", int(v))}
	}
	return variants[v]
}

func (v Variant) String() string { return v.info().name }

// New builds a unit of the given variant. expression is ignored by
// VariantCommon and VariantOutputString.
func New(v Variant, expression string, args ...string) (Unit, error) {
	if !v.valid() {
		return nil, errs.Matchf("unknown unit variant %s", v)
	}
	info := v.info()
	if err := checkArity(v, info, len(args)); err != nil {
		return nil, err
	}
	if v != VariantCommon && v != VariantOutputString && expression == "" {
		return nil, errs.Emptyf("expression of %s unit", v)
	}

	s := stage{expression: expression, args: append([]string(nil), args...)}
	switch v {
	case VariantCommon:
		return &Common{stage: s}, nil
	case VariantEntityToString:
		return &EntityToString{stage: s}, nil
	case VariantListToString:
		return &ListToString{stage: s}, nil
	case VariantListToEntity:
		return &ListToEntity{stage: s}, nil
	case VariantListAdvanced:
		return &ListAdvanced{stage: s}, nil
	case VariantEntityAdvanced:
		return &EntityAdvanced{stage: s}, nil
	case VariantEntityToList:
		return &EntityToList{stage: s}, nil
	default:
		return &OutputString{stage: s}, nil
	}
}

func checkArity(v Variant, info variantInfo, n int) error {
	switch {
	case n < info.minArgs && info.maxArgs < 0:
		return &errs.ArityError{What: v.String() + " unit arguments", Expected: info.minArgs, Actual: n, AtLeast: true}
	case n < info.minArgs || (info.maxArgs >= 0 && n > info.maxArgs):
		return &errs.ArityError{What: v.String() + " unit arguments", Expected: info.minArgs, Actual: n}
	}
	return nil
}

// stage carries what every variant is configured with.
type stage struct {
	expression string
	args       []string
}

// Expression returns the expression the unit submits to the engine.
func (s stage) Expression() string { return s.expression }

// Args returns a copy of the unit's arguments.
func (s stage) Args() []string { return append([]string(nil), s.args...) }

// bindings binds input under name and the arguments under aviatorArgs: the
// single argument itself, or all of them as an array.
func (s stage) bindings(name string, input any) map[string]any {
	b := map[string]any{name: input}
	switch len(s.args) {
	case 0:
	case 1:
		b[registry.VarArgs] = s.args[0]
	default:
		b[registry.VarArgs] = s.Args()
	}
	return b
}

func (s stage) eval(env registry.Env, name string, input any) (any, error) {
	if s.expression == "" {
		return nil, errs.Emptyf("expression")
	}
	return env.Eval(s.expression, s.bindings(name, input))
}

func (s stage) describe(v Variant) string {
	return fmt.Sprintf("%s{expression=%q args=%q}", v, s.expression, s.args)
}

func inputRecord(v Variant, input any) (*jsonval.Record, error) {
	rec, ok := input.(*jsonval.Record)
	if !ok || rec == nil {
		return nil, errs.TypeMismatch(v.String()+" input", jsonval.TypeRecord, jsonval.TypeName(input))
	}
	return rec, nil
}

func inputList(v Variant, input any) (*jsonval.List, error) {
	list, ok := input.(*jsonval.List)
	if !ok || list == nil {
		return nil, errs.TypeMismatch(v.String()+" input", jsonval.TypeList, jsonval.TypeName(input))
	}
	return list, nil
}

// outputString accepts any scalar and stringifies it.
func outputString(v Variant, out any) (string, error) {
	switch out.(type) {
	case nil, *jsonval.Record, *jsonval.List:
		return "", errs.TypeMismatch(v.String()+" output", jsonval.TypeString, jsonval.TypeName(out))
	}
	return jsonval.Stringify(out), nil
}

func outputRecord(v Variant, out any) (*jsonval.Record, error) {
	rec, ok := out.(*jsonval.Record)
	if !ok || rec == nil {
		return nil, errs.TypeMismatch(v.String()+" output", jsonval.TypeRecord, jsonval.TypeName(out))
	}
	return rec, nil
}

func outputList(v Variant, out any) (*jsonval.List, error) {
	list, ok := out.(*jsonval.List)
	if !ok || list == nil {
		return nil, errs.TypeMismatch(v.String()+" output", jsonval.TypeList, jsonval.TypeName(out))
	}
	return list, nil
}
