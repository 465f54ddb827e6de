package dimension

import (
	"errors"
	"fmt"
	"sort"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/upcAutoLang/rezero-dynamic-summary/modules/shaping"
)

// FunctionType names a canned stage configuration.
type FunctionType string

const (
	Entity2StringCommon          FunctionType = "ENTITY2STRING_COMMON"
	Entity2StringExpression      FunctionType = "ENTITY2STRING_EXPRESSION"
	List2StringSummaryByField    FunctionType = "LIST2STRING_SUMMARYBYFIELD"
	List2StringJoin              FunctionType = "LIST2STRING_JOIN"
	List2StringClassifiedSize    FunctionType = "LIST2STRING_CLASSIFIED_SIZE"
	List2EntityClassify          FunctionType = "LIST2ENTITY_CLASSIFY"
	ListAdvancedFieldEqual       FunctionType = "LISTADVANCED_FIELDEQUAL"
	ListAdvancedRelationInfo     FunctionType = "LISTADVANCED_RELATIONINFO"
	ListAdvancedFieldSort        FunctionType = "LISTADVANCED_FIELDSORT"
	ListAdvancedExtractor        FunctionType = "LISTADVANCED_EXTRACTOR"
	EntityAdvancedRelationInfo   FunctionType = "ENTITYADVANCED_RELATIONINFO"
	Entity2ListClassifiedSummary FunctionType = "ENTITY2LIST_CLASSIFIED_SUMMARY"
	Entity2ListSubList           FunctionType = "ENTITY2LIST_SUBLIST"
	OutputStringType             FunctionType = "OUTPUT_STRING"
)

// ErrUnknownType is returned for a FunctionType with no blueprint.
var ErrUnknownType = errors.New("unknown function type")

type blueprint struct {
	variant Variant
	// expression is empty for variants that take it from their arguments.
	expression string
}

func call(fn, container string) string {
	return fmt.Sprintf("%s(%s, %s)", fn, container, registry.VarArgs)
}

var blueprints = map[FunctionType]blueprint{
	Entity2StringCommon:          {VariantCommon, ""},
	Entity2StringExpression:      {VariantEntityToString, ""},
	List2StringSummaryByField:    {VariantListToString, call(shaping.NameSumByField, registry.VarList)},
	List2StringJoin:              {VariantListToString, call(shaping.NameJoin, registry.VarList)},
	List2StringClassifiedSize:    {VariantListToString, call(shaping.NameClassifiedSize, registry.VarList)},
	List2EntityClassify:          {VariantListToEntity, call(shaping.NameClassify, registry.VarList)},
	ListAdvancedFieldEqual:       {VariantListAdvanced, call(shaping.NameFieldEqual, registry.VarList)},
	ListAdvancedRelationInfo:     {VariantListAdvanced, call(shaping.NameRelationInfo, registry.VarList)},
	ListAdvancedFieldSort:        {VariantListAdvanced, call(shaping.NameFieldSort, registry.VarList)},
	ListAdvancedExtractor:        {VariantListAdvanced, call(shaping.NameExtractor, registry.VarList)},
	EntityAdvancedRelationInfo:   {VariantEntityAdvanced, call(shaping.NameRelationInfo, registry.VarEntity)},
	Entity2ListClassifiedSummary: {VariantEntityToList, call(shaping.NameClassifiedSummary, registry.VarEntity)},
	Entity2ListSubList:           {VariantEntityToList, call(shaping.NameSubList, registry.VarEntity)},
	OutputStringType:             {VariantOutputString, ""},
}

// Types returns every known FunctionType, sorted.
func Types() []FunctionType {
	out := make([]FunctionType, 0, len(blueprints))
	for t := range blueprints {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Builder maps FunctionTypes to units.
type Builder struct{}

// Expression returns the canned expression of t and the number of arguments
// its variant requires. A negative count means "at least -count".
func (Builder) Expression(t FunctionType) (string, int, error) {
	bp, ok := blueprints[t]
	if !ok {
		return "", 0, fmt.Errorf("%w %q", ErrUnknownType, t)
	}
	info := bp.variant.info()
	if info.maxArgs < 0 {
		return bp.expression, -info.minArgs, nil
	}
	return bp.expression, info.minArgs, nil
}

// Build builds the unit for t with args.
func (Builder) Build(t FunctionType, args ...string) (Unit, error) {
	bp, ok := blueprints[t]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, t)
	}
	expression := bp.expression
	if bp.variant == VariantEntityToString && len(args) > 0 {
		expression = args[0]
	}
	u, err := New(bp.variant, expression, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}
	return u, nil
}

// Text builds the constant unit that outputs s.
func (Builder) Text(s string) Unit {
	u, _ := New(VariantOutputString, "", s)
	return u
}
