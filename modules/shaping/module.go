package shaping

import (
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/zclconf/go-cty/cty/function"
)

// Names the shaping functions are registered under.
const (
	NameClassify          = "classify"
	NameFieldEqual        = "fieldEqual"
	NameFieldSort         = "fieldSort"
	NameExtractor         = "extractor"
	NameSumByField        = "sumByField"
	NameJoin              = "join"
	NameClassifiedSize    = "classifiedSize"
	NamePercent           = "percent"
	NameRelationInfo      = "relationInfo"
	NameSubList           = "subList"
	NameClassifiedSummary = "classifiedSummary"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Relations backs relationInfo. A nil strategy attaches nothing and
	// reports every resource as unknown.
	Relations RelationStrategy
}

// Register registers every shaping function.
func (m *Module) Register(r *registry.Registry) {
	relations := m.Relations
	if relations == nil {
		relations = NewStaticRelations()
	}

	r.Register(NameClassify, registry.Static(classifyFunc()))
	r.Register(NameFieldEqual, registry.Static(fieldEqualFunc()))
	r.Register(NameFieldSort, registry.Static(fieldSortFunc()))
	r.Register(NameExtractor, extractorFactory)
	r.Register(NameSumByField, registry.Static(sumByFieldFunc()))
	r.Register(NameJoin, registry.Static(joinFunc()))
	r.Register(NameClassifiedSize, registry.Static(classifiedSizeFunc()))
	r.Register(NamePercent, registry.Static(percentFunc()))
	r.Register(NameRelationInfo, func(registry.Env) function.Function {
		return relationInfoFunc(relations)
	})
	r.Register(NameSubList, registry.Static(subListFunc()))
	r.Register(NameClassifiedSummary, classifiedSummaryFactory)
}
