package shaping

import (
	"fmt"
	"strings"
	"sync"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// RelationStrategy attaches relation data to a record or to every record of a
// list, under the `<resource>.relationInfo` keys field references read
// through `resource@path`. It returns a value of the same shape as container
// and must not modify container.
type RelationStrategy interface {
	Attach(container any, args string) (any, error)
}

// StaticRelations attaches rows of in-memory tables. A record is related to
// the row whose id equals the record's key field.
type StaticRelations struct {
	mu     sync.RWMutex
	tables map[string]*relationTable
}

type relationTable struct {
	keyField string
	rows     map[string]*jsonval.Record
}

// NewStaticRelations creates a strategy with no tables.
func NewStaticRelations() *StaticRelations {
	return &StaticRelations{tables: make(map[string]*relationTable)}
}

// DefaultKeyField is the record field matched against a resource's row ids
// when none is configured.
func DefaultKeyField(resource string) string {
	return resource + "Id"
}

// Add indexes rows by their idField and makes them available as resource.
// Records are related through keyField, which defaults to DefaultKeyField.
func (s *StaticRelations) Add(resource, keyField, idField string, rows *jsonval.List) error {
	if resource == "" {
		return errs.Emptyf("relation resource name")
	}
	if keyField == "" {
		keyField = DefaultKeyField(resource)
	}
	if idField == "" {
		idField = "id"
	}
	recs, err := records("relation "+resource, rows)
	if err != nil {
		return err
	}
	table := &relationTable{keyField: keyField, rows: make(map[string]*jsonval.Record, len(recs))}
	for _, row := range recs {
		id, _ := row.Get(idField)
		if key := jsonval.Stringify(id); key != "" {
			table.rows[key] = row
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[resource] = table
	return nil
}

// Attach implements RelationStrategy. args names one or more resources,
// separated by commas.
func (s *StaticRelations) Attach(container any, args string) (any, error) {
	var tables []*relationTable
	var names []string
	s.mu.RLock()
	for _, name := range strings.Split(args, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t, ok := s.tables[name]
		if !ok {
			s.mu.RUnlock()
			return nil, errs.Emptyf("relation data for resource %q", name)
		}
		tables = append(tables, t)
		names = append(names, name)
	}
	s.mu.RUnlock()
	if len(tables) == 0 {
		return nil, errs.Emptyf("relation resource name")
	}

	attach := func(rec *jsonval.Record) *jsonval.Record {
		out := rec
		for i, t := range tables {
			key, _ := rec.Get(t.keyField)
			row, ok := t.rows[jsonval.Stringify(key)]
			if !ok {
				continue
			}
			if out == rec {
				out = rec.Clone()
			}
			out.Set(render.RelationInfoKey(names[i]), row)
		}
		return out
	}

	switch c := container.(type) {
	case nil:
		return nil, nil
	case *jsonval.Record:
		if c == nil {
			return c, nil
		}
		return attach(c), nil
	case *jsonval.List:
		out := jsonval.NewList()
		for _, item := range c.Items() {
			if rec, ok := item.(*jsonval.Record); ok && rec != nil {
				out.Append(attach(rec))
				continue
			}
			out.Append(item)
		}
		return out, nil
	default:
		return nil, errs.TypeMismatch(NameRelationInfo, "record or list", jsonval.TypeName(container))
	}
}

func relationInfoFunc(strategy RelationStrategy) function.Function {
	return function.New(&function.Spec{
		Description: "Attaches relation data to a record or a list of records.",
		Params:      params("container", "resource"),
		Type:        function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			container, err := ctyval.FromCty(args[0])
			if err != nil {
				return cty.NilVal, fmt.Errorf("%s: first argument: %w", NameRelationInfo, err)
			}
			resource, err := stringArg(NameRelationInfo, args[1])
			if err != nil {
				return cty.NilVal, err
			}
			out, err := strategy.Attach(container, resource)
			if err != nil {
				return cty.NilVal, fmt.Errorf("%s: %w", NameRelationInfo, err)
			}
			return ctyval.ToCty(out)
		},
	})
}
