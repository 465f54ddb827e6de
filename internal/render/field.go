package render

import (
	"fmt"
	"strings"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/span"
)

// ResolveName resolves a bare or delimited field name against rec.
func ResolveName(rec *jsonval.Record, name string) (string, error) {
	return ResolveField(rec, span.FieldUnit(name))
}

// ResolveField resolves one field unit against rec. A direct key with a
// non-null value wins; otherwise the key is read as a relation path. The
// result is never null: missing values resolve to "".
func ResolveField(rec *jsonval.Record, unit span.MatchUnit) (string, error) {
	if unit.Kind != span.KindField {
		return "", errs.Matchf("expected a FIELD unit, got %s", unit)
	}
	key := unit.Inner()
	if v, ok := rec.Get(key); ok && v != nil {
		return jsonval.Stringify(v), nil
	}
	path, ok := ParseRelation(key)
	if !ok {
		return "", nil
	}
	return resolveRelation(rec, path)
}

func resolveRelation(rec *jsonval.Record, path RelationPath) (string, error) {
	raw, _ := rec.Get(path.Key())
	info, ok := raw.(*jsonval.Record)
	if !ok || info.Len() == 0 || len(path.Segments) == 0 {
		return "", nil
	}

	current := info
	last := len(path.Segments) - 1
	for i, seg := range path.Segments {
		v, found := current.Get(seg)
		if i < last {
			if !found || v == nil {
				return "", fmt.Errorf("relation %s@%s: %w",
					path.Resource, strings.Join(path.Segments, "."), errs.Emptyf("record at segment %q", seg))
			}
			next, isRecord := v.(*jsonval.Record)
			if !isRecord {
				return "", errs.TypeMismatch(
					fmt.Sprintf("relation %s@%s segment %q", path.Resource, strings.Join(path.Segments, "."), seg),
					jsonval.TypeRecord, jsonval.TypeName(v))
			}
			current = next
			continue
		}
		switch v.(type) {
		case *jsonval.Record, *jsonval.List:
			return "", errs.TypeMismatch(
				fmt.Sprintf("relation %s@%s segment %q", path.Resource, strings.Join(path.Segments, "."), seg),
				jsonval.TypeString, jsonval.TypeName(v))
		}
		return jsonval.Stringify(v), nil
	}
	return "", nil
}
