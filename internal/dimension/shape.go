package dimension

import (
	"fmt"

	"github.com/upcAutoLang/rezero-dynamic-summary/internal/jsonval"
)

// Shape is the dimension of a value flowing through a chain.
type Shape int

const (
	// ShapeAny is only used as an input shape; it accepts every value.
	ShapeAny Shape = iota
	ShapeString
	ShapeRecord
	ShapeList
)

func (s Shape) String() string {
	switch s {
	case ShapeAny:
		return "any"
	case ShapeString:
		return jsonval.TypeString
	case ShapeRecord:
		return jsonval.TypeRecord
	case ShapeList:
		return jsonval.TypeList
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Accepts reports whether a stage taking s can be fed a value of shape other.
func (s Shape) Accepts(other Shape) bool {
	return s == ShapeAny || s == other
}

// ShapeOf classifies a data-model value. Nil and scalar values other than
// strings have no shape.
func ShapeOf(v any) (Shape, bool) {
	switch v := v.(type) {
	case string:
		return ShapeString, true
	case *jsonval.Record:
		return ShapeRecord, v != nil
	case *jsonval.List:
		return ShapeList, v != nil
	}
	return ShapeAny, false
}
