package jsonval

import (
	"encoding/json"
	"slices"
)

// List is an ordered sequence of JSON values, normally records. A nil *List
// reads as empty.
type List struct {
	items []any
}

// NewList creates a list holding items.
func NewList(items ...any) *List {
	l := &List{items: make([]any, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

// Append adds values to the end of the list.
func (l *List) Append(values ...any) *List {
	l.items = append(l.items, values...)
	return l
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the element at index i.
func (l *List) At(i int) any {
	return l.items[i]
}

// Items returns a copy of the elements.
func (l *List) Items() []any {
	if l == nil {
		return nil
	}
	out := make([]any, len(l.items))
	copy(out, l.items)
	return out
}

// Clone returns a shallow copy.
func (l *List) Clone() *List {
	return NewList(l.Items()...)
}

// SortStable sorts the list in place, keeping the order of equal elements.
func (l *List) SortStable(cmp func(a, b any) int) {
	if l == nil {
		return
	}
	slices.SortStableFunc(l.items, cmp)
}

// MarshalJSON writes the list as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}
