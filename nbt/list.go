package nbt

import "encoding/json"

// List is a homogeneous sequence of unnamed values.
//
// ElemKind is preserved even when the list is empty; an empty list of Int is distinct
// from an empty list of End.
type List struct {
	ElemKind TagKind
	Elems    []Value
}

var _ json.Marshaler = (*List)(nil)

// NewList creates a list of the given element kind.
func NewList(elemKind TagKind, elems ...Value) *List {
	if elems == nil {
		elems = []Value{}
	}

	return &List{ElemKind: elemKind, Elems: elems}
}

// Kind returns TagList.
func (l *List) Kind() TagKind { return TagList }

func (l *List) isValue() {}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.Elems)
}

// At returns the i-th element. It panics if i is out of range.
func (l *List) At(i int) Value {
	return l.Elems[i]
}

// MarshalJSON renders the list as a JSON array of its elements.
func (l *List) MarshalJSON() ([]byte, error) {
	if len(l.Elems) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(l.Elems)
}
