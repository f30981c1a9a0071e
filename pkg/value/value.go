package value

import (
	"math"
	"strconv"
)

// Kind is the variant tag of a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a scalar or a reference to a container node. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  *ArrayNode
	obj  *ObjectNode
}

// Null returns the null Value
func Null() Value { return Value{} }

// Bool returns a boolean Value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string Value
func String(s string) Value { return Value{kind: KindString, s: s} }

// NewArray returns a Value referencing a fresh array node holding items
func NewArray(items ...Value) Value {
	node := &ArrayNode{items: make([]Value, len(items))}
	copy(node.items, items)
	return Value{kind: KindArray, arr: node}
}

// NewArrayCap returns an empty array Value with room for n items
func NewArrayCap(n int) Value {
	return Value{kind: KindArray, arr: &ArrayNode{items: make([]Value, 0, n)}}
}

// NewObject returns a Value referencing a fresh, empty object node
func NewObject() Value {
	return Value{kind: KindObject, obj: newObjectNode(0)}
}

// NewObjectCap returns an empty object Value with room for n entries
func NewObjectCap(n int) Value {
	return Value{kind: KindObject, obj: newObjectNode(n)}
}

// Entry is a key/value pair used to build objects
type Entry struct {
	Key   string
	Value Value
}

// FromEntries builds an object from entries, in order
func FromEntries(entries ...Entry) Value {
	v := NewObjectCap(len(entries))
	for _, e := range entries {
		v.obj.Set(e.Key, e.Value)
	}
	return v
}

// Kind returns the variant tag
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsContainer reports whether v is an array or an object
func (v Value) IsContainer() bool { return v.kind == KindArray || v.kind == KindObject }

// IsScalar reports whether v is not a container
func (v Value) IsScalar() bool { return !v.IsContainer() }

// BoolValue returns the boolean payload, false for other kinds
func (v Value) BoolValue() bool { return v.b }

// NumberValue returns the numeric payload, 0 for other kinds
func (v Value) NumberValue() float64 { return v.n }

// StringValue returns the string payload, "" for other kinds
func (v Value) StringValue() string { return v.s }

// Array returns the array node, or nil when v is not an array
func (v Value) Array() *ArrayNode { return v.arr }

// Object returns the object node, or nil when v is not an object
func (v Value) Object() *ObjectNode { return v.obj }

// Identity returns a comparable key naming the container v refers to.
// Two Values share an identity exactly when they alias the same node.
// Scalars have no identity and return (nil, false).
func (v Value) Identity() (any, bool) {
	switch v.kind {
	case KindArray:
		return v.arr, true
	case KindObject:
		return v.obj, true
	default:
		return nil, false
	}
}

// Same reports whether a and b alias the same container
func Same(a, b Value) bool {
	ia, ok := a.Identity()
	if !ok {
		return false
	}
	ib, ok := b.Identity()
	return ok && ia == ib
}

// String renders scalars the way they would appear in JSON. Containers
// render as their kind only; use EncodeJSON for full output.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return strconv.Quote(v.s)
	case KindArray:
		return "[array len=" + strconv.Itoa(v.arr.Len()) + "]"
	case KindObject:
		return "{object len=" + strconv.Itoa(v.obj.Len()) + "}"
	default:
		return "<invalid>"
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
