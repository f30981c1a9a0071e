package value

// ArrayNode is an ordered sequence of Values
type ArrayNode struct {
	items []Value
}

// Len returns the number of items
func (a *ArrayNode) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// At returns the item at index i
func (a *ArrayNode) At(i int) Value { return a.items[i] }

// Set replaces the item at index i
func (a *ArrayNode) Set(i int, v Value) { a.items[i] = v }

// Append adds items to the end of the array
func (a *ArrayNode) Append(items ...Value) { a.items = append(a.items, items...) }

// Items returns a copy of the item slice
func (a *ArrayNode) Items() []Value {
	if a == nil {
		return nil
	}
	out := make([]Value, len(a.items))
	copy(out, a.items)
	return out
}

// ObjectNode maps string keys to Values and remembers insertion order
type ObjectNode struct {
	keys    []string
	entries map[string]Value
}

func newObjectNode(n int) *ObjectNode {
	return &ObjectNode{
		keys:    make([]string, 0, n),
		entries: make(map[string]Value, n),
	}
}

// Len returns the number of entries
func (o *ObjectNode) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Get returns the value stored under key
func (o *ObjectNode) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Has reports whether key is present
func (o *ObjectNode) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Set stores v under key. A new key goes to the end; an existing key keeps
// its position.
func (o *ObjectNode) Set(key string, v Value) {
	if _, ok := o.entries[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = v
}

// Delete removes key, reporting whether it was present
func (o *ObjectNode) Delete(key string) bool {
	if _, ok := o.entries[key]; !ok {
		return false
	}
	delete(o.entries, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order
func (o *ObjectNode) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Range calls fn for each entry in order until fn returns false
func (o *ObjectNode) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.entries[k]) {
			return
		}
	}
}
