package value

import "math"

type pair struct{ a, b any }

// Equal reports whether a and b are structurally equal. Object key order is
// ignored; array order is not. Cyclic graphs compare equal when they unfold
// to the same infinite tree.
func Equal(a, b Value) bool {
	return equal(a, b, make(map[pair]struct{}))
}

func equal(a, b Value, inProgress map[pair]struct{}) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n || (math.IsNaN(a.n) && math.IsNaN(b.n))
	case KindString:
		return a.s == b.s
	}

	ia, _ := a.Identity()
	ib, _ := b.Identity()
	if ia == ib {
		return true
	}
	p := pair{ia, ib}
	if _, ok := inProgress[p]; ok {
		return true
	}
	inProgress[p] = struct{}{}

	if a.kind == KindArray {
		if a.arr.Len() != b.arr.Len() {
			return false
		}
		for i := range a.arr.items {
			if !equal(a.arr.items[i], b.arr.items[i], inProgress) {
				return false
			}
		}
		return true
	}

	if a.obj.Len() != b.obj.Len() {
		return false
	}
	for _, k := range a.obj.keys {
		bv, ok := b.obj.entries[k]
		if !ok || !equal(a.obj.entries[k], bv, inProgress) {
			return false
		}
	}
	return true
}

// EqualSlices reports whether two Value slices are element-wise Equal
func EqualSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[pair]struct{})
	for i := range a {
		if !equal(a[i], b[i], seen) {
			return false
		}
	}
	return true
}
