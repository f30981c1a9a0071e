// Package slicez holds small generic slice helpers.
package slicez

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same elements in the same order.
// A nil slice equals an empty one.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller supplied element comparison
func EqualFunc[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Filter iterates over elements of a slice, returning a new slice with all
// elements that the predicate returns truthy for.
func Filter[T any, Slice ~[]T](xs Slice, pred func(T) bool) Slice {
	ys := make(Slice, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			ys = append(ys, x)
		}
	}
	return ys
}

// Map iterates over a slice and creates a new slice with each element
// transformed.
func Map[T any, R any](xs []T, fn func(T) R) []R {
	ys := make([]R, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	return ys
}

// Unique returns a duplicate-free version of a slice, in which only the first
// occurrence of each element is kept.
//
// The order of result values is determined by the order they occur.
func Unique[T comparable, Slice ~[]T](xs Slice) Slice {
	ys := make(Slice, 0, len(xs))
	seen := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}

		seen[x] = struct{}{}
		ys = append(ys, x)
	}
	return ys
}

// UniqueSorted returns the distinct elements of xs in ascending order
func UniqueSorted[T cmp.Ordered, Slice ~[]T](xs Slice) Slice {
	ys := Unique(xs)
	slices.Sort(ys)
	return ys
}
