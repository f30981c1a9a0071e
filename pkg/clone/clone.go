// Package clone deep-copies Value graphs while preserving their topology.
//
// Clone allocates a new node for every container in the source. A container
// reached through several references is copied once and every reference in
// the copy points at that single clone; a container that reaches itself
// yields a clone with the same cycle. The identity table that makes this work
// lives for one call only, so Clone is safe to use from many goroutines.
package clone

import (
	"github.com/mitchellh/copystructure"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/value"
)

// Clone returns a deep copy of v. Scalars are returned unchanged.
func Clone(v value.Value) value.Value {
	c := cloner{visited: make(map[any]value.Value)}
	return c.clone(v)
}

type cloner struct {
	visited map[any]value.Value
}

func (c *cloner) clone(v value.Value) value.Value {
	id, ok := v.Identity()
	if !ok {
		return v
	}
	if done, ok := c.visited[id]; ok {
		return done
	}

	switch v.Kind() {
	case value.KindArray:
		src := v.Array()
		out := value.NewArrayCap(src.Len())
		// Register before descending so back-references find this clone.
		c.visited[id] = out
		dst := out.Array()
		for i := 0; i < src.Len(); i++ {
			dst.Append(c.clone(src.At(i)))
		}
		return out
	default:
		src := v.Object()
		out := value.NewObjectCap(src.Len())
		c.visited[id] = out
		dst := out.Object()
		src.Range(func(key string, child value.Value) bool {
			dst.Set(key, c.clone(child))
			return true
		})
		return out
	}
}

// Native deep-copies an arbitrary acyclic Go value such as a map[string]any
// tree. It does not preserve aliasing and must not be given cyclic input.
func Native(v any) (any, error) {
	out, err := copystructure.Copy(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCopyFailed, "deep copy failed")
	}
	return out, nil
}
