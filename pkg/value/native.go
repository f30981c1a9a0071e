package value

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/steve02081504/char-tamplate/pkg/errors"
)

type sliceKey struct {
	ptr uintptr
	len int
}

// FromNative converts a Go value built from maps, slices and scalars into a
// Value. Map keys must be strings; they are sorted so the result does not
// depend on map iteration order. Maps and slices reachable more than once
// become shared containers.
func FromNative(in any) (Value, error) {
	c := &nativeConverter{seen: make(map[any]Value)}
	return c.convert(reflect.ValueOf(in))
}

type nativeConverter struct {
	seen map[any]Value
}

func (c *nativeConverter) convert(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}

	if rv.Type() == reflect.TypeOf(time.Time{}) {
		return String(rv.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		return c.convert(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		out := NewArrayCap(rv.Len())
		if rv.Len() == 0 {
			return out, nil
		}
		key := sliceKey{ptr: rv.Pointer(), len: rv.Len()}
		if v, ok := c.seen[key]; ok {
			return v, nil
		}
		c.seen[key] = out
		return c.fillArray(out, rv)
	case reflect.Array:
		return c.fillArray(NewArrayCap(rv.Len()), rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return Null(), errors.Newf(errors.ErrUnsupported, "map key type %s is not a string", rv.Type().Key())
		}
		key := rv.Pointer()
		if v, ok := c.seen[key]; ok {
			return v, nil
		}
		out := NewObjectCap(rv.Len())
		c.seen[key] = out

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := c.convert(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())))
			if err != nil {
				return Null(), err
			}
			out.obj.Set(k, child)
		}
		return out, nil
	}

	if m, ok := rv.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return Null(), errors.Wrapf(err, errors.ErrUnsupported, "cannot marshal %s", rv.Type())
		}
		return String(string(text)), nil
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return String(s.String()), nil
	}
	return Null(), errors.Newf(errors.ErrUnsupported, "cannot convert %s to a value", rv.Type())
}

func (c *nativeConverter) fillArray(out Value, rv reflect.Value) (Value, error) {
	for i := 0; i < rv.Len(); i++ {
		child, err := c.convert(rv.Index(i))
		if err != nil {
			return Null(), err
		}
		out.arr.Append(child)
	}
	return out, nil
}

// ToNative converts v into nil, bool, float64, string, []any and
// map[string]any. Shared containers stay shared and cycles are reproduced.
func ToNative(v Value) any {
	return toNative(v, make(map[any]any))
}

func toNative(v Value, seen map[any]any) any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		if out, ok := seen[v.arr]; ok {
			return out
		}
		out := make([]any, v.arr.Len())
		seen[v.arr] = out
		for i, item := range v.arr.items {
			out[i] = toNative(item, seen)
		}
		return out
	case KindObject:
		if out, ok := seen[v.obj]; ok {
			return out
		}
		out := make(map[string]any, v.obj.Len())
		seen[v.obj] = out
		for _, k := range v.obj.keys {
			out[k] = toNative(v.obj.entries[k], seen)
		}
		return out
	}
	return nil
}
