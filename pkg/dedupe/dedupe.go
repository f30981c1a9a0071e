// Package dedupe removes structurally duplicate elements from the arrays of a
// Value graph.
package dedupe

import (
	"cmp"
	"encoding/binary"
	"math"
	"slices"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/steve02081504/char-tamplate/pkg/logging"
	"github.com/steve02081504/char-tamplate/pkg/value"
)

// fingerprintDepth bounds how deep fingerprints look. Structurally equal
// values always unfold to the same tree, so any bound keeps fingerprints
// consistent with value.Equal, cycles included.
const fingerprintDepth = 4

// Options controls Nested
type Options struct {
	// Sort orders arrays whose elements are all scalars:
	// null < false < true < numbers < strings.
	Sort bool
}

// Nested returns a copy of v in which every array keeps only the first of
// each group of value.Equal elements. Objects are walked but their keys are
// never dropped. The input is not modified; aliasing and cycles in the input
// carry over to the result.
func Nested(v value.Value, opts Options) value.Value {
	d := &deduper{opts: opts, visited: make(map[any]value.Value)}
	out := d.walk(v)

	if d.removed > 0 {
		logger := logging.GetLogger("dedupe")
		logger.Debug().Int("removed", d.removed).Msg("Removed duplicate elements")
	}
	return out
}

type deduper struct {
	opts    Options
	visited map[any]value.Value
	removed int
}

func (d *deduper) walk(v value.Value) value.Value {
	id, ok := v.Identity()
	if !ok {
		return v
	}
	if done, ok := d.visited[id]; ok {
		return done
	}

	if v.Kind() == value.KindObject {
		src := v.Object()
		out := value.NewObjectCap(src.Len())
		d.visited[id] = out
		src.Range(func(key string, child value.Value) bool {
			out.Object().Set(key, d.walk(child))
			return true
		})
		return out
	}

	src := v.Array()
	out := value.NewArrayCap(src.Len())
	d.visited[id] = out

	buckets := make(map[uint64][]value.Value, src.Len())
	kept := make([]value.Value, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		child := d.walk(src.At(i))
		fp := Fingerprint(child)
		if containsEqual(buckets[fp], child) {
			d.removed++
			continue
		}
		buckets[fp] = append(buckets[fp], child)
		kept = append(kept, child)
	}

	if d.opts.Sort && allScalars(kept) {
		slices.SortStableFunc(kept, compareScalars)
	}
	out.Array().Append(kept...)
	return out
}

func containsEqual(candidates []value.Value, v value.Value) bool {
	for _, c := range candidates {
		if value.Equal(c, v) {
			return true
		}
	}
	return false
}

func allScalars(vs []value.Value) bool {
	for _, v := range vs {
		if v.IsContainer() {
			return false
		}
	}
	return true
}

func compareScalars(a, b value.Value) int {
	if c := cmp.Compare(scalarRank(a), scalarRank(b)); c != 0 {
		return c
	}
	switch a.Kind() {
	case value.KindBool:
		return cmp.Compare(boolRank(a.BoolValue()), boolRank(b.BoolValue()))
	case value.KindNumber:
		return cmp.Compare(a.NumberValue(), b.NumberValue())
	case value.KindString:
		return cmp.Compare(a.StringValue(), b.StringValue())
	}
	return 0
}

func scalarRank(v value.Value) int {
	switch v.Kind() {
	case value.KindNull:
		return 0
	case value.KindBool:
		return 1
	case value.KindNumber:
		return 2
	default:
		return 3
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Fingerprint hashes v such that value.Equal values always share a
// fingerprint. Different values may collide.
func Fingerprint(v value.Value) uint64 {
	h := xxhash.New()
	writeFingerprint(h, v, fingerprintDepth)
	return h.Sum64()
}

func writeFingerprint(h *xxhash.Digest, v value.Value, depth int) {
	var buf [8]byte
	_, _ = h.Write([]byte{byte(v.Kind())})

	switch v.Kind() {
	case value.KindBool:
		if v.BoolValue() {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	case value.KindNumber:
		n := v.NumberValue()
		if math.IsNaN(n) {
			n = math.NaN()
		}
		if n == 0 {
			n = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(n))
		_, _ = h.Write(buf[:])
	case value.KindString:
		binary.LittleEndian.PutUint64(buf[:], uint64(len(v.StringValue())))
		_, _ = h.Write(buf[:])
		_, _ = h.WriteString(v.StringValue())
	case value.KindArray:
		arr := v.Array()
		binary.LittleEndian.PutUint64(buf[:], uint64(arr.Len()))
		_, _ = h.Write(buf[:])
		if depth == 0 {
			return
		}
		for i := 0; i < arr.Len(); i++ {
			writeFingerprint(h, arr.At(i), depth-1)
		}
	case value.KindObject:
		obj := v.Object()
		binary.LittleEndian.PutUint64(buf[:], uint64(obj.Len()))
		_, _ = h.Write(buf[:])
		if depth == 0 {
			return
		}
		keys := obj.Keys()
		sort.Strings(keys)
		for _, k := range keys {
			binary.LittleEndian.PutUint64(buf[:], uint64(len(k)))
			_, _ = h.Write(buf[:])
			_, _ = h.WriteString(k)
			child, _ := obj.Get(k)
			writeFingerprint(h, child, depth-1)
		}
	}
}
