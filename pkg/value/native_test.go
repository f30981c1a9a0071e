package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNative(t *testing.T) {
	in := map[string]any{
		"z":     1,
		"a":     []any{"x", true, nil, 2.5},
		"inner": map[string]any{"k": uint8(3)},
		"when":  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	v, err := FromNative(in)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())
	assert.Equal(t, []string{"a", "inner", "when", "z"}, v.Object().Keys(), "keys are sorted")

	a, _ := v.Object().Get("a")
	assert.True(t, Equal(NewArray(String("x"), Bool(true), Null(), Number(2.5)), a))

	when, _ := v.Object().Get("when")
	assert.Equal(t, "2024-01-02T03:04:05Z", when.StringValue())
}

func TestFromNativeSharedMap(t *testing.T) {
	shared := map[string]any{"v": 1}
	v, err := FromNative(map[string]any{"left": shared, "right": shared})
	require.NoError(t, err)

	left, _ := v.Object().Get("left")
	right, _ := v.Object().Get("right")
	assert.True(t, Same(left, right))
}

func TestFromNativeRejectsNonStringKeys(t *testing.T) {
	_, err := FromNative(map[int]any{1: "x"})
	assert.Error(t, err)
}

func TestToNativeRoundTrip(t *testing.T) {
	v := FromEntries(
		Entry{"list", NewArray(Number(1), String("two"))},
		Entry{"flag", Bool(false)},
		Entry{"nothing", Null()},
	)

	native := ToNative(v)
	assert.Equal(t, map[string]any{
		"list":    []any{1.0, "two"},
		"flag":    false,
		"nothing": nil,
	}, native)

	back, err := FromNative(native)
	require.NoError(t, err)
	assert.True(t, Equal(v, back))
}

func TestToNativeCycle(t *testing.T) {
	v := NewObject()
	v.Object().Set("self", v)

	native := ToNative(v).(map[string]any)
	inner := native["self"].(map[string]any)
	inner["marker"] = true
	assert.Equal(t, true, native["marker"], "cycle maps back onto the same map")
}
