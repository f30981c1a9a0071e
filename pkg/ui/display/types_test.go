package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportBuilder(t *testing.T) {
	r := NewReport("write").
		AddField("path", "/out/a.json").
		AddField("written", "true").
		AddItem("content changed", StatusOK)

	assert.Equal(t, "write", r.Command)
	assert.False(t, r.Timestamp.IsZero())

	v, ok := r.Field("written")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = r.Field("missing")
	assert.False(t, ok)
	assert.Equal(t, []Item{{Text: "content changed", Status: StatusOK}}, r.Items)
}
