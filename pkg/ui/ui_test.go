// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test format parsing and renderer selection

package ui

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/ui/display"
	"github.com/steve02081504/char-tamplate/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"Terminal", FormatTerminal},
		{"plain", FormatText},
		{"text", FormatText},
		{" json ", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("html")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDetectFormatForNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, IsTerminal(f))
	assert.Equal(t, FormatText, DetectFormat(f))
}

func sampleReport() *display.Report {
	return display.NewReport("prune").
		WithMessage("Removed 2 directories").
		AddField("root", "/tmp/x").
		AddItem("/tmp/x/a", display.StatusRemoved).
		AddItem("/tmp/x/b", display.StatusRemoved)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "Removed 2 directories\n")
	assert.Contains(t, out, "root:  /tmp/x\n")
	assert.Contains(t, out, "  [removed] /tmp/x/a\n")

	buf.Reset()
	require.NoError(t, r.RenderError(fmt.Errorf("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleReport()))
	var decoded display.Report
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "prune", decoded.Command)
	assert.Len(t, decoded.Items, 2)
	assert.Equal(t, display.StatusRemoved, decoded.Items[0].Status)

	buf.Reset()
	err = errors.New(errors.ErrPatternInvalid, "bad").WithDetail("input", "/x")
	require.NoError(t, r.RenderError(err))
	var errObj map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, string(errors.ErrPatternInvalid), errObj["code"])
	assert.Equal(t, map[string]interface{}{"input": "/x"}, errObj["details"])
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "Removed 2 directories")
	assert.Contains(t, out, "/tmp/x/b")

	buf.Reset()
	require.NoError(t, r.RenderResult(display.NewReport("empty")))
	assert.Empty(t, buf.String())
}

func TestStylesLoaded(t *testing.T) {
	for _, name := range []string{"Header", "Label", "Success", "Warning", "Error", "Muted", "Item"} {
		assert.True(t, styles.Has(name), name)
	}
	assert.False(t, styles.Has("Nope"))
	assert.Error(t, styles.Load([]byte("colors: [")))
}
