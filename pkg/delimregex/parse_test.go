// pkg/delimregex/parse_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test delimited regex shape checks, delimiter escaping and flags

package delimregex

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		source string
		flags  string
	}{
		{"escaped delimiter with flags", `/ab\/c/gi`, "ab/c", "gi"},
		{"no flags", `/abc/`, "abc", ""},
		{"all flags", `/a/ysumig`, "a", "gimsuy"},
		{"several escaped delimiters", `/a\/b\/c/`, "a/b/c", ""},
		{"escaped backslash before escaped delimiter", `/a\\\/b/`, `a\\/b`, ""},
		{"other escapes untouched", `/\d+\.\w/m`, `\d+\.\w`, "m"},
		{"newline in body", "/a\nb/s", "a\nb", "s"},
		{"lookbehind", `/(?<=\$)\d+/`, `(?<=\$)\d+`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.source, p.Source())
			assert.Equal(t, tt.flags, p.Flags().String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unescaped delimiter", `/ab/c/g`},
		{"unknown flag", `/abc/x`},
		{"missing delimiters", `abc`},
		{"missing closing delimiter", `/abc`},
		{"empty body", `//`},
		{"only delimiters", `///`},
		{"escaped backslash then bare delimiter", `/a\\/b/`},
		{"repeated flag", `/abc/gg`},
		{"unbalanced group", `/(abc/`},
		{"dangling escape", `/abc\/`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			assert.Nil(t, p)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, ErrInvalid))
			assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
		})
	}
}

func TestParseFirstOnlyParity(t *testing.T) {
	p, err := ParseWithOptions(`/a\/b\/c/`, Options{UnescapeFirstOnly: true})
	require.NoError(t, err)
	assert.Equal(t, `a/b\/c`, p.Source())
	assert.True(t, p.MatchString("a/b/c"), "an escaped slash still matches a slash")
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse(`/x/`) })
	assert.Panics(t, func() { MustParse(`x`) })
}

func TestParseFlags(t *testing.T) {
	fs, ok := ParseFlags("mi")
	require.True(t, ok)
	assert.True(t, fs.Has(IgnoreCase))
	assert.True(t, fs.Has(Multiline))
	assert.False(t, fs.Has(Global))
	assert.Equal(t, "im", fs.String())

	_, ok = ParseFlags("ii")
	assert.False(t, ok)
	_, ok = ParseFlags("q")
	assert.False(t, ok)

	assert.Equal(t, "gy", NewFlagSet(Sticky, Global, Flag('z')).String())
}

func TestRejectionsAreQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = log.Output(&buf)

	_, err := Parse("abc")
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
