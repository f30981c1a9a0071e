package delimregex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello.world", `hello\.world`},
		{"func(*)", `func\(\*\)`},
		{"$variable", `\$variable`},
		{"test[0]", `test\[0\]`},
		{"a/b", "a/b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestEscapedTextMatchesLiterally(t *testing.T) {
	literal := "1+1=2? (a/b) [x] ^$ {n} |"
	p, err := Parse("/^" + EscapeDelimited(literal) + "$/")
	require.NoError(t, err)
	assert.True(t, p.MatchString(literal))
	assert.False(t, p.MatchString("11=2"))
}

func TestFormatRoundTrip(t *testing.T) {
	for _, in := range []string{`/ab\/c/gi`, `/a\\\/b/`, `/x/`, `/\d+/my`} {
		t.Run(in, func(t *testing.T) {
			p := MustParse(in)
			again, err := Parse(Format(p.Source(), p.Flags()))
			require.NoError(t, err)
			assert.Equal(t, p.Source(), again.Source())
			assert.Equal(t, p.Flags(), again.Flags())
		})
	}
	assert.Equal(t, `/a\/b/g`, Format("a/b", NewFlagSet(Global)))
}
