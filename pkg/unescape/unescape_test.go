package unescape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnicode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "plain text", "plain text"},
		{"basic escape", `caf\u00e9`, "café"},
		{"upper case hex", `\u00C9T\u00c9`, "ÉTÉ"},
		{"several escapes", `\u0048\u0069`, "Hi"},
		{"surrogate pair", `\uD83D\uDE00`, "😀"},
		{"code point braces", `\u{1F600}!`, "😀!"},
		{"short braces", `\u{41}`, "A"},
		{"lone high surrogate", `\ud83dx`, "�x"},
		{"lone low surrogate", `\ude00`, "�"},
		{"too few digits", `\u12`, `\u12`},
		{"not hex", `\uZZZZ`, `\uZZZZ`},
		{"braces out of range", `\u{110000}`, `\u{110000}`},
		{"empty braces", `\u{}`, `\u{}`},
		{"escaped backslash", `\\u0041`, `\\u0041`},
		{"other escapes kept", `a\nb\u0021`, `a\nb!`},
		{"trailing backslash", `end\`, `end\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unicode(tt.in))
		})
	}
}
