// Package unescape decodes JavaScript-style Unicode escapes embedded in text.
package unescape

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unicode replaces \uXXXX and \u{X...} escapes in s with the characters they
// name. A high surrogate escape followed by a low surrogate escape becomes a
// single character; a lone surrogate becomes U+FFFD. Malformed escapes and
// escapes preceded by an escaping backslash (\\u0041) are left as they are.
func Unicode(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '\\' {
			sb.WriteString(`\\`)
			i += 2
			continue
		}

		r, width := decodeEscape(s[i:])
		if width == 0 {
			sb.WriteByte('\\')
			i++
			continue
		}
		i += width

		if utf16.IsSurrogate(r) {
			if r < 0xDC00 {
				if low, w := decodeEscape(s[i:]); w > 0 && low >= 0xDC00 && low <= 0xDFFF {
					r = utf16.DecodeRune(r, low)
					i += w
				} else {
					r = utf8.RuneError
				}
			} else {
				r = utf8.RuneError
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// decodeEscape decodes one escape at the start of s, returning width 0 when
// s does not start with a well-formed escape.
func decodeEscape(s string) (rune, int) {
	if len(s) < 3 || s[0] != '\\' || s[1] != 'u' {
		return 0, 0
	}

	if s[2] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 4 || end > 9 {
			return 0, 0
		}
		n, err := strconv.ParseUint(s[3:end], 16, 32)
		if err != nil || n > utf8.MaxRune {
			return 0, 0
		}
		return rune(n), end + 1
	}

	if len(s) < 6 {
		return 0, 0
	}
	n, err := strconv.ParseUint(s[2:6], 16, 16)
	if err != nil {
		return 0, 0
	}
	return rune(n), 6
}
