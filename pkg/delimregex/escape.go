package delimregex

import (
	"regexp"
	"strings"
)

// Escape returns s with every regex metacharacter escaped so the result
// matches s literally.
func Escape(s string) string {
	return regexp.QuoteMeta(s)
}

// EscapeDelimited is Escape plus escaping of the "/" delimiter, for text
// that will be embedded in a "/body/flags" literal.
func EscapeDelimited(s string) string {
	return strings.ReplaceAll(regexp.QuoteMeta(s), "/", `\/`)
}

// Format builds "/source/flags", escaping any bare delimiter in source.
// Parse(Format(p.Source(), p.Flags())) reproduces p.
func Format(source string, flags FlagSet) string {
	var sb strings.Builder
	sb.Grow(len(source) + 2)
	sb.WriteByte('/')
	escaped := false
	for i := 0; i < len(source); i++ {
		c := source[i]
		if c == '/' && !escaped {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
		escaped = !escaped && c == '\\'
	}
	sb.WriteByte('/')
	sb.WriteString(flags.String())
	return sb.String()
}
