package delimregex

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/logging"
)

// ErrInvalid matches, through errors.Is, every error Parse returns.
var ErrInvalid = errors.New(errors.ErrPatternInvalid, "invalid delimited pattern")

// shape splits "/body/flags". The body is greedy so the last slash closes it.
var shape = regexp.MustCompile(`(?s)^/(.+)/([` + Alphabet + `]*)$`)

// Options tunes Parse
type Options struct {
	// UnescapeFirstOnly rewrites only the first "\/" in the body and leaves
	// later ones escaped, for parity with tools that behave that way.
	UnescapeFirstOnly bool
}

// Parse parses "/body/flags" into a compiled Pattern
func Parse(input string) (*Pattern, error) {
	return ParseWithOptions(input, Options{})
}

// MustParse is like Parse but panics on invalid input
func MustParse(input string) *Pattern {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseWithOptions is Parse with explicit options
func ParseWithOptions(input string, opts Options) (*Pattern, error) {
	m := shape.FindStringSubmatch(input)
	if m == nil {
		return nil, reject(input, "not of the form /body/flags", nil)
	}
	body, flagText := m[1], m[2]

	flags, ok := ParseFlags(flagText)
	if !ok {
		return nil, reject(input, "repeated flag", nil)
	}

	source, ok := unescapeBody(body, opts.UnescapeFirstOnly)
	if !ok {
		return nil, reject(input, "unescaped delimiter in body", nil)
	}

	re, err := regexp2.Compile(source, flags.engineOptions())
	if err != nil {
		return nil, reject(input, "body does not compile", err)
	}

	return &Pattern{source: source, flags: flags, re: re}, nil
}

func reject(input, reason string, cause error) error {
	logger := logging.GetLogger("delimregex")
	logger.Debug().Str("input", input).Str("reason", reason).Err(cause).Msg("Rejected delimited pattern")

	return errors.Newf(errors.ErrPatternInvalid, "invalid delimited pattern %q", input).
		WithDetail("input", input)
}

// unescapeBody turns "\/" into "/" and reports false when the body holds a
// delimiter that no backslash escapes. Other escapes are copied verbatim.
func unescapeBody(body string, firstOnly bool) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(body))
	unescaped := false

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '/':
			return "", false
		case c == '\\' && i+1 < len(body):
			next := body[i+1]
			i++
			if next == '/' && !(firstOnly && unescaped) {
				sb.WriteByte('/')
				unescaped = true
				continue
			}
			sb.WriteByte(c)
			sb.WriteByte(next)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), true
}
