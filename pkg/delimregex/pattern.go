package delimregex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/steve02081504/char-tamplate/pkg/errors"
)

// Pattern is a parsed, compiled delimited regex. It is immutable and safe
// for concurrent use.
type Pattern struct {
	source string
	flags  FlagSet
	re     *regexp2.Regexp
}

// Match is one successful match. Index and End count runes, not bytes.
type Match struct {
	Text   string
	Index  int
	End    int
	Groups []string
	Named  map[string]string
}

// Source returns the body with delimiter escapes removed
func (p *Pattern) Source() string { return p.source }

// Flags returns the flag set
func (p *Pattern) Flags() FlagSet { return p.flags }

// String renders the pattern back to "/body/flags"
func (p *Pattern) String() string { return Format(p.source, p.flags) }

// MatchString reports whether s contains a match. With the sticky flag the
// match must start at the beginning of s.
func (p *Pattern) MatchString(s string) bool {
	_, ok := p.FindAt(s, 0)
	return ok
}

// FindAt returns the first match starting at or after rune offset lastIndex,
// or exactly at lastIndex when the sticky flag is set.
func (p *Pattern) FindAt(s string, lastIndex int) (Match, bool) {
	return p.findRunesAt([]rune(s), lastIndex)
}

// findRunesAt works on runes because regexp2 offsets into strings are byte
// offsets
func (p *Pattern) findRunesAt(runes []rune, lastIndex int) (Match, bool) {
	if lastIndex < 0 || lastIndex > len(runes) {
		return Match{}, false
	}
	m, err := p.re.FindRunesMatchStartingAt(runes, lastIndex)
	if err != nil || m == nil {
		return Match{}, false
	}
	if p.flags.Has(Sticky) && m.Index != lastIndex {
		return Match{}, false
	}
	return p.convert(m), true
}

// FindAll returns every match when the global flag is set and at most one
// otherwise. Sticky matching requires each match to begin where the previous
// one ended.
func (p *Pattern) FindAll(s string) []Match {
	if !p.flags.Has(Global) {
		if m, ok := p.FindAt(s, 0); ok {
			return []Match{m}
		}
		return nil
	}

	runes := []rune(s)
	var out []Match
	for pos := 0; pos <= len(runes); {
		m, ok := p.findRunesAt(runes, pos)
		if !ok {
			break
		}
		out = append(out, m)
		pos = m.End
		if m.End == m.Index {
			pos++
		}
	}
	return out
}

// ReplaceString substitutes repl for the matches FindAll reports. repl may
// use $$, $&, $1..$99 and $<name>.
func (p *Pattern) ReplaceString(s, repl string) string {
	matches := p.FindAll(s)
	if len(matches) == 0 {
		return s
	}

	runes := []rune(s)
	var sb strings.Builder
	prev := 0
	for _, m := range matches {
		sb.WriteString(string(runes[prev:m.Index]))
		sb.WriteString(expand(repl, m))
		prev = m.End
	}
	sb.WriteString(string(runes[prev:]))
	return sb.String()
}

// Std compiles an equivalent pattern for Go's regexp package. It fails when
// the body uses constructs RE2 does not support, such as lookaround.
func (p *Pattern) Std() (*regexp.Regexp, error) {
	re, err := regexp.Compile(p.flags.goFlags() + p.source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "pattern %s is not RE2 compatible", p)
	}
	return re, nil
}

func (p *Pattern) convert(m *regexp2.Match) Match {
	groups := m.Groups()
	out := Match{
		Text:   m.String(),
		Index:  m.Index,
		End:    m.Index + m.Length,
		Groups: make([]string, len(groups)),
	}
	for i, g := range groups {
		if len(g.Captures) > 0 {
			out.Groups[i] = g.String()
		}
		if _, err := strconv.Atoi(g.Name); err != nil {
			if out.Named == nil {
				out.Named = make(map[string]string)
			}
			out.Named[g.Name] = out.Groups[i]
		}
	}
	return out
}

// expand resolves JavaScript-style replacement tokens against m
func expand(repl string, m Match) string {
	var sb strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c != '$' || i+1 >= len(repl) {
			sb.WriteByte(c)
			continue
		}

		next := repl[i+1]
		switch {
		case next == '$':
			sb.WriteByte('$')
			i++
		case next == '&':
			sb.WriteString(m.Text)
			i++
		case next >= '0' && next <= '9':
			n, width := groupRef(repl[i+1:], len(m.Groups))
			if width == 0 {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(m.Groups[n])
			i += width
		case next == '<':
			end := strings.IndexByte(repl[i+2:], '>')
			name := ""
			if end >= 0 {
				name = repl[i+2 : i+2+end]
			}
			val, ok := m.Named[name]
			if end < 0 || !ok {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(val)
			i += end + 2
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// groupRef reads a one or two digit group number, preferring two digits when
// that group exists. It returns width 0 when no valid group is referenced.
func groupRef(s string, ngroups int) (int, int) {
	if len(s) >= 2 && s[1] >= '0' && s[1] <= '9' {
		if n := int(s[0]-'0')*10 + int(s[1]-'0'); n > 0 && n < ngroups {
			return n, 2
		}
	}
	if n := int(s[0] - '0'); n > 0 && n < ngroups {
		return n, 1
	}
	return 0, 0
}
