// Package placeholder strips template placeholders out of Value graphs.
//
// A placeholder is a string that is either one of a set of literal strings or
// matches one of a set of delimited regexes ("/^\{\{.*\}\}$/"). Optionally
// null counts as a placeholder as well. Stripping drops placeholder entries
// from objects and placeholder elements from arrays, and can also drop the
// containers that stripping leaves empty.
package placeholder

import (
	"github.com/steve02081504/char-tamplate/pkg/delimregex"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/logging"
	"github.com/steve02081504/char-tamplate/pkg/slicez"
	"github.com/steve02081504/char-tamplate/pkg/value"
)

// Config describes what counts as a placeholder
type Config struct {
	Literals  []string
	Patterns  []string
	MatchNull bool
}

// Matcher decides whether a scalar is a placeholder
type Matcher struct {
	literals  map[string]struct{}
	patterns  []*delimregex.Pattern
	matchNull bool
}

// NewMatcher compiles cfg. Each pattern must be valid delimited regex text.
func NewMatcher(cfg Config) (*Matcher, error) {
	m := &Matcher{
		literals:  make(map[string]struct{}, len(cfg.Literals)),
		matchNull: cfg.MatchNull,
	}
	for _, lit := range cfg.Literals {
		m.literals[lit] = struct{}{}
	}
	for _, text := range slicez.Unique(cfg.Patterns) {
		p, err := delimregex.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "bad placeholder pattern %q", text).
				WithDetail("pattern", text)
		}
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// IsPlaceholder reports whether v is a placeholder. Containers never are.
func (m *Matcher) IsPlaceholder(v value.Value) bool {
	switch v.Kind() {
	case value.KindNull:
		return m.matchNull
	case value.KindString:
		s := v.StringValue()
		if _, ok := m.literals[s]; ok {
			return true
		}
		for _, p := range m.patterns {
			if p.MatchString(s) {
				return true
			}
		}
	}
	return false
}

// Stats counts what a Strip call removed
type Stats struct {
	Placeholders int
	Pruned       int
}

// Stripper removes placeholders from Value graphs
type Stripper struct {
	matcher    *Matcher
	pruneEmpty bool
}

// NewStripper returns a Stripper. With pruneEmpty, a non-empty container that
// ends up empty after stripping is removed from its parent as well.
func NewStripper(m *Matcher, pruneEmpty bool) *Stripper {
	return &Stripper{matcher: m, pruneEmpty: pruneEmpty}
}

// Strip returns a copy of v without placeholders. v itself is never removed,
// even when it is a placeholder or ends up empty. The input is not modified;
// aliasing and cycles carry over to the result.
func (s *Stripper) Strip(v value.Value) (value.Value, Stats) {
	w := &stripWalk{
		Stripper:   s,
		visited:    make(map[any]value.Value),
		inProgress: make(map[any]struct{}),
	}
	out := w.walk(v)

	logger := logging.GetLogger("placeholder")
	logger.Debug().
		Int("placeholders", w.stats.Placeholders).
		Int("pruned", w.stats.Pruned).
		Msg("Stripped placeholders")
	return out, w.stats
}

type stripWalk struct {
	*Stripper
	visited    map[any]value.Value
	inProgress map[any]struct{}
	stats      Stats
}

func (w *stripWalk) walk(v value.Value) value.Value {
	id, ok := v.Identity()
	if !ok {
		return v
	}
	if done, ok := w.visited[id]; ok {
		return done
	}

	var out value.Value
	if v.Kind() == value.KindArray {
		out = value.NewArrayCap(v.Array().Len())
	} else {
		out = value.NewObjectCap(v.Object().Len())
	}
	w.visited[id] = out
	w.inProgress[id] = struct{}{}
	defer delete(w.inProgress, id)

	if v.Kind() == value.KindArray {
		src := v.Array()
		for i := 0; i < src.Len(); i++ {
			if child, keep := w.child(src.At(i)); keep {
				out.Array().Append(child)
			}
		}
		return out
	}

	v.Object().Range(func(key string, c value.Value) bool {
		if child, keep := w.child(c); keep {
			out.Object().Set(key, child)
		}
		return true
	})
	return out
}

// child processes one element and reports whether the parent keeps it
func (w *stripWalk) child(c value.Value) (value.Value, bool) {
	if w.matcher.IsPlaceholder(c) {
		w.stats.Placeholders++
		return value.Value{}, false
	}
	if c.IsScalar() {
		return c, true
	}

	id, _ := c.Identity()
	_, ancestor := w.inProgress[id]
	out := w.walk(c)
	if w.pruneEmpty && !ancestor && size(c) > 0 && size(out) == 0 {
		w.stats.Pruned++
		return value.Value{}, false
	}
	return out, true
}

func size(v value.Value) int {
	if v.Kind() == value.KindArray {
		return v.Array().Len()
	}
	return v.Object().Len()
}
