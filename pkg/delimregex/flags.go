package delimregex

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Flag is a single modifier following the closing delimiter
type Flag byte

const (
	Global     Flag = 'g'
	IgnoreCase Flag = 'i'
	Multiline  Flag = 'm'
	DotAll     Flag = 's'
	Unicode    Flag = 'u'
	Sticky     Flag = 'y'
)

// Alphabet lists every accepted flag in canonical order
const Alphabet = "gimsuy"

// FlagSet is a set of flags
type FlagSet uint8

func bit(f Flag) FlagSet {
	i := strings.IndexByte(Alphabet, byte(f))
	if i < 0 {
		return 0
	}
	return 1 << i
}

// NewFlagSet builds a set from individual flags, ignoring unknown ones
func NewFlagSet(flags ...Flag) FlagSet {
	var fs FlagSet
	for _, f := range flags {
		fs |= bit(f)
	}
	return fs
}

// ParseFlags parses flag text such as "gi". Unknown and repeated flags are
// rejected.
func ParseFlags(s string) (FlagSet, bool) {
	var fs FlagSet
	for i := 0; i < len(s); i++ {
		b := bit(Flag(s[i]))
		if b == 0 || fs&b != 0 {
			return 0, false
		}
		fs |= b
	}
	return fs, true
}

// Has reports whether f is in the set
func (fs FlagSet) Has(f Flag) bool {
	b := bit(f)
	return b != 0 && fs&b != 0
}

// String renders the set in canonical order
func (fs FlagSet) String() string {
	var sb strings.Builder
	for i := 0; i < len(Alphabet); i++ {
		if fs&(1<<i) != 0 {
			sb.WriteByte(Alphabet[i])
		}
	}
	return sb.String()
}

// engineOptions maps compile-time flags onto regexp2 options. Global and
// Sticky only affect matching and have no engine counterpart.
func (fs FlagSet) engineOptions() regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if fs.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if fs.Has(Multiline) {
		opts |= regexp2.Multiline
	}
	if fs.Has(DotAll) {
		opts |= regexp2.Singleline
	}
	if fs.Has(Unicode) {
		opts |= regexp2.Unicode
	}
	return opts
}

// goFlags returns the inline flag group for Go's regexp package
func (fs FlagSet) goFlags() string {
	var sb strings.Builder
	for _, f := range []Flag{IgnoreCase, Multiline, DotAll} {
		if fs.Has(f) {
			sb.WriteByte(byte(f))
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	return "(?" + sb.String() + ")"
}
