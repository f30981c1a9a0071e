package config

import (
	"io/fs"
	"strings"

	"github.com/steve02081504/char-tamplate/pkg/dedupe"
	"github.com/steve02081504/char-tamplate/pkg/delimregex"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/steve02081504/char-tamplate/pkg/filesystem"
	"github.com/steve02081504/char-tamplate/pkg/placeholder"
	"github.com/steve02081504/char-tamplate/pkg/slicez"
	"github.com/steve02081504/char-tamplate/pkg/value"
)

// Config is the complete chartool configuration
type Config struct {
	Regex       Regex       `koanf:"regex"`
	Placeholder Placeholder `koanf:"placeholder"`
	Dedupe      Dedupe      `koanf:"dedupe"`
	Prune       Prune       `koanf:"prune"`
	Write       Write       `koanf:"write"`
	Output      Output      `koanf:"output"`
}

// Regex holds delimited pattern parsing settings
type Regex struct {
	UnescapeFirstOnly bool `koanf:"unescape_first_only"`
}

// Placeholder holds the rules for what strip removes
type Placeholder struct {
	Literals   []string `koanf:"literals"`
	Patterns   []string `koanf:"patterns"`
	MatchNull  bool     `koanf:"match_null"`
	PruneEmpty bool     `koanf:"prune_empty"`
}

// Dedupe holds duplicate removal settings
type Dedupe struct {
	Sort bool `koanf:"sort"`
}

// Prune holds empty directory pruning settings
type Prune struct {
	KeepRoot bool     `koanf:"keep_root"`
	Ignore   []string `koanf:"ignore"`
}

// Write holds conditional write settings
type Write struct {
	Mode string      `koanf:"mode"`
	Perm fs.FileMode `koanf:"perm"`
}

// Output holds data output settings
type Output struct {
	Format string `koanf:"format"`
	Indent int    `koanf:"indent"`
}

// Validate checks values that the decoder cannot
func (c *Config) Validate() error {
	if _, err := c.Matcher(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid placeholder configuration").
			WithDetail("key", "placeholder.patterns")
	}
	if _, err := c.WriteCondition(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid write mode").
			WithDetail("key", "write.mode")
	}
	if c.Write.Perm&^fs.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigValid, "write.perm %o has bits outside 0777", uint32(c.Write.Perm)).
			WithDetail("key", "write.perm")
	}
	if _, err := c.OutputFormat(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output format").
			WithDetail("key", "output.format")
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return errors.Newf(errors.ErrConfigValid, "output.indent must be between 0 and 8, got %d", c.Output.Indent).
			WithDetail("key", "output.indent")
	}
	return nil
}

// RegexOptions returns the options for delimregex.ParseWithOptions
func (c *Config) RegexOptions() delimregex.Options {
	return delimregex.Options{UnescapeFirstOnly: c.Regex.UnescapeFirstOnly}
}

// Matcher builds the placeholder matcher
func (c *Config) Matcher() (*placeholder.Matcher, error) {
	return placeholder.NewMatcher(placeholder.Config{
		Literals:  c.Placeholder.Literals,
		Patterns:  c.Placeholder.Patterns,
		MatchNull: c.Placeholder.MatchNull,
	})
}

// Stripper builds a placeholder stripper from the placeholder section
func (c *Config) Stripper() (*placeholder.Stripper, error) {
	m, err := c.Matcher()
	if err != nil {
		return nil, err
	}
	return placeholder.NewStripper(m, c.Placeholder.PruneEmpty), nil
}

// DedupeOptions returns the options for dedupe.Nested
func (c *Config) DedupeOptions() dedupe.Options {
	return dedupe.Options{Sort: c.Dedupe.Sort}
}

// PruneOptions returns the options for filesystem.PruneEmptyDirs with a
// private, duplicate-free ignore list
func (c *Config) PruneOptions() filesystem.PruneOptions {
	return filesystem.PruneOptions{KeepRoot: c.Prune.KeepRoot, Ignore: slicez.Unique(c.Prune.Ignore)}
}

// WriteCondition parses write.mode
func (c *Config) WriteCondition() (filesystem.Condition, error) {
	return filesystem.ParseCondition(c.Write.Mode)
}

// OutputFormat parses output.format. Only formats that can be encoded are
// accepted.
func (c *Config) OutputFormat() (value.Format, error) {
	f, err := value.ParseFormat(c.Output.Format)
	if err != nil {
		return "", err
	}
	if f == value.FormatTOML {
		return "", errors.Newf(errors.ErrUnsupported, "cannot write %s output", f)
	}
	return f, nil
}

// IndentString renders output.indent as spaces
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Output.Indent)
}
