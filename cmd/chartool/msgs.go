package chartool

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Utilities for character template data"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Group titles
	MsgGroupData  = "DATA:"
	MsgGroupRegex = "PATTERNS:"
	MsgGroupFiles = "FILES:"
	MsgGroupMisc  = "MISC:"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/chartool/config.toml)"
	MsgFlagFormat    = "Report format: auto, term, text or json"
	MsgFlagInFormat  = "Input format when it cannot be inferred: yaml, json or toml"
	MsgFlagOutFormat = "Output format: json or yaml (default from output.format)"
	MsgFlagManDir    = "Write one page per command into this directory instead of stdout"

	// Version output
	MsgVersionFormat = "chartool version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrReadInput   = "failed to read %s: %w"
	MsgErrWriteOutput = "failed to write output: %w"
	MsgErrShell       = "unsupported shell %q"

	// Input names
	MsgStdin = "stdin"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
