package write

// Message constants
const (
	MsgShort   = "Write stdin or a file to a path, only when needed"
	MsgLong    = "Copy content to <path>, creating parent directories. By default the file is\nonly written when it is missing or its content differs (mode \"changed\");\nmode \"missing\" never replaces an existing file and \"always\" writes\nunconditionally. The new content is staged next to the target and renamed\ninto place."
	MsgExample = `  render-card | chartool write out/card.json
  chartool write --from draft.yaml --mode missing out/card.yaml
  chartool write --perm 0600 secrets.toml < template.toml`
	MsgFlagFrom = "Read content from this file instead of stdin"
	MsgFlagMode = "When to write: changed, missing or always"
	MsgFlagPerm = "Permission bits for a newly written file, in octal"

	MsgFieldPath    = "path"
	MsgFieldMode    = "mode"
	MsgFieldWritten = "written"
	MsgWrote        = "Wrote %s"
	MsgUnchanged    = "Left %s untouched"
	MsgErrRead      = "failed to read input: %w"
	MsgErrPerm      = "invalid permission %q"
)
