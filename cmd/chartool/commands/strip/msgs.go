package strip

// Message constants
const (
	MsgShort   = "Remove unfilled placeholders from a document"
	MsgLong    = "Remove every object entry and array element whose value is a placeholder.\n\nPlaceholders are exact literals or delimited regexes such as /^\\{\\{.*\\}\\}$/,\ntaken from the placeholder section of the configuration unless given as flags.\nWith pruning enabled, containers emptied by stripping are removed as well; the\ndocument root is always kept."
	MsgExample = `  chartool strip card.yaml
  chartool strip --literal TODO --pattern '/^<.*>$/' card.json
  chartool strip --prune-empty=false card.yaml`
	MsgFlagLiteral    = "Exact string that counts as a placeholder (repeatable)"
	MsgFlagPattern    = "Delimited regex that marks a placeholder (repeatable)"
	MsgFlagPruneEmpty = "Remove containers left empty by stripping"
	MsgFlagMatchNull  = "Treat null as a placeholder"
	MsgErrStrip       = "failed to strip placeholders: %w"
	MsgStripped       = "Stripped placeholders"
)
