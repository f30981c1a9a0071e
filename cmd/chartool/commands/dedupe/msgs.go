package dedupe

// Message constants
const (
	MsgShort   = "Remove duplicate elements from every array in a document"
	MsgLong    = "Walk a document and drop, in every array, each element that is structurally\nequal to an earlier one. Objects are walked but keep all their keys.\n\nWith --sort, arrays made only of scalars are also sorted:\nnull < false < true < numbers < strings."
	MsgExample = `  chartool dedupe tags.yaml
  chartool dedupe --sort --out-format yaml tags.json`
	MsgFlagSort  = "Sort arrays that only hold scalars"
	MsgErrDedupe = "failed to dedupe document: %w"
)
