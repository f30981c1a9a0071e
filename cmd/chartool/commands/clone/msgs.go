package clone

// Message constants
const (
	MsgShort   = "Deep-copy a document, keeping shared and cyclic references"
	MsgLong    = "Read a YAML, JSON or TOML document, copy it structurally and print the copy.\n\nContainers reached through more than one path stay shared in the copy, so YAML\nanchors and aliases survive a round trip. Cyclic documents can only be written\nas YAML."
	MsgExample = `  chartool clone card.yaml
  chartool clone --out-format yaml < card.json
  cat card.toml | chartool clone --in-format toml`
	MsgErrClone = "failed to clone document: %w"
)
