// Package value defines Value, the tagged data model shared by the cloning,
// deduplication and placeholder utilities.
//
// A Value is either a scalar (null, bool, number, string) or a container
// (array or object). Scalars are plain values. Containers are nodes referenced
// by pointer, so two Values holding the same node are aliases of one another
// and a node may reach itself through its children. Code that walks a Value
// graph must key its visited tables on Identity to cope with both.
//
// Values can be decoded from YAML, JSON and TOML, and encoded back to JSON or
// YAML. YAML anchors and aliases map onto shared containers in both
// directions.
package value
