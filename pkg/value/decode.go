package value

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format names a serialization format understood by Decode and Encode
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name, accepting "yml" for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrUnsupported, "unknown data format %q", s)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrUnsupported, "cannot infer data format of %q", path).
			WithDetail("path", path)
	}
	return ParseFormat(ext)
}

// Decode parses data in the given format
func Decode(data []byte, format Format) (Value, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(data)
	case FormatJSON:
		return DecodeJSON(data)
	case FormatTOML:
		return DecodeTOML(data)
	default:
		return Null(), errors.Newf(errors.ErrUnsupported, "unknown data format %q", format)
	}
}

// DecodeYAML parses the first YAML document in data. Anchored nodes that are
// referenced through aliases become shared containers. An empty document
// decodes to null.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Null(), errors.Wrap(err, errors.ErrDecode, "invalid YAML")
	}
	d := &yamlDecoder{nodes: make(map[*yaml.Node]Value)}
	return d.convert(&doc)
}

type yamlDecoder struct {
	nodes map[*yaml.Node]Value
}

func (d *yamlDecoder) convert(n *yaml.Node) (Value, error) {
	if n == nil {
		return Null(), nil
	}
	if v, ok := d.nodes[n]; ok {
		return v, nil
	}

	switch n.Kind {
	case 0:
		return Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return d.convert(n.Content[0])
	case yaml.AliasNode:
		return d.convert(n.Alias)
	case yaml.SequenceNode:
		out := NewArrayCap(len(n.Content))
		d.nodes[n] = out
		for _, child := range n.Content {
			v, err := d.convert(child)
			if err != nil {
				return Null(), err
			}
			out.arr.Append(v)
		}
		return out, nil
	case yaml.MappingNode:
		out := NewObjectCap(len(n.Content) / 2)
		d.nodes[n] = out
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.ShortTag() == "!!merge" {
				merges = append(merges, valNode)
				continue
			}
			key, err := d.key(keyNode)
			if err != nil {
				return Null(), err
			}
			v, err := d.convert(valNode)
			if err != nil {
				return Null(), err
			}
			out.obj.Set(key, v)
		}
		for _, m := range merges {
			if err := d.merge(out.obj, m); err != nil {
				return Null(), err
			}
		}
		return out, nil
	case yaml.ScalarNode:
		return d.scalar(n)
	}
	return Null(), errors.Newf(errors.ErrDecode, "unexpected YAML node kind %d at line %d", n.Kind, n.Line)
}

// merge applies a "<<" merge key: entries already present win.
func (d *yamlDecoder) merge(dst *ObjectNode, n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		for _, child := range n.Content {
			if err := d.merge(dst, child); err != nil {
				return err
			}
		}
		return nil
	}
	src, err := d.convert(n)
	if err != nil {
		return err
	}
	if src.kind != KindObject {
		return errors.Newf(errors.ErrDecode, "merge key at line %d does not reference a mapping", n.Line)
	}
	src.obj.Range(func(k string, v Value) bool {
		if !dst.Has(k) {
			dst.Set(k, v)
		}
		return true
	})
	return nil
}

func (d *yamlDecoder) key(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", errors.Newf(errors.ErrDecode, "non-scalar mapping key at line %d", n.Line)
	}
	return n.Value, nil
}

func (d *yamlDecoder) scalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Null(), errors.Wrapf(err, errors.ErrDecode, "bad boolean at line %d", n.Line)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Null(), errors.Wrapf(err, errors.ErrDecode, "bad number at line %d", n.Line)
		}
		return Number(f), nil
	default:
		return String(n.Value), nil
	}
}

// DecodeJSON parses a single JSON document, keeping object key order
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		if err == io.EOF {
			return Null(), errors.New(errors.ErrDecode, "empty JSON document")
		}
		return Null(), errors.Wrap(err, errors.ErrDecode, "invalid JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return Null(), errors.New(errors.ErrDecode, "invalid JSON: trailing data after document")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Null(), err
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			out := NewArray()
			for dec.More() {
				child, err := decodeJSONValue(dec)
				if err != nil {
					return Null(), err
				}
				out.arr.Append(child)
			}
			_, err := dec.Token()
			return out, err
		case '{':
			out := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Null(), err
				}
				key, _ := keyTok.(string)
				child, err := decodeJSONValue(dec)
				if err != nil {
					return Null(), err
				}
				out.obj.Set(key, child)
			}
			_, err := dec.Token()
			return out, err
		}
	}
	return Null(), errors.Newf(errors.ErrDecode, "unexpected JSON token %v", tok)
}

// DecodeTOML parses a TOML document. Table keys come out sorted and
// date/time values are rendered as strings.
func DecodeTOML(data []byte) (Value, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Null(), errors.Wrap(err, errors.ErrDecode, "invalid TOML")
	}
	if doc == nil {
		return NewObject(), nil
	}
	return FromNative(doc)
}
