package value

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/steve02081504/char-tamplate/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Encode renders v in the given format. TOML output is not supported.
func Encode(v Value, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return EncodeJSON(v, "  ")
	case FormatYAML:
		return EncodeYAML(v)
	default:
		return nil, errors.Newf(errors.ErrUnsupported, "cannot encode to %q", format)
	}
}

// EncodeJSON renders v as JSON, indenting nested containers with indent
// (compact output when indent is empty). Shared containers are written out
// in full at every reference. Cycles, NaN and infinities cannot be
// represented and produce an error.
func EncodeJSON(v Value, indent string) ([]byte, error) {
	e := &jsonEncoder{indent: indent, onPath: make(map[any]struct{})}
	if err := e.encode(v, 0); err != nil {
		return nil, err
	}
	if indent != "" {
		e.buf.WriteByte('\n')
	}
	return e.buf.Bytes(), nil
}

type jsonEncoder struct {
	buf    bytes.Buffer
	indent string
	onPath map[any]struct{}
}

func (e *jsonEncoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(strings.Repeat(e.indent, depth))
}

func (e *jsonEncoder) encode(v Value, depth int) error {
	switch v.kind {
	case KindNull:
		e.buf.WriteString("null")
		return nil
	case KindBool:
		e.buf.WriteString(strconv.FormatBool(v.b))
		return nil
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return errors.Newf(errors.ErrEncode, "JSON cannot represent %s", formatNumber(v.n))
		}
		e.buf.WriteString(strconv.FormatFloat(v.n, 'f', -1, 64))
		return nil
	case KindString:
		return e.str(v.s)
	}

	id, _ := v.Identity()
	if _, ok := e.onPath[id]; ok {
		return errors.New(errors.ErrCycle, "JSON cannot represent a cyclic value")
	}
	e.onPath[id] = struct{}{}
	defer delete(e.onPath, id)

	if v.kind == KindArray {
		if v.arr.Len() == 0 {
			e.buf.WriteString("[]")
			return nil
		}
		e.buf.WriteByte('[')
		for i, item := range v.arr.items {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			if err := e.encode(item, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.buf.WriteByte(']')
		return nil
	}

	if v.obj.Len() == 0 {
		e.buf.WriteString("{}")
		return nil
	}
	e.buf.WriteByte('{')
	for i, k := range v.obj.keys {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.str(k); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if e.indent != "" {
			e.buf.WriteByte(' ')
		}
		if err := e.encode(v.obj.entries[k], depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf.WriteByte('}')
	return nil
}

func (e *jsonEncoder) str(s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, errors.ErrEncode, "cannot encode string")
	}
	e.buf.Write(b)
	return nil
}

// EncodeYAML renders v as a YAML document. Containers referenced more than
// once are anchored on first appearance and aliased afterwards, which also
// lets cyclic values be written.
func EncodeYAML(v Value) ([]byte, error) {
	refs := make(map[any]int)
	countRefs(v, refs)

	e := &yamlEncoder{refs: refs, nodes: make(map[any]*yaml.Node)}
	root := e.node(v)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "cannot encode YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "cannot encode YAML")
	}
	return buf.Bytes(), nil
}

func countRefs(v Value, refs map[any]int) {
	id, ok := v.Identity()
	if !ok {
		return
	}
	refs[id]++
	if refs[id] > 1 {
		return
	}
	if v.kind == KindArray {
		for _, item := range v.arr.items {
			countRefs(item, refs)
		}
		return
	}
	for _, k := range v.obj.keys {
		countRefs(v.obj.entries[k], refs)
	}
}

type yamlEncoder struct {
	refs    map[any]int
	nodes   map[any]*yaml.Node
	anchors int
}

func (e *yamlEncoder) node(v Value) *yaml.Node {
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindNumber:
		return numberNode(v.n)
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	}

	id, _ := v.Identity()
	if target, ok := e.nodes[id]; ok {
		return &yaml.Node{Kind: yaml.AliasNode, Alias: target, Value: target.Anchor}
	}

	n := &yaml.Node{}
	if e.refs[id] > 1 {
		e.anchors++
		n.Anchor = "ref" + strconv.Itoa(e.anchors)
	}
	e.nodes[id] = n

	if v.kind == KindArray {
		n.Kind, n.Tag = yaml.SequenceNode, "!!seq"
		for _, item := range v.arr.items {
			n.Content = append(n.Content, e.node(item))
		}
		return n
	}

	n.Kind, n.Tag = yaml.MappingNode, "!!map"
	for _, k := range v.obj.keys {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			e.node(v.obj.entries[k]))
	}
	return n
}

func numberNode(n float64) *yaml.Node {
	switch {
	case math.IsNaN(n):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
	case math.IsInf(n, 1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case math.IsInf(n, -1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	case n == math.Trunc(n) && math.Abs(n) < 1e15:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(n), 10)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(n, 'g', -1, 64)}
}
