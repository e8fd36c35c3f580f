// Package docnode reads typed fields out of a parsed JSON or YAML document.
//
// Documents are decoded into a generic tree of objects, arrays and scalars and
// wrapped in [Node]. The Field*/Array* helpers coerce values to Go types and
// report problems with a fixed set of sentinel errors.
package docnode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors. Wrapped errors carry the field name and a short dump of the
// enclosing object; test for them with errors.Is.
var (
	ErrParse        = errors.New("malformed document")
	ErrMissingField = errors.New("missing mandatory field")
	ErrMissingArray = errors.New("missing mandatory array")
	ErrWrongType    = errors.New("field not of expected type")
	ErrNotFound     = errors.New("no child with that name")
)

// Format selects the document syntax.
type Format uint8

const (
	FormatAuto Format = iota // pick from the file extension, JSON otherwise
	FormatJSON               // RFC 8259 JSON
	FormatYAML               // YAML 1.2
)

// FormatFromPath returns FormatYAML for .yaml/.yml files and FormatJSON for
// everything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Kind is the shape of a Node's value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Node is one value in a parsed document. The zero Node is null.
type Node struct {
	v any
}

// Parse decodes data in the given format. FormatAuto is treated as JSON.
func Parse(data []byte, format Format) (Node, error) {
	var (
		v   any
		err error
	)
	switch format {
	case FormatYAML:
		v, err = parseYAML(data)
	default:
		v, err = parseJSON(data)
	}
	if err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Node{v: v}, nil
}

func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after document")
	}
	return v, nil
}

func parseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// normalizeYAML rewrites non-string mapping keys so every object in the tree
// is a map[string]any, the same shape the JSON decoder produces.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	default:
		return v
	}
}

// Kind reports the shape of the node's value.
func (n Node) Kind() Kind {
	switch n.v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindNumber
	}
}

// Field returns the named member of an object node. ok is false when the node
// is not an object or has no such member.
func (n Node) Field(name string) (Node, bool) {
	m, isObj := n.v.(map[string]any)
	if !isObj {
		return Node{}, false
	}
	v, ok := m[name]
	if !ok {
		return Node{}, false
	}
	return Node{v: v}, true
}

// Elems returns the elements of an array node in document order, or nil for
// any other kind.
func (n Node) Elems() []Node {
	a, ok := n.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Node, len(a))
	for i, v := range a {
		out[i] = Node{v: v}
	}
	return out
}

// Len returns the number of members or elements of a container node, and 0
// for scalars.
func (n Node) Len() int {
	switch t := n.v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	}
	return 0
}

// Empty reports whether the node is null or an empty array or object.
// Scalars are never empty.
func (n Node) Empty() bool {
	switch n.Kind() {
	case KindNull:
		return true
	case KindArray, KindObject:
		return n.Len() == 0
	}
	return false
}

const maxDump = 96

// String returns a compact JSON rendering of the node, truncated for use in
// error messages.
func (n Node) String() string {
	b, err := json.Marshal(n.v)
	if err != nil {
		return fmt.Sprintf("%v", n.v)
	}
	if len(b) > maxDump {
		return string(b[:maxDump]) + "..."
	}
	return string(b)
}

// integer converts numbers with no fractional part and strings holding an
// integer literal. String literals are base-sensed: 0x for hex, a leading 0
// for octal, decimal otherwise.
func (n Node) integer() (int64, bool) {
	switch t := n.v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		f, err := t.Float64()
		if err != nil || f != float64(int64(f)) {
			return 0, false
		}
		return int64(f), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case uint64:
		if t > 1<<63-1 {
			return 0, false
		}
		return int64(t), true
	case float64:
		if t != float64(int64(t)) {
			return 0, false
		}
		return int64(t), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 0, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func (n Node) float() (float64, bool) {
	switch t := n.v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}
