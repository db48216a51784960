// Package yamlsrc reads YAML documents as pathdoc token sources and renders
// pathdoc values back to YAML. Mapping order is kept in both directions.
package yamlsrc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/pathdoc"
	eng "github.com/reoring/pathdoc/internal/engine"
)

// ErrAliasCycle is returned for an alias that refers to one of its own
// ancestors.
var ErrAliasCycle = errors.New("yamlsrc: alias cycle")

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
)

// NewReader decodes the first YAML document of r into a pathdoc.Source. Keys
// repeated inside a mapping are passed through so ParseOpt can report them.
func NewReader(r io.Reader) pathdoc.Source {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return pathdoc.SourceFromEngine(errSource{err: err})
	}
	w := &walker{visiting: map[*yaml.Node]bool{}}
	if err := w.node(&doc); err != nil {
		return pathdoc.SourceFromEngine(errSource{err: err})
	}
	return pathdoc.SourceFromEngine(&eng.SliceSource{Tokens: w.toks})
}

// NewBytes is NewReader over a byte slice.
func NewBytes(b []byte) pathdoc.Source { return NewReader(bytes.NewReader(b)) }

// Parse decodes the first YAML document of b into a Value, applying opts the
// same way pathdoc.Parse does.
func Parse(b []byte, opts ...pathdoc.ParseOpt) (pathdoc.Value, error) {
	return pathdoc.ParseFrom(NewBytes(b), opts...)
}

type errSource struct{ err error }

func (s errSource) NextToken() (eng.Token, error) { return eng.Token{}, s.err }
func (errSource) Location() int64                 { return -1 }

type walker struct {
	toks     []eng.Token
	visiting map[*yaml.Node]bool
}

func (w *walker) emit(t eng.Token) {
	t.Offset = -1
	w.toks = append(w.toks, t)
}

func (w *walker) node(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			w.emit(eng.Token{Kind: eng.KindNull})
			return nil
		}
		return w.node(n.Content[0])
	case yaml.AliasNode:
		if w.visiting[n.Alias] {
			return fmt.Errorf("%w at line %d", ErrAliasCycle, n.Line)
		}
		return w.node(n.Alias)
	case yaml.MappingNode:
		w.visiting[n] = true
		defer delete(w.visiting, n)
		w.emit(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode && k.Alias != nil {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yamlsrc: non-scalar mapping key at line %d", k.Line)
			}
			w.emit(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := w.node(n.Content[i+1]); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndObject})
		return nil
	case yaml.SequenceNode:
		w.visiting[n] = true
		defer delete(w.visiting, n)
		w.emit(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := w.node(c); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndArray})
		return nil
	case yaml.ScalarNode:
		return w.scalar(n)
	}
	return fmt.Errorf("yamlsrc: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func (w *walker) scalar(n *yaml.Node) error {
	switch n.ShortTag() {
	case tagNull:
		w.emit(eng.Token{Kind: eng.KindNull})
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		w.emit(eng.Token{Kind: eng.KindBool, Bool: b})
	case tagInt, tagFloat:
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		w.emit(eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)})
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their source text.
		w.emit(eng.Token{Kind: eng.KindString, String: n.Value})
	}
	return nil
}

// Marshal renders v as a YAML document with two-space indentation.
func Marshal(v pathdoc.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToNode(v)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToNode converts v into a yaml.Node tree.
func ToNode(v pathdoc.Value) *yaml.Node {
	switch x := v.(type) {
	case *pathdoc.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		x.Range(func(k string, e pathdoc.Value) bool {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: k}, ToNode(e))
			return true
		})
		return n
	case *pathdoc.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x.Elems {
			n.Content = append(n.Content, ToNode(e))
		}
		return n
	case pathdoc.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: string(x)}
	case pathdoc.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagBool, Value: strconv.FormatBool(bool(x))}
	case pathdoc.Number:
		return numberNode(float64(x))
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagNull, Value: "null"}
}

func numberNode(f float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: tagFloat}
	switch {
	case math.IsNaN(f):
		n.Value = ".nan"
	case math.IsInf(f, 1):
		n.Value = ".inf"
	case math.IsInf(f, -1):
		n.Value = "-.inf"
	case f == 0:
		n.Tag = tagInt
		n.Value = "0"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		n.Tag = tagInt
		n.Value = strconv.FormatFloat(f, 'f', -1, 64)
	default:
		n.Value = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return n
}
