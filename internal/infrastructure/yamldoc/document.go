// Package yamldoc wraps yaml.v3 nodes so language files can be read, edited
// and written back without losing their comments or key order.
package yamldoc

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MegaNoam/CitizensCMD/internal/domain"
	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
)

// Document is a parsed YAML file. The zero value and documents parsed from
// empty input are empty.
type Document struct {
	root *yaml.Node
}

// Parse decodes the first YAML document in data. Errors wrap domain.ErrParse.
func Parse(data []byte) (*Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	if n.Kind == 0 || len(n.Content) == 0 {
		return &Document{}, nil
	}
	top := resolve(n.Content[0])
	switch {
	case top.Kind == yaml.MappingNode:
	case top.Kind == yaml.ScalarNode && top.ShortTag() == "!!null":
		return &Document{}, nil
	default:
		return nil, fmt.Errorf("%w: top level is not a mapping (line %d)", domain.ErrParse, top.Line)
	}
	return &Document{root: &n}, nil
}

// Empty reports whether the document has no keys at all.
func (d *Document) Empty() bool {
	m := d.mapping()
	return m == nil || len(m.Content) == 0
}

// Encode writes the document back out with two-space indentation.
func (d *Document) Encode() ([]byte, error) {
	if d == nil || d.root == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) mapping() *yaml.Node {
	if d == nil || d.root == nil || len(d.root.Content) == 0 {
		return nil
	}
	return resolve(d.root.Content[0])
}

// Section returns the mapping found by walking path from the top level.
func (d *Document) Section(path ...string) (*Section, bool) {
	n := d.mapping()
	if n == nil {
		return nil, false
	}
	s := &Section{node: n}
	for _, p := range path {
		next, ok := s.Section(p)
		if !ok {
			return nil, false
		}
		s = next
	}
	return s, true
}

// Leaf addresses one value two levels under the messages section. Category
// and name are kept apart so names containing dots stay addressable.
type Leaf struct {
	Category string
	Name     string
}

// Key returns the flat key of l.
func (l Leaf) Key() entities.FlatKey {
	return entities.NewFlatKey(l.Category, l.Name)
}

// Path returns the mapping keys leading to l from the top level.
func (l Leaf) Path() []string {
	return []string{entities.RootSection, l.Category, l.Name}
}

// Lookup returns the value node found by walking path from the top level.
func (d *Document) Lookup(path ...string) (*yaml.Node, bool) {
	n := d.valueNode(path)
	if n == nil {
		return nil, false
	}
	return resolve(n), true
}

// SetValue replaces the value at an existing path with a copy of value. The
// comments, anchor and (for scalar to scalar) quoting style of the existing
// node are kept.
func (d *Document) SetValue(value *yaml.Node, path ...string) error {
	dst := d.valueNode(path)
	if dst == nil {
		return fmt.Errorf("set %s: key not present", strings.Join(path, "."))
	}
	if value == nil {
		return fmt.Errorf("set %s: nil value", strings.Join(path, "."))
	}
	src := resolve(value)
	head, line, foot, anchor := dst.HeadComment, dst.LineComment, dst.FootComment, dst.Anchor
	style := dst.Style
	keepStyle := dst.Kind == yaml.ScalarNode && src.Kind == yaml.ScalarNode

	*dst = *clone(src)
	dst.HeadComment, dst.LineComment, dst.FootComment, dst.Anchor = head, line, foot, anchor
	if keepStyle {
		dst.Style = style
	}
	return nil
}

// Messages lists every leaf exactly two levels under the messages section,
// in document order. Categories that are not mappings are skipped.
func (d *Document) Messages() ([]Leaf, error) {
	root, ok := d.Section(entities.RootSection)
	if !ok {
		return nil, domain.ErrMissingSection
	}
	var leaves []Leaf
	for _, category := range root.Keys() {
		sub, ok := root.Section(category)
		if !ok {
			continue
		}
		for _, name := range sub.Keys() {
			leaves = append(leaves, Leaf{Category: category, Name: name})
		}
	}
	return leaves, nil
}

// valueNode returns the unresolved value node at path so callers can edit it in place.
func (d *Document) valueNode(path []string) *yaml.Node {
	n := d.mapping()
	if n == nil || len(path) == 0 {
		return nil
	}
	var v *yaml.Node
	for i, p := range path {
		if i > 0 {
			n = resolve(v)
			if n.Kind != yaml.MappingNode {
				return nil
			}
		}
		v = child(n, p)
		if v == nil {
			return nil
		}
	}
	return v
}

// Section is a mapping node inside a Document.
type Section struct {
	node *yaml.Node
}

// Keys returns the keys of s in document order, without duplicates.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.node.Content)/2)
	seen := make(map[string]bool, len(s.node.Content)/2)
	for i := 0; i+1 < len(s.node.Content); i += 2 {
		k := s.node.Content[i].Value
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// Value returns the resolved value node stored under key.
func (s *Section) Value(key string) (*yaml.Node, bool) {
	v := child(s.node, key)
	if v == nil {
		return nil, false
	}
	return resolve(v), true
}

// Section returns the nested mapping stored under key.
func (s *Section) Section(key string) (*Section, bool) {
	v, ok := s.Value(key)
	if !ok || v.Kind != yaml.MappingNode {
		return nil, false
	}
	return &Section{node: v}, true
}

// child finds the value for key in a mapping; a repeated key resolves to its last occurrence.
func child(m *yaml.Node, key string) *yaml.Node {
	var found *yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			found = m.Content[i+1]
		}
	}
	return found
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func clone(n *yaml.Node) *yaml.Node {
	n = resolve(n)
	c := *n
	c.Anchor = ""
	c.Alias = nil
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, sub := range n.Content {
			c.Content[i] = clone(sub)
		}
	}
	return &c
}

// Equal compares two value nodes by content, ignoring comments, style and position.
func Equal(a, b *yaml.Node) bool {
	a, b = resolve(a), resolve(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == yaml.ScalarNode {
		return a.ShortTag() == b.ShortTag() && a.Value == b.Value
	}
	if len(a.Content) != len(b.Content) {
		return false
	}
	for i := range a.Content {
		if !Equal(a.Content[i], b.Content[i]) {
			return false
		}
	}
	return true
}
