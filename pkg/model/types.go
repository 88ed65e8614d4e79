package model

import "strings"

// NodeKind distinguishes element nodes from text nodes.
type NodeKind string

const (
	NodeKindElement NodeKind = "element"
	NodeKindText    NodeKind = "text"
)

// Attr is a single element attribute. Attributes keep declaration order so
// serialised output is stable across renders.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is one entry in a render tree.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Tag      string   `json:"tag,omitempty"`
	Attrs    []Attr   `json:"attrs,omitempty"`
	Children []Node   `json:"children,omitempty"`
	Text     string   `json:"text,omitempty"`
}

// Page pairs a component tree with the metadata a renderer or HTTP handler
// needs to deliver it.
type Page struct {
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Status int    `json:"status"`
	Root   Node   `json:"root"`
}

// Element builds an element node. Empty attribute names are dropped.
func Element(tag string, attrs []Attr, children ...Node) Node {
	node := Node{
		Kind: NodeKindElement,
		Tag:  strings.ToLower(strings.TrimSpace(tag)),
	}
	for _, attr := range attrs {
		name := strings.TrimSpace(attr.Name)
		if name == "" {
			continue
		}
		node.Attrs = append(node.Attrs, Attr{Name: name, Value: attr.Value})
	}
	if len(children) > 0 {
		node.Children = append(node.Children, children...)
	}
	return node
}

// Text builds a text node.
func Text(value string) Node {
	return Node{Kind: NodeKindText, Text: value}
}

// A is shorthand for constructing an Attr.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// IsElement reports whether the node is an element.
func (n Node) IsElement() bool {
	return n.Kind == NodeKindElement
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// WithAttr returns a copy of the node with the attribute set. Existing values
// are replaced in place so ordering is preserved.
func (n Node) WithAttr(name, value string) Node {
	attrs := make([]Attr, 0, len(n.Attrs)+1)
	replaced := false
	for _, attr := range n.Attrs {
		if attr.Name == name {
			attrs = append(attrs, Attr{Name: name, Value: value})
			replaced = true
			continue
		}
		attrs = append(attrs, attr)
	}
	if !replaced {
		attrs = append(attrs, Attr{Name: name, Value: value})
	}
	n.Attrs = attrs
	return n
}

// HasClass reports whether the class attribute contains the given token.
func (n Node) HasClass(class string) bool {
	value, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// TextContent concatenates every descendant text node.
func (n Node) TextContent() string {
	if n.Kind == NodeKindText {
		return n.Text
	}
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// Walk visits the node and its descendants depth-first. Returning false from
// fn skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if fn == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FindAll returns every node in the subtree, including n, that matches pred.
func (n Node) FindAll(pred func(Node) bool) []Node {
	var out []Node
	n.Walk(func(node Node) bool {
		if pred(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) func(Node) bool {
	tag = strings.ToLower(tag)
	return func(n Node) bool {
		return n.IsElement() && n.Tag == tag
	}
}

// ByAttr matches elements carrying the attribute with the given value.
func ByAttr(name, value string) func(Node) bool {
	return func(n Node) bool {
		if !n.IsElement() {
			return false
		}
		got, ok := n.Attr(name)
		return ok && got == value
	}
}
