// Package view builds detached view trees and installs them on mount points.
//
// Trees are plain values: hosts read them to draw, and fire bound events by
// ref. Nothing here touches a live display.
package view

import (
	"sort"
	"strings"
)

// Attr is one element attribute. Order is preserved for rendering.
type Attr struct {
	Key, Val string
}

// Node is an element (Tag set) or a text node (Tag empty).
type Node struct {
	Tag  string
	Text string
	// Ref addresses a bound node from a host, e.g. "toggle-7".
	Ref string

	attrs    []Attr
	children []*Node
	handlers map[string]func()
}

func Element(tag string) *Node { return &Node{Tag: tag} }

func Text(s string) *Node { return &Node{Text: s} }

func (n *Node) IsText() bool { return n.Tag == "" }

// SetAttr sets or replaces an attribute. An empty value is kept, which
// renders boolean attributes such as checked.
func (n *Node) SetAttr(key, val string) *Node {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Val = val
			return n
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Val: val})
	return n
}

func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) Attrs() []Attr {
	return append([]Attr(nil), n.attrs...)
}

func (n *Node) HasClass(class string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func (n *Node) SetRef(ref string) *Node {
	n.Ref = ref
	return n
}

// Append attaches children in order. Nil children are skipped.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// On binds fn to event, replacing any previous binding for it.
func (n *Node) On(event string, fn func()) *Node {
	if n.handlers == nil {
		n.handlers = make(map[string]func())
	}
	n.handlers[event] = fn
	return n
}

// Events lists the bound event names, sorted.
func (n *Node) Events() []string {
	out := make([]string, 0, len(n.handlers))
	for ev := range n.handlers {
		out = append(out, ev)
	}
	sort.Strings(out)
	return out
}

// Fire runs the handler bound to event and reports whether one existed.
func (n *Node) Fire(event string) bool {
	fn, ok := n.handlers[event]
	if !ok || fn == nil {
		return false
	}
	fn()
	return true
}

// Walk visits n and its descendants depth first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node, in document order, that matches.
func (n *Node) Find(match func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(x *Node) bool {
		if match(x) {
			found = x
			return false
		}
		return true
	})
	return found
}

func (n *Node) FindRef(ref string) *Node {
	if ref == "" {
		return nil
	}
	return n.Find(func(x *Node) bool { return x.Ref == ref })
}

// TextContent concatenates descendant text with surrounding space trimmed.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(x *Node) bool {
		if x.IsText() {
			b.WriteString(x.Text)
		}
		return true
	})
	return strings.TrimSpace(b.String())
}

// bindings counts live handlers in the subtree.
func (n *Node) bindings() int {
	total := 0
	n.Walk(func(x *Node) bool {
		total += len(x.handlers)
		return true
	})
	return total
}

// release drops every handler in the subtree and returns how many there were.
func (n *Node) release() int {
	total := 0
	n.Walk(func(x *Node) bool {
		total += len(x.handlers)
		x.handlers = nil
		return true
	})
	return total
}
