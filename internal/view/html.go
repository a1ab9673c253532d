package view

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLOptions tune RenderHTML.
type HTMLOptions struct {
	// EventAttrs turns a bound event into an attribute, letting a host wire
	// browser-side triggers back to Mount.Dispatch. Returning ok=false skips it.
	EventAttrs func(n *Node, event string) (key, val string, ok bool)
}

// RenderHTML serializes the tree. Text and attribute values are escaped by
// the html package.
func RenderHTML(w io.Writer, n *Node, opts HTMLOptions) error {
	return html.Render(w, toHTML(n, opts))
}

// HTMLString is RenderHTML into a string.
func HTMLString(n *Node, opts HTMLOptions) (string, error) {
	var b strings.Builder
	if err := RenderHTML(&b, n, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

func toHTML(n *Node, opts HTMLOptions) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if opts.EventAttrs != nil {
		for _, ev := range n.Events() {
			if k, v, ok := opts.EventAttrs(n, ev); ok {
				out.Attr = append(out.Attr, html.Attribute{Key: k, Val: v})
			}
		}
	}
	for _, c := range n.children {
		out.AppendChild(toHTML(c, opts))
	}
	return out
}
