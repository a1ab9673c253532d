package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/model"
)

func TestHTMLString_RendersList(t *testing.T) {
	tree := ListRenderer{}.BuildList([]model.Item{
		{ID: 1, Title: "A", Completed: true},
		{ID: 2, Title: "B"},
	}, ListCallbacks{})

	out, err := HTMLString(tree, HTMLOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, `<ul class="todo-list">`)
	assert.Contains(t, out, `<li class="todo-item" data-id="1">`)
	assert.Contains(t, out, `checked=""`)
	assert.Contains(t, out, `<s>A</s>`)
	assert.Contains(t, out, `<button class="delete">x</button>`)
	assert.NotContains(t, out, `<s>B</s>`)
}

func TestHTMLString_EscapesTitles(t *testing.T) {
	tree := ListRenderer{}.BuildList([]model.Item{{ID: 1, Title: `<script>alert("x")</script>`}}, ListCallbacks{})

	out, err := HTMLString(tree, HTMLOptions{})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestHTMLString_EventAttrs(t *testing.T) {
	tree := ListRenderer{}.BuildList([]model.Item{{ID: 4, Title: "A"}}, ListCallbacks{
		OnToggle: func(int) {},
		OnRemove: func(int) {},
	})
	opts := HTMLOptions{EventAttrs: func(n *Node, ev string) (string, string, bool) {
		return "data-on-" + ev, fmt.Sprintf("fire(%s)", n.Ref), true
	}}

	out, err := HTMLString(tree, opts)
	require.NoError(t, err)
	assert.Contains(t, out, `data-on-change="fire(toggle-4)"`)
	assert.Contains(t, out, `data-on-click="fire(remove-4)"`)
}
