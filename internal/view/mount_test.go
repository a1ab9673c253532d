package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/model"
)

func TestReconcile_ReplacesAndReleasesOldBindings(t *testing.T) {
	var toggled []int
	cb := ListCallbacks{
		OnToggle: func(id int) { toggled = append(toggled, id) },
		OnRemove: func(int) {},
	}
	r := ListRenderer{}
	m := NewMount("js-todo-list")
	assert.Nil(t, m.Current())
	assert.False(t, m.Dispatch(ToggleRef(1), EventChange))

	first := r.BuildList([]model.Item{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, cb)
	r.Reconcile(first, m)
	require.Same(t, first, m.Current())
	assert.Equal(t, 4, m.Bindings())

	oldBox := first.FindRef(ToggleRef(1))
	second := r.BuildList([]model.Item{{ID: 1, Title: "a", Completed: true}}, cb)
	r.Reconcile(second, m)

	require.Same(t, second, m.Current())
	assert.Equal(t, 2, m.Bindings())
	assert.Equal(t, 4, m.Released())

	// the detached checkbox no longer reaches the callback
	assert.False(t, oldBox.Fire(EventChange))
	assert.Empty(t, toggled)

	// dispatching through the mount reaches only the displayed tree
	assert.True(t, m.Dispatch(ToggleRef(1), EventChange))
	assert.False(t, m.Dispatch(ToggleRef(2), EventChange))
	assert.Equal(t, []int{1}, toggled)
}

func TestReconcile_SameTreeKeepsBindings(t *testing.T) {
	r := ListRenderer{}
	m := NewMount("m")
	tree := r.BuildList([]model.Item{{ID: 1, Title: "a"}}, ListCallbacks{OnToggle: func(int) {}, OnRemove: func(int) {}})
	r.Reconcile(tree, m)
	r.Reconcile(tree, m)
	assert.Equal(t, 2, m.Bindings())
	assert.Zero(t, m.Released())
}
