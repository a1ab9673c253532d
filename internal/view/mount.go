package view

// Mount is a mount point: the place a host displays one tree.
type Mount struct {
	id       string
	current  *Node
	released int
}

func NewMount(id string) *Mount { return &Mount{id: id} }

func (m *Mount) ID() string { return m.id }

// Current returns the displayed tree, or nil before the first reconcile.
func (m *Mount) Current() *Node { return m.current }

// Bindings reports how many handlers the displayed tree still holds.
func (m *Mount) Bindings() int {
	if m.current == nil {
		return 0
	}
	return m.current.bindings()
}

// Released reports how many handlers earlier trees gave up on replacement.
func (m *Mount) Released() int { return m.released }

// Dispatch fires event on the displayed node with the given ref.
// It reports false when no such node or binding exists.
func (m *Mount) Dispatch(ref, event string) bool {
	if m.current == nil {
		return false
	}
	n := m.current.FindRef(ref)
	if n == nil {
		return false
	}
	return n.Fire(event)
}

// replace installs tree and releases the bindings of the one it displaces.
func (m *Mount) replace(tree *Node) {
	old := m.current
	m.current = tree
	if old != nil && old != tree {
		m.released += old.release()
	}
}
