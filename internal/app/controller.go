// Package app wires host input to the item collection and collection
// changes back to the rendered list and count label.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/idilsaglam/tasklist/internal/todo"
	"github.com/idilsaglam/tasklist/internal/view"
)

// SubmitSource is the submit trigger of the entry form.
type SubmitSource interface {
	AddSubmitListener(fn func()) (remove func())
}

// InputField is the text entry of the form.
type InputField interface {
	Value() string
	SetValue(string)
}

// TextLabel shows the item count.
type TextLabel interface {
	SetText(string)
}

// Surfaces are the host handles the controller drives.
type Surfaces struct {
	Form  SubmitSource
	Input InputField
	List  *view.Mount
	Count TextLabel
}

func (s Surfaces) validate() error {
	var missing []string
	if s.Form == nil {
		missing = append(missing, "form")
	}
	if s.Input == nil {
		missing = append(missing, "input")
	}
	if s.List == nil {
		missing = append(missing, "list")
	}
	if s.Count == nil {
		missing = append(missing, "count")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing surfaces: %s", todo.ErrInvalidArgument, strings.Join(missing, ", "))
	}
	return nil
}

// CountText is the count label template.
func CountText(n int) string { return fmt.Sprintf("Todo items: %d", n) }

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller is either mounted (bound to its surfaces) or unmounted.
type Controller struct {
	items    *todo.Collection
	renderer view.ListRenderer
	surfaces Surfaces
	log      *slog.Logger

	mounted      bool
	removeSubmit func()
	listener     *changeListener
}

// changeListener gives the controller a comparable identity in the
// collection's listener list.
type changeListener struct{ c *Controller }

func (l *changeListener) ItemsChanged() { l.c.onChange() }

func New(items *todo.Collection, s Surfaces, opts ...Option) (*Controller, error) {
	if items == nil {
		return nil, fmt.Errorf("%w: nil collection", todo.ErrInvalidArgument)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		items:    items,
		surfaces: s,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c.listener = &changeListener{c: c}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) Mounted() bool { return c.mounted }

// Mount binds the submit handler and the change listener, then renders the
// current items once.
func (c *Controller) Mount() error {
	if c.mounted {
		return fmt.Errorf("%w: already mounted", todo.ErrInvalidState)
	}
	if err := c.items.Subscribe(c.listener); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	c.removeSubmit = c.surfaces.Form.AddSubmitListener(c.onSubmit)
	c.mounted = true
	c.log.Debug("controller mounted", "items", c.items.Count())
	c.onChange()
	return nil
}

// Unmount removes the submit handler and the change listener.
func (c *Controller) Unmount() error {
	if !c.mounted {
		return fmt.Errorf("%w: not mounted", todo.ErrInvalidState)
	}
	if c.removeSubmit != nil {
		c.removeSubmit()
		c.removeSubmit = nil
	}
	c.items.Unsubscribe(c.listener)
	c.mounted = false
	c.log.Debug("controller unmounted")
	return nil
}

func (c *Controller) onSubmit() {
	title := strings.TrimSpace(c.surfaces.Input.Value())
	if title == "" {
		c.log.Debug("blank submission dropped")
		return
	}
	it, err := c.items.AddItem(title)
	if err != nil {
		c.logMutationErr("add", 0, err)
		return
	}
	c.log.Debug("item added", "id", it.ID)
	c.surfaces.Input.SetValue("")
}

func (c *Controller) onToggle(id int) {
	it, ok := c.items.Item(id)
	if !ok {
		return
	}
	if err := c.items.UpdateItem(id, !it.Completed); err != nil {
		c.logMutationErr("update", id, err)
	}
}

func (c *Controller) onRemove(id int) {
	if err := c.items.DeleteItem(id); err != nil {
		c.logMutationErr("delete", id, err)
	}
}

func (c *Controller) onChange() {
	tree := c.renderer.BuildList(c.items.Items(), view.ListCallbacks{
		OnToggle: c.onToggle,
		OnRemove: c.onRemove,
	})
	c.renderer.Reconcile(tree, c.surfaces.List)
	c.surfaces.Count.SetText(CountText(c.items.Count()))
}

func (c *Controller) logMutationErr(op string, id int, err error) {
	level := slog.LevelWarn
	if errors.Is(err, todo.ErrInvalidState) {
		// a listener tried to mutate mid-notification; that is a wiring bug
		level = slog.LevelError
	}
	c.log.Log(context.Background(), level, "mutation rejected", "op", op, "id", id, "error", err)
}
