package app

import (
	"github.com/idilsaglam/tasklist/internal/surface"
	"github.com/idilsaglam/tasklist/internal/todo"
	"github.com/idilsaglam/tasklist/internal/view"
)

// ListMountID and CountID name the two output surfaces on a page.
const (
	ListMountID = "js-todo-list"
	CountID     = "js-todo-count"
)

// Host bundles in-process surfaces with a controller bound to them.
// Terminal and browser hosts drive these values; the controller starts unmounted.
type Host struct {
	Items      *todo.Collection
	Form       *surface.Form
	Input      *surface.Input
	Count      *surface.Label
	List       *view.Mount
	Controller *Controller
}

func NewHost(items *todo.Collection, opts ...Option) (*Host, error) {
	h := &Host{
		Items: items,
		Form:  surface.NewForm(),
		Input: &surface.Input{},
		Count: &surface.Label{},
		List:  view.NewMount(ListMountID),
	}
	c, err := New(items, h.Surfaces(), opts...)
	if err != nil {
		return nil, err
	}
	h.Controller = c
	return h, nil
}

func (h *Host) Surfaces() Surfaces {
	return Surfaces{Form: h.Form, Input: h.Input, List: h.List, Count: h.Count}
}

// Submit types text into the input and fires the form, as a user would.
func (h *Host) Submit(text string) {
	h.Input.SetValue(text)
	h.Form.Submit()
}
