// Package todo holds the item collection and its change notifications.
package todo

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idilsaglam/tasklist/internal/model"
)

// Listener is notified after every applied mutation.
// Implementations must be comparable (pointer types work) so they can be unsubscribed.
type Listener interface {
	ItemsChanged()
}

// Collection owns an ordered list of items. Insertion order is display order.
//
// It is not safe for concurrent use; hosts serialize calls. Listeners run
// synchronously, in registration order, before the mutating call returns,
// and must not mutate the collection themselves.
type Collection struct {
	items     []model.Item
	lastID    int
	listeners []Listener
	notifying bool
}

// New builds a collection from a seed list. Seeded items get fresh ids;
// whatever ID they carried is ignored.
func New(seed []model.Item) (*Collection, error) {
	c := &Collection{items: make([]model.Item, 0, len(seed))}
	for i, it := range seed {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("%w: seed item %d: %w", ErrInvalidArgument, i, err)
		}
		c.items = append(c.items, model.Item{
			ID:        c.nextID(),
			Title:     strings.TrimSpace(it.Title),
			Completed: it.Completed,
		})
	}
	return c, nil
}

func (c *Collection) nextID() int {
	c.lastID++
	return c.lastID
}

// AddItem appends a new, not completed item and notifies listeners.
func (c *Collection) AddItem(title string) (model.Item, error) {
	if c.notifying {
		return model.Item{}, ErrReentrantMutation
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Item{}, fmt.Errorf("%w: %w", ErrInvalidArgument, model.ErrEmptyTitle)
	}
	it := model.Item{ID: c.nextID(), Title: title}
	c.items = append(c.items, it)
	c.notify()
	return it, nil
}

// UpdateItem sets the completion flag of the item with the given id.
// An unknown id is a silent no-op and nobody is notified.
func (c *Collection) UpdateItem(id int, completed bool) error {
	if c.notifying {
		return ErrReentrantMutation
	}
	i := c.index(id)
	if i < 0 {
		return nil
	}
	c.items[i].Completed = completed
	c.notify()
	return nil
}

// DeleteItem removes the item with the given id.
// An unknown id is a silent no-op and nobody is notified.
func (c *Collection) DeleteItem(id int) error {
	if c.notifying {
		return ErrReentrantMutation
	}
	i := c.index(id)
	if i < 0 {
		return nil
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.notify()
	return nil
}

// Item returns a copy of the item with the given id.
func (c *Collection) Item(id int) (model.Item, bool) {
	i := c.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return c.items[i], true
}

// Items returns a snapshot of the current list.
func (c *Collection) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection) Count() int { return len(c.items) }

// Stats splits the count by completion.
func (c *Collection) Stats() (done, pending int) {
	for _, it := range c.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Subscribe registers l. Registering the same listener twice fails with
// ErrAlreadySubscribed, so a listener is never notified twice per mutation.
func (c *Collection) Subscribe(l Listener) error {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return fmt.Errorf("%w: listener must be a non-nil comparable value", ErrInvalidArgument)
	}
	for _, x := range c.listeners {
		if x == l {
			return ErrAlreadySubscribed
		}
	}
	c.listeners = append(c.listeners, l)
	return nil
}

// Unsubscribe removes l and reports whether it was registered.
func (c *Collection) Unsubscribe(l Listener) bool {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return false
	}
	for i, x := range c.listeners {
		if x == l {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection) index(id int) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) notify() {
	c.notifying = true
	defer func() { c.notifying = false }()
	// copy so a listener unsubscribing itself does not skip its neighbour
	ls := append([]Listener(nil), c.listeners...)
	for _, l := range ls {
		l.ItemsChanged()
	}
}
