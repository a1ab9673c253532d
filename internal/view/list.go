package view

import (
	"strconv"

	"github.com/idilsaglam/tasklist/internal/model"
)

const (
	ListClass     = "todo-list"
	ItemClass     = "todo-item"
	CheckboxClass = "checkbox"
	DeleteClass   = "delete"

	EventChange = "change"
	EventClick  = "click"
)

// ListCallbacks carry the two mutation intents a rendered list can raise.
type ListCallbacks struct {
	OnToggle func(id int)
	OnRemove func(id int)
}

// ListRenderer turns item snapshots into list trees and installs them.
// It keeps no state; the zero value is ready to use.
type ListRenderer struct{}

// BuildList returns a detached <ul> with one entry per item, in order.
func (ListRenderer) BuildList(items []model.Item, cb ListCallbacks) *Node {
	ul := Element("ul").SetAttr("class", ListClass)
	for _, it := range items {
		ul.Append(buildItem(it, cb))
	}
	return ul
}

// Reconcile replaces whatever m displays with tree, releasing the old bindings.
// The whole subtree is swapped; unchanged entries are not preserved.
func (ListRenderer) Reconcile(tree *Node, m *Mount) {
	m.replace(tree)
}

// ToggleRef and RemoveRef name the bound controls of an item entry.
func ToggleRef(id int) string { return "toggle-" + strconv.Itoa(id) }
func RemoveRef(id int) string { return "remove-" + strconv.Itoa(id) }

func buildItem(it model.Item, cb ListCallbacks) *Node {
	id := it.ID

	box := Element("input").
		SetAttr("type", "checkbox").
		SetAttr("class", CheckboxClass).
		SetRef(ToggleRef(id))
	if it.Completed {
		box.SetAttr("checked", "")
	}
	if cb.OnToggle != nil {
		box.On(EventChange, func() { cb.OnToggle(id) })
	}

	var title *Node
	if it.Completed {
		title = Element("s").Append(Text(it.Title))
	} else {
		title = Text(it.Title)
	}

	del := Element("button").
		SetAttr("class", DeleteClass).
		SetRef(RemoveRef(id)).
		Append(Text("x"))
	if cb.OnRemove != nil {
		del.On(EventClick, func() { cb.OnRemove(id) })
	}

	return Element("li").
		SetAttr("class", ItemClass).
		SetAttr("data-id", strconv.Itoa(id)).
		Append(box, Text(" "), title, Text(" "), del)
}

// Entry is a host-side reading of one rendered list entry.
type Entry struct {
	ID        int
	Title     string
	Checked   bool
	Struck    bool
	ToggleRef string
	RemoveRef string
}

// Entries reads the entries back out of a list tree built by BuildList.
func Entries(list *Node) []Entry {
	if list == nil {
		return nil
	}
	var out []Entry
	for _, li := range list.children {
		if !li.HasClass(ItemClass) {
			continue
		}
		e := Entry{}
		if v, ok := li.Attr("data-id"); ok {
			e.ID, _ = strconv.Atoi(v)
		}
		for _, c := range li.children {
			switch {
			case c.HasClass(CheckboxClass):
				_, e.Checked = c.Attr("checked")
				e.ToggleRef = c.Ref
			case c.HasClass(DeleteClass):
				e.RemoveRef = c.Ref
			case c.Tag == "s":
				e.Struck = true
				e.Title = c.TextContent()
			case c.IsText() && e.Title == "":
				e.Title = c.TextContent()
			}
		}
		out = append(out, e)
	}
	return out
}
