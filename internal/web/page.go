package web

import (
	"fmt"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/view"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// eventAttrs routes bound events back to the server as datastar actions.
func eventAttrs(n *view.Node, event string) (string, string, bool) {
	if n.Ref == "" {
		return "", "", false
	}
	return "data-on:" + event, fmt.Sprintf("@post('/dispatch/%s/%s')", n.Ref, event), true
}

var htmlOpts = view.HTMLOptions{EventAttrs: eventAttrs}

// listMount wraps the displayed list in its mount point element.
func listMount(list *view.Mount) *view.Node {
	mount := view.Element("div").SetAttr("id", list.ID())
	if cur := list.Current(); cur != nil {
		mount.Append(cur)
	}
	return mount
}

func countLabel(text string) *view.Node {
	return view.Element("p").SetAttr("id", app.CountID).Append(view.Text(text))
}

// page is the whole document: form, list mount point and count label.
func page(h *app.Host) *view.Node {
	input := view.Element("input").
		SetAttr("id", "js-form-input").
		SetAttr("type", "text").
		SetAttr("placeholder", "What needs to be done?").
		SetAttr("autocomplete", "off").
		SetAttr("data-bind:title", "").
		SetAttr("data-on:keydown", "evt.key === 'Enter' && @post('/submit')")
	add := view.Element("button").
		SetAttr("type", "button").
		SetAttr("data-on:click", "@post('/submit')").
		Append(view.Text("Add"))
	form := view.Element("div").SetAttr("id", "js-form").Append(input, add)

	head := view.Element("head").Append(
		view.Element("meta").SetAttr("charset", "utf-8"),
		view.Element("title").Append(view.Text("Todo")),
		view.Element("script").SetAttr("type", "module").SetAttr("src", datastarScript),
	)
	body := view.Element("body").
		SetAttr("data-signals", `{"title": ""}`).
		SetAttr("data-init", "@get('/events')").
		Append(
			view.Element("h1").Append(view.Text("Todo")),
			form,
			listMount(h.List),
			countLabel(h.Count.Text()),
		)
	return view.Element("html").SetAttr("lang", "en").Append(head, body)
}
