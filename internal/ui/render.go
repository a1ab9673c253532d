package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/tasklist/internal/view"
)

// maxTitleWidth is in terminal cells, not bytes.
const maxTitleWidth = 80

// ListLines draws a list tree built by view.ListRenderer, one line per entry.
// cursor < 0 marks nothing as selected.
func ListLines(list *view.Node, cursor int) []string {
	entries := view.Entries(list)
	if len(entries) == 0 {
		return []string{current.Muted.Render("no items")}
	}
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		box := current.Muted.Render(current.BoxUnchecked)
		if e.Checked {
			box = current.Success.Render(current.BoxChecked)
		}
		title := e.Title
		if ansi.StringWidth(title) > maxTitleWidth {
			title = ansi.Truncate(title, maxTitleWidth, "...")
		}
		if e.Struck {
			title = current.Done.Render(title)
		}
		prefix := "  "
		if i == cursor {
			prefix = current.Selected.Render(">") + " "
		}
		out = append(out, fmt.Sprintf("%s%s %s  %s", prefix, box, title, current.Muted.Render(current.SymDelete)))
	}
	return out
}
