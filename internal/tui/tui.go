// Package tui hosts the task list in a terminal with Bubble Tea.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/platform/logger"
	"github.com/idilsaglam/tasklist/internal/ui"
	"github.com/idilsaglam/tasklist/internal/view"
)

type keyMap struct {
	Submit, Focus, Up, Down, Toggle, Delete, Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Toggle, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Focus}, {k.Up, k.Down, k.Toggle, k.Delete}, {k.Quit}}
}

type modelTUI struct {
	host *app.Host
	keys keyMap
	help help.Model
	ti   textinput.Model
	log  *slog.Logger

	focusList bool
	cursor    int
}

func newModel(h *app.Host, log *slog.Logger) modelTUI {
	if log == nil {
		log = logger.Discard()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Focus()

	hm := help.New()
	hm.Styles.ShortKey = ui.Current().Help
	hm.Styles.ShortDesc = ui.Current().Help

	return modelTUI{host: h, keys: defaultKeys(), help: hm, ti: ti, log: log}
}

// Run blocks until the user quits.
func Run(h *app.Host, log *slog.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(newModel(h, log), opts...)
	_, err := p.Run()
	return err
}

func (m modelTUI) Init() tea.Cmd { return textinput.Blink }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.ti.Width = max(msg.Width-10, 10)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Focus) {
			return m.setFocus(!m.focusList), nil
		}
		if m.focusList {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}
	if m.focusList {
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.host.Submit(m.ti.Value())
		// the controller clears the input on success; mirror whatever it left
		m.ti.SetValue(m.host.Input.Value())
		m.ti.CursorEnd()
		return m, nil
	case msg.String() == "esc":
		return m.setFocus(true), nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m modelTUI) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := view.Entries(m.host.List.Current())
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(entries) {
			m.dispatch(entries[m.cursor].ToggleRef, view.EventChange)
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(entries) {
			m.dispatch(entries[m.cursor].RemoveRef, view.EventClick)
		}
	case msg.String() == "a" || msg.String() == "i":
		return m.setFocus(false), nil
	}
	m.clampCursor()
	return m, nil
}

func (m modelTUI) dispatch(ref, event string) {
	if !m.host.List.Dispatch(ref, event) {
		m.log.Warn("no binding for event", "ref", ref, "event", event)
	}
}

func (m modelTUI) setFocus(list bool) modelTUI {
	m.focusList = list
	if list {
		m.ti.Blur()
	} else {
		m.ti.Focus()
	}
	m.clampCursor()
	return m
}

func (m *modelTUI) clampCursor() {
	n := len(view.Entries(m.host.List.Current()))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m modelTUI) View() string {
	t := ui.Current()
	done, pending := m.host.Items.Stats()

	lines := []string{
		ui.Header(m.host.Count.Text(), done, pending),
		t.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	cursor := -1
	if m.focusList {
		cursor = m.cursor
	}
	lines = append(lines, ui.ListLines(m.host.List.Current(), cursor)...)

	title := "Add new item"
	if m.focusList {
		title = t.Muted.Render(title)
	}
	bar := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	lines = append(lines, "", bar.Render(title+"\n"+m.ti.View()))
	lines = append(lines, m.help.View(m.keys))

	return ui.Panel([]string{strings.Join(lines, "\n")})
}
