package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/todo"
	"github.com/idilsaglam/tasklist/internal/view"
)

func newHost(t *testing.T) *app.Host {
	t.Helper()
	items, err := todo.New(nil)
	require.NoError(t, err)
	h, err := app.NewHost(items)
	require.NoError(t, err)
	require.NoError(t, h.Controller.Mount())
	return h
}

func send(t *testing.T, m modelTUI, msgs ...tea.Msg) modelTUI {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(modelTUI)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func (m modelTUI) typeAndSubmit(t *testing.T, s string) modelTUI {
	m.ti.SetValue(s)
	return send(t, m, enter)
}

func TestTUI_EndToEnd(t *testing.T) {
	h := newHost(t)
	m := newModel(h, nil)

	m = m.typeAndSubmit(t, "A")
	m = m.typeAndSubmit(t, "B")
	assert.Equal(t, "", m.ti.Value())
	assert.Equal(t, 2, h.Items.Count())

	m = send(t, m, tab)
	require.True(t, m.focusList)
	// toggle A, then move down and delete B
	m = send(t, m, space)
	m = send(t, m, down, runes("d"))

	entries := view.Entries(h.List.Current())
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].Title)
	assert.True(t, entries[0].Checked)
	assert.Equal(t, "Todo items: 1", h.Count.Text())
	assert.Equal(t, 0, m.cursor)
}

func TestTUI_BlankSubmitKeepsInput(t *testing.T) {
	h := newHost(t)
	m := newModel(h, nil)

	m = m.typeAndSubmit(t, "   ")
	assert.Equal(t, 0, h.Items.Count())
	assert.Equal(t, "   ", m.ti.Value())
}

func TestTUI_QuitOnlyFromList(t *testing.T) {
	h := newHost(t)
	m := newModel(h, nil)

	m = send(t, m, runes("q"))
	assert.Equal(t, "q", m.ti.Value())

	m = send(t, m, tab)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestTUI_View(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	h := newHost(t)
	m := newModel(h, nil)
	m = m.typeAndSubmit(t, "Buy milk")

	out := m.View()
	assert.Contains(t, out, "Todo items: 1")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Add new item")
}

func TestTUI_ListKeysOnEmptyList(t *testing.T) {
	h := newHost(t)
	m := newModel(h, nil)
	m = send(t, m, tab, space, runes("d"), down)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, h.Items.Count())
}
