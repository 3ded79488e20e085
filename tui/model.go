// Package tui is an interactive terminal host for the bookmarks launcher
// plugin, built on Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/chromemarks"
	"github.com/fwojciec/chromemarks/launcher"
)

// maxRows is the number of result rows rendered at once.
const maxRows = 10

// Plugin is the launcher behavior the model drives.
type Plugin interface {
	Query(ctx context.Context, input string) bool
	Select(item launcher.Item) error
	Copy(item launcher.Item) error
}

// KeyMap defines the key bindings of the model.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Copy key.Binding
	Quit key.Binding
}

// Keys are the default key bindings.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy url"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// Model is the Bubble Tea model for the launcher.
type Model struct {
	ctx     context.Context
	plugin  Plugin
	display *ChannelDisplay
	keyword string

	input   textinput.Model
	last    string
	items   []launcher.Item
	cursor  int
	status  string
	failure bool
}

// New returns a model whose input starts with the keyword, ready for a term.
func New(ctx context.Context, plugin Plugin, display *ChannelDisplay, keyword string) *Model {
	input := textinput.New()
	input.Placeholder = keyword + " <term>"
	input.SetValue(keyword + " ")
	input.CursorEnd()
	input.Focus()

	return &Model{
		ctx:     ctx,
		plugin:  plugin,
		display: display,
		keyword: keyword,
		input:   input,
	}
}

// Init starts listening for rows and submits the initial input.
func (m *Model) Init() tea.Cmd {
	m.query()
	return tea.Batch(textinput.Blink, m.display.Listen())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		m.items = msg
		m.cursor = 0
		return m, m.display.Listen()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, Keys.Down):
			if m.cursor < min(len(m.items), maxRows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, Keys.Open):
			if item, ok := m.selected(); ok {
				m.report(m.plugin.Select(item), "Opened "+item.URL)
			}
			return m, nil

		case key.Matches(msg, Keys.Copy):
			if item, ok := m.selected(); ok {
				m.report(m.plugin.Copy(item), "Copied "+item.URL)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.query()
	return m, cmd
}

// query submits the input to the plugin when it has changed.
func (m *Model) query() {
	value := m.input.Value()
	if value == m.last {
		return
	}
	m.last = value
	if !m.plugin.Query(m.ctx, value) {
		m.display.Clear()
		m.items = nil
		m.cursor = 0
	}
}

func (m *Model) selected() (launcher.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return launcher.Item{}, false
	}
	item := m.items[m.cursor]
	return item, item.URL != ""
}

func (m *Model) report(err error, success string) {
	if err != nil {
		m.status = chromemarks.ErrorMessage(err)
		m.failure = true
		return
	}
	m.status = success
	m.failure = false
}

// Items returns the rows currently shown.
func (m *Model) Items() []launcher.Item {
	return m.items
}

// Cursor returns the index of the highlighted row.
func (m *Model) Cursor() int {
	return m.cursor
}

// Status returns the last action result shown in the status line.
func (m *Model) Status() string {
	return m.status
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(launcher.Name))
	b.WriteString("\n\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Type %q followed by a search term", m.keyword+" ")))
	}
	for i, item := range m.items[:min(len(m.items), maxRows)] {
		b.WriteString(m.renderItem(item, i == m.cursor))
		b.WriteString("\n")
	}
	if len(m.items) > maxRows {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("... and %d more", len(m.items)-maxRows)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.failure {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		helpKeyStyle.Render("↑/↓"), mutedStyle.Render("navigate"),
		helpKeyStyle.Render("enter"), mutedStyle.Render("open"),
		helpKeyStyle.Render("ctrl+y"), mutedStyle.Render("copy url"),
		helpKeyStyle.Render("esc"), mutedStyle.Render("quit"),
	))

	return appStyle.Render(b.String())
}

func (m *Model) renderItem(item launcher.Item, selected bool) string {
	if item.URL == "" {
		return mutedStyle.Render(item.Title)
	}
	text := item.Title
	if selected {
		text = selectedStyle.Render(text)
	}
	if item.Subtitle != "" {
		text += " " + folderStyle.Render(item.Subtitle)
	}
	return text
}

// Run starts the terminal program and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, plugin Plugin, display *ChannelDisplay, keyword string) error {
	p := tea.NewProgram(New(ctx, plugin, display, keyword), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
