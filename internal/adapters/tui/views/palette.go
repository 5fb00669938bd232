package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"mindmap/internal/adapters/tui/styles"
)

// PaletteKeyMap defines key bindings for the command palette
type PaletteKeyMap struct {
	Choose key.Binding
	Help   key.Binding
}

var PaletteKeys = PaletteKeyMap{
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// PaletteModel lists the MindMap OS commands
type PaletteModel struct {
	ViewState
	list list.Model
	Keys PaletteKeyMap
}

// NewPaletteModel creates a palette over actions
func NewPaletteModel(actions []Action) *PaletteModel {
	items := make([]list.Item, len(actions))
	for i, a := range actions {
		items[i] = a
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(styles.Primary).BorderForeground(styles.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(styles.Muted).BorderForeground(styles.Primary)

	l := list.New(items, delegate, 0, 0)
	l.Title = "MindMap OS"
	l.Styles.Title = styles.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return &PaletteModel{
		list: l,
		Keys: PaletteKeys,
	}
}

// Selected returns the highlighted action
func (m *PaletteModel) Selected() (Action, bool) {
	a, ok := m.list.SelectedItem().(Action)
	return a, ok
}

// SetSize updates the view dimensions
func (m *PaletteModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.list.SetSize(width, max(height-3, 0))
}

// Init initializes the palette
func (m *PaletteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the palette
func (m *PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.Keys.Choose):
			action, ok := m.Selected()
			if !ok {
				return m, nil
			}
			m.ClearMessage()
			return m, func() tea.Msg { return ActionChosenMsg{Action: action} }

		case key.Matches(msg, m.Keys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the palette
func (m *PaletteModel) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.StatusBar.Render(
		styles.StatusKey.Render("enter") + styles.StatusText.Render("run") + " " +
			styles.StatusKey.Render("/") + styles.StatusText.Render("filter") + " " +
			styles.StatusKey.Render("?") + styles.StatusText.Render("help") + " " +
			styles.StatusKey.Render("q") + styles.StatusText.Render("quit"),
	))
	return b.String()
}
