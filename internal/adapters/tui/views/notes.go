package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"mindmap/internal/adapters/tui/styles"
	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// NotesKeyMap defines key bindings for the catalog view
type NotesKeyMap struct {
	Open key.Binding
	Done key.Binding
	Back key.Binding
}

var NotesKeys = NotesKeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Done: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "mark done"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

type noteItem struct {
	rec ports.NoteRecord
}

func (i noteItem) Title() string {
	return i.rec.Kind.Emoji() + " " + i.rec.Title
}

func (i noteItem) Description() string {
	status := i.rec.Status
	if status == "" {
		status = "-"
	}
	if i.rec.Done {
		status += " ✓"
	}
	return fmt.Sprintf("%s  %s  %s", styles.KindBadge(i.rec.Kind), status, domain.ParentPath(i.rec.Path))
}

func (i noteItem) FilterValue() string {
	return i.rec.Title
}

// NotesModel browses the typed-note catalog
type NotesModel struct {
	ViewState
	list list.Model
	Keys NotesKeyMap
}

// NewNotesModel creates an empty catalog view
func NewNotesModel() *NotesModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notes"
	l.Styles.Title = styles.Title
	l.SetShowHelp(false)
	return &NotesModel{
		list: l,
		Keys: NotesKeys,
	}
}

// SetNotes replaces the listed notes, keeping the cursor where possible
func (m *NotesModel) SetNotes(recs []ports.NoteRecord) tea.Cmd {
	items := make([]list.Item, len(recs))
	for i, r := range recs {
		items[i] = noteItem{rec: r}
	}
	return m.list.SetItems(items)
}

// Len returns the number of listed notes
func (m *NotesModel) Len() int {
	return len(m.list.Items())
}

// SetSize updates the view dimensions
func (m *NotesModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.list.SetSize(width, max(height-3, 0))
}

// Init initializes the view
func (m *NotesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog view
func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() == list.Unfiltered {
		item, selected := m.list.SelectedItem().(noteItem)
		switch {
		case key.Matches(msg, m.Keys.Back):
			return m, func() tea.Msg { return SwitchToPaletteMsg{} }

		case key.Matches(msg, m.Keys.Open) && selected:
			return m, func() tea.Msg { return OpenNoteMsg{Record: item.rec} }

		case key.Matches(msg, m.Keys.Done) && selected:
			return m, func() tea.Msg { return MarkDoneMsg{Record: item.rec} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the catalog view
func (m *NotesModel) View() string {
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
		styles.StatusKey.Render("enter") + styles.StatusText.Render("open") + " " +
			styles.StatusKey.Render("x") + styles.StatusText.Render("done") + " " +
			styles.StatusKey.Render("esc") + styles.StatusText.Render("back"),
	))
	return b.String()
}
