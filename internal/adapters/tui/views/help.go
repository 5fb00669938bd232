package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mindmap/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return SwitchToPaletteMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("MindMap OS Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Palette"))
	b.WriteString("\n")
	b.WriteString(helpLine("j/k or ↑/↓", "Move"))
	b.WriteString(helpLine("Enter", "Run command"))
	b.WriteString(helpLine("/", "Filter commands"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Prompt"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter", "Create (ignored while empty)"))
	b.WriteString(helpLine("Esc", "Dismiss, nothing is created"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter", "Open note"))
	b.WriteString(helpLine("x", "Mark done"))
	b.WriteString(helpLine("Esc", "Back to palette"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Note kinds"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  📌 Task  🚀 Project  🎯 Goal  🔄 Habit  ✏️ Note  🌱 Area"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
