package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mindmap/internal/adapters/tui/styles"
)

// PromptKeyMap defines key bindings for the text prompt
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultPromptKeys returns the default prompt key bindings
var DefaultPromptKeys = PromptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PromptModel asks for a single line of text. Enter submits a non-blank
// value; Esc dismisses without submitting.
type PromptModel struct {
	ViewState
	action Action
	input  textinput.Model
	Keys   PromptKeyMap
}

// NewPromptModel creates a new prompt
func NewPromptModel() *PromptModel {
	input := textinput.New()
	input.CharLimit = 200
	return &PromptModel{
		input: input,
		Keys:  DefaultPromptKeys,
	}
}

// Open resets the prompt for action and focuses it
func (m *PromptModel) Open(action Action) tea.Cmd {
	m.action = action
	m.ClearMessage()
	m.input.Reset()
	m.input.Placeholder = action.Placeholder()
	m.input.Focus()
	return textinput.Blink
}

// Value returns the current input
func (m *PromptModel) Value() string {
	return m.input.Value()
}

// Init returns the blink command
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			m.input.Blur()
			return m, func() tea.Msg { return PromptCancelMsg{} }

		case key.Matches(msg, m.Keys.Submit):
			value := m.input.Value()
			if strings.TrimSpace(value) == "" {
				return m, nil
			}
			m.input.Blur()
			action := m.action
			return m, func() tea.Msg { return PromptSubmitMsg{Action: action, Value: value} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m *PromptModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("New " + m.action.Kind.Label()))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.action.Description()))
	b.WriteString("\n\n")
	b.WriteString(styles.InputField.Render(m.input.View()))
	b.WriteString("\n\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HelpKey.Render("enter"))
	b.WriteString(" ")
	b.WriteString(styles.HelpDesc.Render(m.action.CTA()))
	b.WriteString(styles.HelpSeparator.String())
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(" ")
	b.WriteString(styles.HelpDesc.Render("cancel"))

	return styles.App.Render(b.String())
}
