package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mindmap/internal/domain"
)

func TestPalette_EnterChoosesSelected(t *testing.T) {
	m := NewPaletteModel(DefaultActions(false))
	m.SetSize(80, 40)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ActionChosenMsg)
	if !ok {
		t.Fatalf("got %T, want ActionChosenMsg", cmd())
	}
	if msg.Action.Op != OpCreateNote || msg.Action.Kind != domain.KindTask {
		t.Errorf("chose %q, want New Task", msg.Action.Title())
	}
}

func TestPalette_HelpKey(t *testing.T) {
	m := NewPaletteModel(DefaultActions(false))
	m.SetSize(80, 40)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(SwitchToHelpMsg); !ok {
		t.Errorf("got %T, want SwitchToHelpMsg", cmd())
	}
}
