package styles

import (
	"github.com/charmbracelet/lipgloss"

	"mindmap/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Kind colors
	KindTaskColor    = lipgloss.Color("#60A5FA") // Blue
	KindProjectColor = lipgloss.Color("#F97316") // Orange
	KindGoalColor    = lipgloss.Color("#EC4899") // Pink
	KindHabitColor   = lipgloss.Color("#8B5CF6") // Violet
	KindAreaColor    = lipgloss.Color("#10B981") // Green
	KindNoteColor    = lipgloss.Color("#6366F1") // Indigo

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KindColor returns the color for a note kind
func KindColor(kind domain.NoteKind) lipgloss.Color {
	switch kind {
	case domain.KindTask:
		return KindTaskColor
	case domain.KindProject:
		return KindProjectColor
	case domain.KindGoal:
		return KindGoalColor
	case domain.KindHabit:
		return KindHabitColor
	case domain.KindArea:
		return KindAreaColor
	case domain.KindNote:
		return KindNoteColor
	default:
		return Primary
	}
}

// KindBadge renders a kind name in its color
func KindBadge(kind domain.NoteKind) string {
	return lipgloss.NewStyle().Foreground(KindColor(kind)).Bold(true).Render(kind.String())
}
