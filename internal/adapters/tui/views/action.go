package views

import (
	"fmt"
	"strings"

	"mindmap/internal/domain"
)

// ActionOp is what a palette entry does
type ActionOp int

const (
	OpCreateNote ActionOp = iota
	OpOpenPeriod
	OpScaffold
	OpBrowse
)

// Action is a palette entry. It implements list.DefaultItem.
type Action struct {
	Op     ActionOp
	Kind   domain.NoteKind
	Period domain.Period
}

// Title returns the palette label
func (a Action) Title() string {
	switch a.Op {
	case OpCreateNote:
		return "New " + a.Kind.Label()
	case OpOpenPeriod:
		if a.Period == domain.PeriodDaily {
			return "Open Today"
		}
		return "Open This " + strings.TrimSuffix(a.Period.Label(), "ly")
	case OpScaffold:
		return "Create Starter Structure"
	case OpBrowse:
		return "Browse Notes"
	default:
		return ""
	}
}

// Description returns the palette hint below the label
func (a Action) Description() string {
	switch a.Op {
	case OpCreateNote:
		return fmt.Sprintf("%s %s note in the active folder", a.Kind.Emoji(), a.Kind.Label())
	case OpOpenPeriod:
		return "Create or open the " + strings.ToLower(a.Period.Label()) + " note"
	case OpScaffold:
		return "Create missing folders, templates and seed notes"
	case OpBrowse:
		return "Typed notes in the catalog"
	default:
		return ""
	}
}

// FilterValue is matched while filtering the palette
func (a Action) FilterValue() string {
	return a.Title()
}

// Placeholder is the prompt hint for a create action
func (a Action) Placeholder() string {
	switch a.Kind {
	case domain.KindArea, domain.KindHabit:
		return "Enter " + a.Kind.String() + " name"
	default:
		return "Enter " + a.Kind.String() + " title"
	}
}

// CTA is the label of the prompt's submit key
func (a Action) CTA() string {
	return "Create " + a.Kind.Label()
}

// CreateAction returns the palette entry creating a kind of note
func CreateAction(kind domain.NoteKind) Action {
	return Action{Op: OpCreateNote, Kind: kind}
}

// DefaultActions lists the palette entries in menu order
func DefaultActions(withCatalog bool) []Action {
	actions := []Action{{Op: OpScaffold}}
	for _, k := range []domain.NoteKind{
		domain.KindTask, domain.KindProject, domain.KindGoal,
		domain.KindArea, domain.KindHabit, domain.KindNote,
	} {
		actions = append(actions, CreateAction(k))
	}
	for _, p := range domain.Periods() {
		actions = append(actions, Action{Op: OpOpenPeriod, Period: p})
	}
	if withCatalog {
		actions = append(actions, Action{Op: OpBrowse})
	}
	return actions
}
