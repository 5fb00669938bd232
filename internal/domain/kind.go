package domain

import "strings"

// NoteKind identifies one of the typed notes MindMap OS creates
type NoteKind int

const (
	KindUnknown NoteKind = iota
	KindTask
	KindProject
	KindGoal
	KindHabit
	KindNote
	KindArea
)

type kindInfo struct {
	name  string
	emoji string
	label string
}

// kindTable is indexed by NoteKind; KindUnknown has no emoji or label.
var kindTable = [...]kindInfo{
	KindUnknown: {name: "unknown"},
	KindTask:    {name: "task", emoji: "📌", label: "Task"},
	KindProject: {name: "project", emoji: "🚀", label: "Project"},
	KindGoal:    {name: "goal", emoji: "🎯", label: "Goal"},
	KindHabit:   {name: "habit", emoji: "🔄", label: "Habit"},
	KindNote:    {name: "note", emoji: "✏️", label: "Note"},
	KindArea:    {name: "area", emoji: "🌱", label: "Area"},
}

// Kinds returns every known note kind in palette order
func Kinds() []NoteKind {
	return []NoteKind{KindTask, KindProject, KindGoal, KindHabit, KindArea, KindNote}
}

func (k NoteKind) info() kindInfo {
	if k < 0 || int(k) >= len(kindTable) {
		return kindTable[KindUnknown]
	}
	return kindTable[k]
}

func (k NoteKind) String() string {
	return k.info().name
}

// Emoji returns the emoji prefix used in filenames and headings
func (k NoteKind) Emoji() string {
	return k.info().emoji
}

// Label returns the capitalised display label (e.g. "Task")
func (k NoteKind) Label() string {
	return k.info().label
}

// Valid reports whether k is one of the six note kinds
func (k NoteKind) Valid() bool {
	return k != KindUnknown && k.info().label != ""
}

// FileBase builds the filename stem "<emoji><Label> - <core>" for a sanitized core title
func (k NoteKind) FileBase(core string) string {
	return k.Emoji() + k.Label() + " - " + core
}

// ParseKind resolves a kind from its name or label, case-insensitively
func ParseKind(s string) NoteKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if s == k.String() {
			return k
		}
	}
	return KindUnknown
}

// KindFromFileName recognises "<emoji><Label> - <core>.md" filenames and
// returns the kind and core. Unrecognised names yield KindUnknown.
func KindFromFileName(name string) (NoteKind, string) {
	stem, ok := strings.CutSuffix(name, ".md")
	if !ok {
		return KindUnknown, ""
	}
	for _, k := range Kinds() {
		if core, found := strings.CutPrefix(stem, k.Emoji()+k.Label()+" - "); found && core != "" {
			return k, core
		}
	}
	return KindUnknown, ""
}
