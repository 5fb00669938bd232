package views

import "mindmap/internal/ports"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages
type (
	SwitchToPaletteMsg struct{}
	SwitchToHelpMsg    struct{}
)

// ActionChosenMsg is sent when a palette entry is picked
type ActionChosenMsg struct {
	Action Action
}

// PromptSubmitMsg carries a non-blank prompt value
type PromptSubmitMsg struct {
	Action Action
	Value  string
}

// PromptCancelMsg is sent when the prompt is dismissed
type PromptCancelMsg struct{}

// OpenNoteMsg asks the app to open a catalogued note
type OpenNoteMsg struct {
	Record ports.NoteRecord
}

// MarkDoneMsg asks the app to mark a catalogued note done
type MarkDoneMsg struct {
	Record ports.NoteRecord
}
