// Package tui implements the MindMap OS command palette and text prompt.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mindmap/internal/adapters/tui/views"
	"mindmap/internal/application"
	"mindmap/internal/application/workspace"
	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPalette ViewState = iota
	ViewPrompt
	ViewNotes
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ctx     context.Context
	ws      *workspace.Workspace
	editor  ports.EditorOpener
	catalog bool

	state   ViewState
	palette *views.PaletteModel
	prompt  *views.PromptModel
	notes   *views.NotesModel
	help    *views.HelpModel

	// oneShot quits once the prompt is answered or dismissed
	oneShot bool
	path    string
	result  string
	err     error

	width  int
	height int
}

// Option configures an App
type Option func(*App)

// WithEditor opens notes through ed with the terminal handed over,
// instead of through the workspace opener
func WithEditor(ed ports.EditorOpener) Option {
	return func(a *App) { a.editor = ed }
}

// WithCatalog adds the notes browser to the palette
func WithCatalog() Option {
	return func(a *App) { a.catalog = true }
}

// NewApp creates the palette application
func NewApp(ctx context.Context, ws *workspace.Workspace, opts ...Option) *App {
	a := &App{
		ctx:    ctx,
		ws:     ws,
		state:  ViewPalette,
		prompt: views.NewPromptModel(),
		notes:  views.NewNotesModel(),
		help:   views.NewHelpModel(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.palette = views.NewPaletteModel(views.DefaultActions(a.catalog))
	return a
}

// NewPromptApp creates an application that only asks for a title of kind,
// creates the note and quits
func NewPromptApp(ctx context.Context, ws *workspace.Workspace, kind domain.NoteKind, opts ...Option) *App {
	a := NewApp(ctx, ws, opts...)
	a.oneShot = true
	a.state = ViewPrompt
	a.prompt.Open(views.CreateAction(kind))
	return a
}

// Result returns the note path and notice of the last operation, and its
// error
func (a *App) Result() (path, message string, err error) {
	return a.path, a.result, a.err
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.state == ViewPrompt {
		return a.prompt.Init()
	}
	return a.palette.Init()
}

// actionDoneMsg reports a finished workspace operation
type actionDoneMsg struct {
	message string
	path    string
	err     error
}

type notesLoadedMsg struct {
	notes []ports.NoteRecord
	err   error
}

type editorFinishedMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.palette.SetSize(msg.Width, msg.Height)
		a.prompt.SetSize(msg.Width, msg.Height)
		a.notes.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	// View switching messages
	case views.SwitchToPaletteMsg:
		a.state = ViewPalette
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.ActionChosenMsg:
		return a, a.run(msg.Action)

	case views.PromptSubmitMsg:
		return a, a.createNote(msg.Action.Kind, msg.Value)

	case views.PromptCancelMsg:
		if a.oneShot {
			return a, tea.Quit
		}
		a.state = ViewPalette
		return a, nil

	case views.OpenNoteMsg:
		return a, a.openNote(msg.Record.Path)

	case views.MarkDoneMsg:
		return a, a.markDone(msg.Record.Path)

	case notesLoadedMsg:
		if msg.err != nil {
			a.palette.SetMessage(msg.err.Error(), true)
			a.state = ViewPalette
			return a, nil
		}
		a.state = ViewNotes
		return a, a.notes.SetNotes(msg.notes)

	case actionDoneMsg:
		return a, a.finish(msg)

	case editorFinishedMsg:
		if msg.err != nil {
			a.err = msg.err
			a.current().SetMessage(msg.err.Error(), true)
		}
		if a.oneShot {
			return a, tea.Quit
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPrompt:
		_, cmd = a.prompt.Update(msg)
	case ViewNotes:
		_, cmd = a.notes.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.palette.Update(msg)
	}
	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewPrompt:
		return a.prompt.View()
	case ViewNotes:
		return a.notes.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.palette.View()
	}
}

type messenger interface {
	SetMessage(msg string, isErr bool)
}

func (a *App) current() messenger {
	switch a.state {
	case ViewPrompt:
		return a.prompt
	case ViewNotes:
		return a.notes
	default:
		return a.palette
	}
}

func (a *App) run(action views.Action) tea.Cmd {
	switch action.Op {
	case views.OpCreateNote:
		a.state = ViewPrompt
		return a.prompt.Open(action)

	case views.OpOpenPeriod:
		period := action.Period
		return func() tea.Msg {
			result, err := a.ws.OpenPeriod(a.ctx, period)
			if err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{message: result.Message, path: result.Path}
		}

	case views.OpScaffold:
		return func() tea.Msg {
			result, err := a.ws.Scaffold(a.ctx)
			if err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{message: result.Message}
		}

	case views.OpBrowse:
		return a.loadNotes()
	}
	return nil
}

func (a *App) createNote(kind domain.NoteKind, title string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ws.CreateNote(a.ctx, kind, title)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: result.Message, path: result.Path}
	}
}

func (a *App) markDone(path string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.ws.MarkDone(a.ctx, path)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: result.Message}
	}
}

func (a *App) loadNotes() tea.Cmd {
	return func() tea.Msg {
		result, err := a.ws.ListNotes(a.ctx, domain.KindUnknown)
		if err != nil {
			return notesLoadedMsg{err: err}
		}
		return notesLoadedMsg{notes: result.Notes}
	}
}

// finish shows the outcome of an operation and opens its note
func (a *App) finish(msg actionDoneMsg) tea.Cmd {
	a.path, a.result, a.err = msg.path, msg.message, msg.err

	if msg.err != nil {
		if errors.Is(msg.err, application.ErrEmptyTitle) {
			return nil
		}
		if a.oneShot {
			return tea.Quit
		}
		a.state = ViewPalette
		a.palette.SetMessage(msg.err.Error(), true)
		return nil
	}

	var reload tea.Cmd
	if a.state == ViewNotes {
		a.notes.SetMessage(msg.message, false)
		reload = a.loadNotes()
	} else {
		a.state = ViewPalette
		a.palette.SetMessage(msg.message, false)
	}

	if msg.path != "" && a.editor != nil {
		return tea.Batch(reload, a.openEditor(msg.path))
	}
	if a.oneShot {
		return tea.Quit
	}
	return reload
}

func (a *App) openNote(path string) tea.Cmd {
	if a.editor != nil {
		return a.openEditor(path)
	}
	return func() tea.Msg {
		if err := a.ws.Open(path); err != nil {
			return editorFinishedMsg{err: err}
		}
		return editorFinishedMsg{}
	}
}

func (a *App) openEditor(path string) tea.Cmd {
	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("failed to open %s: %w", path, err)}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}
