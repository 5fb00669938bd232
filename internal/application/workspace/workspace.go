// Package workspace runs application commands on behalf of a host (CLI,
// terminal palette or MCP server) and takes care of what happens around
// them: notices, logging, opening the result and keeping the catalog
// current.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"mindmap/internal/application"
	"mindmap/internal/application/commands"
	"mindmap/internal/domain"
	"mindmap/internal/frontmatter"
	"mindmap/internal/ports"
)

var (
	// ErrNoIndex is returned by catalog operations when no index is configured
	ErrNoIndex = errors.New("note index is not configured")
	// ErrNoOpener is returned by Open when no opener is configured
	ErrNoOpener = errors.New("no opener configured")
)

// Workspace is the facade every host drives
type Workspace struct {
	vault    ports.Vault
	layout   domain.Layout
	clock    ports.Clock
	opener   ports.FileOpener
	notifier ports.Notifier
	index    ports.NoteIndex
	logger   *slog.Logger
}

// Option configures a Workspace
type Option func(*Workspace)

// WithClock sets the time source
func WithClock(c ports.Clock) Option {
	return func(w *Workspace) { w.clock = c }
}

// WithOpener opens every note the workspace creates or opens
func WithOpener(o ports.FileOpener) Option {
	return func(w *Workspace) { w.opener = o }
}

// WithNotifier sets where notices go
func WithNotifier(n ports.Notifier) Option {
	return func(w *Workspace) { w.notifier = n }
}

// WithIndex records created notes in a catalog and enables List and Sync
func WithIndex(i ports.NoteIndex) Option {
	return func(w *Workspace) { w.index = i }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}

// New creates a Workspace over vault
func New(vault ports.Vault, layout domain.Layout, opts ...Option) *Workspace {
	w := &Workspace{
		vault:    vault,
		layout:   layout,
		clock:    ports.SystemClock{},
		notifier: discardNotifier{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Layout returns the folder layout in use
func (w *Workspace) Layout() domain.Layout {
	return w.layout
}

// CreateNote creates a typed note from a raw user title. A blank title is
// rejected with application.ErrEmptyTitle before any I/O and without a
// notice.
func (w *Workspace) CreateNote(ctx context.Context, kind domain.NoteKind, rawTitle string) (*commands.CreateNoteResult, error) {
	if strings.TrimSpace(rawTitle) == "" {
		w.logger.Debug("blank title, nothing created", slog.String("kind", kind.String()))
		return nil, application.ErrEmptyTitle
	}

	result, err := commands.NewCreateNoteCommand(w.vault, w.clock, w.layout, kind, rawTitle).Execute(ctx)
	if err != nil {
		return nil, w.fail("create note", err)
	}

	w.logger.Info("note created", slog.String("kind", kind.String()), slog.String("path", result.Path))
	w.notifier.Notify(result.Message)
	w.record(result.Path)
	w.open(result.Path)
	return result, nil
}

// OpenToday writes today's daily note and opens it
func (w *Workspace) OpenToday(ctx context.Context) (*commands.OpenPeriodicResult, error) {
	return w.OpenPeriod(ctx, domain.PeriodDaily)
}

// OpenPeriod writes the note for the current period and opens it
func (w *Workspace) OpenPeriod(ctx context.Context, period domain.Period) (*commands.OpenPeriodicResult, error) {
	result, err := commands.NewOpenPeriodicCommand(w.vault, w.clock, w.layout, period).Execute(ctx)
	if err != nil {
		return nil, w.fail("open "+period.String(), err)
	}

	w.logger.Info("periodic note opened",
		slog.String("period", period.String()),
		slog.String("path", result.Path),
		slog.Bool("written", result.Written),
	)
	w.notifier.Notify(result.Message)
	w.open(result.Path)
	return result, nil
}

// Scaffold materializes the starter structure
func (w *Workspace) Scaffold(ctx context.Context) (*commands.ScaffoldResult, error) {
	result, err := commands.NewScaffoldCommand(w.vault, w.layout).Execute(ctx)
	if err != nil {
		return nil, w.fail("scaffold", err)
	}

	w.logger.Info("scaffold finished",
		slog.Int("folders", result.FoldersCreated),
		slog.Int("files", result.FilesCreated),
	)
	w.notifier.Notify(result.Message)
	return result, nil
}

// PatchFrontmatter merges fields into a note's frontmatter
func (w *Workspace) PatchFrontmatter(ctx context.Context, path string, fields ...frontmatter.Field) (*commands.PatchFrontmatterResult, error) {
	return w.patch(ctx, commands.NewPatchFrontmatterCommand(w.vault, path, fields...))
}

// MarkDone sets done and status on a note
func (w *Workspace) MarkDone(ctx context.Context, path string) (*commands.PatchFrontmatterResult, error) {
	return w.patch(ctx, commands.NewMarkDoneCommand(w.vault, path))
}

func (w *Workspace) patch(ctx context.Context, cmd *commands.PatchFrontmatterCommand) (*commands.PatchFrontmatterResult, error) {
	result, err := cmd.Execute(ctx)
	if err != nil {
		return nil, w.fail("patch frontmatter", err)
	}

	if !result.Applied {
		w.logger.Debug("patch skipped", slog.String("path", result.Path))
		return result, nil
	}

	w.logger.Info("frontmatter patched", slog.String("path", result.Path))
	w.notifier.Notify(result.Message)
	w.record(result.Path)
	return result, nil
}

// ListNotes lists catalogued notes of kind, or all notes for KindUnknown
func (w *Workspace) ListNotes(ctx context.Context, kind domain.NoteKind) (*commands.ListNotesResult, error) {
	if w.index == nil {
		return nil, ErrNoIndex
	}
	result, err := commands.NewListNotesCommand(w.index, kind).Execute(ctx)
	if err != nil {
		return nil, w.fail("list notes", err)
	}
	return result, nil
}

// SyncIndex rebuilds the catalog from the vault
func (w *Workspace) SyncIndex(ctx context.Context) (*commands.SyncIndexResult, error) {
	if w.index == nil {
		return nil, ErrNoIndex
	}
	result, err := commands.NewSyncIndexCommand(w.vault, w.index).Execute(ctx)
	if err != nil {
		return nil, w.fail("sync index", err)
	}

	w.logger.Info("index synced", slog.Int("indexed", result.Indexed), slog.Int("removed", result.Removed))
	w.notifier.Notify(result.Message)
	return result, nil
}

// Open hands an existing note to the opener
func (w *Workspace) Open(path string) error {
	if w.opener == nil {
		return ErrNoOpener
	}
	if err := w.opener.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// fail logs and reports a failed operation and returns err unchanged
func (w *Workspace) fail(op string, err error) error {
	w.logger.Error(op+" failed", slog.String("error", err.Error()))
	w.notifier.NotifyError(fmt.Sprintf("MindMap OS: %v", err))
	return err
}

// open hands path to the opener. Failing to open does not undo the write.
func (w *Workspace) open(path string) {
	if w.opener == nil {
		return
	}
	if err := w.opener.OpenFile(path); err != nil {
		w.logger.Warn("open failed", slog.String("path", path), slog.String("error", err.Error()))
		w.notifier.NotifyError(fmt.Sprintf("Could not open %s: %v", path, err))
	}
}

// record upserts the note at path into the catalog, when there is one
func (w *Workspace) record(path string) {
	if w.index == nil {
		return
	}

	content, err := w.vault.ReadFile(path)
	if err != nil {
		w.logger.Warn("index read failed", slog.String("path", path), slog.String("error", err.Error()))
		return
	}

	rec, ok := application.NoteRecordFromContent(path, content)
	if !ok {
		return
	}
	if rec.Created.IsZero() {
		rec.Created = w.clock.Now()
	}
	if err := w.index.Upsert(rec); err != nil {
		w.logger.Warn("index upsert failed", slog.String("path", path), slog.String("error", err.Error()))
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(string)      {}
func (discardNotifier) NotifyError(string) {}
