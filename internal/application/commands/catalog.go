package commands

import (
	"context"
	"fmt"

	"mindmap/internal/application"
	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// ListNotesResult contains the typed notes found in the catalog
type ListNotesResult struct {
	Notes   []ports.NoteRecord
	Message string
}

// ListNotesCommand lists catalogued notes, optionally filtered by kind
type ListNotesCommand struct {
	index ports.NoteIndex
	Kind  domain.NoteKind // KindUnknown lists every kind
}

// NewListNotesCommand creates a new ListNotesCommand
func NewListNotesCommand(index ports.NoteIndex, kind domain.NoteKind) *ListNotesCommand {
	return &ListNotesCommand{index: index, Kind: kind}
}

// Execute runs the list command
func (c *ListNotesCommand) Execute(ctx context.Context) (*ListNotesResult, error) {
	notes, err := c.index.List(c.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	label := "notes"
	if c.Kind.Valid() {
		label = c.Kind.String() + " notes"
	}
	return &ListNotesResult{
		Notes:   notes,
		Message: fmt.Sprintf("Found %d %s", len(notes), label),
	}, nil
}

// SyncIndexResult contains the result of rebuilding the catalog
type SyncIndexResult struct {
	Indexed int
	Removed int
	Message string
}

// SyncIndexCommand rebuilds the catalog from the typed notes in the vault
type SyncIndexCommand struct {
	vault ports.Vault
	index ports.NoteIndex
}

// NewSyncIndexCommand creates a new SyncIndexCommand
func NewSyncIndexCommand(vault ports.Vault, index ports.NoteIndex) *SyncIndexCommand {
	return &SyncIndexCommand{vault: vault, index: index}
}

// Execute runs the sync command
func (c *SyncIndexCommand) Execute(ctx context.Context) (*SyncIndexResult, error) {
	paths, err := c.vault.List("")
	if err != nil {
		return nil, fmt.Errorf("failed to list vault: %w", err)
	}

	stale, err := c.index.Paths()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	indexed := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if kind, _ := domain.KindFromFileName(domain.BaseName(path)); kind == domain.KindUnknown {
			continue
		}

		content, err := c.vault.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		rec, ok := application.NoteRecordFromContent(path, content)
		if !ok {
			continue
		}
		if err := c.index.Upsert(rec); err != nil {
			return nil, fmt.Errorf("failed to index %s: %w", path, err)
		}
		delete(stale, rec.Path)
		indexed++
	}

	for path := range stale {
		if err := c.index.Delete(path); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return &SyncIndexResult{
		Indexed: indexed,
		Removed: len(stale),
		Message: fmt.Sprintf("Indexed %d notes, removed %d", indexed, len(stale)),
	}, nil
}
