package commands

import (
	"context"
	"fmt"

	"mindmap/internal/application"
	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// CreateNoteResult contains the result of creating a typed note
type CreateNoteResult struct {
	Path    string
	Kind    domain.NoteKind
	Title   string // "<emoji><Label> - <core>"
	Core    string // Sanitized user title
	Message string
}

// CreateNoteCommand creates a typed note in the active folder from its template
type CreateNoteCommand struct {
	vault  ports.Vault
	clock  ports.Clock
	layout domain.Layout
	Kind   domain.NoteKind
	Title  string
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(vault ports.Vault, clock ports.Clock, layout domain.Layout, kind domain.NoteKind, title string) *CreateNoteCommand {
	return &CreateNoteCommand{
		vault:  vault,
		clock:  clock,
		layout: layout,
		Kind:   kind,
		Title:  title,
	}
}

// Validate checks if the create operation is valid
func (c *CreateNoteCommand) Validate() error {
	return application.ValidateKind("kind", c.Kind)
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	core := domain.SanitizeTitle(c.Title)
	title := c.Kind.FileBase(core)

	// The folder goes first so a failure here leaves no partial note
	if err := application.EnsureFolder(c.vault, c.layout.ActiveFolder); err != nil {
		return nil, fmt.Errorf("failed to prepare %s: %w", c.layout.ActiveFolder, err)
	}

	path, err := application.UniquePath(c.vault, domain.JoinPath(c.layout.ActiveFolder, title), ".md")
	if err != nil {
		return nil, err
	}

	body, err := application.ResolveTemplate(c.vault, c.layout, c.Kind.Label(), domain.DefaultNoteBody)
	if err != nil {
		return nil, err
	}

	tokens := domain.NewTokens(c.clock.Now()).With(map[string]string{
		domain.TokenTitle: title,
		domain.TokenKind:  c.Kind.Label(),
		domain.TokenEmoji: c.Kind.Emoji(),
		domain.TokenCore:  core,
	})

	if err := c.vault.CreateFile(path, domain.ApplyTokens(body, tokens)); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &CreateNoteResult{
		Path:    path,
		Kind:    c.Kind,
		Title:   title,
		Core:    core,
		Message: fmt.Sprintf("%s created: %s", c.Kind.Label(), core),
	}, nil
}
