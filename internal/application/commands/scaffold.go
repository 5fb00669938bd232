package commands

import (
	"context"
	"fmt"

	"mindmap/internal/application"
	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// ScaffoldResult contains the result of materializing the starter structure
type ScaffoldResult struct {
	FoldersCreated int
	FilesCreated   int
	Message        string
}

// ScaffoldCommand creates the starter folders, notes and templates. Nothing
// that already exists is touched, so it can run any number of times.
type ScaffoldCommand struct {
	vault  ports.Vault
	layout domain.Layout
}

// NewScaffoldCommand creates a new ScaffoldCommand
func NewScaffoldCommand(vault ports.Vault, layout domain.Layout) *ScaffoldCommand {
	return &ScaffoldCommand{
		vault:  vault,
		layout: layout,
	}
}

// Validate checks that every layout folder is set
func (c *ScaffoldCommand) Validate() error {
	for _, folder := range c.layout.ScaffoldFolders() {
		if domain.NormalizePath(folder) == "" {
			return &application.ValidationError{
				Field:   "layout",
				Message: "layout folders must not be empty",
			}
		}
	}
	return nil
}

// Execute runs the scaffold command
func (c *ScaffoldCommand) Execute(ctx context.Context) (*ScaffoldResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	counter := &countingVault{Vault: c.vault}

	for _, folder := range c.layout.ScaffoldFolders() {
		if err := application.EnsureFolder(counter, folder); err != nil {
			return nil, err
		}
	}

	for _, seed := range c.layout.ScaffoldFiles() {
		if _, err := application.WriteIfMissing(counter, seed.Path, seed.Content); err != nil {
			return nil, err
		}
	}

	return &ScaffoldResult{
		FoldersCreated: counter.folders,
		FilesCreated:   counter.files,
		Message: fmt.Sprintf("MindMap OS: starter structure updated (%d folders, %d files created)",
			counter.folders, counter.files),
	}, nil
}

// countingVault counts successful creations
type countingVault struct {
	ports.Vault
	folders int
	files   int
}

func (v *countingVault) CreateFolder(path string) error {
	if err := v.Vault.CreateFolder(path); err != nil {
		return err
	}
	v.folders++
	return nil
}

func (v *countingVault) CreateFile(path, content string) error {
	if err := v.Vault.CreateFile(path, content); err != nil {
		return err
	}
	v.files++
	return nil
}
