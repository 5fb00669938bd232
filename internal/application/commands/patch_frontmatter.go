package commands

import (
	"context"
	"fmt"
	"strings"

	"mindmap/internal/application"
	"mindmap/internal/domain"
	"mindmap/internal/frontmatter"
	"mindmap/internal/ports"
)

// PatchFrontmatterResult contains the result of patching a note header
type PatchFrontmatterResult struct {
	Path    string
	Applied bool // False when the target was not a note
	Message string
}

// PatchFrontmatterCommand merges key/value pairs into a note's frontmatter
type PatchFrontmatterCommand struct {
	vault  ports.Vault
	Path   string
	Fields []frontmatter.Field
}

// NewPatchFrontmatterCommand creates a new PatchFrontmatterCommand
func NewPatchFrontmatterCommand(vault ports.Vault, path string, fields ...frontmatter.Field) *PatchFrontmatterCommand {
	return &PatchFrontmatterCommand{
		vault:  vault,
		Path:   path,
		Fields: fields,
	}
}

// NewMarkDoneCommand creates a patch that closes a task, project or goal
func NewMarkDoneCommand(vault ports.Vault, path string) *PatchFrontmatterCommand {
	return NewPatchFrontmatterCommand(vault, path,
		frontmatter.Field{Key: "done", Value: true},
		frontmatter.Field{Key: "status", Value: "Done"},
	)
}

// Validate checks if the patch operation is valid
func (c *PatchFrontmatterCommand) Validate() error {
	if err := application.ValidateRequired("notePath", c.Path); err != nil {
		return err
	}

	if len(c.Fields) == 0 {
		return &application.ValidationError{
			Field:   "patch",
			Message: "at least one key is required",
		}
	}

	for _, f := range c.Fields {
		if strings.TrimSpace(f.Key) == "" {
			return &application.ValidationError{
				Field:   "patch",
				Message: "keys must not be empty",
			}
		}
	}

	return nil
}

// Execute runs the patch command. A target that is missing, a folder, or
// not a markdown file is silently skipped.
func (c *PatchFrontmatterCommand) Execute(ctx context.Context) (*PatchFrontmatterResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := domain.NormalizePath(c.Path)
	skipped := &PatchFrontmatterResult{Path: path, Message: fmt.Sprintf("Nothing to update: %s", path)}

	entry, err := application.PathExists(c.vault, path)
	if err != nil {
		return nil, err
	}
	if !entry.IsFile() || !strings.HasSuffix(strings.ToLower(path), ".md") {
		return skipped, nil
	}

	content, err := c.vault.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	merged, err := frontmatter.Merge(content, c.Fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to patch %s: %w", path, err)
	}

	if merged != content {
		if err := c.vault.ModifyFile(path, merged); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return &PatchFrontmatterResult{
		Path:    path,
		Applied: true,
		Message: fmt.Sprintf("Updated %s", strings.TrimSuffix(domain.BaseName(path), ".md")),
	}, nil
}
