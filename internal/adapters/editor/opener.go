package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"mindmap/internal/domain"
)

// Opener implements ports.EditorOpener for notes in a vault directory
type Opener struct {
	root   string
	lookup func(string) string
}

// NewOpener creates a new editor opener for the vault at root
func NewOpener(root string) *Opener {
	return &Opener{root: root, lookup: os.Getenv}
}

// OpenFile opens a vault-relative note in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, o.absPath(path))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) absPath(path string) string {
	return filepath.Join(o.root, filepath.FromSlash(domain.NormalizePath(path)))
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	// Check $EDITOR first
	if editor := o.lookup("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := o.lookup("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano", "code"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
