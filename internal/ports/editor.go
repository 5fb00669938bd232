package ports

import "os/exec"

// FileOpener opens a vault note for the user
type FileOpener interface {
	// OpenFile opens the note at the vault-relative path
	OpenFile(path string) error
}

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	FileOpener

	// Command returns an exec.Cmd for opening a file in the editor
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
