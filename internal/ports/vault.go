package ports

import "mindmap/internal/domain"

// Vault is the narrow capability surface over the note store. All paths
// are vault-relative and normalized with domain.NormalizePath.
type Vault interface {
	// Stat returns the entry at path, or nil when nothing exists there.
	// A missing path is not an error.
	Stat(path string) (*domain.Entry, error)

	// CreateFolder creates a single folder whose parent already exists
	CreateFolder(path string) error

	// CreateFile creates a new file; it fails if an entry already exists
	CreateFile(path, content string) error

	// ReadFile returns the content of a file
	ReadFile(path string) (string, error)

	// ModifyFile replaces the content of an existing file
	ModifyFile(path, content string) error

	// List returns the paths of every markdown file under dir
	List(dir string) ([]string, error)
}
