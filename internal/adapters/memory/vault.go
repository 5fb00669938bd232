// Package memory provides an in-memory ports.Vault for tests and dry runs.
package memory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"mindmap/internal/domain"
)

var (
	ErrExists   = errors.New("entry already exists")
	ErrNotExist = errors.New("entry does not exist")
	ErrNoParent = errors.New("parent folder does not exist")
	ErrNotAFile = errors.New("entry is a folder")
)

// Op names a mutating vault call, for recording and fault injection
type Op string

const (
	OpCreateFolder Op = "create-folder"
	OpCreateFile   Op = "create-file"
	OpModifyFile   Op = "modify-file"
)

// Vault is a map-backed vault. The zero value is not usable; call NewVault.
type Vault struct {
	mu      sync.Mutex
	folders map[string]struct{}
	files   map[string]string
	log     []string

	// FailOn, when set, is consulted before every mutation; a non-nil
	// return aborts the call with that error.
	FailOn func(op Op, path string) error
}

// NewVault creates an empty vault
func NewVault() *Vault {
	return &Vault{
		folders: make(map[string]struct{}),
		files:   make(map[string]string),
	}
}

// Stat implements ports.Vault
func (v *Vault) Stat(path string) (*domain.Entry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stat(domain.NormalizePath(path)), nil
}

func (v *Vault) stat(path string) *domain.Entry {
	if path == "" {
		return &domain.Entry{Path: "", IsFolder: true}
	}
	if _, ok := v.folders[path]; ok {
		return &domain.Entry{Path: path, IsFolder: true}
	}
	if _, ok := v.files[path]; ok {
		return &domain.Entry{Path: path}
	}
	return nil
}

func (v *Vault) checkParent(path string) error {
	parent := domain.ParentPath(path)
	if e := v.stat(parent); e == nil || !e.IsFolder {
		return fmt.Errorf("%s: %w", path, ErrNoParent)
	}
	return nil
}

func (v *Vault) mutate(op Op, path string) error {
	if v.FailOn != nil {
		if err := v.FailOn(op, path); err != nil {
			return err
		}
	}
	v.log = append(v.log, string(op)+" "+path)
	return nil
}

// CreateFolder implements ports.Vault
func (v *Vault) CreateFolder(path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	path = domain.NormalizePath(path)
	if v.stat(path) != nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := v.checkParent(path); err != nil {
		return err
	}
	if err := v.mutate(OpCreateFolder, path); err != nil {
		return err
	}
	v.folders[path] = struct{}{}
	return nil
}

// CreateFile implements ports.Vault
func (v *Vault) CreateFile(path, content string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	path = domain.NormalizePath(path)
	if v.stat(path) != nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := v.checkParent(path); err != nil {
		return err
	}
	if err := v.mutate(OpCreateFile, path); err != nil {
		return err
	}
	v.files[path] = content
	return nil
}

// ReadFile implements ports.Vault
func (v *Vault) ReadFile(path string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	path = domain.NormalizePath(path)
	content, ok := v.files[path]
	if !ok {
		if _, isDir := v.folders[path]; isDir {
			return "", fmt.Errorf("%s: %w", path, ErrNotAFile)
		}
		return "", fmt.Errorf("%s: %w", path, ErrNotExist)
	}
	return content, nil
}

// ModifyFile implements ports.Vault
func (v *Vault) ModifyFile(path, content string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	path = domain.NormalizePath(path)
	if _, ok := v.files[path]; !ok {
		return fmt.Errorf("%s: %w", path, ErrNotExist)
	}
	if err := v.mutate(OpModifyFile, path); err != nil {
		return err
	}
	v.files[path] = content
	return nil
}

// List implements ports.Vault
func (v *Vault) List(dir string) ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	dir = domain.NormalizePath(dir)
	var out []string
	for path := range v.files {
		if !strings.HasSuffix(strings.ToLower(path), ".md") {
			continue
		}
		if dir == "" || strings.HasPrefix(path, dir+"/") {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Folders returns every folder path, sorted
func (v *Vault) Folders() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]string, 0, len(v.folders))
	for path := range v.folders {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Files returns a copy of every file path and its content
func (v *Vault) Files() map[string]string {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string]string, len(v.files))
	for path, content := range v.files {
		out[path] = content
	}
	return out
}

// Mutations returns the recorded mutating calls as "op path" lines
func (v *Vault) Mutations() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.log...)
}

// Put seeds a file, creating any missing parent folders. It is not recorded.
func (v *Vault) Put(path, content string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	path = domain.NormalizePath(path)
	v.addFolders(domain.ParentPath(path))
	v.files[path] = content
}

// PutFolder seeds a folder chain. It is not recorded.
func (v *Vault) PutFolder(path string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.addFolders(domain.NormalizePath(path))
}

func (v *Vault) addFolders(path string) {
	if path == "" {
		return
	}
	current := ""
	for _, segment := range strings.Split(path, "/") {
		current = domain.JoinPath(current, segment)
		v.folders[current] = struct{}{}
	}
}
