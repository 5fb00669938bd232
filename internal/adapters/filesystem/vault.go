package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"mindmap/internal/domain"
)

// Vault implements ports.Vault on a directory
type Vault struct {
	root string
}

// NewVault creates a vault rooted at vaultPath. A leading ~ is expanded to
// the home directory. The directory must exist.
func NewVault(vaultPath string) (*Vault, error) {
	root, err := ExpandPath(vaultPath)
	if err != nil {
		return nil, err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vault path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault is not a directory: %s", root)
	}
	return &Vault{root: root}, nil
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Root returns the absolute vault directory
func (v *Vault) Root() string {
	return v.root
}

// Abs resolves a vault-relative path to an absolute one, rejecting any
// path that escapes the vault.
func (v *Vault) Abs(rel string) (string, error) {
	rel = domain.NormalizePath(rel)
	if rel == "" {
		return v.root, nil
	}

	joined := filepath.Join(v.root, filepath.FromSlash(rel))
	if !strings.HasPrefix(joined, v.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes vault: %s", rel)
	}
	return joined, nil
}

// Stat implements ports.Vault
func (v *Vault) Stat(path string) (*domain.Entry, error) {
	abs, err := v.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	// A file in the middle of the path means nothing can be there
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return &domain.Entry{Path: domain.NormalizePath(path), IsFolder: info.IsDir()}, nil
}

// CreateFolder implements ports.Vault
func (v *Vault) CreateFolder(path string) error {
	abs, err := v.Abs(path)
	if err != nil {
		return err
	}
	if err := os.Mkdir(abs, 0o755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return nil
}

// CreateFile implements ports.Vault. The file is created exclusively, so a
// concurrent writer that claimed the same name makes this call fail rather
// than be overwritten.
func (v *Vault) CreateFile(path, content string) error {
	abs, err := v.Abs(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// ReadFile implements ports.Vault
func (v *Vault) ReadFile(path string) (string, error) {
	abs, err := v.Abs(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// ModifyFile implements ports.Vault. Content is written to a temporary file
// and renamed over the original.
func (v *Vault) ModifyFile(path, content string) error {
	abs, err := v.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to modify file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("failed to modify %s: is a folder", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".mindmap-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	success = true
	return nil
}

// List implements ports.Vault. Hidden folders such as .obsidian and .trash
// are skipped.
func (v *Vault) List(dir string) ([]string, error) {
	base, err := v.Abs(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if p != base && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		rel, err := filepath.Rel(v.root, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vault: %w", err)
	}

	sort.Strings(out)
	return out, nil
}
