package application

import (
	"fmt"
	"strings"

	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// PathExists returns the entry at the normalized path, or nil when nothing
// is there. A missing path is never an error. Vault errors are returned
// as they are.
func PathExists(vault ports.Vault, path string) (*domain.Entry, error) {
	return vault.Stat(domain.NormalizePath(path))
}

// EnsureFolder creates every missing segment of path, top-down. Segments
// that already exist, as a folder or a file, are left alone.
func EnsureFolder(vault ports.Vault, path string) error {
	norm := domain.NormalizePath(path)
	if norm == "" {
		return nil
	}

	current := ""
	for _, segment := range strings.Split(norm, "/") {
		current = domain.JoinPath(current, segment)

		entry, err := PathExists(vault, current)
		if err != nil {
			return err
		}
		if entry != nil {
			continue
		}
		if err := vault.CreateFolder(current); err != nil {
			return fmt.Errorf("failed to create folder %s: %w", current, err)
		}
	}
	return nil
}

// UniquePath returns base+ext when free, otherwise the first free
// "base (n)ext" for n = 1, 2, ...
//
// The result is free at call time only; a concurrent writer may claim it
// before the caller creates the file.
func UniquePath(vault ports.Vault, base, ext string) (string, error) {
	base = domain.NormalizePath(base)
	candidate := base + ext

	for n := 1; ; n++ {
		entry, err := PathExists(vault, candidate)
		if err != nil {
			return "", err
		}
		if entry == nil {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s (%d)%s", base, n, ext)
	}
}

// WriteIfMissing creates the file at path with content unless an entry is
// already there. It reports whether the file was written.
func WriteIfMissing(vault ports.Vault, path, content string) (bool, error) {
	path = domain.NormalizePath(path)
	if err := EnsureFolder(vault, domain.ParentPath(path)); err != nil {
		return false, err
	}

	entry, err := PathExists(vault, path)
	if err != nil {
		return false, err
	}
	if entry != nil {
		return false, nil
	}

	if err := vault.CreateFile(path, content); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return true, nil
}

// WriteOrReplace creates the file at path, or replaces its content when it
// already exists. A folder at path is left untouched.
func WriteOrReplace(vault ports.Vault, path, content string) error {
	path = domain.NormalizePath(path)
	if err := EnsureFolder(vault, domain.ParentPath(path)); err != nil {
		return err
	}

	entry, err := PathExists(vault, path)
	if err != nil {
		return err
	}

	switch {
	case entry == nil:
		if err := vault.CreateFile(path, content); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
	case entry.IsFile():
		if err := vault.ModifyFile(path, content); err != nil {
			return fmt.Errorf("failed to modify %s: %w", path, err)
		}
	}
	return nil
}
