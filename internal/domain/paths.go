package domain

import "strings"

// Entry is a filesystem entry inside the vault
type Entry struct {
	Path     string // Normalized, vault-relative path
	IsFolder bool
}

// IsFile reports whether the entry is a plain file
func (e *Entry) IsFile() bool {
	return e != nil && !e.IsFolder
}

// NormalizePath converts p into the canonical vault form: forward slashes,
// no empty or "." segments, no leading or trailing slash. The vault root is "".
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.ReplaceAll(p, "\u00a0", " ")

	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		out = append(out, part)
	}
	return strings.Join(out, "/")
}

// JoinPath joins elements with "/" and normalizes the result
func JoinPath(elem ...string) string {
	return NormalizePath(strings.Join(elem, "/"))
}

// ParentPath returns the folder part of a normalized path ("" for top-level entries)
func ParentPath(p string) string {
	p = NormalizePath(p)
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	return p[:i]
}

// BaseName returns the last segment of a normalized path
func BaseName(p string) string {
	p = NormalizePath(p)
	return p[strings.LastIndex(p, "/")+1:]
}

// illegalFilenameChars are stripped from user-supplied titles
const illegalFilenameChars = `\/:*?"<>|`

// UntitledTitle replaces titles that sanitize to nothing
const UntitledTitle = "Untitled"

// SanitizeTitle strips characters that are illegal in filenames and trims
// whitespace. An empty result becomes UntitledTitle.
func SanitizeTitle(raw string) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalFilenameChars, r) {
			return -1
		}
		return r
	}, raw)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return UntitledTitle
	}
	return clean
}
