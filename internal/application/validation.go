package application

import (
	"fmt"
	"strings"

	"mindmap/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "notePath" -> "note path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"notePath": "note path",
		"title":    "title",
		"kind":     "kind",
		"period":   "period",
		"patch":    "patch",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateKind checks that kind is one of the six note kinds.
// Returns a ValidationError wrapping ErrInvalidKind otherwise.
func ValidateKind(fieldName string, kind domain.NoteKind) error {
	if !kind.Valid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown note kind (%d)", int(kind)),
			Err:     ErrInvalidKind,
		}
	}
	return nil
}
