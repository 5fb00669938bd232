package domain

import (
	"embed"
	"strings"
)

// builtinTemplates holds the template bodies written by the scaffold
//
//go:embed templates/*.md
var builtinTemplates embed.FS

// DefaultNoteBody is used when no template file exists for a kind
const DefaultNoteBody = `---
status: Active
done: false
---

# {{title}}

- [ ] {{title}}

> created {{date}}
`

// BuiltinTemplate returns the embedded template body for a label such as
// "Task" or "Daily".
func BuiltinTemplate(label string) (string, bool) {
	data, err := builtinTemplates.ReadFile("templates/" + strings.ToLower(label) + ".md")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// TemplateFileName is the primary template filename for a label
func TemplateFileName(label string) string {
	return label + " Template.md"
}

// LegacyTemplateFileName is the fallback template filename for a label
func LegacyTemplateFileName(label string) string {
	return label + ".md"
}
