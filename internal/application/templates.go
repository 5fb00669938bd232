package application

import (
	"fmt"

	"mindmap/internal/domain"
	"mindmap/internal/ports"
)

// ReadTemplate returns the user's template body for label. The primary
// "<Label> Template.md" in the templates folder is tried first, then the
// legacy "<Label>.md". The first existing entry decides: when it is a
// folder, no template is found and ok is false.
func ReadTemplate(vault ports.Vault, layout domain.Layout, label string) (body string, ok bool, err error) {
	candidates := []string{
		domain.JoinPath(layout.TemplatesFolder, domain.TemplateFileName(label)),
		domain.JoinPath(layout.LegacyTemplatesFolder, domain.LegacyTemplateFileName(label)),
	}

	for _, path := range candidates {
		entry, err := PathExists(vault, path)
		if err != nil {
			return "", false, err
		}
		if entry == nil {
			continue
		}
		if !entry.IsFile() {
			return "", false, nil
		}

		body, err := vault.ReadFile(entry.Path)
		if err != nil {
			return "", false, fmt.Errorf("failed to read template %s: %w", path, err)
		}
		return body, true, nil
	}

	return "", false, nil
}

// ResolveTemplate returns the vault template for label, falling back to
// fallback when the vault has none.
func ResolveTemplate(vault ports.Vault, layout domain.Layout, label, fallback string) (string, error) {
	body, ok, err := ReadTemplate(vault, layout, label)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return body, nil
}
