package application

import (
	"strings"
	"time"

	"mindmap/internal/domain"
	"mindmap/internal/frontmatter"
	"mindmap/internal/ports"
)

// NoteRecordFromContent builds a catalog record for a typed note. Files
// whose name does not follow "<emoji><Label> - <core>.md" are not typed
// notes and ok is false.
func NoteRecordFromContent(path, content string) (rec ports.NoteRecord, ok bool) {
	path = domain.NormalizePath(path)
	base := domain.BaseName(path)

	kind, _ := domain.KindFromFileName(base)
	if kind == domain.KindUnknown {
		return ports.NoteRecord{}, false
	}

	doc := frontmatter.Split(content)
	status, _ := doc.Value("status")

	rec = ports.NoteRecord{
		Path:   path,
		Kind:   kind,
		Title:  strings.TrimSuffix(base, ".md"),
		Status: status,
		Done:   doc.Bool("done"),
	}
	if created, found := doc.Value("created"); found {
		if t, err := time.ParseInLocation(domain.DateLayout, created, time.Local); err == nil {
			rec.Created = t
		}
	}
	return rec, true
}
