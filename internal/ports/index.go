package ports

import (
	"time"

	"mindmap/internal/domain"
)

// NoteRecord is a typed note as stored in the catalog
type NoteRecord struct {
	Path    string
	Kind    domain.NoteKind
	Title   string
	Status  string
	Done    bool
	Created time.Time
}

// NoteIndex is a queryable catalog of typed notes in the vault
type NoteIndex interface {
	Upsert(rec NoteRecord) error
	Delete(path string) error
	List(kind domain.NoteKind) ([]NoteRecord, error)
	Paths() (map[string]struct{}, error)
	Close() error
}
