package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mindmap/internal/domain"
	"mindmap/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.NoteIndex using SQLite
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure Index implements NoteIndex
var _ ports.NoteIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given vault. An empty dbPath puts the
// database under the XDG data directory, keyed by the vault path.
func (idx *Index) Open(vaultPath, dbPath string) error {
	if dbPath == "" {
		dbPath = DatabasePath(vaultPath)
	}
	idx.vaultPath = vaultPath
	idx.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT '',
			done INTEGER NOT NULL DEFAULT 0,
			created INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notes_kind ON notes(kind);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file path
func (idx *Index) Path() string {
	return idx.dbPath
}

// NeedsFullRebuild returns true if the index was built by another schema
// version or for another vault, or never built at all
func (idx *Index) NeedsFullRebuild() bool {
	var version, vaultHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'vault_path_hash'").Scan(&vaultHash)

	return version != schemaVersion || vaultHash != hashVaultPath(idx.vaultPath)
}

// MarkBuilt records that the index now reflects the vault
func (idx *Index) MarkBuilt() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path_hash', ?);
	`, schemaVersion, hashVaultPath(idx.vaultPath))
	return err
}

// DatabasePath returns the default path for a vault's database
func DatabasePath(vaultPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "mindmap", hashVaultPath(vaultPath)+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// Upsert inserts or updates a note. The created time of an existing row is
// kept.
func (idx *Index) Upsert(rec ports.NoteRecord) error {
	var created int64
	if !rec.Created.IsZero() {
		created = rec.Created.Unix()
	}

	_, err := idx.db.Exec(`
		INSERT INTO notes (path, kind, title, status, done, created)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			kind = excluded.kind,
			title = excluded.title,
			status = excluded.status,
			done = excluded.done,
			created = CASE WHEN notes.created = 0 THEN excluded.created ELSE notes.created END
	`, rec.Path, rec.Kind.String(), rec.Title, rec.Status, rec.Done, created)
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", rec.Path, err)
	}
	return nil
}

// Delete removes a note by path
func (idx *Index) Delete(path string) error {
	_, err := idx.db.Exec(`DELETE FROM notes WHERE path = ?`, path)
	return err
}

// List returns notes of kind ordered by path. KindUnknown returns every note.
func (idx *Index) List(kind domain.NoteKind) ([]ports.NoteRecord, error) {
	query := `SELECT path, kind, title, status, done, created FROM notes`
	var args []any
	if kind != domain.KindUnknown {
		query += ` WHERE kind = ?`
		args = append(args, kind.String())
	}
	query += ` ORDER BY path`

	rows, err := idx.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.NoteRecord
	for rows.Next() {
		var rec ports.NoteRecord
		var kindName string
		var created int64
		if err := rows.Scan(&rec.Path, &kindName, &rec.Title, &rec.Status, &rec.Done, &created); err != nil {
			return nil, err
		}
		rec.Kind = domain.ParseKind(kindName)
		if created != 0 {
			rec.Created = time.Unix(created, 0)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Paths returns the set of every indexed path
func (idx *Index) Paths() (map[string]struct{}, error) {
	rows, err := idx.db.Query(`SELECT path FROM notes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		out[path] = struct{}{}
	}
	return out, rows.Err()
}
