package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// DefaultMaxValueBytes caps a single stored value, matching the 5 MiB
// budget browsers give local storage.
const DefaultMaxValueBytes = 5 << 20

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db            *sqlx.DB
	maxValueBytes int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxValueBytes sets the per-value quota. Zero or negative disables it.
func WithMaxValueBytes(n int) Option {
	return func(s *Store) {
		s.maxValueBytes = n
	}
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One writer at a time; keeps in-memory databases on a single connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db, maxValueBytes: DefaultMaxValueBytes}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db.DB
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// KVRepo returns a KVRepo backed by this store.
func (s *Store) KVRepo() KVRepo {
	return &kvRepo{db: s.db, maxValueBytes: s.maxValueBytes}
}

// applyPragmas configures SQLite for single-user local storage.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath returns $XDG_DATA_HOME/secplus/secplus.db, falling back to
// ~/.local/share/secplus/secplus.db. It does not create any directory;
// callers that open the file call EnsureDir first.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "secplus", "secplus.db"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
