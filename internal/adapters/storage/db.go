package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
)

// Collection keys. Each key addresses one whole collection stored as a
// serialized JSON array.
const (
	KeyStudents = "students"
	KeyCoaches  = "coaches"
	KeyClasses  = "classes"
)

// knownKeys are initialized to empty collections on startup.
var knownKeys = []string{KeyStudents, KeyCoaches, KeyClasses}

// SQLDB is the database interface used by the collection store.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// InitDB initializes the database schema and seeds the known collection
// keys with empty collections. Idempotent, safe to call multiple times.
// PRE: db is a valid database connection
// POST: collection table exists, each known key holds at least "[]"
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS collection (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	for _, key := range knownKeys {
		_, err := db.Exec(
			"INSERT INTO collection (key, data) VALUES (?, '[]') ON CONFLICT(key) DO NOTHING",
			key,
		)
		if err != nil {
			return fmt.Errorf("failed to seed collection %q: %w", key, err)
		}
	}
	return nil
}

// Collections is the persistent store adapter: key-addressed read/write of
// whole collections. The stored collections are the sole source of truth;
// nothing is cached across calls.
type Collections struct {
	db SQLDB
}

// NewCollections creates a Collections adapter over db.
func NewCollections(db SQLDB) *Collections {
	return &Collections{db: db}
}

// Load reads the collection stored under key and unmarshals it into dest,
// which must be a pointer to a slice. An absent or corrupt collection
// degrades to an empty one; no distinction is made between the two.
// PRE: dest is a non-nil pointer to a slice
// POST: dest holds the stored records in insertion order, or is empty
func (c *Collections) Load(ctx context.Context, key string, dest any) error {
	var data string
	row := c.db.QueryRowContext(ctx, "SELECT data FROM collection WHERE key = ?", key)
	err := row.Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load collection %q: %w", key, err)
	}
	if jsonErr := json.Unmarshal([]byte(data), dest); jsonErr != nil {
		// Corrupt payload degrades to empty, same as never initialized.
		// Unmarshal may have partially filled dest before failing, so
		// reset it rather than hand back a truncated collection.
		if v := reflect.ValueOf(dest); v.Kind() == reflect.Pointer && !v.IsNil() {
			v.Elem().Set(reflect.Zero(v.Elem().Type()))
		}
		return nil
	}
	return nil
}

// Save overwrites the whole collection stored under key with src.
// The write is a single statement: no partial state is observable.
// PRE: src marshals to a JSON array
// POST: subsequent Loads of key return exactly src's records
func (c *Collections) Save(ctx context.Context, key string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}
	_, err = c.db.ExecContext(ctx,
		"INSERT INTO collection (key, data) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET data=excluded.data",
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save collection %q: %w", key, err)
	}
	return nil
}
