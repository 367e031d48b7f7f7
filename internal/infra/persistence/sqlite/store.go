// Package sqlite layers a snapshotting SQLite persistence driver on
// top of the in-memory record store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"proteinlab/internal/infra/persistence/memory"
	"proteinlab/pkg/domain"
)

// Store persists the in-memory state to a single SQLite table as JSON
// snapshots written after every successful insert. The default DSN is
// ":memory:", which keeps records process-local; pointing it at a file
// is an explicit operator choice.
type Store struct {
	*memory.Store
	db  *sql.DB
	mu  sync.Mutex
	dsn string
}

const snapshotBucket = "records"

// NewStore opens (or creates) the database at dsn and loads any
// existing snapshot into the embedded memory store.
func NewStore(dsn string, opts ...memory.Option) (*Store, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A pooled :memory: DSN would open a fresh database per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	s := &Store{Store: memory.NewStore(opts...), db: db, dsn: dsn}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, snapshotBucket).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	var snap memory.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	s.ImportState(snap)
	return nil
}

func (s *Store) persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.Marshal(s.ExportState())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		snapshotBucket, payload,
	); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Insert commits the record in memory, then snapshots state to SQLite.
func (s *Store) Insert(ctx context.Context, rec domain.NewRecord) (domain.ProteinRecord, error) {
	stored, err := s.Store.Insert(ctx, rec)
	if err != nil {
		return stored, err
	}
	if pErr := s.persist(); pErr != nil {
		return stored, pErr
	}
	return stored, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// DSN returns the configured database source name.
func (s *Store) DSN() string { return s.dsn }

var _ domain.RecordStore = (*Store)(nil)
