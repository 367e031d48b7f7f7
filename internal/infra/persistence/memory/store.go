// Package memory implements the in-memory record store. It is the
// default backend: records live for the process lifetime only.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"proteinlab/internal/sequence"
	"proteinlab/pkg/domain"
)

// Store keeps protein records in process memory. Identity assignment
// and insertion happen under a single exclusive lock, so no two records
// ever share an id even under concurrent inserts. Reads take the read
// lock and return clones; committed records are immutable.
type Store struct {
	mu      sync.RWMutex
	records map[int64]domain.ProteinRecord
	order   []int64
	nextFn  func() int64
	nowFn   func() time.Time
	lastID  int64
}

// Option customizes store construction.
type Option func(*Store)

// WithIDGenerator overrides identity assignment. The generator runs
// under the store's write lock and must return values that were never
// returned before.
func WithIDGenerator(fn func() int64) Option {
	return func(s *Store) { s.nextFn = fn }
}

// WithClock overrides the creation timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.nowFn = fn }
}

// NewStore constructs an empty in-memory store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		records: make(map[int64]domain.ProteinRecord),
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
	s.nextFn = func() int64 {
		s.lastID++
		return s.lastID
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert assigns a fresh id, computes the derived fields, and commits
// the record. The name must be non-empty and the sequence validated by
// the caller; composition is computed here exactly once so it can never
// diverge from the stored sequence.
func (s *Store) Insert(_ context.Context, rec domain.NewRecord) (domain.ProteinRecord, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return domain.ProteinRecord{}, domain.InvalidInputError{Field: "name"}
	}
	if rec.Sequence.Len() == 0 {
		return domain.ProteinRecord{}, domain.InvalidSequenceError{Empty: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := domain.ProteinRecord{
		ID:          s.nextFn(),
		Name:        rec.Name,
		Sequence:    rec.Sequence,
		Length:      rec.Sequence.Len(),
		Composition: sequence.Analyze(rec.Sequence),
		CreatedAt:   s.nowFn(),
	}
	if rec.Lineage != nil {
		lin := *rec.Lineage
		stored.Lineage = &lin
	}
	s.records[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return stored.Clone(), nil
}

// Get retrieves a record by id from committed state.
func (s *Store) Get(_ context.Context, id int64) (domain.ProteinRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return domain.ProteinRecord{}, domain.NotFoundError{ID: id}
	}
	return rec.Clone(), nil
}

// List returns all records in insertion order.
func (s *Store) List(_ context.Context) ([]domain.ProteinRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ProteinRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].Clone())
	}
	return out, nil
}

// Len returns the number of committed records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

var _ domain.RecordStore = (*Store)(nil)
