package domain

import "context"

// NewRecord carries the caller-supplied portion of a record. The store
// assigns identity and computes the derived fields at insertion time.
type NewRecord struct {
	Name     string
	Sequence Sequence
	Lineage  *Lineage
}

// RecordStore is the minimal abstraction over record backends. It
// mirrors the subset of store capabilities used by higher layers so the
// in-memory driver can later be swapped for a durable one without
// touching the mutation engine or the validator.
//
// Implementations must assign each inserted record a unique,
// monotonically increasing identity even under concurrent inserts, and
// must return clones so that committed records stay immutable.
type RecordStore interface {
	// Insert assigns a fresh identity, computes length and
	// composition, stores the record, and returns it.
	Insert(ctx context.Context, rec NewRecord) (ProteinRecord, error)
	// Get retrieves a record by identity from committed state.
	Get(ctx context.Context, id int64) (ProteinRecord, error)
	// List returns all records in insertion order.
	List(ctx context.Context) ([]ProteinRecord, error)
}
