// Package domain defines the core entities, value types, and error
// taxonomy for the protein sequence repository.
package domain

import "time"

// Sequence is a validated protein sequence: every byte is a standard
// residue code, uppercase, length at least one. Construct via
// internal/sequence.Normalize; a zero Sequence is not valid.
type Sequence string

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s) }

// Residue returns the single-letter code at the 0-based index.
func (s Sequence) Residue(i int) byte { return s[i] }

// Composition maps residue codes to occurrence counts. Keys are present
// only for residues that occur at least once; counts sum to the
// sequence length.
type Composition map[string]int

// Total returns the sum of all counts.
func (c Composition) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Lineage links a mutated record back to its immediate source.
// It identifies ancestry only and confers no ownership.
type Lineage struct {
	ParentID     int64  `json:"parent_id"`
	Nomenclature string `json:"nomenclature"`
}

// ProteinRecord is a stored sequence entity. Records are immutable once
// inserted: a point mutation always produces a new record with a fresh
// identity while the source record is retained unchanged.
type ProteinRecord struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Sequence    Sequence    `json:"sequence"`
	Length      int         `json:"length"`
	Composition Composition `json:"composition"`
	Lineage     *Lineage    `json:"lineage,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// RecordSummary is the listing projection exposed to presentation
// layers: identity and name without the full sequence payload.
type RecordSummary struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Summary returns the listing projection of the record.
func (r ProteinRecord) Summary() RecordSummary {
	return RecordSummary{ID: r.ID, Name: r.Name, Length: r.Length}
}

// Clone returns a deep copy of the record so callers can never alias
// store-owned state.
func (r ProteinRecord) Clone() ProteinRecord {
	cp := r
	if r.Composition != nil {
		cp.Composition = make(Composition, len(r.Composition))
		for k, v := range r.Composition {
			cp.Composition[k] = v
		}
	}
	if r.Lineage != nil {
		lin := *r.Lineage
		cp.Lineage = &lin
	}
	return cp
}
