package memory

import "proteinlab/pkg/domain"

// Snapshot is a full copy of committed state, used by snapshotting
// persistence drivers layered on top of this store.
type Snapshot struct {
	Records []domain.ProteinRecord `json:"records"`
	LastID  int64                  `json:"last_id"`
}

// ExportState returns a deep copy of the committed state in insertion
// order.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{LastID: s.lastID}
	snap.Records = make([]domain.ProteinRecord, 0, len(s.order))
	for _, id := range s.order {
		snap.Records = append(snap.Records, s.records[id].Clone())
	}
	return snap
}

// ImportState replaces committed state with the snapshot contents.
// Record order in the snapshot becomes the insertion order.
func (s *Store) ImportState(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[int64]domain.ProteinRecord, len(snap.Records))
	s.order = make([]int64, 0, len(snap.Records))
	for _, rec := range snap.Records {
		s.records[rec.ID] = rec.Clone()
		s.order = append(s.order, rec.ID)
		if rec.ID > s.lastID {
			s.lastID = rec.ID
		}
	}
	if snap.LastID > s.lastID {
		s.lastID = snap.LastID
	}
}
