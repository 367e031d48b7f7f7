package core

import (
	"context"
	"fmt"
	"strings"

	"proteinlab/pkg/domain"
)

// MutationResult pairs a derived record with the nomenclature string
// describing the substitution that produced it.
type MutationResult struct {
	Nomenclature string               `json:"nomenclature"`
	Record       domain.ProteinRecord `json:"record"`
}

// Nomenclature renders standard point-mutation notation: original
// residue, 1-based position, new residue (A at 0-based index 41
// mutated to G renders as A42G).
func Nomenclature(old byte, position int, repl byte) string {
	return fmt.Sprintf("%c%d%c", old, position+1, repl)
}

// Mutate applies a single-residue substitution to a stored record and
// inserts the result as a new record. The source record is never
// modified; the derived record carries a lineage link back to it.
//
// Validation order: unknown record, position out of range, unknown
// target residue, then no-op substitution. A substitution that leaves
// the sequence unchanged is rejected outright rather than trusting
// upstream layers to disable it.
func (s *Service) Mutate(ctx context.Context, id int64, position int, newResidue string) (MutationResult, error) {
	var result MutationResult
	err := s.observe(ctx, "mutate_sequence", func(ctx context.Context) error {
		source, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}
		if position < 0 || position >= source.Length {
			return domain.InvalidPositionError{Position: position, Length: source.Length}
		}
		code := strings.ToUpper(strings.TrimSpace(newResidue))
		aa, ok := domain.LookupAminoAcid(code)
		if !ok {
			return domain.InvalidResidueError{Code: newResidue}
		}
		old := source.Sequence.Residue(position)
		if old == aa.Code[0] {
			return domain.NoOpMutationError{Position: position, Code: code}
		}

		mutated := make([]byte, source.Length)
		copy(mutated, string(source.Sequence))
		mutated[position] = aa.Code[0]

		nomenclature := Nomenclature(old, position, aa.Code[0])
		derived, err := s.store.Insert(ctx, domain.NewRecord{
			Name:     fmt.Sprintf("%s (%s)", source.Name, nomenclature),
			Sequence: domain.Sequence(mutated),
			Lineage:  &domain.Lineage{ParentID: source.ID, Nomenclature: nomenclature},
		})
		if err != nil {
			return err
		}
		result = MutationResult{Nomenclature: nomenclature, Record: derived}
		return nil
	})
	if err != nil {
		return MutationResult{}, err
	}
	s.logger.Info("mutation applied",
		"source_id", id, "id", result.Record.ID, "nomenclature", result.Nomenclature)
	return result, nil
}
