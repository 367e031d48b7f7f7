package domain

import "fmt"

// InvalidInputError reports a missing required field on a create call.
type InvalidInputError struct {
	Field string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidSequenceError reports a sequence that failed validation.
// When Empty is true the input normalized to nothing; otherwise Char
// holds the offending character and Position its 0-based index in the
// normalized sequence.
type InvalidSequenceError struct {
	Char     byte
	Position int
	Empty    bool
}

func (e InvalidSequenceError) Error() string {
	if e.Empty {
		return "sequence is empty after normalization"
	}
	return fmt.Sprintf("invalid residue %q at position %d", e.Char, e.Position)
}

// NotFoundError reports an unknown record identity.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("protein record %d not found", e.ID)
}

// InvalidPositionError reports a mutation target outside the source
// sequence. Length is the source sequence length, so the valid range
// is [0, Length-1].
type InvalidPositionError struct {
	Position int
	Length   int
}

func (e InvalidPositionError) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d]", e.Position, e.Length-1)
}

// InvalidResidueError reports a mutation target residue that is not in
// the amino acid catalog.
type InvalidResidueError struct {
	Code string
}

func (e InvalidResidueError) Error() string {
	return fmt.Sprintf("unknown amino acid code %q", e.Code)
}

// NoOpMutationError reports a mutation whose target residue equals the
// residue already present at the position. A mutation must change the
// sequence.
type NoOpMutationError struct {
	Position int
	Code     string
}

func (e NoOpMutationError) Error() string {
	return fmt.Sprintf("residue at position %d is already %s", e.Position, e.Code)
}
