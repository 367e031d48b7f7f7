package sequence

import (
	"errors"
	"strings"
	"testing"

	"proteinlab/pkg/domain"
)

func TestNormalizeEquivalentForms(t *testing.T) {
	forms := []string{
		"MALW",
		"  m a l w \n",
		"malw",
		">Insulin preproprotein\nMALW",
		">Insulin\nMA\nLW\n",
	}
	for _, raw := range forms {
		seq, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", raw, err)
		}
		if seq != "MALW" {
			t.Fatalf("Normalize(%q) = %q, want MALW", raw, seq)
		}
	}
}

func TestNormalizeRejectsInvalidResidue(t *testing.T) {
	_, err := Normalize("MALWX")
	var invalid domain.InvalidSequenceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSequenceError, got %v", err)
	}
	if invalid.Char != 'X' {
		t.Fatalf("offending char = %q, want X", invalid.Char)
	}
	if invalid.Position != 4 {
		t.Fatalf("offending position = %d, want 4", invalid.Position)
	}
}

func TestNormalizeRejectsEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   \n\t", ">OnlyHeader", ">OnlyHeader\n"} {
		_, err := Normalize(raw)
		var invalid domain.InvalidSequenceError
		if !errors.As(err, &invalid) {
			t.Fatalf("Normalize(%q): expected InvalidSequenceError, got %v", raw, err)
		}
		if !invalid.Empty {
			t.Fatalf("Normalize(%q): expected empty-sequence error", raw)
		}
	}
}

func TestNormalizeRejectsGapCharacters(t *testing.T) {
	_, err := Normalize("MAL-W")
	var invalid domain.InvalidSequenceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSequenceError, got %v", err)
	}
	if invalid.Char != '-' || invalid.Position != 3 {
		t.Fatalf("got char %q at %d, want '-' at 3", invalid.Char, invalid.Position)
	}
}

func TestParseFASTATakesFirstEntry(t *testing.T) {
	doc := ">sp|P01308|INS_HUMAN Insulin\nMALW\nMRLL\n>second entry\nGGGG\n"
	name, seq, err := ParseFASTA(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if name != "sp|P01308|INS_HUMAN" {
		t.Fatalf("name = %q", name)
	}
	if seq != "MALWMRLL" {
		t.Fatalf("sequence = %q", seq)
	}
}

func TestParseFASTAWithoutHeader(t *testing.T) {
	name, seq, err := ParseFASTA(strings.NewReader("malw\n"))
	if err != nil {
		t.Fatal(err)
	}
	if name != "" {
		t.Fatalf("expected empty name, got %q", name)
	}
	if seq != "MALW" {
		t.Fatalf("sequence = %q", seq)
	}
}

func TestParseFASTAInvalidBody(t *testing.T) {
	_, _, err := ParseFASTA(strings.NewReader(">bad\nMALWZ\n"))
	var invalid domain.InvalidSequenceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSequenceError, got %v", err)
	}
	if invalid.Char != 'Z' {
		t.Fatalf("offending char = %q", invalid.Char)
	}
}
