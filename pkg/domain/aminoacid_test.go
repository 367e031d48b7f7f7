package domain

import "testing"

func TestCatalogHasTwentyUniqueResidues(t *testing.T) {
	catalog := AminoAcids()
	if len(catalog) != 20 {
		t.Fatalf("expected 20 catalog entries, got %d", len(catalog))
	}
	seen := make(map[string]bool, len(catalog))
	prev := ""
	for _, aa := range catalog {
		if len(aa.Code) != 1 {
			t.Fatalf("code %q is not a single letter", aa.Code)
		}
		if seen[aa.Code] {
			t.Fatalf("duplicate code %s", aa.Code)
		}
		seen[aa.Code] = true
		if aa.Code <= prev {
			t.Fatalf("catalog not in code order: %s after %s", aa.Code, prev)
		}
		prev = aa.Code
		if aa.Name == "" {
			t.Fatalf("entry %s has no name", aa.Code)
		}
		if aa.Mass <= 0 {
			t.Fatalf("entry %s has no mass", aa.Code)
		}
	}
}

func TestCatalogClasses(t *testing.T) {
	counts := make(map[ResidueClass]int)
	for _, aa := range AminoAcids() {
		counts[aa.Class]++
	}
	expected := map[ResidueClass]int{
		ClassHydrophobic:    8,
		ClassPolarUncharged: 6,
		ClassPositive:       3,
		ClassNegative:       2,
		ClassSpecial:        1,
	}
	for class, want := range expected {
		if counts[class] != want {
			t.Fatalf("class %s: expected %d residues, got %d", class, want, counts[class])
		}
	}

	gly, ok := LookupAminoAcid("G")
	if !ok {
		t.Fatal("glycine missing from catalog")
	}
	if gly.Class != ClassSpecial {
		t.Fatalf("glycine class = %s, want %s", gly.Class, ClassSpecial)
	}
}

func TestLookupAminoAcid(t *testing.T) {
	aa, ok := LookupAminoAcid("W")
	if !ok {
		t.Fatal("expected tryptophan to resolve")
	}
	if aa.Name != "Tryptophan" {
		t.Fatalf("unexpected name %s", aa.Name)
	}

	for _, code := range []string{"X", "B", "", "AA", "a"} {
		if _, ok := LookupAminoAcid(code); ok {
			t.Fatalf("expected lookup of %q to fail", code)
		}
	}
}

func TestAminoAcidsReturnsCopy(t *testing.T) {
	first := AminoAcids()
	first[0].Name = "mutated"
	if AminoAcids()[0].Name == "mutated" {
		t.Fatal("catalog backing table leaked to caller")
	}
}

func TestIsResidue(t *testing.T) {
	if !IsResidue('M') {
		t.Fatal("M should be a residue")
	}
	if IsResidue('X') || IsResidue('m') || IsResidue('1') {
		t.Fatal("non-catalog bytes accepted")
	}
}
