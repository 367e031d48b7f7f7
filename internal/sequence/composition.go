package sequence

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"proteinlab/pkg/domain"
)

// waterMass is the average mass of one water molecule in daltons, added
// once per chain when deriving molecular weight from residue masses.
const waterMass = 18.0153

// Analyze computes per-residue occurrence counts over a validated
// sequence. Deterministic pure function with no failure mode: keys are
// present only for residues that occur, and counts sum to the length.
func Analyze(seq domain.Sequence) domain.Composition {
	comp := make(domain.Composition)
	for i := 0; i < seq.Len(); i++ {
		comp[string(seq.Residue(i))]++
	}
	return comp
}

// Profile summarizes the composition of a validated sequence for
// ad-hoc queries: fractional abundances, the Shannon entropy of the
// residue distribution (in nats), and the chain molecular weight.
type Profile struct {
	Length          int                `json:"length"`
	Counts          domain.Composition `json:"counts"`
	Fractions       map[string]float64 `json:"fractions"`
	Entropy         float64            `json:"entropy"`
	MolecularWeight float64            `json:"molecular_weight"`
}

// Summarize derives a Profile from a validated sequence.
func Summarize(seq domain.Sequence) Profile {
	counts := Analyze(seq)
	n := float64(seq.Len())

	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fractions := make(map[string]float64, len(counts))
	dist := make([]float64, 0, len(counts))
	for _, code := range codes {
		f := float64(counts[code]) / n
		fractions[code] = f
		dist = append(dist, f)
	}

	weight := waterMass
	for _, code := range codes {
		aa, _ := domain.LookupAminoAcid(code)
		weight += aa.Mass * float64(counts[code])
	}

	return Profile{
		Length:          seq.Len(),
		Counts:          counts,
		Fractions:       fractions,
		Entropy:         stat.Entropy(dist),
		MolecularWeight: weight,
	}
}
