package domain

// ResidueClass groups the standard amino acids by side-chain chemistry.
type ResidueClass string

// Chemical classes used by the catalog. Glycine sits in its own
// "special" class because its side chain is a single hydrogen.
const (
	ClassHydrophobic    ResidueClass = "hydrophobic"
	ClassPolarUncharged ResidueClass = "polar-uncharged"
	ClassPositive       ResidueClass = "positive-charged"
	ClassNegative       ResidueClass = "negative-charged"
	ClassSpecial        ResidueClass = "special"
)

// AminoAcid is one catalog entry for a standard residue. Mass is the
// average residue mass in daltons (monomer minus one water), so a chain
// weight is the sum of residue masses plus a single water.
type AminoAcid struct {
	Code  string       `json:"code"`
	Name  string       `json:"name"`
	Class ResidueClass `json:"class"`
	Mass  float64      `json:"mass"`
}

// The 20 standard amino acids ordered by single-letter code. The set is
// a domain constant and is never mutated at runtime.
var aminoAcids = [20]AminoAcid{
	{Code: "A", Name: "Alanine", Class: ClassHydrophobic, Mass: 71.0788},
	{Code: "C", Name: "Cysteine", Class: ClassPolarUncharged, Mass: 103.1388},
	{Code: "D", Name: "Aspartic acid", Class: ClassNegative, Mass: 115.0886},
	{Code: "E", Name: "Glutamic acid", Class: ClassNegative, Mass: 129.1155},
	{Code: "F", Name: "Phenylalanine", Class: ClassHydrophobic, Mass: 147.1766},
	{Code: "G", Name: "Glycine", Class: ClassSpecial, Mass: 57.0519},
	{Code: "H", Name: "Histidine", Class: ClassPositive, Mass: 137.1411},
	{Code: "I", Name: "Isoleucine", Class: ClassHydrophobic, Mass: 113.1594},
	{Code: "K", Name: "Lysine", Class: ClassPositive, Mass: 128.1741},
	{Code: "L", Name: "Leucine", Class: ClassHydrophobic, Mass: 113.1594},
	{Code: "M", Name: "Methionine", Class: ClassHydrophobic, Mass: 131.1926},
	{Code: "N", Name: "Asparagine", Class: ClassPolarUncharged, Mass: 114.1038},
	{Code: "P", Name: "Proline", Class: ClassHydrophobic, Mass: 97.1167},
	{Code: "Q", Name: "Glutamine", Class: ClassPolarUncharged, Mass: 128.1307},
	{Code: "R", Name: "Arginine", Class: ClassPositive, Mass: 156.1875},
	{Code: "S", Name: "Serine", Class: ClassPolarUncharged, Mass: 87.0782},
	{Code: "T", Name: "Threonine", Class: ClassPolarUncharged, Mass: 101.1051},
	{Code: "V", Name: "Valine", Class: ClassHydrophobic, Mass: 99.1326},
	{Code: "W", Name: "Tryptophan", Class: ClassHydrophobic, Mass: 186.2132},
	{Code: "Y", Name: "Tyrosine", Class: ClassPolarUncharged, Mass: 163.176},
}

var aminoAcidsByCode = func() map[byte]AminoAcid {
	m := make(map[byte]AminoAcid, len(aminoAcids))
	for _, aa := range aminoAcids {
		m[aa.Code[0]] = aa
	}
	return m
}()

// AminoAcids returns the catalog in stable code order. The returned
// slice is a copy; callers may not reach the backing table.
func AminoAcids() []AminoAcid {
	out := make([]AminoAcid, len(aminoAcids))
	copy(out, aminoAcids[:])
	return out
}

// LookupAminoAcid retrieves a catalog entry by single-letter code.
func LookupAminoAcid(code string) (AminoAcid, bool) {
	if len(code) != 1 {
		return AminoAcid{}, false
	}
	aa, ok := aminoAcidsByCode[code[0]]
	return aa, ok
}

// IsResidue reports whether b is a standard residue code.
func IsResidue(b byte) bool {
	_, ok := aminoAcidsByCode[b]
	return ok
}
