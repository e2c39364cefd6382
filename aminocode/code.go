// Package aminocode stores the static amino acid tables:
// one-letter <-> three-letter codes, residue weights,
// residue brutto formulas and host specific codon tables.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Class/MLACourse/Modules/MolBioReview/iupac_aa_abbreviations.html
package aminocode

import (
	"errors"
	"fmt"
	"strings"
)

// Residues lists the 20 standard amino acids one-letter codes. This order
// is used whenever residues are enumerated
const Residues = "ARNDVHGQEILKMPSYTWFC"

// Elements lists the atoms counted in a brutto formula, in the
// order used by Formula
const Elements = "CHNOS"

// Formula stores the number of C, H, N, O and S atoms of a residue
type Formula [len(Elements)]int

var (
	// ThreeLetter maps a one-letter code to its three-letter code
	ThreeLetter = map[byte]string{
		'A': "Ala",
		'R': "Arg",
		'N': "Asn",
		'D': "Asp",
		'V': "Val",
		'H': "His",
		'G': "Gly",
		'Q': "Gln",
		'E': "Glu",
		'I': "Ile",
		'L': "Leu",
		'K': "Lys",
		'M': "Met",
		'P': "Pro",
		'S': "Ser",
		'Y': "Tyr",
		'T': "Thr",
		'W': "Trp",
		'F': "Phe",
		'C': "Cys",
	}

	// OneLetter maps a lower case three-letter code to its one-letter code
	OneLetter = reverse(ThreeLetter)

	// Weights stores the molecular weight of each residue, in Da
	Weights = map[byte]float64{
		'A': 89.09,
		'R': 174.20,
		'N': 132.12,
		'D': 133.10,
		'C': 121.16,
		'E': 147.13,
		'Q': 146.15,
		'G': 75.07,
		'H': 155.16,
		'I': 131.18,
		'L': 131.18,
		'K': 146.19,
		'M': 149.21,
		'F': 165.19,
		'P': 115.13,
		'S': 105.09,
		'T': 119.12,
		'W': 204.23,
		'Y': 181.19,
		'V': 117.15,
	}

	// Formulas stores the brutto formula of each residue
	Formulas = map[byte]Formula{
		'A': {3, 7, 1, 2, 0},
		'R': {6, 14, 4, 2, 0},
		'N': {4, 8, 2, 3, 0},
		'D': {4, 7, 1, 4, 0},
		'V': {5, 11, 1, 2, 0},
		'H': {6, 9, 3, 2, 0},
		'G': {2, 5, 1, 2, 0},
		'Q': {5, 10, 2, 3, 0},
		'E': {5, 9, 1, 4, 0},
		'I': {6, 13, 1, 2, 0},
		'L': {6, 13, 1, 2, 0},
		'K': {6, 14, 2, 2, 0},
		'M': {5, 11, 1, 2, 1},
		'P': {5, 9, 1, 2, 0},
		'S': {3, 7, 1, 3, 0},
		'Y': {9, 11, 1, 3, 0},
		'T': {4, 9, 1, 3, 0},
		'W': {11, 12, 2, 2, 0},
		'F': {9, 11, 1, 2, 0},
		'C': {3, 7, 1, 2, 1},
	}
)

func reverse(m map[byte]string) map[string]byte {
	r := make(map[string]byte, len(m))
	for oneLetter, threeLetter := range m {
		r[strings.ToLower(threeLetter)] = oneLetter
	}
	return r
}

// CodonTable maps a one-letter code to the DNA triplet used
// to encode it
type CodonTable map[byte]string

var (
	ecoli = CodonTable{
		'A': "GCG",
		'C': "TGC",
		'D': "GAT",
		'E': "GAA",
		'F': "TTT",
		'G': "GGC",
		'H': "CAT",
		'I': "ATT",
		'K': "AAA",
		'L': "CTG",
		'M': "ATG",
		'N': "AAC",
		'P': "CCG",
		'Q': "CAG",
		'R': "CGT",
		'S': "AGC",
		'T': "ACC",
		'V': "GTG",
		'W': "TGG",
		'Y': "TAT",
	}

	pichiaPastoris = CodonTable{
		'A': "GCT",
		'C': "TGT",
		'D': "GAT",
		'E': "GAA",
		'F': "TTT",
		'G': "GGT",
		'H': "CAT",
		'I': "ATT",
		'K': "AAG",
		'L': "TTG",
		'M': "ATG",
		'N': "AAC",
		'P': "CCA",
		'Q': "CAA",
		'R': "AGA",
		'S': "TCT",
		'T': "ACT",
		'V': "GTT",
		'W': "TGG",
		'Y': "TAC",
	}

	mouse = CodonTable{
		'A': "GCC",
		'C': "TGC",
		'D': "GAC",
		'E': "GAG",
		'F': "TTC",
		'G': "GGC",
		'H': "CAC",
		'I': "ATC",
		'K': "AAG",
		'L': "CTG",
		'M': "ATG",
		'N': "AAC",
		'P': "CCC",
		'Q': "CAG",
		'R': "CGG",
		'S': "AGC",
		'T': "ACC",
		'V': "GTG",
		'W': "TGG",
		'Y': "TAC",
	}

	cellTypes = map[string]CodonTable{
		EscherichiaColi: ecoli,
		"E.coli":        ecoli,
		PichiaPastoris:  pichiaPastoris,
		"P.pastoris":    pichiaPastoris,
		Mouse:           mouse,
		"mouse":         mouse,
	}
)

// Supported organisms
const (
	EscherichiaColi = "Esherichia coli"
	PichiaPastoris  = "Pichia pastoris"
	Mouse           = "Mouse"
)

// ErrUnsupportedOrganism is returned when no codon table
// exists for a cell type
var ErrUnsupportedOrganism = errors.New("unsupported organism")

// LoadCodonTable returns the codon table of a cell type. Accepted cell
// types are the organism names and their short aliases "E.coli",
// "P.pastoris" and "mouse". The table is checked against the standard
// genetic code before being returned
func LoadCodonTable(cellType string) (CodonTable, error) {

	table, ok := cellTypes[cellType]
	if !ok {
		return nil, fmt.Errorf("%w: type %s is not supported. The following types of organisms are available for codon optimization: %s, %s, %s",
			ErrUnsupportedOrganism, cellType, EscherichiaColi, PichiaPastoris, Mouse)
	}
	if err := table.Check(); err != nil {
		return nil, fmt.Errorf("invalid codon table for %s: %v", cellType, err)
	}
	return table, nil
}
