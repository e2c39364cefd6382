package protein

import (
	"strconv"
	"strings"

	"github.com/feliixx/goprotein/aminocode"
)

// All the procedures below expect sequences in one-letter code, as returned
// by Normalize. Lower case residues are read as upper case ones.

// MolecularWeight returns the predicted molecular weight of each
// sequence in kDa, rounded to 2 decimals
func MolecularWeight(sequences []string) []float64 {

	weights := make([]float64, 0, len(sequences))
	for _, seq := range sequences {
		total := 0.0
		for i := 0; i < len(seq); i++ {
			total += aminocode.Weights[upper(seq[i])]
		}
		weights = append(weights, round2(total/1000))
	}
	return weights
}

// round2 rounds x to 2 decimals. Ties are broken on the exact binary
// value of x, so 0.855 (stored as 0.85499...) gives 0.85
func round2(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return r
}

// OneLetterToThree translates each sequence to three-letter code
func OneLetterToThree(sequences []string) []string {

	threeLetterSeqs := make([]string, 0, len(sequences))
	for _, seq := range sequences {
		var b strings.Builder
		b.Grow(3 * len(seq))
		for i := 0; i < len(seq); i++ {
			b.WriteString(aminocode.ThreeLetter[upper(seq[i])])
		}
		threeLetterSeqs = append(threeLetterSeqs, b.String())
	}
	return threeLetterSeqs
}

// AminoAcidSum counts the occurrences of each residue in each sequence.
// Every standard residue is present in the returned maps, even if
// absent from the sequence
func AminoAcidSum(sequences []string) []map[string]int {

	sums := make([]map[string]int, 0, len(sequences))
	for _, seq := range sequences {
		count := make(map[string]int, len(aminocode.Residues))
		for i := 0; i < len(aminocode.Residues); i++ {
			count[aminocode.Residues[i:i+1]] = 0
		}
		for i := 0; i < len(seq); i++ {
			r := string(upper(seq[i]))
			if _, ok := count[r]; ok {
				count[r]++
			}
		}
		sums = append(sums, count)
	}
	return sums
}

// CodonOptimization returns the DNA encoding each sequence with the
// preferred codons of cellType. See aminocode.LoadCodonTable for
// accepted cell types
func CodonOptimization(sequences []string, cellType string) ([]string, error) {

	table, err := aminocode.LoadCodonTable(cellType)
	if err != nil {
		return nil, err
	}

	dna := make([]string, 0, len(sequences))
	for _, seq := range sequences {
		var b strings.Builder
		b.Grow(3 * len(seq))
		for i := 0; i < len(seq); i++ {
			b.WriteString(table[upper(seq[i])])
		}
		dna = append(dna, b.String())
	}
	return dna, nil
}

// Length returns the number of residues of each sequence
func Length(sequences []string) []int {
	lengths := make([]int, 0, len(sequences))
	for _, seq := range sequences {
		lengths = append(lengths, len(seq))
	}
	return lengths
}

// BruttoCount returns the number of atoms of each element (C, H, N, O
// and S) in each sequence
func BruttoCount(sequences []string) []map[string]int {

	counts := make([]map[string]int, 0, len(sequences))
	for _, seq := range sequences {

		var brutto aminocode.Formula
		for i := 0; i < len(seq); i++ {
			formula := aminocode.Formulas[upper(seq[i])]
			for e := range brutto {
				brutto[e] += formula[e]
			}
		}

		count := make(map[string]int, len(aminocode.Elements))
		for e := range brutto {
			count[aminocode.Elements[e:e+1]] = brutto[e]
		}
		counts = append(counts, count)
	}
	return counts
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
