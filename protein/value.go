package protein

import (
	"strconv"
	"strings"

	"github.com/feliixx/goprotein/aminocode"
)

// Value is the result of a procedure for a single sequence. Its
// concrete type depends on the procedure:
//
//	molecular_weight     Weight
//	one_letter_to_three  Sequence
//	get_amino_acid_sum   ResidueCount
//	codon_optimization   Sequence
//	length               SequenceLength
//	brutto_count         AtomCount
type Value interface {
	String() string
}

// Weight is a molecular weight in kDa
type Weight float64

func (w Weight) String() string {
	return strconv.FormatFloat(float64(w), 'f', 2, 64)
}

// Sequence is a three-letter coded protein sequence or a DNA sequence
type Sequence string

func (s Sequence) String() string {
	return string(s)
}

// SequenceLength is a number of residues
type SequenceLength int

func (l SequenceLength) String() string {
	return strconv.Itoa(int(l))
}

// ResidueCount maps one-letter codes to their number of occurrences
type ResidueCount map[string]int

// String lists counts as "A:1 R:0 ..." with residues in aminocode.Residues order
func (c ResidueCount) String() string {
	return formatCount(c, aminocode.Residues)
}

// AtomCount maps elements (C, H, N, O, S) to their number of atoms
type AtomCount map[string]int

// String lists counts as "C:3 H:7 N:1 O:2 S:0"
func (c AtomCount) String() string {
	return formatCount(c, aminocode.Elements)
}

func formatCount(count map[string]int, keys string) string {
	var b strings.Builder
	for i := 0; i < len(keys); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(keys[i : i+1])
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(count[keys[i:i+1]]))
	}
	return b.String()
}

// numeric returns the values of a result as float64, or false if
// the result is not made of numbers
func numeric(values []Value) ([]float64, bool) {
	floats := make([]float64, 0, len(values))
	for _, v := range values {
		switch n := v.(type) {
		case Weight:
			floats = append(floats, float64(n))
		case SequenceLength:
			floats = append(floats, float64(n))
		default:
			return nil, false
		}
	}
	return floats, true
}
