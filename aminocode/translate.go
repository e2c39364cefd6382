package aminocode

import (
	"fmt"
	"strings"
)

// Stop is the one-letter code of a stop codon
const Stop = '*'

// standard genetic code, see
// https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
var standard = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": Stop, "TAG": Stop,
	"TGT": 'C', "TGC": 'C', "TGA": Stop, "TGG": 'W',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate converts a DNA sequence to a protein sequence with the
// standard genetic code. 'U' is read as 'T', so RNA is accepted too
func Translate(dna string) (string, error) {

	if len(dna)%3 != 0 {
		return "", fmt.Errorf("invalid DNA length: %d is not a multiple of 3", len(dna))
	}

	dna = strings.ReplaceAll(strings.ToUpper(dna), "U", "T")

	var prot strings.Builder
	prot.Grow(len(dna) / 3)

	for pos := 0; pos < len(dna); pos += 3 {
		aaCode, ok := standard[dna[pos:pos+3]]
		if !ok {
			return "", fmt.Errorf("invalid codon at position %d: %s", pos, dna[pos:pos+3])
		}
		prot.WriteByte(aaCode)
	}
	return prot.String(), nil
}

// Check makes sure the codon table has a triplet for each of the
// standard residues, and that each triplet translates back to its
// residue with the standard genetic code
func (t CodonTable) Check() error {

	for i := 0; i < len(Residues); i++ {
		codon, ok := t[Residues[i]]
		if !ok {
			return fmt.Errorf("no codon for residue %c", Residues[i])
		}
		prot, err := Translate(codon)
		if err != nil {
			return err
		}
		if len(prot) != 1 || prot[0] != Residues[i] {
			return fmt.Errorf("codon %s encodes %s, not %c", codon, prot, Residues[i])
		}
	}
	return nil
}
