package protein

import (
	"fmt"
	"strings"

	"github.com/feliixx/goprotein/aminocode"
)

// Letter formats of input sequences
const (
	OneLetterFormat   = 1
	ThreeLetterFormat = 3
)

// IsAminoAcid returns true if token is either an upper case one-letter
// code, or a three-letter code in any case
func IsAminoAcid(token string) bool {
	switch len(token) {
	case 1:
		_, ok := aminocode.ThreeLetter[token[0]]
		return ok
	case 3:
		_, ok := aminocode.OneLetter[strings.ToLower(token)]
		return ok
	default:
		return false
	}
}

// Normalize validates the sequences and converts them to upper case
// one-letter code.
//
// In one-letter format, ambiguous is true when every sequence could
// also be read as a three-letter coded sequence, for example "Ala"
func Normalize(sequences []string, letterFormat int) (normalized []string, ambiguous bool, err error) {

	switch letterFormat {
	case OneLetterFormat:
		return normalizeOneLetter(sequences)
	case ThreeLetterFormat:
		normalized, err = normalizeThreeLetter(sequences)
		return normalized, false, err
	default:
		return nil, false, fmt.Errorf("%w: %d, only letter formats 1 and 3 are supported", ErrUnsupportedFormat, letterFormat)
	}
}

func normalizeOneLetter(sequences []string) ([]string, bool, error) {

	normalized := make([]string, 0, len(sequences))
	ambiguous := len(sequences) > 0

	for _, seq := range sequences {

		if ambiguous && !looksLikeThreeLetter(seq) {
			ambiguous = false
		}

		seq = strings.ToUpper(seq)
		for _, aa := range seq {
			if !IsAminoAcid(string(aa)) {
				return nil, false, fmt.Errorf("%w: %q is not an amino acid, correct your input", ErrInvalidResidue, aa)
			}
		}
		normalized = append(normalized, seq)
	}
	return normalized, ambiguous, nil
}

func normalizeThreeLetter(sequences []string) ([]string, error) {

	normalized := make([]string, 0, len(sequences))

	for _, seq := range sequences {

		seq = strings.ToLower(seq)

		var b strings.Builder
		b.Grow(len(seq) / 3)

		for pos := 0; pos < len(seq); pos += 3 {
			// the last group may be shorter than 3 letters
			end := pos + 3
			if end > len(seq) {
				end = len(seq)
			}
			triplet := seq[pos:end]
			if len(triplet) != 3 || !IsAminoAcid(triplet) {
				return nil, fmt.Errorf("%w: %q is not an amino acid, correct your input", ErrInvalidResidue, triplet)
			}
			b.WriteByte(aminocode.OneLetter[triplet])
		}
		normalized = append(normalized, b.String())
	}
	return normalized, nil
}

// looksLikeThreeLetter returns true if seq is a non empty series of
// valid three-letter codes
func looksLikeThreeLetter(seq string) bool {

	if len(seq) == 0 || len(seq)%3 != 0 {
		return false
	}
	for pos := 0; pos < len(seq); pos += 3 {
		if !IsAminoAcid(seq[pos : pos+3]) {
			return false
		}
	}
	return true
}
