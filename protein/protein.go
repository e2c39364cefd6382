// Package protein computes basic properties of amino acid sequences:
// molecular weight, composition, brutto formula and codon optimized DNA.
package protein

import (
	"errors"
	"fmt"

	"github.com/feliixx/goprotein/aminocode"
)

// Options struct to store the analysis parameters. Fields are tagged so
// that they can be filled directly from command line args
type Options struct {
	Procedure    string `short:"p" long:"procedure" value-name:"<name>" description:"Analysis to run on the sequences" choice:"molecular_weight" choice:"one_letter_to_three" choice:"get_amino_acid_sum" choice:"codon_optimization" choice:"length" choice:"brutto_count"`
	CellType     string `short:"c" long:"cell-type" value-name:"<organism>" description:"Host organism for codon_optimization. Possible values:\n  Esherichia coli, E.coli\n  Pichia pastoris, P.pastoris\n  Mouse, mouse\n"`
	LetterFormat int    `short:"l" long:"letter-format" value-name:"<n>" description:"Code of the input sequences: 1 for one-letter code, 3 for three-letter code" default:"1"`
	Output       string `short:"F" long:"output-format" value-name:"<format>" description:"Output format" choice:"text" choice:"json" choice:"svg" default:"text"`
	Summary      bool   `short:"S" long:"summary" description:"Append count, mean, standard deviation, min and max of numeric results (text output only)"`
}

// Errors returned by Analyze. They are wrapped with details on the
// failing input, use errors.Is to check for a specific kind
var (
	ErrInvalidResidue      = errors.New("invalid residue")
	ErrUnsupportedFormat   = errors.New("unsupported letter format")
	ErrUnsupportedOrganism = aminocode.ErrUnsupportedOrganism
	ErrUnknownProcedure    = errors.New("unknown procedure")
	ErrUnsupportedOutput   = errors.New("unsupported output")
)

// Procedure identifies one of the available analysis
type Procedure int

// Available procedures
const (
	MolecularWeightProc Procedure = iota
	OneLetterToThreeProc
	AminoAcidSumProc
	CodonOptimizationProc
	LengthProc
	BruttoCountProc
)

var procedureNames = [...]string{
	MolecularWeightProc:   "molecular_weight",
	OneLetterToThreeProc:  "one_letter_to_three",
	AminoAcidSumProc:      "get_amino_acid_sum",
	CodonOptimizationProc: "codon_optimization",
	LengthProc:            "length",
	BruttoCountProc:       "brutto_count",
}

// ParseProcedure returns the procedure with the given name
func ParseProcedure(name string) (Procedure, error) {
	for p, n := range procedureNames {
		if n == name {
			return Procedure(p), nil
		}
	}
	return 0, fmt.Errorf("%w: requested procedure %q is not defined", ErrUnknownProcedure, name)
}

func (p Procedure) String() string {
	if p < 0 || int(p) >= len(procedureNames) {
		return fmt.Sprintf("Procedure(%d)", int(p))
	}
	return procedureNames[p]
}

// MarshalText implements encoding.TextMarshaler
func (p Procedure) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Result holds the output of a procedure. Values are aligned with
// the input sequences
type Result struct {
	Procedure Procedure `json:"procedure"`
	Values    []Value   `json:"results"`
	Warnings  []string  `json:"warnings,omitempty"`
}

const ambiguousWarning = "all your sequences are similar to three-letter ones. Check the letter format value"

// Analyze normalizes the sequences according to options.LetterFormat and
// runs the requested procedure on them. A zero LetterFormat is read as
// OneLetterFormat.
//
// Nothing is returned but the error if any sequence is invalid
func Analyze(options Options, sequences ...string) (Result, error) {

	letterFormat := options.LetterFormat
	if letterFormat == 0 {
		letterFormat = OneLetterFormat
	}

	seqs, ambiguous, err := Normalize(sequences, letterFormat)
	if err != nil {
		return Result{}, err
	}

	procedure, err := ParseProcedure(options.Procedure)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Procedure: procedure,
		Values:    make([]Value, 0, len(seqs)),
	}
	if ambiguous {
		result.Warnings = append(result.Warnings, ambiguousWarning)
	}

	switch procedure {
	case MolecularWeightProc:
		for _, w := range MolecularWeight(seqs) {
			result.Values = append(result.Values, Weight(w))
		}
	case OneLetterToThreeProc:
		for _, s := range OneLetterToThree(seqs) {
			result.Values = append(result.Values, Sequence(s))
		}
	case AminoAcidSumProc:
		for _, c := range AminoAcidSum(seqs) {
			result.Values = append(result.Values, ResidueCount(c))
		}
	case CodonOptimizationProc:
		dna, err := CodonOptimization(seqs, options.CellType)
		if err != nil {
			return Result{}, err
		}
		for _, s := range dna {
			result.Values = append(result.Values, Sequence(s))
		}
	case LengthProc:
		for _, l := range Length(seqs) {
			result.Values = append(result.Values, SequenceLength(l))
		}
	case BruttoCountProc:
		for _, c := range BruttoCount(seqs) {
			result.Values = append(result.Values, AtomCount(c))
		}
	}
	return result, nil
}
