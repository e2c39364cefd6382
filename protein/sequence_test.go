package protein_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/feliixx/goprotein/protein"
)

func TestIsAminoAcid(t *testing.T) {

	tests := map[string]bool{
		"A":    true,
		"W":    true,
		"a":    false,
		"X":    false,
		"B":    false,
		"Ala":  true,
		"ala":  true,
		"ALA":  true,
		"aLa":  true,
		"Xyz":  false,
		"Al":   false,
		"":     false,
		"Alaa": false,
		"é":    false,
	}

	for token, expected := range tests {
		if want, got := expected, protein.IsAminoAcid(token); want != got {
			t.Errorf("%q: expected %v but got %v", token, want, got)
		}
	}
}

func TestNormalize(t *testing.T) {

	tests := []struct {
		name         string
		sequences    []string
		letterFormat int
		expected     []string
		ambiguous    bool
		err          error
	}{
		{
			name:         "one-letter upper case",
			sequences:    []string{"mkt", "Ac", ""},
			letterFormat: protein.OneLetterFormat,
			expected:     []string{"MKT", "AC", ""},
		},
		{
			name:         "one-letter ambiguous",
			sequences:    []string{"Ala"},
			letterFormat: protein.OneLetterFormat,
			expected:     []string{"ALA"},
			ambiguous:    true,
		},
		{
			name:         "one-letter invalid",
			sequences:    []string{"X"},
			letterFormat: protein.OneLetterFormat,
			err:          protein.ErrInvalidResidue,
		},
		{
			name:         "one-letter invalid after valid sequence",
			sequences:    []string{"ACD", "AC*"},
			letterFormat: protein.OneLetterFormat,
			err:          protein.ErrInvalidResidue,
		},
		{
			name:         "three-letter",
			sequences:    []string{"Ala"},
			letterFormat: protein.ThreeLetterFormat,
			expected:     []string{"A"},
		},
		{
			name:         "three-letter case insensitive",
			sequences:    []string{"ala", "METlysTHR", ""},
			letterFormat: protein.ThreeLetterFormat,
			expected:     []string{"A", "MKT", ""},
		},
		{
			name:         "three-letter trailing group",
			sequences:    []string{"AlaGl"},
			letterFormat: protein.ThreeLetterFormat,
			err:          protein.ErrInvalidResidue,
		},
		{
			name:         "three-letter unknown code",
			sequences:    []string{"AlaXaa"},
			letterFormat: protein.ThreeLetterFormat,
			err:          protein.ErrInvalidResidue,
		},
		{
			name:         "unsupported format",
			sequences:    []string{"A"},
			letterFormat: 2,
			err:          protein.ErrUnsupportedFormat,
		},
		{
			name:         "zero format",
			sequences:    []string{"A"},
			letterFormat: 0,
			err:          protein.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {

		test := tt
		t.Run(test.name, func(t *testing.T) {

			normalized, ambiguous, err := protein.Normalize(test.sequences, test.letterFormat)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Errorf("expected error %v but got %v", test.err, err)
				}
				if normalized != nil {
					t.Errorf("expected no partial result but got %v", normalized)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if want, got := strings.Join(test.expected, ","), strings.Join(normalized, ","); want != got {
				t.Errorf("expected %s but got %s", want, got)
			}
			if want, got := test.ambiguous, ambiguous; want != got {
				t.Errorf("expected ambiguous %v but got %v", want, got)
			}
		})
	}
}

func TestNormalizeErrorNamesResidue(t *testing.T) {

	_, _, err := protein.Normalize([]string{"ACZ"}, protein.OneLetterFormat)
	if err == nil || !strings.Contains(err.Error(), "'Z'") {
		t.Errorf("expected error naming 'Z' but got %v", err)
	}

	_, _, err = protein.Normalize([]string{"AlaFoo"}, protein.ThreeLetterFormat)
	if err == nil || !strings.Contains(err.Error(), `"foo"`) {
		t.Errorf("expected error naming \"foo\" but got %v", err)
	}
}
