package optimize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/EpicenterPrograms/codonoptimizer/internal/enzyme"
)

var (
	// ErrNoSequenceProvided is returned when the request has neither an amino acid nor a DNA sequence
	ErrNoSequenceProvided = errors.New("no sequence provided: an amino acid or DNA sequence is required")

	// ErrUnknownAminoAcid is returned for symbols that aren't an amino acid with a codon
	ErrUnknownAminoAcid = errors.New("unknown amino acid")
)

// Request is everything that defines one optimization. It isn't changed by the optimizer
type Request struct {
	// AminoAcids is the lowercase protein sequence to reverse translate
	AminoAcids string `json:"aminoAcids"`

	// Weights of each target species
	Weights Weights `json:"weights"`

	// Enzymes whose recognition sites are avoided
	Enzymes []enzyme.Enzyme `json:"enzymes"`
}

// NewRequest normalizes and validates the inputs of an optimization.
//
// Either aminoAcids or dna must be given: dna is translated if aminoAcids is empty.
// Whitespace is stripped from both and they are lowercased
func NewRequest(aminoAcids, dna string, weights Weights, enzymes []enzyme.Enzyme) (Request, error) {
	aminoAcids, dna = normalize(aminoAcids), normalize(dna)

	switch {
	case aminoAcids == "" && dna == "":
		return Request{}, ErrNoSequenceProvided
	case aminoAcids == "":
		aminoAcids = codon.Translate(dna)
	}

	if err := weights.validate(); err != nil {
		return Request{}, err
	}

	if err := validateAminoAcids(aminoAcids); err != nil {
		return Request{}, err
	}

	if enzymes == nil {
		enzymes = []enzyme.Enzyme{}
	}
	return Request{AminoAcids: aminoAcids, Weights: weights, Enzymes: enzymes}, nil
}

// normalize lowercases a sequence and strips its whitespace
func normalize(seq string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, seq)
}

// validateAminoAcids checks that every symbol of the sequence can be reverse translated
func validateAminoAcids(aas string) error {
	for i := 0; i < len(aas); i++ {
		b := aas[i]
		switch {
		case codon.IsNonCanonical(b):
			return fmt.Errorf("%w: %q at position %d is non-canonical and has no codon", ErrUnknownAminoAcid, b, i+1)
		case !codon.AminoAcid(b).Valid():
			return fmt.Errorf("%w: %q at position %d", ErrUnknownAminoAcid, b, i+1)
		}
	}
	return nil
}
