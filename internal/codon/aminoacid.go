package codon

// AminoAcid is a one-letter, lowercase amino acid code. Stop is '*'
type AminoAcid byte

const (
	// Stop is the translation stop signal
	Stop AminoAcid = '*'

	// Unknown is what an unrecognized triplet translates to
	Unknown AminoAcid = '?'
)

// aminoAcids are the 20 canonical amino acids plus stop, in the order
// their synonyms are listed
var aminoAcids = []AminoAcid{
	'a', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'k', 'l',
	'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y', Stop,
}

// AminoAcids returns the amino acids that codons can be chosen for
func AminoAcids() []AminoAcid {
	return append([]AminoAcid{}, aminoAcids...)
}

// IsNonCanonical reports whether the symbol is pyrrolysine (o) or selenocysteine (u).
// Both are valid protein letters, but neither has a codon in the usage table
func IsNonCanonical(b byte) bool {
	return b == 'o' || b == 'u'
}

// Valid reports whether codons can be chosen for the amino acid
func (a AminoAcid) Valid() bool {
	for _, aa := range aminoAcids {
		if aa == a {
			return true
		}
	}
	return false
}

func (a AminoAcid) String() string {
	return string(a)
}
