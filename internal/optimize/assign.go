package optimize

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
)

// Assign reverse translates an amino acid sequence, drawing each codon at random
// in proportion to its weight in the profile.
//
// Each codon draw consumes one value from rng
func Assign(aas string, p Profile, rng *rand.Rand) (string, error) {
	var seq strings.Builder
	seq.Grow(len(aas) * 3)

	for i := 0; i < len(aas); i++ {
		pref, ok := p[codon.AminoAcid(aas[i])]
		if !ok || len(pref.Codons) == 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrUnknownAminoAcid, aas[i], i+1)
		}
		seq.WriteString(pref.draw(rng.Float64()))
	}
	return seq.String(), nil
}

// draw picks the codon whose cumulative weight range contains x, x in [0, 1)
func (p Preference) draw(x float64) string {
	total := 0.0
	for _, w := range p.Weights {
		total += w
	}
	x *= total

	last := p.Codons[0] // last codon with a positive weight, covers rounding at the top of the range
	cumulative := 0.0
	for i, w := range p.Weights {
		if w <= 0 {
			continue
		}
		last = p.Codons[i]
		cumulative += w
		if x < cumulative {
			return last
		}
	}
	return last
}
