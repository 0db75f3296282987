package optimize

import (
	"strings"

	"github.com/EpicenterPrograms/codonoptimizer/internal/fuzzy"
	"github.com/bebop/poly/transform"
)

// stemSizes are the lengths of the stems checked for complementary partners
var stemSizes = []int{18, 20, 22, 24}

// hairpinRegion is where repair is aimed when any hairpin is found. It's an
// approximation: the stem-loop prone span near the start codon, not the hairpin itself
var hairpinRegion = Region{Start: 17, End: 29}

// MeltingTemp estimates the melting temperature of a short sequence with Wallace's rule
func MeltingTemp(seq string) float64 {
	seq = strings.ToLower(seq)
	gc := strings.Count(seq, "g") + strings.Count(seq, "c")
	at := strings.Count(seq, "a") + strings.Count(seq, "t")
	return float64(4*gc + 2*at)
}

// Hairpins counts the pairs of windows in seq that could fold into a stem.
//
// each window's reverse complement is compared against every window of the same size
// that follows it: a pair counts if they are within maxDist edits per bp and either
// melts at or above minTm
func Hairpins(seq string, maxDist, minTm float64) (count int) {
	for _, size := range stemSizes {
		for i := 0; i < len(seq)-size*2; i++ {
			stem := transform.ReverseComplement(seq[i : i+size])
			stemTm := MeltingTemp(stem)

			rest := seq[i+size:]
			for j := 0; j < len(rest)-size; j++ {
				partner := rest[j : j+size]
				if float64(fuzzy.Distance(stem, partner, false))/float64(size) > maxDist {
					continue
				}
				if stemTm >= minTm || MeltingTemp(partner) >= minTm {
					count++
				}
			}
		}
	}
	return count
}
