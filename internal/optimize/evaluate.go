package optimize

import (
	"math"
	"strings"

	"github.com/EpicenterPrograms/codonoptimizer/config"
	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/bebop/poly/checks"
)

// Candidate is a scored DNA sequence
type Candidate struct {
	// Seq is the DNA sequence, lowercase
	Seq string `json:"seq"`

	// Score starts at 100 and loses points for each problem in Seq
	Score float64 `json:"score"`

	// GC is the percentage of bases in Seq that are G or C
	GC float64 `json:"gc"`

	// Soft are regions with motif or hairpin problems
	Soft []Region `json:"soft"`

	// Hard are regions with restriction sites
	Hard []Region `json:"hard"`
}

// Regions returns every flagged region of the candidate, soft then hard
func (c Candidate) Regions() []Region {
	regions := make([]Region, 0, len(c.Soft)+len(c.Hard))
	regions = append(regions, c.Soft...)
	return append(regions, c.Hard...)
}

// Evaluator scores candidate sequences against one profile and set of restriction sites
type Evaluator struct {
	profile Profile
	sites   []string
	conf    config.ScoringConfig
}

// NewEvaluator returns an Evaluator. sites should already include the reverse
// complements of non-palindromic enzyme sites (see enzyme.Sites)
func NewEvaluator(p Profile, sites []string, conf config.ScoringConfig) *Evaluator {
	lowered := make([]string, len(sites))
	for i, s := range sites {
		lowered[i] = strings.ToLower(s)
	}
	motifs := make([]string, len(conf.Motifs))
	for i, m := range conf.Motifs {
		motifs[i] = strings.ToLower(m)
	}
	conf.Motifs = motifs

	return &Evaluator{profile: p, sites: lowered, conf: conf}
}

// Evaluate scores a DNA sequence and flags its problem regions.
//
// Soft regions are unconsolidated so they show where each motif is. Hard regions
// are consolidated to codon boundaries
func (e *Evaluator) Evaluate(seq string) Candidate {
	seq = strings.ToLower(seq)
	c := Candidate{Seq: seq, Score: 100, Soft: []Region{}, Hard: []Region{}}

	for _, m := range e.conf.Motifs {
		for _, r := range findOverlapping(seq, m) {
			c.Score -= e.conf.MotifPenalty
			c.Soft = append(c.Soft, r)
		}
	}

	var hard []Region
	for _, site := range e.sites {
		for _, r := range findOverlapping(seq, site) {
			c.Score -= e.conf.RestrictionPenalty
			hard = append(hard, r)
		}
	}
	if len(hard) > 0 {
		c.Hard = Consolidate(hard)
	}

	window := seq
	if len(window) > e.conf.HairpinWindow {
		window = window[:e.conf.HairpinWindow]
	}
	if n := Hairpins(window, e.conf.HairpinSimilarity, e.conf.HairpinTm); n > 0 {
		c.Score -= float64(n) * e.conf.HairpinPenalty
		if r := (Region{Start: hairpinRegion.Start, End: min(hairpinRegion.End, len(seq))}); r.Start < r.End {
			c.Soft = append(c.Soft, r)
		}
	}

	gc := 0.0
	if len(seq) > 0 {
		gc = checks.GcContent(seq)
	}
	c.GC = gc * 100
	c.Score -= GCPenalty(gc, e.conf.GCMin, e.conf.GCMax)
	c.Score -= e.usagePenalty(seq)

	return c
}

// findOverlapping returns the span of every occurrence of sub in seq, overlaps included
func findOverlapping(seq, sub string) (spans []Region) {
	if sub == "" {
		return nil
	}
	for i := 0; i+len(sub) <= len(seq); {
		j := strings.Index(seq[i:], sub)
		if j < 0 {
			break
		}
		spans = append(spans, Region{Start: i + j, End: i + j + len(sub)})
		i += j + 1
	}
	return spans
}

// GCPenalty is the points lost for a GC fraction outside of [lo, hi].
// It grows with the square of the distance, in percentage points, from the band
func GCPenalty(gc, lo, hi float64) float64 {
	switch {
	case gc < lo:
		return math.Pow((lo-gc)*100, 2)
	case gc > hi:
		return math.Pow((gc-hi)*100, 2)
	default:
		return 0
	}
}

// usagePenalty is the points lost for codons used at a rate far from their preference.
//
// each codon in seq is expected weight*n times, where n is the number of codons
// for the same amino acid. Only whole multiples of the expected count are penalized
func (e *Evaluator) usagePenalty(seq string) float64 {
	observed := make(map[string]int)
	perAminoAcid := make(map[codon.AminoAcid]int)
	var order []string // first-seen order so summation is reproducible

	for i := 0; i+3 <= len(seq); i += 3 {
		c := seq[i : i+3]
		aa, ok := codon.AminoAcidOf(c)
		if !ok {
			continue
		}
		if observed[c] == 0 {
			order = append(order, c)
		}
		observed[c]++
		perAminoAcid[aa]++
	}

	penalty := 0.0
	for _, c := range order {
		aa, _ := codon.AminoAcidOf(c)
		expected := math.Max(e.profile[aa].Weight(c)*float64(perAminoAcid[aa]), 1e-6)
		penalty += math.Floor(math.Abs(expected-float64(observed[c])) / expected)
	}
	return penalty
}
