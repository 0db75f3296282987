package optimize

import (
	"fmt"
	"sort"
)

// Region is a half-open [Start, End) span of a DNA sequence
type Region struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Consolidate snaps each region out to codon boundaries, then merges regions
// that overlap or touch. The result is sorted and pairwise disjoint, so
// re-assigning codons over a region never splits a codon
func Consolidate(regions []Region) []Region {
	if len(regions) == 0 {
		return nil
	}

	aligned := make([]Region, len(regions))
	for i, r := range regions {
		aligned[i] = Region{Start: r.Start - r.Start%3, End: r.End}
		if rem := r.End % 3; rem != 0 {
			aligned[i].End += 3 - rem
		}
	}
	sort.Slice(aligned, func(i, j int) bool {
		if aligned[i].Start == aligned[j].Start {
			return aligned[i].End < aligned[j].End
		}
		return aligned[i].Start < aligned[j].Start
	})

	merged := []Region{aligned[0]}
	for _, r := range aligned[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Expand widens each region by bp on both sides, clamped to [0, length)
func Expand(regions []Region, bp, length int) []Region {
	if regions == nil {
		return nil
	}

	expanded := make([]Region, len(regions))
	for i, r := range regions {
		expanded[i] = Region{Start: max(r.Start-bp, 0), End: min(r.End+bp, length)}
	}
	return expanded
}
