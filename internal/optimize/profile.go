package optimize

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"golang.org/x/exp/maps"
)

var (
	// ErrNoSpeciesSelected is returned when no species has a weight above zero
	ErrNoSpeciesSelected = errors.New("no species selected: at least one species must have a weight greater than zero")
)

const (
	// threshold beneath which a codon counts as rare
	lowUsage = 0.11

	// narrower threshold when optimizing for a single species, there's no cross-species conflict to average away
	lowUsageSingle = 0.08

	// how much heavier the worst species' usage counts than the weighted average
	worstWeight = 5.0
)

// Weights maps each target species to its weight. A weight of 0 excludes the species
type Weights map[codon.Species]int

// Species returns the species with a positive weight, in table order
func (w Weights) Species() []codon.Species {
	species := []codon.Species{}
	for _, s := range maps.Keys(w) {
		if w[s] > 0 {
			species = append(species, s)
		}
	}
	sort.Slice(species, func(i, j int) bool { return species[i] < species[j] })
	return species
}

// validate checks that each weight is non-negative and that one species is selected
func (w Weights) validate() error {
	for s, weight := range w {
		if weight < 0 {
			return fmt.Errorf("weight for %s must not be negative: %d", s, weight)
		}
	}
	if len(w.Species()) == 0 {
		return ErrNoSpeciesSelected
	}
	return nil
}

// Preference is the codons of a single amino acid and how likely each is to be chosen
type Preference struct {
	// Codons synonymous for the amino acid, in table order
	Codons []string `json:"codons"`

	// Weights parallel to Codons
	Weights []float64 `json:"weights"`
}

// Weight returns the weight of a codon, 0 if it isn't one of the Preference's codons
func (p Preference) Weight(c string) float64 {
	for i, pc := range p.Codons {
		if pc == c {
			return p.Weights[i]
		}
	}
	return 0
}

// Share returns the weight of the i-th codon as a fraction of the weights' total
func (p Preference) Share(i int) float64 {
	total := 0.0
	for _, w := range p.Weights {
		total += w
	}
	if total == 0 {
		return 0
	}
	return p.Weights[i] / total
}

// Profile maps each amino acid to its codon preference
type Profile map[codon.AminoAcid]Preference

// Weight returns the preference weight of a codon for the amino acid it encodes
func (p Profile) Weight(c string) float64 {
	aa, ok := codon.AminoAcidOf(c)
	if !ok {
		return 0
	}
	return p[aa].Weight(c)
}

// BuildProfile derives the codon preference of every amino acid from the usage table
// and the species' weights.
//
// A codon's raw preference is (avg + 5*worst) / 6 where avg is its weighted average usage
// and worst its lowest usage among the selected species: codons rare in even one species
// are penalized. Rare codons (raw preference beneath the threshold) are then dropped when
// optimizing for one species, or suppressed to a conservative value otherwise, and the
// rest are rescaled so each amino acid's weights total 1
func BuildProfile(weights Weights) (Profile, error) {
	if err := weights.validate(); err != nil {
		return nil, err
	}

	species := weights.Species()
	single := len(species) == 1
	threshold := lowUsage
	if single {
		threshold = lowUsageSingle
	}

	profile := make(Profile)
	for _, aa := range codon.AminoAcids() {
		codons := codon.Synonyms(aa)
		profile[aa] = Preference{
			Codons:  codons,
			Weights: adjust(codons, rawPreferences(codons, species, weights), species, threshold, single),
		}
	}
	return profile, nil
}

// rawPreferences mixes the weighted average usage of each codon with its worst usage
func rawPreferences(codons []string, species []codon.Species, weights Weights) []float64 {
	raw := make([]float64, len(codons))
	for i, c := range codons {
		total, weighted, worst := 0.0, 0.0, 1.0
		for _, s := range species {
			u := codon.Usage(c, s)
			total += float64(weights[s])
			weighted += u * float64(weights[s])
			worst = math.Min(worst, u)
		}
		raw[i] = (weighted/total + worst*worstWeight) / (worstWeight + 1)
	}
	return raw
}

// adjust suppresses the rare codons and renormalizes the rest
func adjust(codons []string, raw []float64, species []codon.Species, threshold float64, single bool) []float64 {
	adjusted := make([]float64, len(raw))
	above := make([]bool, len(raw))
	best := 0 // fallback in case every codon is rare
	lowTotal, highTotal := 0.0, 0.0

	for i, r := range raw {
		if r > raw[best] {
			best = i
		}

		if r >= threshold {
			above[i] = true
			adjusted[i] = r
			highTotal += r
			continue
		}

		if !single {
			adjusted[i] = suppress(codons[i], species, threshold)
			lowTotal += adjusted[i]
		}
	}

	for i := range adjusted {
		if above[i] {
			adjusted[i] = adjusted[i] * (1 - lowTotal) / highTotal
		}
	}

	total := 0.0
	for _, a := range adjusted {
		total += a
	}
	switch {
	case total == 0:
		// every codon was excluded, use the best available one
		adjusted[best] = raw[best]
	case highTotal == 0:
		// every codon was suppressed, scale them up to a distribution
		for i := range adjusted {
			adjusted[i] /= total
		}
	}
	return adjusted
}

// suppress returns the conservative weight of a rare codon: the least of 150% of
// its smallest usage, its unweighted average usage, and the threshold
func suppress(c string, species []codon.Species, threshold float64) float64 {
	average := 0.0
	for _, s := range species {
		average += codon.Usage(c, s)
	}
	average /= float64(len(species))

	w := math.Min(average, threshold)
	for _, s := range species {
		w = math.Min(w, codon.Usage(c, s)*1.5)
	}
	return w
}
