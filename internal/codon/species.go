package codon

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/EpicenterPrograms/codonoptimizer/internal/fuzzy"
	"golang.org/x/exp/maps"
)

// ErrUnknownSpecies is returned for a species name absent from the usage table
var ErrUnknownSpecies = errors.New("unknown species")

// Species is an organism with codon usage statistics in the usage table
type Species int

const (
	AliivibrioFischeri Species = iota
	ArabidopsisThaliana
	BacillusSubtilis
	CaenorhabditisElegans
	DanioRerio
	DeinococcusRadiodurans
	DrosophilaMelanogaster
	EscherichiaColi
	HaloferaxVolcanii
	HomoSapiens
	HydraVulgaris
	OryzaSativa
	PhyscomitrellaPatens
	PopulusTrichocarpa
	ProcambarusClarkii
	PyrocystisFusiformis
	SaccharomycesCerevisiae
	Synechocystis
	VibrioNatriegens

	speciesCount
)

// speciesNames are the display names, matching the usage table's header
var speciesNames = [speciesCount]string{
	"Aliivibrio fischeri",
	"Arabidopsis thaliana",
	"Bacillus subtilis",
	"Caenorhabditis elegans",
	"Danio rerio",
	"Deinococcus radiodurans R1",
	"Drosophila melanogaster",
	"Escherichia coli",
	"Haloferax volcanii",
	"Homo sapiens",
	"Hydra vulgaris",
	"Oryza sativa",
	"Physcomitrella patens",
	"Populus trichocarpa",
	"Procambarus clarkii",
	"Pyrocystis fusiformis",
	"Saccaromyces cerevisiae",
	"Synechocystis sp. PCC 6803",
	"Vibrio natriegens",
}

// aliases are short names people type instead of the binomial
var aliases = map[string]Species{
	"ecoli":         EscherichiaColi,
	"e.coli":        EscherichiaColi,
	"e. coli":       EscherichiaColi,
	"bacteria":      EscherichiaColi,
	"yeast":         SaccharomycesCerevisiae,
	"scerevisiae":   SaccharomycesCerevisiae,
	"human":         HomoSapiens,
	"mammalian":     HomoSapiens,
	"bsub":          BacillusSubtilis,
	"bsubtilis":     BacillusSubtilis,
	"arabidopsis":   ArabidopsisThaliana,
	"worm":          CaenorhabditisElegans,
	"celegans":      CaenorhabditisElegans,
	"zebrafish":     DanioRerio,
	"fly":           DrosophilaMelanogaster,
	"rice":          OryzaSativa,
	"moss":          PhyscomitrellaPatens,
	"poplar":        PopulusTrichocarpa,
	"crayfish":      ProcambarusClarkii,
	"vnat":          VibrioNatriegens,
	"synechocystis": Synechocystis,
	"deinococcus":   DeinococcusRadiodurans,
	"haloferax":     HaloferaxVolcanii,
	"hydra":         HydraVulgaris,
	"aliivibrio":    AliivibrioFischeri,
	"pyrocystis":    PyrocystisFusiformis,
}

// String returns the species' display name
func (s Species) String() string {
	if s < 0 || s >= speciesCount {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// AllSpecies returns every species in the usage table, in table order
func AllSpecies() []Species {
	all := make([]Species, speciesCount)
	for i := range all {
		all[i] = Species(i)
	}
	return all
}

// ParseSpecies resolves a display name (case-insensitive) or alias to a Species.
// Unknown names fail with ErrUnknownSpecies and a list of similar names
func ParseSpecies(name string) (Species, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))

	for i, n := range speciesNames {
		if strings.ToLower(n) == trimmed {
			return Species(i), nil
		}
	}
	if s, ok := aliases[trimmed]; ok {
		return s, nil
	}

	similar := fuzzy.Similar(name, speciesNames[:])
	if len(similar) > 0 {
		return 0, fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownSpecies, name, strings.Join(similar, ", "))
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
}

// SimilarSpecies returns the species with a display name or alias similar to name, in table order
func SimilarSpecies(name string) []Species {
	byName := make(map[string]Species, len(speciesNames)+len(aliases))
	for i, n := range speciesNames {
		byName[n] = Species(i)
	}
	for a, s := range aliases {
		byName[a] = s
	}

	seen := make(map[Species]bool)
	similar := []Species{}
	for _, n := range fuzzy.Similar(name, maps.Keys(byName)) {
		if s := byName[n]; !seen[s] {
			seen[s] = true
			similar = append(similar, s)
		}
	}
	sort.Slice(similar, func(i, j int) bool { return similar[i] < similar[j] })
	return similar
}

// Aliases returns the short names of the species, sorted
func (s Species) Aliases() []string {
	names := []string{}
	for a, as := range aliases {
		if as == s {
			names = append(names, a)
		}
	}
	sort.Strings(names)
	return names
}
