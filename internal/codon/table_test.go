package codon

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		dna  string
		want string
	}{
		{
			"methionine",
			"atg",
			"m",
		},
		{
			"uppercase input",
			"ATGAAATAA",
			"mk*",
		},
		{
			"unknown triplet",
			"atgnnnaag",
			"m?k",
		},
		{
			"trailing partial codon",
			"atgaa",
			"m?",
		},
		{
			"empty",
			"",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.dna); got != tt.want {
				t.Errorf("Translate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSynonyms(t *testing.T) {
	tests := []struct {
		name string
		aa   AminoAcid
		want []string
	}{
		{
			"lysine",
			'k',
			[]string{"aaa", "aag"},
		},
		{
			"stop",
			Stop,
			[]string{"taa", "tag", "tga"},
		},
		{
			"leucine keeps table order",
			'l',
			[]string{"cta", "ctg", "ctc", "ctt", "tta", "ttg"},
		},
		{
			"pyrrolysine has no codon",
			'o',
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Synonyms(tt.aa); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Synonyms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodons(t *testing.T) {
	all := Codons()
	if len(all) != 64 {
		t.Fatalf("Codons() has %d codons, want 64", len(all))
	}

	for _, c := range all {
		aa, ok := AminoAcidOf(c)
		if !ok {
			t.Errorf("AminoAcidOf(%s) not found", c)
		}
		if Translate(c) != aa.String() {
			t.Errorf("Translate(%s) = %s, want %s", c, Translate(c), aa)
		}
	}
}

func TestUsage(t *testing.T) {
	if got := Usage("aaa", EscherichiaColi); got != 0.71 {
		t.Errorf("Usage(aaa, E. coli) = %v, want 0.71", got)
	}
	if got := Usage("AAG", EscherichiaColi); got != 0.29 {
		t.Errorf("Usage(AAG, E. coli) = %v, want 0.29", got)
	}
	if got := Usage("atg", HomoSapiens); got != 1 {
		t.Errorf("Usage(atg, human) = %v, want 1", got)
	}
	if got := Usage("nnn", HomoSapiens); got != 0 {
		t.Errorf("Usage(nnn, human) = %v, want 0", got)
	}
}

// each species' usage fractions for an amino acid should total ~1 (the table is rounded)
func TestUsage_fractionsSum(t *testing.T) {
	for _, s := range AllSpecies() {
		for _, aa := range AminoAcids() {
			total := 0.0
			for _, c := range Synonyms(aa) {
				total += Usage(c, s)
			}
			if math.Abs(total-1) > 0.035 {
				t.Errorf("usage of %s in %s sums to %.3f", aa, s, total)
			}
		}
	}
}

func TestParseSpecies(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Species
		wantErr error
	}{
		{
			"display name",
			"Escherichia coli",
			EscherichiaColi,
			nil,
		},
		{
			"case and whitespace",
			"  homo SAPIENS ",
			HomoSapiens,
			nil,
		},
		{
			"alias",
			"yeast",
			SaccharomycesCerevisiae,
			nil,
		},
		{
			"unknown species",
			"Mus musculus",
			0,
			ErrUnknownSpecies,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpecies(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseSpecies() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSpecies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecies_String(t *testing.T) {
	if got := Synechocystis.String(); got != "Synechocystis sp. PCC 6803" {
		t.Errorf("Species.String() = %v", got)
	}
	if got := Species(99).String(); got != "Species(99)" {
		t.Errorf("Species.String() = %v", got)
	}
}

func TestSimilarSpecies(t *testing.T) {
	tests := []struct {
		name string
		want []Species
	}{
		{
			"vibrio",
			[]Species{AliivibrioFischeri, VibrioNatriegens},
		},
		{
			"Escherichia colli",
			[]Species{EscherichiaColi},
		},
		{
			"humn",
			[]Species{HomoSapiens},
		},
		{
			"",
			[]Species{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimilarSpecies(tt.name); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SimilarSpecies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpecies_Aliases(t *testing.T) {
	if got, want := SaccharomycesCerevisiae.Aliases(), []string{"scerevisiae", "yeast"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
	if got := OryzaSativa.Aliases(); !reflect.DeepEqual(got, []string{"rice"}) {
		t.Errorf("Aliases() = %v, want [rice]", got)
	}
}
