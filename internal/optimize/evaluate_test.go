package optimize

import (
	"math"
	"reflect"
	"testing"

	"github.com/EpicenterPrograms/codonoptimizer/config"
)

// bamHIProfile only allows "mdp" to be reverse translated as atg-gat-cca,
// which has a BamHI site (ggatcc) across its codons
func bamHIProfile() Profile {
	return Profile{
		'm': {Codons: []string{"atg"}, Weights: []float64{1}},
		'd': {Codons: []string{"gac", "gat"}, Weights: []float64{0, 1}},
		'p': {Codons: []string{"cca"}, Weights: []float64{1}},
	}
}

func TestEvaluator_Evaluate(t *testing.T) {
	conf := config.New().Scoring

	t.Run("methionine", func(t *testing.T) {
		c := NewEvaluator(ecoliProfile(t), nil, conf).Evaluate("atg")

		if c.Score != 100 {
			t.Errorf("Evaluate() score = %f, want 100", c.Score)
		}
		if math.Abs(c.GC-100.0/3) > 1e-9 {
			t.Errorf("Evaluate() GC = %f, want 33.3", c.GC)
		}
		if len(c.Regions()) != 0 {
			t.Errorf("Evaluate() regions = %v, want none", c.Regions())
		}
	})

	t.Run("restriction site", func(t *testing.T) {
		c := NewEvaluator(bamHIProfile(), []string{"GGATCC"}, conf).Evaluate("atggatcca")

		if c.Score != 90 {
			t.Errorf("Evaluate() score = %f, want 90", c.Score)
		}
		if want := []Region{{0, 9}}; !reflect.DeepEqual(c.Hard, want) {
			t.Errorf("Evaluate() hard = %v, want %v", c.Hard, want)
		}
		if len(c.Soft) != 0 {
			t.Errorf("Evaluate() soft = %v, want none", c.Soft)
		}
	})

	t.Run("motifs", func(t *testing.T) {
		// tgg agg tta has "ggagg" once and a gc of 4/9
		profile := Profile{
			'w': {Codons: []string{"tgg"}, Weights: []float64{1}},
			'r': {Codons: []string{"agg"}, Weights: []float64{1}},
			'l': {Codons: []string{"tta"}, Weights: []float64{1}},
		}
		c := NewEvaluator(profile, nil, conf).Evaluate("tggaggtta")

		if want := []Region{{1, 6}}; !reflect.DeepEqual(c.Soft, want) {
			t.Errorf("Evaluate() soft = %v, want %v", c.Soft, want)
		}
		if c.Score != 95 {
			t.Errorf("Evaluate() score = %f, want 95", c.Score)
		}
	})

	t.Run("low GC", func(t *testing.T) {
		// aaa aaa aag: 4 overlapping aaaaa, and a gc of 1/9
		c := NewEvaluator(ecoliProfile(t), nil, conf).Evaluate("aaaaaaaag")

		want := 100 - 4*5 - GCPenalty(1.0/9, 0.3, 0.6)
		if math.Abs(c.Score-want) > 1e-9 {
			t.Errorf("Evaluate() score = %f, want %f", c.Score, want)
		}
		if len(c.Soft) != 4 {
			t.Errorf("Evaluate() soft = %v, want 4 regions", c.Soft)
		}
	})

	t.Run("codon usage", func(t *testing.T) {
		// a codon with no weight is infinitely over-used
		c := NewEvaluator(bamHIProfile(), nil, conf).Evaluate("atggaccca")
		if c.Score > -1e5 {
			t.Errorf("Evaluate() score = %f, want a large usage penalty", c.Score)
		}
	})
}

func TestGCPenalty(t *testing.T) {
	tests := []struct {
		name string
		gc   float64
		want float64
	}{
		{
			"in the band",
			0.45,
			0,
		},
		{
			"lower bound",
			0.30,
			0,
		},
		{
			"upper bound",
			0.60,
			0,
		},
		{
			"low",
			0.20,
			100,
		},
		{
			"high",
			0.70,
			100,
		},
		{
			"very low",
			0.10,
			400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GCPenalty(tt.gc, 0.3, 0.6); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("GCPenalty() = %v, want %v", got, tt.want)
			}
		})
	}

	// grows moving away from the band
	for gc := 0.29; gc > 0; gc -= 0.01 {
		if GCPenalty(gc, 0.3, 0.6) <= GCPenalty(gc+0.01, 0.3, 0.6) {
			t.Errorf("GCPenalty(%f) isn't greater than GCPenalty(%f)", gc, gc+0.01)
		}
	}
	for gc := 0.61; gc < 1; gc += 0.01 {
		if GCPenalty(gc, 0.3, 0.6) <= GCPenalty(gc-0.01, 0.3, 0.6) {
			t.Errorf("GCPenalty(%f) isn't greater than GCPenalty(%f)", gc, gc-0.01)
		}
	}
}

func Test_findOverlapping(t *testing.T) {
	type args struct {
		seq string
		sub string
	}
	tests := []struct {
		name string
		args args
		want []Region
	}{
		{
			"overlapping",
			args{"aaaaaaa", "aaaaa"},
			[]Region{{0, 5}, {1, 6}, {2, 7}},
		},
		{
			"separate",
			args{"gaattcxgaattc", "gaattc"},
			[]Region{{0, 6}, {7, 13}},
		},
		{
			"absent",
			args{"atgatg", "ggatcc"},
			nil,
		},
		{
			"empty",
			args{"atg", ""},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findOverlapping(tt.args.seq, tt.args.sub); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("findOverlapping() = %v, want %v", got, tt.want)
			}
		})
	}
}
