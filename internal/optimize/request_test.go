package optimize

import (
	"errors"
	"testing"

	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/EpicenterPrograms/codonoptimizer/internal/enzyme"
)

func TestNewRequest(t *testing.T) {
	ecoli := Weights{codon.EscherichiaColi: 1}

	type args struct {
		aminoAcids string
		dna        string
		weights    Weights
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
	}{
		{
			"amino acids",
			args{"mk*", "", ecoli},
			"mk*",
			nil,
		},
		{
			"normalized",
			args{" M K\n\tL ", "", ecoli},
			"mkl",
			nil,
		},
		{
			"dna",
			args{"", "ATG AAA\nTAA", ecoli},
			"mk*",
			nil,
		},
		{
			"amino acids take precedence over dna",
			args{"mw", "atgaaa", ecoli},
			"mw",
			nil,
		},
		{
			"no sequence",
			args{"", " \n", ecoli},
			"",
			ErrNoSequenceProvided,
		},
		{
			"no species",
			args{"mk", "", Weights{codon.EscherichiaColi: 0}},
			"",
			ErrNoSpeciesSelected,
		},
		{
			"pyrrolysine",
			args{"mko", "", ecoli},
			"",
			ErrUnknownAminoAcid,
		},
		{
			"selenocysteine",
			args{"muk", "", ecoli},
			"",
			ErrUnknownAminoAcid,
		},
		{
			"not an amino acid",
			args{"mkz", "", ecoli},
			"",
			ErrUnknownAminoAcid,
		},
		{
			"dna with an unknown triplet",
			args{"", "atgnnn", ecoli},
			"",
			ErrUnknownAminoAcid,
		},
		{
			"dna with a partial codon",
			args{"", "atgaa", ecoli},
			"",
			ErrUnknownAminoAcid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRequest(tt.args.aminoAcids, tt.args.dna, tt.args.weights, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewRequest() error = %v, want %v", err, tt.wantErr)
			}
			if got.AminoAcids != tt.want {
				t.Errorf("NewRequest() = %v, want %v", got.AminoAcids, tt.want)
			}
		})
	}
}

func TestNewRequest_enzymes(t *testing.T) {
	req, err := NewRequest("m", "", Weights{codon.HomoSapiens: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if req.Enzymes == nil || len(req.Enzymes) != 0 {
		t.Errorf("NewRequest() enzymes = %v, want empty", req.Enzymes)
	}

	bamHI := []enzyme.Enzyme{{Name: "BamHI", Site: "ggatcc"}}
	if req, _ = NewRequest("m", "", Weights{codon.HomoSapiens: 1}, bamHI); len(req.Enzymes) != 1 {
		t.Errorf("NewRequest() enzymes = %v, want %v", req.Enzymes, bamHI)
	}
}
