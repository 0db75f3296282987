// Package output writes optimization results and codon preferences for people and other programs
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/EpicenterPrograms/codonoptimizer/internal/optimize"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format that can't be written
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output encoding
type Format string

const (
	// JSON is an indented JSON object
	JSON Format = "json"

	// YAML is a YAML document
	YAML Format = "yaml"

	// FASTA is the sequence alone, with the score and GC in its header
	FASTA Format = "fasta"

	// Text is a human readable report
	Text Format = "text"
)

// Formats are those that Write supports
var Formats = []Format{Text, JSON, YAML, FASTA}

// ParseFormat returns the format with the name, case-insensitively
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}

	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("%w: %q, choose one of %s", ErrUnknownFormat, name, strings.Join(names, ", "))
}

// Output is an optimization result along with what it was optimized for
type Output struct {
	// Name of the sequence. In >example_CDS FASTA it's "example_CDS"
	Name string `json:"name" yaml:"name"`

	// Species are the display names of the target species and their weights
	Species map[string]int `json:"species" yaml:"species"`

	// Enzymes whose sites were avoided
	Enzymes []string `json:"enzymes" yaml:"enzymes"`

	optimize.Result `yaml:",inline"`
}

// New returns the Output of a result optimized for req
func New(name string, req optimize.Request, r optimize.Result) Output {
	out := Output{
		Name:    name,
		Species: make(map[string]int),
		Enzymes: []string{},
		Result:  r,
	}
	for s, w := range req.Weights {
		if w > 0 {
			out.Species[s.String()] = w
		}
	}
	for _, e := range req.Enzymes {
		out.Enzymes = append(out.Enzymes, e.Name)
	}
	return out
}

// Write encodes the output to w in the format
func Write(w io.Writer, out Output, f Format) error {
	switch f {
	case JSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize output: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to serialize output: %w", err)
		}
		return enc.Close()
	case FASTA:
		_, err := fmt.Fprintf(w, ">%s score=%.1f gc=%.1f\n%s\n", out.Name, out.Score, out.GC, out.Seq)
		return err
	case Text:
		return writeText(w, out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// writeText writes a report of the result followed by each codon and its weight
func writeText(w io.Writer, out Output) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	species := maps.Keys(out.Species)
	sort.Strings(species)
	for i, s := range species {
		species[i] = fmt.Sprintf("%s (%d)", s, out.Species[s])
	}

	fmt.Fprintf(tw, "name\t%s\n", out.Name)
	fmt.Fprintf(tw, "species\t%s\n", strings.Join(species, ", "))
	fmt.Fprintf(tw, "enzymes\t%s\n", orNone(out.Enzymes))
	fmt.Fprintf(tw, "score\t%.1f\n", out.Score)
	fmt.Fprintf(tw, "gc\t%.1f%%\n", out.GC)
	fmt.Fprintf(tw, "trials\t%d\n", out.Trials)
	fmt.Fprintf(tw, "rounds\t%d\n", out.Rounds)
	fmt.Fprintf(tw, "soft\t%s\n", orNone(regionStrings(out.Soft)))
	fmt.Fprintf(tw, "hard\t%s\n", orNone(regionStrings(out.Hard)))
	fmt.Fprintf(tw, "segments\t%s\n", orNone(regionStrings(out.Segments)))
	fmt.Fprintf(tw, "sequence\t%s\n", out.Seq)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "position\tcodon\tamino acid\tweight\n")
	for i, c := range out.Codons() {
		aa := "?"
		if i < len(out.AminoAcids) {
			aa = out.AminoAcids[i : i+1]
		}
		weight := 0.0
		if i < len(out.Weights) {
			weight = out.Weights[i]
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\n", i+1, c, aa, weight)
	}
	return tw.Flush()
}

func regionStrings(regions []optimize.Region) []string {
	s := make([]string, len(regions))
	for i, r := range regions {
		s[i] = r.String()
	}
	return s
}

func orNone(s []string) string {
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, " ")
}
