package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/EpicenterPrograms/codonoptimizer/internal/optimize"
)

// WritePreferences writes each amino acid's codons with their share of the
// profile and their usage in each species
func WritePreferences(w io.Writer, p optimize.Profile, species []codon.Species) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "amino acid\tcodon\tpreference")
	for _, s := range species {
		fmt.Fprintf(tw, "\t%s", s)
	}
	fmt.Fprintln(tw)

	for _, aa := range codon.AminoAcids() {
		pref := p[aa]
		for i, c := range pref.Codons {
			fmt.Fprintf(tw, "%s\t%s\t%.1f%%", aa, c, pref.Share(i)*100)
			for _, s := range species {
				fmt.Fprintf(tw, "\t%.0f%%", codon.Usage(c, s)*100)
			}
			fmt.Fprintln(tw)
		}
	}
	return tw.Flush()
}

// WriteTable writes the usage table: every codon's amino acid and usage in every species
func WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	species := codon.AllSpecies()
	fmt.Fprint(tw, "codon\tamino acid")
	for _, s := range species {
		fmt.Fprintf(tw, "\t%s", s)
	}
	fmt.Fprintln(tw)

	for _, c := range codon.Codons() {
		aa, _ := codon.AminoAcidOf(c)
		fmt.Fprintf(tw, "%s\t%s", c, aa)
		for _, s := range species {
			fmt.Fprintf(tw, "\t%.2f", codon.Usage(c, s))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
