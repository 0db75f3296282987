package cmd

import (
	"fmt"
	"io"

	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/spf13/cobra"
)

// translateCmd is for translating a DNA coding sequence into amino acids
var translateCmd = &cobra.Command{
	Use:                        "translate [dna]",
	Short:                      "Translate a DNA coding sequence into amino acids",
	Run:                        func(cmd *cobra.Command, args []string) { fatal(translateExec(cmd, args)) },
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonoptimizer translate ATGAAATAA",
	Long: `Translate a DNA coding sequence into amino acids with the standard codon table.

Triplets that aren't codons, and a trailing partial codon, are written as '?'.`,
}

// translateExec writes the amino acid sequence of the DNA argument or FASTA file
func translateExec(cmd *cobra.Command, args []string) error {
	fs, err := parseSequenceFlags(cmd, nil)
	if err != nil {
		return err
	}

	dna := fs.dna
	if dna == "" {
		// a FASTA sequence with bases other than ACGT
		dna = fs.aminoAcids
	}
	for _, a := range args {
		dna += a
	}
	if dna == "" {
		return fmt.Errorf("no sequence provided: pass DNA as an argument, with --dna, or with --in")
	}

	return writeOut(cmd, fs.out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, ">%s\n%s\n", fs.name, codon.Translate(normalizeDNA(dna)))
		return err
	})
}

func init() {
	translateCmd.Flags().StringP("dna", "d", "", "DNA coding sequence to translate")
	translateCmd.Flags().StringP("in", "i", "", "FASTA file with the DNA to translate")
	translateCmd.Flags().StringP("name", "n", "", "name of the sequence in the output")
	translateCmd.Flags().StringP("out", "o", "", "output file name, stdout if empty")

	RootCmd.AddCommand(translateCmd)
}
