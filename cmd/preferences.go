package cmd

import (
	"io"

	"github.com/EpicenterPrograms/codonoptimizer/internal/optimize"
	"github.com/EpicenterPrograms/codonoptimizer/internal/output"
	"github.com/spf13/cobra"
)

// preferencesCmd is for showing the codon preferences of a set of species
var preferencesCmd = &cobra.Command{
	Use:                        "preferences",
	Short:                      "Show the codon preferences of a set of species",
	Run:                        func(cmd *cobra.Command, args []string) { fatal(preferencesExec(cmd, args)) },
	SuggestionsMinimumDistance: 2,
	Example: `  codonoptimizer preferences --species "ecoli,human=2"
  codonoptimizer preferences --table`,
	Long: `Show the codon preferences codons are sampled from when optimizing for a set of species.

Each codon is written with its share of its amino acid's preference and its usage
in each of the species. Codons that are rare in one species are suppressed, or, when
optimizing for a single species, never chosen.

'codonoptimizer preferences --table' writes the full codon usage table instead.`,
	Aliases: []string{"prefs", "usage"},
}

// preferencesExec writes the preference profile of the species, or the usage table
func preferencesExec(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	if table, _ := cmd.Flags().GetBool("table"); table {
		return writeOut(cmd, out, output.WriteTable)
	}

	speciesList, _ := cmd.Flags().GetString("species")
	weights, err := parseWeights(speciesList)
	if err != nil {
		return err
	}

	profile, err := optimize.BuildProfile(weights)
	if err != nil {
		return err
	}

	return writeOut(cmd, out, func(w io.Writer) error {
		return output.WritePreferences(w, profile, weights.Species())
	})
}

func init() {
	preferencesCmd.Flags().StringP("species", "t", "Escherichia coli", speciesHelp)
	preferencesCmd.Flags().BoolP("table", "u", false, "write the codon usage table of every species")
	preferencesCmd.Flags().StringP("out", "o", "", "output file name, stdout if empty")

	RootCmd.AddCommand(preferencesCmd)
}
