package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/EpicenterPrograms/codonoptimizer/internal/enzyme"
	"github.com/spf13/cobra"
)

// findCmd is for finding species or enzymes by their name.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find species or enzymes",
	SuggestionsMinimumDistance: 2,
	Long: `Find species or enzymes by name.
If there is no exact match, similar entries are returned`,
	Aliases: []string{"ls", "list"},
}

// speciesFindCmd is for listing the species with codon usage data
var speciesFindCmd = &cobra.Command{
	Use:                        "species [name]",
	Short:                      "Find species in the codon usage table",
	Run:                        func(cmd *cobra.Command, args []string) { fatal(speciesFindExec(cmd, args)) },
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonoptimizer find species coli",
	Long: `List the species with the same or a similar name, or alias, as the argument.

'codonoptimizer find species' without any arguments logs all species available.`,
	Aliases: []string{"organism", "organisms"},
}

// enzymeFindCmd is for listing out all the enzymes whose sites can be avoided
var enzymeFindCmd = &cobra.Command{
	Use:                        "enzyme [name]",
	Short:                      "Find restriction enzymes whose sites can be avoided",
	Run:                        func(cmd *cobra.Command, args []string) { fatal(enzymeFindExec(cmd, args)) },
	SuggestionsMinimumDistance: 2,
	Example:                    "  codonoptimizer find enzyme bsa",
	Long: `List out all the enzymes with the same or a similar name as the argument.

'codonoptimizer find enzyme' without any arguments logs all enzymes available.`,
	Aliases: []string{"enzymes"},
}

// speciesFindExec writes species similar to the name, or all of them
func speciesFindExec(cmd *cobra.Command, args []string) error {
	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)

	species := codon.AllSpecies()
	if len(args) > 0 {
		name := strings.Join(args, " ")
		if s, err := codon.ParseSpecies(name); err == nil {
			species = []codon.Species{s}
		} else if species = codon.SimilarSpecies(name); len(species) == 0 {
			return fmt.Errorf("failed to find any species for %s", name)
		}
	}

	for _, s := range species {
		fmt.Fprintf(w, "%s\t%s\n", s, strings.Join(s.Aliases(), ", "))
	}
	return w.Flush()
}

// enzymeFindExec writes enzymes similar to the name, or all of them
func enzymeFindExec(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)

	enzymes := enzymeDB.All()
	if len(args) > 0 {
		name := args[0]
		if e, err := enzymeDB.Lookup(name); err == nil {
			enzymes = []enzyme.Enzyme{e}
		} else if enzymes = enzymeDB.Similar(name); len(enzymes) == 0 {
			return fmt.Errorf("failed to find any enzymes for %s", name)
		}
	}

	for _, e := range enzymes {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Site)
	}
	return w.Flush()
}

// set flags
func init() {
	findCmd.AddCommand(speciesFindCmd)
	findCmd.AddCommand(enzymeFindCmd)

	RootCmd.AddCommand(findCmd)
}
