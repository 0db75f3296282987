package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/EpicenterPrograms/codonoptimizer/internal/optimize"
	"github.com/EpicenterPrograms/codonoptimizer/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	speciesHelp = `comma separated species to optimize for, each with an optional weight.
ex: "Escherichia coli=3,yeast=1". 'codonoptimizer find species' lists them.`

	enzymesHelp = `comma separated restriction enzymes, or recognition sites, to avoid.
ex: "BamHI,XhoI,gaagac". 'codonoptimizer find enzyme' lists them.`
)

// optimizeCmd is for reverse translating a protein into an optimized DNA sequence
var optimizeCmd = &cobra.Command{
	Use:                        "optimize [amino acids]",
	Short:                      "Reverse translate a protein into DNA optimized for a set of species",
	Run:                        func(cmd *cobra.Command, args []string) { fatal(optimizeExec(cmd, args)) },
	SuggestionsMinimumDistance: 2,
	Example: `  codonoptimizer optimize MSKGEELFTGVV --species ecoli
  codonoptimizer optimize --in gfp.fa --species "ecoli=3,yeast" --enzymes BsaI,BsmBI --format json --out gfp.json`,
	Long: `Reverse translate a protein into DNA optimized for expression in one or more species.

The protein can be the argument, "--aa", a DNA coding sequence ("--dna") that's
translated first, or the first sequence of a FASTA file ("--in").

Candidate sequences are sampled from each species' codon usage and scored.
Points are lost for hairpins near the start codon, terminator and RBS-like motifs,
the restriction sites in "--enzymes", GC content outside of 30-60%, and codon
usage that's far from the preference. The best candidate's flagged regions are
then re-sampled until it can't be improved.

Runs are reproducible: the same inputs and "--seed" lead to the same sequence.
An interrupted run writes the best sequence found so far.`,
	Aliases: []string{"opt"},
}

// optimizeExec runs an optimization and writes its result
func optimizeExec(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	fs, err := parseSequenceFlags(cmd, args)
	if err != nil {
		return err
	}

	speciesList, _ := cmd.Flags().GetString("species")
	weights, err := parseWeights(speciesList)
	if err != nil {
		return err
	}

	enzymeList, _ := cmd.Flags().GetString("enzymes")
	enzymes, err := enzymeDB.Parse(enzymeList)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	req, err := optimize.NewRequest(fs.aminoAcids, fs.dna, weights, enzymes)
	if err != nil {
		return err
	}

	profile, err := optimize.BuildProfile(req.Weights)
	if err != nil {
		return err
	}

	o := optimize.NewOptimizer(req, profile, conf)
	if viper.GetBool("verbose") {
		o.Log = stderr
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	result, runErr := o.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	out := output.New(fs.name, req, result)
	if err := writeOut(cmd, fs.out, func(w io.Writer) error { return output.Write(w, out, format) }); err != nil {
		return err
	}

	if plotPath, _ := cmd.Flags().GetString("plot"); plotPath != "" {
		if err := output.Plot(plotPath, result); err != nil {
			return err
		}
	}

	if runErr != nil {
		return fmt.Errorf("optimization interrupted after %d trials and %d rounds, wrote the best sequence so far: %w", result.Trials, result.Rounds, runErr)
	}
	return nil
}

// fatal logs the error and exits, if there is one
func fatal(err error) {
	if err != nil {
		stderr.Fatal(err)
	}
}

// set flags
func init() {
	optimizeCmd.Flags().StringP("aa", "a", "", "amino acid sequence to optimize, one letter codes with * for stop")
	optimizeCmd.Flags().StringP("dna", "d", "", "DNA coding sequence to translate and re-optimize")
	optimizeCmd.Flags().StringP("in", "i", "", "FASTA file with the sequence to optimize, read as DNA if it's only ACGT")
	optimizeCmd.Flags().Bool("protein", false, "read the --in sequence as amino acids even if it's only ACGT")
	optimizeCmd.Flags().StringP("name", "n", "", "name of the sequence in the output")
	optimizeCmd.Flags().StringP("out", "o", "", "output file name, stdout if empty")
	optimizeCmd.Flags().StringP("format", "f", string(output.Text), "output format: text, json, yaml or fasta")
	optimizeCmd.Flags().StringP("species", "t", "Escherichia coli", speciesHelp)
	optimizeCmd.Flags().StringP("enzymes", "e", "", enzymesHelp)
	optimizeCmd.Flags().StringP("plot", "p", "", "image file for a chart of each codon's preference weight (.png, .svg, .pdf)")

	optimizeCmd.Flags().Int64("seed", 42, "seed of the random codon choices")
	optimizeCmd.Flags().Int("trials", 80, "number of whole sequences sampled in the global search")
	optimizeCmd.Flags().Int("rounds", 80, "number of local repair rounds on the best sequence")
	optimizeCmd.Flags().Int("workers", 4, "number of goroutines evaluating global search candidates")

	viper.BindPFlag("optimizer.seed", optimizeCmd.Flags().Lookup("seed"))
	viper.BindPFlag("optimizer.trials", optimizeCmd.Flags().Lookup("trials"))
	viper.BindPFlag("optimizer.repair-rounds", optimizeCmd.Flags().Lookup("rounds"))
	viper.BindPFlag("optimizer.workers", optimizeCmd.Flags().Lookup("workers"))

	RootCmd.AddCommand(optimizeCmd)
}
