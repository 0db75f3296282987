package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/EpicenterPrograms/codonoptimizer/config"
	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/EpicenterPrograms/codonoptimizer/internal/optimize"
	"github.com/bebop/poly/checks"
	"github.com/bebop/poly/io/fasta"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// defaultName is the name of a sequence that wasn't read from a FASTA file
const defaultName = "optimized_CDS"

// flags contains the parsed cobra flags shared by the sequence commands
type flags struct {
	// name of the sequence, from the FASTA header or --name
	name string

	// amino acid sequence, from --aa, the first argument, or a FASTA file
	aminoAcids string

	// DNA sequence, from --dna or a FASTA file
	dna string

	// the name of the file to write the output to, stdout if empty
	out string
}

// parseSequenceFlags gathers the input sequence and its name from the aa, dna,
// in and name flags. A FASTA file's first record is read as DNA if it's only ACGT,
// unless --protein is set: a peptide of only Ala, Cys, Gly and Thr looks like DNA
func parseSequenceFlags(cmd *cobra.Command, args []string) (*flags, error) {
	fs := &flags{name: defaultName}
	fs.aminoAcids, _ = cmd.Flags().GetString("aa")
	fs.dna, _ = cmd.Flags().GetString("dna")
	fs.out, _ = cmd.Flags().GetString("out")

	if fs.aminoAcids == "" && fs.dna == "" && len(args) > 0 {
		fs.aminoAcids = strings.Join(args, "")
	}

	if in, _ := cmd.Flags().GetString("in"); in != "" {
		name, seq, err := readFASTA(in)
		if err != nil {
			return nil, err
		}
		fs.name = name
		protein, _ := cmd.Flags().GetBool("protein")
		if !protein && checks.IsDNA(strings.ToUpper(seq)) {
			fs.dna = seq
		} else {
			fs.aminoAcids = seq
		}
	}

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		fs.name = name
	}
	return fs, nil
}

// readFASTA returns the name and sequence of the first record in a FASTA file
func readFASTA(path string) (name, seq string, err error) {
	records, err := fasta.Read(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read FASTA file %s: %w", path, err)
	}
	if len(records) == 0 {
		return "", "", fmt.Errorf("failed to read FASTA file %s: no sequences", path)
	}

	name = strings.Fields(records[0].Name + " " + defaultName)[0] // first word of the header
	return name, records[0].Sequence, nil
}

// parseWeights parses a comma separated list of species and their weights,
// ex: "Escherichia coli=8,bsub=2". A species without a weight has a weight of 1
func parseWeights(list string) (optimize.Weights, error) {
	weights := optimize.Weights{}
	for _, entry := range strings.Split(list, ",") {
		if entry = strings.TrimSpace(entry); entry == "" {
			continue
		}

		name, weight, hasWeight := strings.Cut(entry, "=")
		s, err := codon.ParseSpecies(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}

		w := 1
		if hasWeight {
			if w, err = strconv.Atoi(strings.TrimSpace(weight)); err != nil {
				return nil, fmt.Errorf("failed to parse weight of %s, %q isn't an integer", s, weight)
			}
		}
		weights[s] += w
	}
	return weights, nil
}

// loadConfig returns the settings. The settings file overrides the defaults and changed flags override both
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetString("settings"))
}

// writeOut calls write with the file at path, or the command's stdout if path is empty
func writeOut(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// normalizeDNA strips whitespace from a DNA sequence
func normalizeDNA(dna string) string {
	return strings.Join(strings.Fields(dna), "")
}
