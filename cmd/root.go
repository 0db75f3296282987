// Package cmd is for command line interactions with the codon optimizer
package cmd

import (
	"log"

	"github.com/EpicenterPrograms/codonoptimizer/internal/enzyme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var enzymeDB = enzyme.NewDB()

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "codonoptimizer",
	Short: `Reverse translate proteins into DNA optimized for expression in one or more species.
Avoid hairpins, terminator and RBS-like motifs, and restriction sites`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("settings", "s", "", "YAML settings file that overrides the default scoring and optimizer settings")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stderr")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
