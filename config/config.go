// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// OptimizerConfig is settings for the search and repair loop
type OptimizerConfig struct {
	// the number of full candidate sequences generated during the global search
	Trials int `mapstructure:"trials"`

	// the number of local repair rounds run on the best candidate
	RepairRounds int `mapstructure:"repair-rounds"`

	// seed of the pseudo-random source. runs with the same seed and inputs are identical
	Seed int64 `mapstructure:"seed"`

	// goroutines evaluating global search candidates at once
	Workers int `mapstructure:"workers"`

	// bp that flagged regions are widened by on each side when repair stalls
	Expand int `mapstructure:"expand"`

	// consecutive failed repair rounds tolerated before widening is considered
	ExpandAfter int `mapstructure:"expand-after"`
}

// ScoringConfig is settings for the penalties in a candidate's score
type ScoringConfig struct {
	// points lost per terminator or RBS-like motif
	MotifPenalty float64 `mapstructure:"motif-penalty"`

	// points lost per restriction site
	RestrictionPenalty float64 `mapstructure:"restriction-penalty"`

	// points lost per hairpin
	HairpinPenalty float64 `mapstructure:"hairpin-penalty"`

	// bp from the start of the sequence that are checked for hairpins
	HairpinWindow int `mapstructure:"hairpin-window"`

	// maximum edit distance, as a fraction of the stem length, between a stem and its partner
	HairpinSimilarity float64 `mapstructure:"hairpin-similarity"`

	// minimum Wallace melting temperature of a stem
	HairpinTm float64 `mapstructure:"hairpin-tm"`

	// GC fractions inside [GCMin, GCMax] aren't penalized
	GCMin float64 `mapstructure:"gc-min"`
	GCMax float64 `mapstructure:"gc-max"`

	// sequences associated with terminators and strong ribosome binding sites
	Motifs []string `mapstructure:"motifs"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Optimizer settings
	Optimizer OptimizerConfig `mapstructure:"optimizer"`

	// Scoring settings
	Scoring ScoringConfig `mapstructure:"scoring"`
}

func init() {
	viper.SetDefault("optimizer.trials", 80)
	viper.SetDefault("optimizer.repair-rounds", 80)
	viper.SetDefault("optimizer.seed", 42)
	viper.SetDefault("optimizer.workers", 4)
	viper.SetDefault("optimizer.expand", 3)
	viper.SetDefault("optimizer.expand-after", 0)

	viper.SetDefault("scoring.motif-penalty", 5.0)
	viper.SetDefault("scoring.restriction-penalty", 10.0)
	viper.SetDefault("scoring.hairpin-penalty", 5.0)
	viper.SetDefault("scoring.hairpin-window", 50)
	viper.SetDefault("scoring.hairpin-similarity", 0.25)
	viper.SetDefault("scoring.hairpin-tm", 60.0)
	viper.SetDefault("scoring.gc-min", 0.30)
	viper.SetDefault("scoring.gc-max", 0.60)
	viper.SetDefault("scoring.motifs", []string{"aaaaa", "ttttt", "ggagg", "taaggag"})
}

// New returns a new Config struct populated by Viper's defaults
// and any flags that were bound to it
func New() *Config {
	c, err := Load("")
	if err != nil {
		panic(err) // only reachable with invalid bound flags
	}
	return c
}

// Load returns a Config populated by Viper. If settings isn't empty, it's
// read as a settings file whose fields override the defaults
func Load(settings string) (*Config, error) {
	if settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the settings can drive an optimization
func (c *Config) Validate() error {
	o, s := c.Optimizer, c.Scoring

	switch {
	case o.Trials < 1:
		return errors.New("optimizer.trials must be at least 1")
	case o.RepairRounds < 0:
		return errors.New("optimizer.repair-rounds must not be negative")
	case o.Workers < 1:
		return errors.New("optimizer.workers must be at least 1")
	case o.Expand < 0:
		return errors.New("optimizer.expand must not be negative")
	case s.HairpinWindow < 0:
		return errors.New("scoring.hairpin-window must not be negative")
	case s.GCMin >= s.GCMax:
		return fmt.Errorf("scoring.gc-min (%.2f) must be less than scoring.gc-max (%.2f)", s.GCMin, s.GCMax)
	}

	for _, m := range s.Motifs {
		if m == "" {
			return errors.New("scoring.motifs must not contain an empty motif")
		}
	}
	return nil
}
