package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	c := New()

	if c.Optimizer.Trials != 80 || c.Optimizer.RepairRounds != 80 {
		t.Errorf("New() trials/rounds = %d/%d, want 80/80", c.Optimizer.Trials, c.Optimizer.RepairRounds)
	}
	if c.Optimizer.Seed != 42 {
		t.Errorf("New() seed = %d, want 42", c.Optimizer.Seed)
	}
	if c.Scoring.HairpinWindow != 50 {
		t.Errorf("New() hairpin window = %d, want 50", c.Scoring.HairpinWindow)
	}
	wantMotifs := []string{"aaaaa", "ttttt", "ggagg", "taaggag"}
	if !reflect.DeepEqual(c.Scoring.Motifs, wantMotifs) {
		t.Errorf("New() motifs = %v, want %v", c.Scoring.Motifs, wantMotifs)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := *New()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			"defaults are valid",
			func(c *Config) {},
			false,
		},
		{
			"no trials",
			func(c *Config) { c.Optimizer.Trials = 0 },
			true,
		},
		{
			"no workers",
			func(c *Config) { c.Optimizer.Workers = 0 },
			true,
		},
		{
			"inverted gc band",
			func(c *Config) { c.Scoring.GCMin, c.Scoring.GCMax = 0.6, 0.3 },
			true,
		},
		{
			"empty motif",
			func(c *Config) { c.Scoring.Motifs = []string{"aaaaa", ""} },
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			c.Scoring.Motifs = append([]string{}, base.Scoring.Motifs...)
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Fatalf("expected %s to not exist", missing)
	}

	if _, err := Load(missing); err == nil {
		t.Errorf("Load(%s) expected an error", missing)
	}
}

// runs last: reading a settings file changes viper's global state
func TestLoad_settingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "optimizer:\n  trials: 12\nscoring:\n  gc-max: 0.65\n"
	if err := os.WriteFile(settings, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(settings)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Optimizer.Trials != 12 {
		t.Errorf("Load() trials = %d, want 12", c.Optimizer.Trials)
	}
	if c.Scoring.GCMax != 0.65 {
		t.Errorf("Load() gc-max = %f, want 0.65", c.Scoring.GCMax)
	}
	if c.Optimizer.RepairRounds != 80 {
		t.Errorf("Load() repair rounds = %d, want the default 80", c.Optimizer.RepairRounds)
	}
}
