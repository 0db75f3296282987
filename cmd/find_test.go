package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func Test_speciesFindExec(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		lines int
		want  string
	}{
		{
			"all",
			nil,
			19,
			"Synechocystis sp. PCC 6803",
		},
		{
			"alias",
			[]string{"ecoli"},
			1,
			"Escherichia coli",
		},
		{
			"display name in words",
			[]string{"homo", "sapiens"},
			1,
			"human",
		},
		{
			"similar",
			[]string{"vibrio"},
			2,
			"Aliivibrio fischeri",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			speciesFindCmd.SetOut(&buf)
			defer speciesFindCmd.SetOut(nil)

			if err := speciesFindExec(speciesFindCmd, tt.args); err != nil {
				t.Fatal(err)
			}
			if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != tt.lines {
				t.Errorf("speciesFindExec() wrote %d lines, want %d: %s", len(lines), tt.lines, buf.String())
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("speciesFindExec() = %s, missing %s", buf.String(), tt.want)
			}
		})
	}

	if err := speciesFindExec(speciesFindCmd, []string{"xyzzy"}); err == nil {
		t.Error("speciesFindExec() of an unknown species didn't fail")
	}
}

func Test_enzymeFindExec(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		lines int
		want  string
	}{
		{
			"all",
			nil,
			18,
			"XhoI",
		},
		{
			"exact",
			[]string{"bsai"},
			1,
			"ggtctc",
		},
		{
			"misspelled",
			[]string{"BamHl"},
			1,
			"ggatcc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			enzymeFindCmd.SetOut(&buf)
			defer enzymeFindCmd.SetOut(nil)

			if err := enzymeFindExec(enzymeFindCmd, tt.args); err != nil {
				t.Fatal(err)
			}
			if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != tt.lines {
				t.Errorf("enzymeFindExec() wrote %d lines, want %d: %s", len(lines), tt.lines, buf.String())
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("enzymeFindExec() = %s, missing %s", buf.String(), tt.want)
			}
		})
	}

	if err := enzymeFindExec(enzymeFindCmd, []string{"NotAnEnzyme"}); err == nil {
		t.Error("enzymeFindExec() of an unknown enzyme didn't fail")
	}
}
