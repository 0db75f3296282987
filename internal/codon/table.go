// Package codon is for the static codon usage table: which amino acid each
// codon encodes and how often each species uses it among its synonyms
package codon

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// usageTSV is codon, amino acid, then one usage fraction per species
//
//go:embed usage.tsv
var usageTSV []byte

// entry is a single codon's row in the usage table
type entry struct {
	aa    AminoAcid
	usage [speciesCount]float64
}

var (
	loadOnce sync.Once

	// entries is a map from codon to its row
	entries map[string]entry

	// codons in table order
	codons []string

	// synonyms is a map from amino acid to its codons, in table order
	synonyms map[AminoAcid][]string
)

// load parses the embedded usage table. it's static, a parse failure is a build defect
func load() {
	loadOnce.Do(func() {
		if err := parse(usageTSV); err != nil {
			panic(fmt.Sprintf("malformed codon usage table: %v", err))
		}
	})
}

func parse(data []byte) error {
	entries = make(map[string]entry)
	synonyms = make(map[AminoAcid][]string)
	codons = nil

	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		return fmt.Errorf("missing header")
	}

	// map each column to its species
	header := strings.Split(scanner.Text(), "\t")
	if len(header) != int(speciesCount)+2 {
		return fmt.Errorf("expected %d species columns, found %d", speciesCount, len(header)-2)
	}
	columns := make([]Species, len(header)-2)
	for i, name := range header[2:] {
		s, err := ParseSpecies(name)
		if err != nil {
			return err
		}
		columns[i] = s
	}

	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != len(header) {
			return fmt.Errorf("row %q has %d columns, expected %d", fields[0], len(fields), len(header))
		}

		codon, aa := fields[0], AminoAcid(fields[1][0])
		if len(codon) != 3 || !aa.Valid() {
			return fmt.Errorf("bad row for codon %q", codon)
		}

		e := entry{aa: aa}
		for i, f := range fields[2:] {
			frac, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("bad usage for %s in %s: %w", columns[i], codon, err)
			}
			e.usage[columns[i]] = frac
		}

		entries[codon] = e
		codons = append(codons, codon)
		synonyms[aa] = append(synonyms[aa], codon)
	}

	return scanner.Err()
}

// Codons returns every codon in the table
func Codons() []string {
	load()
	return append([]string{}, codons...)
}

// Synonyms returns the codons for an amino acid. It's empty for
// symbols without a codon, like the non-canonical o and u
func Synonyms(aa AminoAcid) []string {
	load()
	return append([]string{}, synonyms[aa]...)
}

// AminoAcidOf returns the amino acid a codon encodes
func AminoAcidOf(codon string) (AminoAcid, bool) {
	load()
	e, ok := entries[strings.ToLower(codon)]
	return e.aa, ok
}

// Usage returns the fraction of the time a species uses the codon
// to encode its amino acid. 0 for unknown codons
func Usage(codon string, s Species) float64 {
	load()
	if s < 0 || s >= speciesCount {
		return 0
	}
	return entries[strings.ToLower(codon)].usage[s]
}

// Translate converts DNA into amino acids by direct table lookup.
// Triplets that aren't in the table, including a trailing partial codon,
// translate to Unknown
func Translate(dna string) string {
	load()

	var aas strings.Builder
	dna = strings.ToLower(dna)
	for i := 0; i < len(dna); i += 3 {
		end := i + 3
		if end > len(dna) {
			aas.WriteByte(byte(Unknown))
			break
		}

		if e, ok := entries[dna[i:end]]; ok {
			aas.WriteByte(byte(e.aa))
		} else {
			aas.WriteByte(byte(Unknown))
		}
	}
	return aas.String()
}
