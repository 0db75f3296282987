// Package enzyme is for the catalog of restriction enzymes whose recognition
// sites an optimized sequence should avoid
package enzyme

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/EpicenterPrograms/codonoptimizer/internal/fuzzy"
	"github.com/bebop/poly/checks"
	"github.com/bebop/poly/transform"
	"golang.org/x/exp/maps"
)

// ErrUnknownEnzyme is returned for an enzyme name that isn't in the catalog
var ErrUnknownEnzyme = errors.New("unknown enzyme")

// enzymesTSV is enzyme name and recognition sequence, tab separated
//
//go:embed enzymes.tsv
var enzymesTSV []byte

// site is a valid custom recognition sequence
var site = regexp.MustCompile("^[acgt]{6,8}$")

// Enzyme is a single restriction enzyme and its recognition sequence
type Enzyme struct {
	// Name of the enzyme, ex: BamHI
	Name string `json:"name"`

	// Site is the lowercase recognition sequence, ex: ggatcc
	Site string `json:"site"`
}

// Palindromic reports whether the site reads the same on both strands
func (e Enzyme) Palindromic() bool {
	return checks.IsPalindromic(e.Site)
}

// DB is a struct for accessing the enzyme catalog
type DB struct {
	// enzymes is a map between an enzyme's lowercase name and the enzyme
	enzymes map[string]Enzyme
}

// NewDB returns a new copy of the enzyme catalog
func NewDB() *DB {
	enzymes := make(map[string]Enzyme)

	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(bytes.NewReader(enzymesTSV))
	for scanner.Scan() {
		columns := strings.Split(scanner.Text(), "\t")
		if len(columns) != 2 {
			continue
		}
		e := Enzyme{Name: columns[0], Site: strings.ToLower(columns[1])}
		enzymes[strings.ToLower(e.Name)] = e // enzyme name = enzyme
	}

	return &DB{enzymes: enzymes}
}

// Lookup returns the enzyme with the name, ignoring case. If there isn't one,
// the error lists enzymes with similar names
func (d *DB) Lookup(name string) (Enzyme, error) {
	if e, exists := d.enzymes[strings.ToLower(strings.TrimSpace(name))]; exists {
		return e, nil
	}

	similar := d.Similar(name)
	if len(similar) == 0 {
		return Enzyme{}, fmt.Errorf("%w: %s", ErrUnknownEnzyme, name)
	}

	names := make([]string, len(similar))
	for i, e := range similar {
		names[i] = e.Name
	}
	return Enzyme{}, fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownEnzyme, name, strings.Join(names, ", "))
}

// Similar returns enzymes that are similar in name to the enzyme name requested.
// if multiple enzyme names include the enzyme name, they are all returned.
// otherwise enzymes beneath a levenshtein distance cutoff are returned
func (d *DB) Similar(name string) []Enzyme {
	similar := []Enzyme{}
	for _, n := range fuzzy.Similar(name, d.Names()) {
		similar = append(similar, d.enzymes[strings.ToLower(n)])
	}
	return similar
}

// Names returns the catalog's enzyme names, sorted
func (d *DB) Names() []string {
	names := []string{}
	for _, e := range maps.Values(d.enzymes) {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// All returns every enzyme in the catalog, sorted by name
func (d *DB) All() []Enzyme {
	all := []Enzyme{}
	for _, n := range d.Names() {
		all = append(all, d.enzymes[strings.ToLower(n)])
	}
	return all
}

// Parse turns comma separated enzyme names into enzymes. An entry that isn't
// a catalog name but is a 6-8bp recognition sequence is used as a custom site
func (d *DB) Parse(list string) ([]Enzyme, error) {
	enzymes := []Enzyme{}
	for _, field := range strings.Split(list, ",") {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}

		e, err := d.Lookup(name)
		if err != nil {
			if lower := strings.ToLower(name); site.MatchString(lower) {
				enzymes = append(enzymes, Enzyme{Name: lower, Site: lower})
				continue
			}
			return nil, err
		}
		enzymes = append(enzymes, e)
	}
	return enzymes, nil
}

// Sites returns the sequences to scan for: each enzyme's site, and its
// reverse complement when the site isn't palindromic. Duplicates are dropped
func Sites(enzymes []Enzyme) []string {
	seen := make(map[string]bool)
	sites := []string{}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			sites = append(sites, s)
		}
	}

	for _, e := range enzymes {
		add(e.Site)
		if !e.Palindromic() {
			add(transform.ReverseComplement(e.Site))
		}
	}
	return sites
}
