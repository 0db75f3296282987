// Package optimize reverse translates proteins into DNA that suits a weighted set
// of species while avoiding sequences that hurt expression or cloning.
//
// An optimization runs in two phases. A global search samples whole sequences from
// the codon preference profile and keeps the best. A local repair then re-samples
// only the codons in the best sequence's flagged regions until its score stops improving
package optimize

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/EpicenterPrograms/codonoptimizer/config"
	"github.com/EpicenterPrograms/codonoptimizer/internal/codon"
	"github.com/EpicenterPrograms/codonoptimizer/internal/enzyme"
	"github.com/jinzhu/copier"
	"github.com/sourcegraph/conc/pool"
)

// perfect is the score of a sequence without any problems
const perfect = 100.0

// expandCap bounds the failed-round count used by the widening trigger
const expandCap = 25

// repairStream offsets the random streams of repair rounds from those of trials
const repairStream = 1 << 32

// Logger is where an Optimizer reports its progress. *log.Logger satisfies it
type Logger interface {
	Printf(format string, v ...any)
}

// Result is the best sequence found by an optimization
type Result struct {
	// Seq is the optimized DNA sequence
	Seq string `json:"seq" yaml:"seq"`

	// AminoAcids is the protein sequence Seq encodes
	AminoAcids string `json:"aminoAcids" yaml:"aminoAcids"`

	// Score of Seq, 100 at best
	Score float64 `json:"score" yaml:"score"`

	// GC is the percentage of Seq that's G or C
	GC float64 `json:"gc" yaml:"gc"`

	// Soft regions have motif or hairpin problems
	Soft []Region `json:"soft" yaml:"soft"`

	// Hard regions have restriction sites
	Hard []Region `json:"hard" yaml:"hard"`

	// Segments are the consolidated, codon-aligned regions that are still flagged
	Segments []Region `json:"segments" yaml:"segments"`

	// Weights is the preference weight of each codon in Seq
	Weights []float64 `json:"weights" yaml:"weights"`

	// Trials is the number of global search candidates evaluated
	Trials int `json:"trials" yaml:"trials"`

	// Rounds is the number of local repair rounds run
	Rounds int `json:"rounds" yaml:"rounds"`

	// Profile is the codon preference the sequence was sampled from
	Profile Profile `json:"-" yaml:"-"`
}

// Codons returns the codons of the result's sequence
func (r Result) Codons() []string {
	codons := make([]string, 0, len(r.Seq)/3)
	for i := 0; i+3 <= len(r.Seq); i += 3 {
		codons = append(codons, r.Seq[i:i+3])
	}
	return codons
}

// Optimizer runs one optimization. It owns its best candidate, so
// concurrent runs each need their own Optimizer
type Optimizer struct {
	conf    *config.Config
	req     Request
	profile Profile
	eval    *Evaluator

	// Log receives progress lines if it isn't nil
	Log Logger
}

// NewOptimizer returns an Optimizer for the request that samples codons from profile
func NewOptimizer(req Request, profile Profile, conf *config.Config) *Optimizer {
	return &Optimizer{
		conf:    conf,
		req:     req,
		profile: profile,
		eval:    NewEvaluator(profile, enzyme.Sites(req.Enzymes), conf.Scoring),
	}
}

// Run builds the preference profile of the request's species and optimizes its sequence
func Run(ctx context.Context, req Request, conf *config.Config) (Result, error) {
	profile, err := BuildProfile(req.Weights)
	if err != nil {
		return Result{}, err
	}
	return NewOptimizer(req, profile, conf).Run(ctx)
}

// Run searches for and then repairs the best sequence.
//
// If ctx is cancelled, the run stops between trials or rounds and the best
// sequence so far is returned along with ctx's error. The first batch of trials
// always runs, so a cancelled run still has a sequence
func (o *Optimizer) Run(ctx context.Context) (Result, error) {
	if err := validateAminoAcids(o.req.AminoAcids); err != nil {
		return Result{}, err
	}
	for _, aa := range o.req.AminoAcids {
		if len(o.profile[codon.AminoAcid(aa)].Codons) == 0 {
			return Result{}, fmt.Errorf("%w: %q has no codons in the profile", ErrUnknownAminoAcid, aa)
		}
	}

	best, trials, err := o.search(ctx)
	if err != nil && trials == 0 {
		return Result{}, err
	}
	o.logf("search: best of %d trials scored %.1f", trials, best.Score)

	rounds := 0
	if err == nil {
		best, rounds, err = o.repair(ctx, best)
		o.logf("repair: best after %d rounds scored %.1f", rounds, best.Score)
	}

	r, copyErr := o.result(best, trials, rounds)
	if copyErr != nil {
		return Result{}, copyErr
	}
	return r, err
}

// search generates candidates in batches of one per worker, keeping the best.
// Batches are reduced in trial order so the result doesn't depend on scheduling
func (o *Optimizer) search(ctx context.Context) (best Candidate, trials int, err error) {
	n, workers := o.conf.Optimizer.Trials, o.conf.Optimizer.Workers
	best.Score = -1e300

	for start := 0; start < n; start += workers {
		if start > 0 {
			if err := ctx.Err(); err != nil {
				return best, trials, err
			}
		}

		batch := make([]Candidate, min(workers, n-start))
		p := pool.New().WithErrors().WithMaxGoroutines(workers)
		for i := range batch {
			trial := start + i
			p.Go(func() error {
				rng := rand.New(rand.NewPCG(uint64(o.conf.Optimizer.Seed), uint64(trial)))
				seq, err := Assign(o.req.AminoAcids, o.profile, rng)
				if err != nil {
					return err
				}
				batch[i] = o.eval.Evaluate(seq)
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return best, trials, err
		}

		for _, c := range batch {
			trials++
			if c.Score > best.Score {
				best = c
			}
			if best.Score >= perfect {
				return best, trials, nil
			}
		}
	}
	return best, trials, nil
}

// repair re-samples the codons of the best candidate's flagged regions, keeping
// any splice that improves the score. After a failed round the regions may be
// widened, with a chance that grows with the number of rounds since the last improvement
func (o *Optimizer) repair(ctx context.Context, best Candidate) (Candidate, int, error) {
	segments := Consolidate(best.Regions())
	unsuccessful := 0

	rounds := 0
	for ; rounds < o.conf.Optimizer.RepairRounds; rounds++ {
		if len(segments) == 0 || best.Score >= perfect {
			break
		}
		if err := ctx.Err(); err != nil {
			return best, rounds, err
		}

		rng := rand.New(rand.NewPCG(uint64(o.conf.Optimizer.Seed), repairStream+uint64(rounds)))

		if unsuccessful > o.conf.Optimizer.ExpandAfter {
			k := min(unsuccessful, expandCap)
			if rng.IntN(expandCap+1-k)+k == expandCap {
				segments = Consolidate(Expand(segments, o.conf.Optimizer.Expand, len(best.Seq)))
				o.logf("repair: round %d widened regions to %v", rounds+1, segments)
			}
		}

		seq, err := o.splice(best.Seq, segments, rng)
		if err != nil {
			return best, rounds, err
		}

		c := o.eval.Evaluate(seq)
		if c.Score <= best.Score {
			unsuccessful++
			continue
		}

		best = c
		unsuccessful = 0
		if regions := best.Regions(); len(regions) > 0 {
			segments = Consolidate(regions)
		}
		o.logf("repair: round %d improved the score to %.1f", rounds+1, best.Score)
	}
	return best, rounds, nil
}

// splice returns seq with the codons of each segment re-sampled
func (o *Optimizer) splice(seq string, segments []Region, rng *rand.Rand) (string, error) {
	var spliced strings.Builder
	spliced.Grow(len(seq))

	last := 0
	for _, s := range segments {
		start, end := min(s.Start, len(seq)), min(s.End, len(seq))
		if start < last {
			start = last
		}

		codons, err := Assign(codon.Translate(seq[start:end]), o.profile, rng)
		if err != nil {
			return "", err
		}
		spliced.WriteString(seq[last:start])
		spliced.WriteString(codons)
		last = end
	}
	spliced.WriteString(seq[last:])
	return spliced.String(), nil
}

// result converts the best candidate into a Result. The Result is a deep copy,
// so callers can change its profile or regions without touching the Optimizer
func (o *Optimizer) result(best Candidate, trials, rounds int) (Result, error) {
	r := Result{
		Seq:        best.Seq,
		AminoAcids: o.req.AminoAcids,
		Score:      best.Score,
		GC:         best.GC,
		Soft:       best.Soft,
		Hard:       best.Hard,
		Segments:   Consolidate(best.Regions()),
		Trials:     trials,
		Rounds:     rounds,
		Profile:    o.profile,
	}
	if r.Segments == nil {
		r.Segments = []Region{}
	}
	r.Weights = make([]float64, 0, len(best.Seq)/3)
	for _, c := range r.Codons() {
		r.Weights = append(r.Weights, o.profile.Weight(c))
	}

	var dup Result
	if err := copier.CopyWithOption(&dup, &r, copier.Option{DeepCopy: true}); err != nil {
		return Result{}, fmt.Errorf("failed to copy result: %w", err)
	}
	return dup, nil
}

func (o *Optimizer) logf(format string, v ...any) {
	if o.Log != nil {
		o.Log.Printf(format, v...)
	}
}
