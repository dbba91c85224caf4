package rank

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/pagerank/corpus"
)

// Sample estimates PageRank by simulating the random surfer: a walk of
// exactly Options.Samples steps through the transition model, starting from
// a uniformly random page. Each page's rank is its visitation frequency.
//
// Algorithm:
//  1. Start at a page drawn uniformly from the corpus.
//  2. For each of the n steps: count a visit to the current page, compute
//     its transition row, and draw the next page from that row (one weighted
//     draw per step, independent across steps).
//  3. Return counts divided by n.
//
// The walk always runs exactly n steps; there is no convergence check. As
// n → ∞ the estimate converges to Iterate's fixed point (the damped chain is
// irreducible and aperiodic over a finite corpus); for finite n it is a
// Monte-Carlo estimate with variance decreasing as 1/n.
//
// All randomness comes from the injected source (WithRandSource); with a
// fixed seed the walk — and therefore the estimate — is reproducible.
// Weighted draws go through gonum's sampleuv, reweighted with the fresh
// transition row before every draw.
//
// Errors: ErrNilCorpus, ErrEmptyCorpus, ErrBadDamping, ErrBadSampleCount
// (n < 1 would divide the counters by zero; it is rejected up front, never
// papered over).
//
// Complexity: O(n·V) time, O(V) space.
func Sample(c *corpus.Corpus, opts ...Option) (Distribution, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Compile the corpus into the index-based view.
	m, err := compile(c)
	if err != nil {
		return nil, err
	}
	n := len(m.pages)

	// 3) Set up randomness: injected source, or wall-clock seed when absent.
	src := cfg.Src
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	rng := rand.New(src)

	// 4) Pick the starting page uniformly at random.
	cur := rng.Intn(n)

	// 5) Walk. One reusable weights buffer; the sampler is reweighted with
	//    the current transition row before every draw, so each draw is an
	//    independent sample from the current distribution.
	counts := make([]float64, n)
	weights := make([]float64, n)
	sampler := sampleuv.NewWeighted(weights, src)
	for step := 0; step < cfg.Samples; step++ {
		counts[cur]++
		m.transitionInto(weights, cur, cfg.Damping)
		sampler.ReweightAll(weights)
		next, ok := sampler.Take()
		if !ok {
			// Unreachable: every transition row has total mass 1.
			return nil, fmt.Errorf("rank: weighted draw failed at step %d", step)
		}
		cur = next
	}

	// 6) Normalize visit counters into a Distribution.
	total := float64(cfg.Samples)
	ranks := make([]float64, n)
	for i, visits := range counts {
		ranks[i] = visits / total
	}

	return m.distribution(ranks), nil
}
