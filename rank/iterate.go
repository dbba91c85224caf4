package rank

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pagerank/corpus"
)

// Iterate computes PageRank as the fixed point of the recurrence
//
//	PR(p) = (1−d)/N + d·Σ_{q→p} PR(q)/outdeg(q) + d·Σ_{dangling q} PR(q)/N
//
// by synchronous relaxation: every page's new rank is computed purely from
// the previous sweep's ranks (Jacobi, never Gauss–Seidel), and a sweep ends
// with a full swap of old and new.
//
// Algorithm:
//  1. Initialize every rank to 1/N.
//  2. Per sweep, fold the dangling term into a per-sweep base — it is
//     identical for every page — then add the incoming-link contributions
//     via the precompiled reverse adjacency.
//  3. Stop once every page's absolute change is strictly below the threshold
//     (Chebyshev distance between consecutive sweeps).
//
// Each sweep preserves the sum-to-1 invariant up to floating rounding: the
// update is a convex combination of the uniform distribution and a
// stochastic redistribution of the previous sweep's mass. For damping in
// (0,1) the update contracts geometrically, so convergence is guaranteed;
// the MaxIterations cap is a guard against misconfiguration and surfaces
// ErrNoConvergence instead of looping forever.
//
// WithWorkers(w) shards each sweep across w goroutines over disjoint page
// ranges with a barrier between sweeps. Sharding does not change the
// arithmetic: the parallel result is bit-identical to the serial one.
//
// Iterate is deterministic: identical inputs yield identical Distributions.
//
// Errors: ErrNilCorpus, ErrEmptyCorpus, ErrBadDamping, ErrBadThreshold,
// ErrBadMaxIterations, ErrBadWorkers, ErrNoConvergence.
//
// Complexity: O(k·(V+E)) time for k sweeps, O(V+E) space.
func Iterate(c *corpus.Corpus, opts ...Option) (Distribution, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Compile the corpus: reverse adjacency drives the incoming-link sum.
	m, err := compile(c)
	if err != nil {
		return nil, err
	}
	n := len(m.pages)
	nf := float64(n)
	d := cfg.Damping

	// 3) Start from the uniform distribution.
	old := make([]float64, n)
	next := make([]float64, n)
	for i := range old {
		old[i] = 1 / nf
	}

	// sweep relaxes pages [lo,hi) of next from old. base carries the teleport
	// term plus the sweep's redistributed dangling mass.
	sweep := func(base float64, lo, hi int) {
		for p := lo; p < hi; p++ {
			sum := 0.0
			for _, q := range m.in[p] {
				sum += old[q] / float64(len(m.out[q]))
			}
			next[p] = base + d*sum
		}
	}

	workers := cfg.Workers
	if workers > n {
		workers = n // never more shards than pages
	}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		// 4) Dangling mass is redistributed uniformly, so it folds into the
		//    same base value for every page.
		danglingMass := 0.0
		for _, q := range m.dangling {
			danglingMass += old[q]
		}
		base := (1-d)/nf + d*danglingMass/nf

		// 5) Relax all pages from the previous sweep's values.
		if workers == 1 {
			sweep(base, 0, n)
		} else {
			var wg sync.WaitGroup
			chunk := (n + workers - 1) / workers
			for lo := 0; lo < n; lo += chunk {
				hi := lo + chunk
				if hi > n {
					hi = n
				}
				wg.Add(1)
				go func(lo, hi int) {
					defer wg.Done()
					sweep(base, lo, hi)
				}(lo, hi)
			}
			wg.Wait() // barrier: no page of sweep k+1 may read a partial sweep k
		}

		// 6) Convergence test: strict per-page bound, i.e. Chebyshev distance.
		if floats.Distance(next, old, math.Inf(1)) < cfg.Threshold {
			return m.distribution(next), nil
		}

		// 7) Swap buffers and relax again.
		old, next = next, old
	}

	return nil, fmt.Errorf("%w: %d iterations at threshold %g (damping %g)",
		ErrNoConvergence, cfg.MaxIterations, cfg.Threshold, d)
}
