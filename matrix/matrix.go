package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pagerank/corpus"
	"github.com/katalvlaran/pagerank/rank"
)

// Transition assembles the dense Google matrix of the corpus: entry (i,j) is
// the probability that a surfer on pageᵢ moves to pageⱼ in one step under
// the given damping factor. Rows follow the returned page slice, which is
// the corpus's sorted page list, so the layout is deterministic.
//
// Each row is produced by rank.Transition, so the dangling-page policy and
// the sum-to-one guarantee are inherited rather than re-implemented.
//
// Errors: rank.ErrNilCorpus, rank.ErrEmptyCorpus, rank.ErrBadDamping.
//
// Complexity: O(V²) time and space.
func Transition(c *corpus.Corpus, damping float64) (*mat.Dense, []corpus.Page, error) {
	if c == nil {
		return nil, nil, rank.ErrNilCorpus
	}
	if c.Len() == 0 {
		return nil, nil, rank.ErrEmptyCorpus
	}

	pages := c.Pages()
	n := len(pages)
	g := mat.NewDense(n, n, nil)

	for i, p := range pages {
		row, err := rank.Transition(c, p, damping)
		if err != nil {
			return nil, nil, fmt.Errorf("matrix: row %q: %w", p, err)
		}
		for j, q := range pages {
			g.Set(i, j, row[q])
		}
	}

	return g, pages, nil
}

// PowerIterate solves rᵀ = rᵀ·G by power iteration from the uniform vector:
// the dense counterpart of rank.Iterate, converging to the same fixed point.
// Iteration stops once the Chebyshev distance between consecutive vectors is
// strictly below threshold; exceeding maxIter surfaces rank.ErrNoConvergence.
//
// Complexity: O(k·V²) time for k multiplications, O(V²) space for G.
func PowerIterate(c *corpus.Corpus, damping, threshold float64, maxIter int) (rank.Distribution, error) {
	if threshold <= 0 {
		return nil, rank.ErrBadThreshold
	}
	if maxIter < 1 {
		return nil, rank.ErrBadMaxIterations
	}

	g, pages, err := Transition(c, damping)
	if err != nil {
		return nil, err
	}
	n := len(pages)

	// Uniform start; cur and next swap roles every step.
	cur := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		cur.SetVec(i, 1/float64(n))
	}
	next := mat.NewVecDense(n, nil)

	for iter := 0; iter < maxIter; iter++ {
		// rᵀ·G is Gᵀ·r in column form.
		next.MulVec(g.T(), cur)

		if floats.Distance(next.RawVector().Data, cur.RawVector().Data, math.Inf(1)) < threshold {
			dist := make(rank.Distribution, n)
			for i, p := range pages {
				dist[p] = next.AtVec(i)
			}

			return dist, nil
		}
		cur, next = next, cur
	}

	return nil, fmt.Errorf("%w: %d multiplications at threshold %g (damping %g)",
		rank.ErrNoConvergence, maxIter, threshold, damping)
}
