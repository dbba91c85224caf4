// Tests for the sampling estimator: sample-count validation, seeded
// reproducibility, mass conservation, and Monte-Carlo accuracy on corpora
// whose fixed point is known.
package rank_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/pagerank/corpus"
	"github.com/katalvlaran/pagerank/rank"
)

func TestSample_BadSampleCount(t *testing.T) {
	c := threePagesCorpus(t)

	// n = 0 would divide the visit counters by zero; it must be rejected,
	// not silently return NaN or garbage.
	_, err := rank.Sample(c, rank.WithSamples(0))
	require.ErrorIs(t, err, rank.ErrBadSampleCount)

	_, err = rank.Sample(c, rank.WithSamples(-100))
	require.ErrorIs(t, err, rank.ErrBadSampleCount)
}

func TestSample_NilCorpus(t *testing.T) {
	_, err := rank.Sample(nil)
	require.ErrorIs(t, err, rank.ErrNilCorpus)
}

func TestSample_BadDamping(t *testing.T) {
	c := threePagesCorpus(t)
	_, err := rank.Sample(c, rank.WithDamping(1.2))
	require.ErrorIs(t, err, rank.ErrBadDamping)
}

func TestSample_SeededRunsAreReproducible(t *testing.T) {
	c := threePagesCorpus(t)

	first, err := rank.Sample(c, rank.WithSamples(5000), rank.WithRandSource(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := rank.Sample(c, rank.WithSamples(5000), rank.WithRandSource(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, first, second, "identical seeds must reproduce the walk exactly")
}

func TestSample_SumsToOne(t *testing.T) {
	c := threePagesCorpus(t)

	dist, err := rank.Sample(c, rank.WithSamples(1000), rank.WithRandSource(rand.NewSource(1)))
	require.NoError(t, err)

	require.InDelta(t, 1.0, dist.Sum(), 1e-9, "visit frequencies must sum to 1")
	require.Len(t, dist, c.Len())
	for p, v := range dist {
		require.GreaterOrEqual(t, v, 0.0, "rank[%s] must be non-negative", p)
	}
}

func TestSample_TwoPageAccuracy(t *testing.T) {
	// A↔B with damping 0.85: the fixed point is (0.5, 0.5). At n = 100000
	// the Monte-Carlo estimate must land within ±0.02 of it.
	c, err := corpus.New(map[corpus.Page][]corpus.Page{
		"A": {"B"},
		"B": {"A"},
	})
	require.NoError(t, err)

	dist, err := rank.Sample(c,
		rank.WithSamples(100_000),
		rank.WithRandSource(rand.NewSource(7)),
	)
	require.NoError(t, err)

	require.InDelta(t, 0.5, dist["A"], 0.02)
	require.InDelta(t, 0.5, dist["B"], 0.02)
}

func TestSample_AgreesWithIterateOnFixture(t *testing.T) {
	// On the three-page fixture the sampling estimate must recover the same
	// ordering as the fixed-point solution, with C on top, and land within a
	// loose Monte-Carlo tolerance of the iterated ranks.
	c := threePagesCorpus(t)

	sampled, err := rank.Sample(c,
		rank.WithSamples(200_000),
		rank.WithRandSource(rand.NewSource(11)),
	)
	require.NoError(t, err)

	iterated, err := rank.Iterate(c, rank.WithThreshold(1e-9))
	require.NoError(t, err)

	require.Greater(t, sampled["C"], sampled["A"])
	require.Greater(t, sampled["C"], sampled["B"])
	for _, p := range c.Pages() {
		require.InDelta(t, iterated[p], sampled[p], 0.02, "page %s", p)
	}
}

func TestSample_SinglePageCorpus(t *testing.T) {
	// One dangling page: every step teleports back to it, so its frequency
	// is exactly 1.
	c, err := corpus.New(map[corpus.Page][]corpus.Page{"solo": {}})
	require.NoError(t, err)

	dist, err := rank.Sample(c, rank.WithSamples(100), rank.WithRandSource(rand.NewSource(3)))
	require.NoError(t, err)
	require.True(t, math.Abs(dist["solo"]-1) < 1e-12, "solo page must absorb the whole walk, got %v", dist["solo"])
}
