// Package corpus_test contains unit tests for Corpus construction and
// accessors: invariant validation, deterministic ordering, dangling-page
// detection, and the Builder's DropUnknown normalization.
package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pagerank/corpus"
)

// threePages is the canonical fixture used across the repository:
// A→{B,C}, B→{C}, C dangling.
func threePages(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New(map[corpus.Page][]corpus.Page{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {},
	})
	require.NoError(t, err)

	return c
}

// ------------------------------------------------------------------------
// 1. Validation: each invariant violation maps to its sentinel error.
// ------------------------------------------------------------------------

func TestNew_EmptyCorpus(t *testing.T) {
	_, err := corpus.New(nil)
	require.ErrorIs(t, err, corpus.ErrEmptyCorpus)

	_, err = corpus.New(map[corpus.Page][]corpus.Page{})
	require.ErrorIs(t, err, corpus.ErrEmptyCorpus)
}

func TestNew_EmptyPageID(t *testing.T) {
	_, err := corpus.New(map[corpus.Page][]corpus.Page{"": nil})
	require.ErrorIs(t, err, corpus.ErrEmptyPageID)

	_, err = corpus.New(map[corpus.Page][]corpus.Page{"A": {""}})
	require.ErrorIs(t, err, corpus.ErrEmptyPageID)
}

func TestNew_SelfLink(t *testing.T) {
	_, err := corpus.New(map[corpus.Page][]corpus.Page{"A": {"A"}})
	require.ErrorIs(t, err, corpus.ErrSelfLink)
}

func TestNew_UnknownTarget(t *testing.T) {
	_, err := corpus.New(map[corpus.Page][]corpus.Page{"A": {"B"}})
	require.ErrorIs(t, err, corpus.ErrUnknownPage)
}

func TestNew_DuplicateLinksDeduplicated(t *testing.T) {
	c, err := corpus.New(map[corpus.Page][]corpus.Page{
		"A": {"B", "B", "B"},
		"B": {},
	})
	require.NoError(t, err)

	deg, err := c.OutDegree("A")
	require.NoError(t, err)
	require.Equal(t, 1, deg)
}

// ------------------------------------------------------------------------
// 2. Accessors: determinism, ordering, membership, dangling detection.
// ------------------------------------------------------------------------

func TestCorpus_PagesSorted(t *testing.T) {
	c, err := corpus.New(map[corpus.Page][]corpus.Page{
		"zeta": {}, "alpha": {}, "mid": {"alpha", "zeta"},
	})
	require.NoError(t, err)
	require.Equal(t, []corpus.Page{"alpha", "mid", "zeta"}, c.Pages())
}

func TestCorpus_LinksSortedCopy(t *testing.T) {
	c := threePages(t)

	links, err := c.Links("A")
	require.NoError(t, err)
	require.Equal(t, []corpus.Page{"B", "C"}, links)

	// Mutating the returned slice must not affect the corpus.
	links[0] = "C"
	again, err := c.Links("A")
	require.NoError(t, err)
	require.Equal(t, []corpus.Page{"B", "C"}, again)
}

func TestCorpus_LinksUnknownPage(t *testing.T) {
	c := threePages(t)
	_, err := c.Links("missing")
	require.ErrorIs(t, err, corpus.ErrUnknownPage)

	_, err = c.OutDegree("missing")
	require.ErrorIs(t, err, corpus.ErrUnknownPage)
}

func TestCorpus_HasAndLinked(t *testing.T) {
	c := threePages(t)

	require.True(t, c.Has("A"))
	require.False(t, c.Has("D"))

	require.True(t, c.Linked("A", "B"))
	require.True(t, c.Linked("B", "C"))
	require.False(t, c.Linked("C", "A")) // dangling page links nowhere
	require.False(t, c.Linked("D", "A")) // unknown source is a plain false
}

func TestCorpus_Dangling(t *testing.T) {
	c := threePages(t)
	require.Equal(t, []corpus.Page{"C"}, c.Dangling())

	full, err := corpus.New(map[corpus.Page][]corpus.Page{
		"A": {"B"},
		"B": {"A"},
	})
	require.NoError(t, err)
	require.Empty(t, full.Dangling())
}

func TestNew_DoesNotRetainCallerMap(t *testing.T) {
	adjacency := map[corpus.Page][]corpus.Page{
		"A": {"B"},
		"B": {},
	}
	c, err := corpus.New(adjacency)
	require.NoError(t, err)

	// Corrupt the caller's slices after construction.
	adjacency["A"][0] = "A"

	links, err := c.Links("A")
	require.NoError(t, err)
	require.Equal(t, []corpus.Page{"B"}, links)
}

// ------------------------------------------------------------------------
// 3. Builder: incremental assembly and DropUnknown filtering.
// ------------------------------------------------------------------------

func TestBuilder_MergesRepeatedAdds(t *testing.T) {
	c, err := corpus.NewBuilder().
		Add("A", "B").
		Add("A", "C").
		Add("B", "C").
		Add("C").
		Build()
	require.NoError(t, err)

	links, err := c.Links("A")
	require.NoError(t, err)
	require.Equal(t, []corpus.Page{"B", "C"}, links)
}

func TestBuilder_ForwardReferencesAllowed(t *testing.T) {
	// "A" links to "B" before "B" is added; Build sees the complete set.
	c, err := corpus.NewBuilder().
		Add("A", "B").
		Add("B").
		Build()
	require.NoError(t, err)
	require.True(t, c.Linked("A", "B"))
}

func TestBuilder_StrictRejectsUnknown(t *testing.T) {
	_, err := corpus.NewBuilder().Add("A", "ghost").Build()
	require.ErrorIs(t, err, corpus.ErrUnknownPage)
}

func TestBuilder_DropUnknownFilters(t *testing.T) {
	c, err := corpus.NewBuilder(corpus.DropUnknown()).
		Add("A", "A", "B", "outside.example").
		Add("B", "A").
		Build()
	require.NoError(t, err)

	links, err := c.Links("A")
	require.NoError(t, err)
	require.Equal(t, []corpus.Page{"B"}, links, "self-link and out-of-corpus target must be dropped")
}

func TestBuilder_DropUnknownCanYieldDangling(t *testing.T) {
	// Every link of "A" is filtered away: "A" becomes a dangling page,
	// which is a legal corpus, not an error.
	c, err := corpus.NewBuilder(corpus.DropUnknown()).
		Add("A", "A", "elsewhere").
		Add("B", "A").
		Build()
	require.NoError(t, err)
	require.Equal(t, []corpus.Page{"A"}, c.Dangling())
}

func TestBuilder_EmptyBuildFails(t *testing.T) {
	_, err := corpus.NewBuilder().Build()
	require.ErrorIs(t, err, corpus.ErrEmptyCorpus)
}
