package rank

import (
	"fmt"

	"github.com/katalvlaran/pagerank/corpus"
)

// Transition returns the one-step random-surfer distribution over the whole
// corpus, given the current page and the damping factor.
//
// Behavior:
//
//   - Every page receives the uniform teleport term (1−damping)/N.
//   - If page has outbound links, each link target additionally receives
//     damping/outdeg(page).
//   - If page is dangling, it is treated as linking uniformly to every page
//     (itself included): every page additionally receives damping/N.
//
// The two terms are normalized sub-distributions weighted by 1−damping and
// damping, so the result sums to 1 by construction.
//
// Transition is a pure function: repeated calls with identical arguments
// return bit-identical distributions.
//
// Preconditions and validation (in order):
//  1. damping must lie in (0,1) exclusive (ErrBadDamping).
//  2. c must be non-nil and non-empty (ErrNilCorpus, ErrEmptyCorpus).
//  3. page must be a page of c (ErrUnknownPage).
//
// Complexity: O(V) time and space.
func Transition(c *corpus.Corpus, page corpus.Page, damping float64) (Distribution, error) {
	// 1) Validate the damping factor before touching the corpus.
	if damping <= 0 || damping >= 1 {
		return nil, ErrBadDamping
	}

	// 2) Validate the corpus.
	if c == nil {
		return nil, ErrNilCorpus
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}

	// 3) Validate the page and fetch its outbound links in one go.
	links, err := c.Links(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	n := float64(c.Len())
	teleport := (1 - damping) / n

	// 4) Seed every page with the uniform teleport term.
	dist := make(Distribution, c.Len())
	for _, p := range c.Pages() {
		dist[p] = teleport
	}

	// 5) Add the link-following term. The dangling branch is explicit: a page
	//    with no outbound links spreads the whole damping mass uniformly.
	if len(links) == 0 {
		uniform := damping / n
		for p := range dist {
			dist[p] += uniform
		}

		return dist, nil
	}

	share := damping / float64(len(links))
	for _, t := range links {
		dist[t] += share
	}

	return dist, nil
}

// transitionInto fills weights with the transition row of page cur, using
// the compiled model. Same arithmetic as Transition, but allocation-free so
// the sampling walk can reuse one buffer per step.
func (m *model) transitionInto(weights []float64, cur int, damping float64) {
	n := float64(len(m.pages))
	teleport := (1 - damping) / n

	links := m.out[cur]
	if len(links) == 0 {
		// Dangling: teleport term plus uniformly spread damping mass.
		uniform := teleport + damping/n
		for i := range weights {
			weights[i] = uniform
		}

		return
	}

	for i := range weights {
		weights[i] = teleport
	}
	share := damping / float64(len(links))
	for _, t := range links {
		weights[t] += share
	}
}
