package rank

import "github.com/katalvlaran/pagerank/corpus"

// model is the index-based view of a corpus compiled once per estimator call:
// pages are numbered by their sorted position, adjacency is stored both ways,
// and dangling pages are listed up front. Everything downstream works on
// integer indices and plain slices; Page names reappear only in the final
// Distribution.
type model struct {
	pages    []corpus.Page // sorted page list; index = page number
	out      [][]int       // out[p] = outbound neighbor indices of page p
	in       [][]int       // in[p]  = pages linking to p (reverse adjacency)
	dangling []int         // pages with no outbound links, ascending
}

// compile validates the corpus pointer and builds the index-based view.
// Complexity: O(V + E) given the corpus's pre-sorted accessors.
func compile(c *corpus.Corpus) (*model, error) {
	if c == nil {
		return nil, ErrNilCorpus
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}

	pages := c.Pages()
	index := make(map[corpus.Page]int, len(pages))
	for i, p := range pages {
		index[p] = i
	}

	m := &model{
		pages: pages,
		out:   make([][]int, len(pages)),
		in:    make([][]int, len(pages)),
	}

	for i, p := range pages {
		// Links never fails here: p comes from the corpus's own page list.
		targets, _ := c.Links(p)
		if len(targets) == 0 {
			m.dangling = append(m.dangling, i)
			continue
		}
		row := make([]int, len(targets))
		for j, t := range targets {
			ti := index[t]
			row[j] = ti
			m.in[ti] = append(m.in[ti], i)
		}
		m.out[i] = row
	}

	return m, nil
}

// distribution lifts an index-based rank slice back into the public
// Page-keyed Distribution.
func (m *model) distribution(ranks []float64) Distribution {
	dist := make(Distribution, len(m.pages))
	for i, p := range m.pages {
		dist[p] = ranks[i]
	}

	return dist
}
