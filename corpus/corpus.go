package corpus

import (
	"fmt"
	"sort"
)

// New validates links as a complete adjacency map and returns the corpus
// it describes.
//
// Validation (in order, fail fast):
//  1. links must contain at least one page (ErrEmptyCorpus).
//  2. No page or link target may have an empty ID (ErrEmptyPageID).
//  3. No page may link to itself (ErrSelfLink).
//  4. Every link target must itself be a key of links (ErrUnknownPage).
//
// Neighbor slices are copied, deduplicated and sorted; the caller's map is
// never retained, so later mutation of links cannot corrupt the corpus.
//
// Complexity: O(V + E log E).
func New(links map[Page][]Page) (*Corpus, error) {
	if len(links) == 0 {
		return nil, ErrEmptyCorpus
	}

	c := &Corpus{
		pages: make([]Page, 0, len(links)),
		index: make(map[Page]int, len(links)),
		links: make(map[Page][]Page, len(links)),
	}

	// 1) Collect and order the page set first, so membership checks below
	//    see the complete corpus regardless of map iteration order.
	for p := range links {
		if p == "" {
			return nil, ErrEmptyPageID
		}
		c.pages = append(c.pages, p)
	}
	sort.Slice(c.pages, func(i, j int) bool { return c.pages[i] < c.pages[j] })
	for i, p := range c.pages {
		c.index[p] = i
	}

	// 2) Validate and normalize each neighbor set.
	for p, targets := range links {
		seen := make(map[Page]struct{}, len(targets))
		normalized := make([]Page, 0, len(targets))
		for _, t := range targets {
			if t == "" {
				return nil, fmt.Errorf("%w: link source %q", ErrEmptyPageID, p)
			}
			if t == p {
				return nil, fmt.Errorf("%w: page %q", ErrSelfLink, p)
			}
			if _, ok := c.index[t]; !ok {
				return nil, fmt.Errorf("%w: %q → %q", ErrUnknownPage, p, t)
			}
			if _, dup := seen[t]; dup {
				continue // silently drop duplicate links
			}
			seen[t] = struct{}{}
			normalized = append(normalized, t)
		}
		sort.Slice(normalized, func(i, j int) bool { return normalized[i] < normalized[j] })
		c.links[p] = normalized
	}

	return c, nil
}

// Len returns the number of pages in the corpus.
// Complexity: O(1).
func (c *Corpus) Len() int { return len(c.pages) }

// Pages returns all pages in lexicographic order.
// The slice is a copy; callers may mutate it freely.
// Complexity: O(V).
func (c *Corpus) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)

	return out
}

// Has reports whether p is a page of the corpus.
// Complexity: O(1).
func (c *Corpus) Has(p Page) bool {
	_, ok := c.index[p]

	return ok
}

// Links returns the sorted outbound neighbors of p as a copy.
// Returns ErrUnknownPage if p is not a page of the corpus.
// Complexity: O(outdegree(p)).
func (c *Corpus) Links(p Page) ([]Page, error) {
	targets, ok := c.links[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, p)
	}
	out := make([]Page, len(targets))
	copy(out, targets)

	return out, nil
}

// OutDegree returns the number of outbound links of p, or ErrUnknownPage.
// A zero out-degree marks a dangling page.
// Complexity: O(1).
func (c *Corpus) OutDegree(p Page) (int, error) {
	targets, ok := c.links[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPage, p)
	}

	return len(targets), nil
}

// Linked reports whether page from links directly to page to.
// Unknown pages simply report false; membership is a query, not a precondition.
// Complexity: O(log outdegree(from)) via binary search on the sorted neighbors.
func (c *Corpus) Linked(from, to Page) bool {
	targets, ok := c.links[from]
	if !ok {
		return false
	}
	i := sort.Search(len(targets), func(i int) bool { return targets[i] >= to })

	return i < len(targets) && targets[i] == to
}

// Dangling returns the sorted list of pages with no outbound links.
// Complexity: O(V).
func (c *Corpus) Dangling() []Page {
	var out []Page
	for _, p := range c.pages { // pages is sorted, so out is too
		if len(c.links[p]) == 0 {
			out = append(out, p)
		}
	}

	return out
}
