package corpus

// BuilderOption configures a Builder via functional arguments.
type BuilderOption func(*Builder)

// DropUnknown makes Build discard, rather than reject, self-links and links
// whose target was never added to the builder. This is the normalization an
// ingestion step needs: raw HTML pages routinely link to themselves or to
// pages outside the crawled set, and the PageRank model simply ignores both.
func DropUnknown() BuilderOption {
	return func(b *Builder) { b.dropUnknown = true }
}

// Builder assembles a Corpus incrementally. Pages may be added in any order
// and links may reference pages that are only added later; all validation
// happens in Build.
//
// The zero value is not usable; obtain a Builder from NewBuilder.
type Builder struct {
	links       map[Page]map[Page]struct{}
	dropUnknown bool
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{links: make(map[Page]map[Page]struct{})}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Add registers page p with the given outbound links, merging with any links
// recorded for p by earlier calls. Link targets do not need to exist yet.
// Returns the builder for chaining.
func (b *Builder) Add(p Page, links ...Page) *Builder {
	set, ok := b.links[p]
	if !ok {
		set = make(map[Page]struct{}, len(links))
		b.links[p] = set
	}
	for _, t := range links {
		set[t] = struct{}{}
	}

	return b
}

// Build validates the accumulated pages and returns the finished Corpus.
//
// Without DropUnknown, Build delegates the full validation of New and fails
// on self-links and out-of-corpus targets. With DropUnknown, those links are
// filtered out first and only the remaining invariants (non-empty corpus,
// non-empty IDs) can fail.
func (b *Builder) Build() (*Corpus, error) {
	adjacency := make(map[Page][]Page, len(b.links))
	for p, set := range b.links {
		targets := make([]Page, 0, len(set))
		for t := range set {
			if b.dropUnknown {
				if t == p {
					continue // self-link: ignored under DropUnknown
				}
				if _, inCorpus := b.links[t]; !inCorpus {
					continue // out-of-corpus link: ignored under DropUnknown
				}
			}
			targets = append(targets, t)
		}
		adjacency[p] = targets
	}

	return New(adjacency)
}
