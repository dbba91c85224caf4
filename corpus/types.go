// Package corpus: domain types and sentinel errors for the link graph.
// Construction logic lives in corpus.go and builder.go.
package corpus

import "errors"

// Sentinel errors for corpus construction.
var (
	// ErrEmptyCorpus indicates that a corpus was built with zero pages.
	ErrEmptyCorpus = errors.New("corpus: corpus has no pages")

	// ErrEmptyPageID indicates that a page or link target has an empty identifier.
	ErrEmptyPageID = errors.New("corpus: page ID is empty")

	// ErrUnknownPage indicates a link whose target is not a page of the corpus.
	ErrUnknownPage = errors.New("corpus: link target is not in the corpus")

	// ErrSelfLink indicates a page that links to itself.
	ErrSelfLink = errors.New("corpus: page links to itself")
)

// Page uniquely identifies a page of the corpus (typically a file name).
// Determinism of every accessor relies on lexicographic ordering of Pages.
type Page string

// Corpus is the immutable directed link graph over a fixed set of pages.
//
// The zero value is not usable; obtain a Corpus from New or Builder.Build.
// All fields are private and never mutated after construction, so a Corpus
// may be shared freely across goroutines.
type Corpus struct {
	pages []Page          // all pages, sorted lexicographically
	index map[Page]int    // page → position in pages
	links map[Page][]Page // page → sorted, deduplicated outbound neighbors
}
