// Package corpus defines the Page and Corpus types: the static directed
// hyperlink graph that every PageRank estimator consumes.
//
// Overview:
//
//   - A Page is an opaque string identifier (typically an HTML file name).
//   - A Corpus maps every Page to the set of Pages it links to. The key set
//     is the full corpus; a page with an empty link set is a "dangling page".
//   - A Corpus is built once — via New or a Builder — and is immutable for
//     the lifetime of a computation. Estimators only ever read it.
//
// Invariants (enforced at construction, never re-checked by estimators):
//
//   - Every linked page is itself a key of the corpus (no out-of-corpus links).
//   - No page links to itself.
//   - Neighbor sets are deduplicated and stored sorted, so all accessors are
//     deterministic across runs.
//
// Construction paths:
//
//   - New(links) validates a ready-made adjacency map and rejects violations
//     with sentinel errors (ErrEmptyCorpus, ErrUnknownPage, ErrSelfLink).
//   - NewBuilder().Add(...).Build() assembles a corpus incrementally. With the
//     DropUnknown option, Build silently discards self-links and links whose
//     target was never added — the filtering an HTML crawler needs, since raw
//     pages routinely link outside the crawled directory.
//
// Errors (sentinel):
//
//   - ErrEmptyCorpus if no pages were supplied.
//   - ErrUnknownPage if a link targets a page absent from the corpus.
//   - ErrSelfLink    if a page links to itself.
//   - ErrEmptyPageID if a page or link target has an empty identifier.
//
// Complexity: construction is O(V + E log E) (per-page neighbor sort);
// every accessor is O(1) or O(k) in the size of the returned slice.
//
// Thread safety: a built Corpus is safe for concurrent readers; there are
// no mutating methods.
package corpus
