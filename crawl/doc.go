// Package crawl is the ingestion collaborator of the PageRank engine: it
// turns a directory of HTML pages into a corpus.Corpus satisfying the
// engine's invariants.
//
// Behavior:
//
//   - Every regular *.html file in the directory (non-recursive) becomes a
//     page, identified by its file name.
//   - Links are the href attributes of <a> elements, extracted with
//     golang.org/x/net/html; malformed markup still parses.
//   - Self-links and links whose target is not an *.html file of the same
//     directory are dropped — the corpus only models the crawled set.
//
// Errors: filesystem and parse failures are wrapped with file context;
// ErrNoPages is returned when the directory contains no HTML files, so the
// caller learns the real cause instead of a downstream empty-corpus error.
package crawl
