// Package pagerank estimates the relative importance of pages in a
// hyperlink graph — the classical uniform-damping PageRank model, with
// two independent estimators you can run side by side and compare.
//
// 🚀 What is pagerank?
//
//	A small, focused library that brings together:
//		• Corpus primitives: an immutable directed link graph with validated invariants
//		• Transition model: the one-step random-surfer distribution for any page
//		• Sampling estimator: a long seeded random walk, ranks = visit frequencies
//		• Iterative estimator: synchronous fixed-point relaxation until convergence
//		• Matrix view: the dense row-stochastic Google matrix + power iteration
//		• Crawler: build a corpus from a directory of HTML pages
//
// ✨ Why choose pagerank?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – injected random sources, sorted page order, pure functions
//   - Honest numerics – sum-to-one invariants checked in tests, explicit dangling-page policy
//   - Extensible – functional options for damping, threshold, workers, sampling
//
// Under the hood, everything is organized under four subpackages:
//
//	corpus/ — Page and Corpus types, builder, invariant validation
//	crawl/  — HTML ingestion: directory of pages → Corpus
//	matrix/ — dense transition (Google) matrix + power iteration, via gonum
//	rank/   — Transition, Sample and Iterate: the two estimators themselves
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C◀──┘   (C has no outbound links: the "dangling page")
//
//	With damping 0.85, C collects the link mass of A and B plus its own
//	uniformly redistributed dangling mass, and ends up ranked highest.
//
// The cmd/pagerank command crawls a directory of HTML files and prints
// both estimates, sorted by page name.
//
//	go get github.com/katalvlaran/pagerank
package pagerank
