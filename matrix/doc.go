// Package matrix exposes the dense linear-algebra view of the PageRank
// model: the row-stochastic "Google matrix" of a corpus and a power-iteration
// solver on top of it.
//
// Overview:
//
//   - Transition assembles the N×N matrix G whose row i is the one-step
//     surfer distribution of page i — exactly rank.Transition, page order
//     fixed to the corpus's sorted page list. Every row sums to 1.
//   - PowerIterate finds the stationary row vector rᵀ = rᵀ·G by repeated
//     multiplication from the uniform start, the dense counterpart of
//     rank.Iterate's sparse relaxation. Both converge to the same fixed
//     point, which makes this package a natural cross-check for the two
//     estimators.
//
// The dense form materializes all N² entries, so it suits small corpora and
// verification work, not large graphs; rank.Iterate remains the production
// path. Built on gonum/mat and gonum/floats.
//
// Errors are the rank package's sentinels (ErrNilCorpus, ErrBadDamping,
// ErrBadThreshold, ErrBadMaxIterations, ErrNoConvergence): the matrix view
// adds no error taxonomy of its own.
//
// Complexity: Transition O(V²) time and space; PowerIterate O(k·V²) for k
// multiplications.
package matrix
