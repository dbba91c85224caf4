// Package rank implements the classical uniform-damping PageRank model over
// an immutable corpus.Corpus, with two independent estimators of the same
// fixed point plus the one-step transition model they share.
//
// Overview:
//
//   - Transition computes the random-surfer distribution for a single page:
//     with probability damping, follow one of the page's outbound links
//     (chosen uniformly); with probability 1−damping, teleport to a uniformly
//     random page of the corpus. A dangling page (no outbound links) is a
//     first-class branch: it is treated as linking uniformly to every page,
//     itself included.
//   - Sample runs a seeded random walk of exactly n steps through the
//     transition model and estimates each page's rank as its visitation
//     frequency. A Monte-Carlo estimate: variance shrinks as 1/n, and by
//     ergodicity of the damped chain it converges to the same fixed point
//     as Iterate.
//   - Iterate solves the PageRank recurrence
//     PR(p) = (1−d)/N + d·Σ_{q→p} PR(q)/outdeg(q) + d·Σ_{dangling q} PR(q)/N
//     by synchronous (Jacobi) relaxation from the uniform distribution,
//     stopping when every page's absolute rank change is strictly below the
//     convergence threshold.
//
// Determinism:
//
//   - Transition and Iterate are pure functions of their inputs: calling
//     either twice with identical arguments yields identical Distributions.
//   - Sample draws all randomness from an injected rand.Source
//     (golang.org/x/exp/rand, the source type gonum samplers consume), so a
//     fixed seed reproduces the walk exactly. Without WithRandSource the
//     source is seeded from the wall clock.
//
// Options:
//
//   - WithDamping(d):       damping factor, must lie in (0,1) exclusive. Default 0.85.
//   - WithSamples(n):       walk length for Sample, n ≥ 1. Default 10000.
//   - WithThreshold(eps):   convergence threshold for Iterate, eps > 0. Default 0.001.
//   - WithMaxIterations(k): safety cap for Iterate, k ≥ 1. Default 10000.
//   - WithWorkers(w):       relaxation goroutines for Iterate, w ≥ 1. Default 1.
//   - WithRandSource(src):  random source for Sample.
//
// Parallel relaxation keeps Jacobi semantics: iteration k reads only
// iteration k−1's ranks, workers own disjoint page ranges and write only
// their own output slots, and a barrier separates iterations. The result is
// bit-identical to the single-worker run.
//
// Errors (sentinel):
//
//   - ErrNilCorpus       if the corpus pointer is nil.
//   - ErrEmptyCorpus     if the corpus has no pages.
//   - ErrUnknownPage     if Transition is asked about a page outside the corpus.
//   - ErrBadDamping      if damping is outside (0,1) exclusive.
//   - ErrBadSampleCount  if the sample count is below 1.
//   - ErrBadThreshold    if the convergence threshold is not positive.
//   - ErrBadMaxIterations, ErrBadWorkers for non-positive caps.
//   - ErrNoConvergence   if Iterate exceeds its iteration cap, which indicates
//     a modeling defect (damping pathologically close to 1) rather than a
//     transient condition.
//
// Complexity:
//
//   - Transition: O(V) time and space.
//   - Sample:     O(n·V) time, O(V) space (one transition row per step).
//   - Iterate:    O(k·(V+E)) time for k sweeps, O(V+E) space for the
//     compiled reverse adjacency.
//
// Every returned Distribution sums to 1 up to floating rounding; the two
// weighted terms of the transition model are normalized sub-distributions by
// construction, and each relaxation sweep is a convex combination of the
// uniform distribution and a stochastic redistribution of the previous
// sweep's mass.
package rank
