// Package rank: Distribution type, tunable options and error definitions
// for the PageRank estimators.
package rank

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/pagerank/corpus"
)

// Defaults mirror the conventional PageRank parameterization.
const (
	// DefaultDamping is the probability of following a link rather than
	// teleporting to a uniformly random page.
	DefaultDamping = 0.85

	// DefaultSamples is the walk length used by Sample when WithSamples is absent.
	DefaultSamples = 10_000

	// DefaultThreshold is the per-page convergence bound used by Iterate:
	// relaxation stops once every absolute rank change is strictly below it.
	DefaultThreshold = 1e-3

	// DefaultMaxIterations caps relaxation sweeps. The recurrence contracts
	// geometrically for damping in (0,1), so hitting this cap signals a
	// misconfiguration and surfaces ErrNoConvergence instead of spinning.
	DefaultMaxIterations = 10_000
)

// Sentinel errors for the PageRank estimators.
var (
	// ErrNilCorpus is returned if a nil *corpus.Corpus is passed.
	ErrNilCorpus = errors.New("rank: corpus is nil")

	// ErrEmptyCorpus is returned if the corpus contains no pages.
	ErrEmptyCorpus = errors.New("rank: corpus has no pages")

	// ErrUnknownPage is returned when Transition's page is not in the corpus.
	ErrUnknownPage = errors.New("rank: page not found in corpus")

	// ErrBadDamping is returned when the damping factor lies outside (0,1) exclusive.
	ErrBadDamping = errors.New("rank: damping factor must lie in (0,1) exclusive")

	// ErrBadSampleCount is returned when the sample count is below 1:
	// a zero-length walk has no visitation frequencies to normalize.
	ErrBadSampleCount = errors.New("rank: sample count must be at least 1")

	// ErrBadThreshold is returned when the convergence threshold is not positive.
	ErrBadThreshold = errors.New("rank: convergence threshold must be positive")

	// ErrBadMaxIterations is returned when the iteration cap is below 1.
	ErrBadMaxIterations = errors.New("rank: max iterations must be at least 1")

	// ErrBadWorkers is returned when the worker count is below 1.
	ErrBadWorkers = errors.New("rank: worker count must be at least 1")

	// ErrNoConvergence is returned when Iterate exhausts its iteration cap
	// with some page still changing by at least the threshold.
	ErrNoConvergence = errors.New("rank: iteration did not converge")
)

// Distribution maps every page of the corpus to a non-negative rank.
// Values sum to 1 up to floating rounding. Distributions are created fresh
// by each estimator call and never shared or mutated afterwards.
type Distribution map[corpus.Page]float64

// Sum returns the total mass of the distribution.
// For any Distribution produced by this package it is 1 up to rounding.
func (d Distribution) Sum() float64 {
	var total float64
	for _, v := range d {
		total += v
	}

	return total
}

// Option configures the estimators via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of both estimators. Zero values are
// never used directly; obtain a baseline from DefaultOptions and override
// via functional options.
type Options struct {
	// Damping is the probability of following a link. Must be in (0,1) exclusive.
	Damping float64

	// Samples is the exact number of random-walk steps taken by Sample.
	Samples int

	// Threshold is Iterate's per-page convergence bound (strict comparison).
	Threshold float64

	// MaxIterations caps Iterate's relaxation sweeps.
	MaxIterations int

	// Workers is the number of goroutines sharing each relaxation sweep.
	// Workers never changes the arithmetic, only how pages are sharded.
	Workers int

	// Src supplies all randomness used by Sample. If nil, Sample seeds a
	// source from the wall clock (non-reproducible runs).
	Src rand.Source
}

// DefaultOptions returns the conventional parameterization:
// damping 0.85, 10000 samples, threshold 0.001, cap 10000, one worker,
// wall-clock randomness.
func DefaultOptions() Options {
	return Options{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
		Workers:       1,
		Src:           nil,
	}
}

// WithDamping sets the damping factor. Validity ((0,1) exclusive) is checked
// by the estimator, surfacing ErrBadDamping.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithSamples sets the walk length for Sample. Values below 1 surface
// ErrBadSampleCount when Sample runs.
func WithSamples(n int) Option {
	return func(o *Options) { o.Samples = n }
}

// WithThreshold sets Iterate's convergence bound. Non-positive values
// surface ErrBadThreshold.
func WithThreshold(eps float64) Option {
	return func(o *Options) { o.Threshold = eps }
}

// WithMaxIterations sets Iterate's sweep cap. Values below 1 surface
// ErrBadMaxIterations.
func WithMaxIterations(k int) Option {
	return func(o *Options) { o.MaxIterations = k }
}

// WithWorkers shards Iterate's relaxation sweeps across w goroutines.
// Values below 1 surface ErrBadWorkers.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithRandSource injects the random source consumed by Sample, making the
// walk reproducible under a fixed seed.
func WithRandSource(src rand.Source) Option {
	return func(o *Options) { o.Src = src }
}

// validate checks every field so that a single misconfigured Options value
// fails identically regardless of which estimator receives it.
func (o Options) validate() error {
	if o.Damping <= 0 || o.Damping >= 1 {
		return ErrBadDamping
	}
	if o.Samples < 1 {
		return ErrBadSampleCount
	}
	if o.Threshold <= 0 {
		return ErrBadThreshold
	}
	if o.MaxIterations < 1 {
		return ErrBadMaxIterations
	}
	if o.Workers < 1 {
		return ErrBadWorkers
	}

	return nil
}
