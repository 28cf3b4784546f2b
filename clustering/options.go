// SPDX-License-Identifier: MIT
package clustering

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// DefaultIterations is the iteration cap used when WithIterations is not given.
const DefaultIterations = 10

const (
	panicIterationsNonPositive = "clustering: WithIterations: n must be > 0"
	panicRandomSourceNil       = "clustering: WithRandomSource: nil source"
)

// RandomSource supplies the shuffle used to pick the initial centroids.
// *rand.Rand satisfies it.
type RandomSource interface {
	Perm(n int) []int
}

// Option configures KMeans.
type Option func(*options)

type options struct {
	iterations int
	rng        RandomSource
	log        zerolog.Logger
}

// WithIterations caps the number of assignment/update rounds.
// Panics when n <= 0.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsNonPositive)
	}

	return func(o *options) { o.iterations = n }
}

// WithRandomSource replaces the default seeded source (seed 1).
// Panics on a nil source.
func WithRandomSource(src RandomSource) Option {
	if src == nil {
		panic(panicRandomSourceNil)
	}

	return func(o *options) { o.rng = src }
}

// WithLogger routes per-iteration progress to l at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

func gatherOptions(opts ...Option) options {
	o := options{
		iterations: DefaultIterations,
		rng:        rand.New(rand.NewSource(1)),
		log:        zerolog.Nop(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
