// SPDX-License-Identifier: MIT

package circuit

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultSeed seeds the runner's PCG source when neither WithSource nor
// WithSeed is given.
const DefaultSeed uint64 = 1

const (
	panicNilSource    = "circuit: WithSource: nil source"
	panicNilRunIDFunc = "circuit: WithRunIDFunc: nil func"
)

// Option configures a Runner.
type Option func(*Options)

// Options is the resolved Runner configuration.
type Options struct {
	log   zerolog.Logger
	src   rand.Source
	seed  uint64
	newID func() (uuid.UUID, error)
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithSource sets the measurement source. It takes precedence over WithSeed.
// Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.src = src }
}

// WithSeed seeds the default PCG source.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRunIDFunc replaces uuid.NewRandom as the run-ID generator. Panics on nil.
func WithRunIDFunc(fn func() (uuid.UUID, error)) Option {
	if fn == nil {
		panic(panicNilRunIDFunc)
	}

	return func(o *Options) { o.newID = fn }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		log:   zerolog.Nop(),
		seed:  DefaultSeed,
		newID: uuid.NewRandom,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.src == nil {
		o.src = rand.NewPCG(o.seed, o.seed)
	}

	return o
}
