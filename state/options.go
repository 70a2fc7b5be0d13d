// SPDX-License-Identifier: MIT

package state

import "math"

const (
	// DefaultTolerance bounds |Σ|a|² - 1| for a state to count as normalized.
	DefaultTolerance = 1e-9

	// DefaultCheckNormalization enables the normalization check.
	DefaultCheckNormalization = true
)

const panicToleranceInvalid = "state: WithTolerance: tol must be finite, non-negative"

// Option configures constructors. Vectors derived by Compose, Apply and
// Project inherit the options of their (outer) input.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	tol       float64
	checkNorm bool
}

// WithTolerance sets the normalization tolerance. Panics on negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithSkipNormalization disables the Σ|a|² ≈ 1 check at construction and
// measurement. Measurement then draws with conditional probabilities.
func WithSkipNormalization() Option {
	return func(o *Options) { o.checkNorm = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, checkNorm: DefaultCheckNormalization}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
