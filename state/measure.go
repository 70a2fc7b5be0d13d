// SPDX-License-Identifier: MIT

package state

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/quanta/complexnum"
)

// Measure observes qubit bit, collapses v in place and returns the outcome.
//
// Implementation:
//   - Stage 1: validate bit and src, split the probability mass into the
//     bit=0 (p0) and bit=1 (p1) index groups.
//   - Stage 2: draw On with probability p1/(p0+p1) from a Bernoulli over src.
//     A probability within tolerance of 0 or 1 is decided without a draw, so
//     re-measuring a collapsed bit consumes no randomness, repeats the
//     outcome and leaves the amplitudes untouched.
//   - Stage 3: zero the non-matching group and scale the survivors by
//     1/√(survivor probability).
//
// Behavior highlights:
//   - All checks run before the first write: on error v is unchanged.
//   - The caller must hold exclusive access to v for the duration of the call.
//
// Errors:
//   - ErrBitOutOfRange: bit outside [0, NumQubits()).
//   - ErrNilSource: src is nil.
//   - ErrUnnormalizedState: Σ|a|² not ≈1 (unless WithSkipNormalization).
//   - ErrDegenerateMeasurement: the total or surviving probability is ≈0.
//
// Complexity:
//   - Time O(Len()), Space O(1).
func (v *Vector) Measure(bit int, src rand.Source) (Bit, error) {
	if v == nil {
		return Off, stateErrorf(ctxMeasure, ErrNilVector)
	}
	if bit < 0 || bit >= v.NumQubits() {
		return Off, stateErrorf(ctxMeasure,
			fmt.Errorf("bit %d of %d: %w", bit, v.NumQubits(), ErrBitOutOfRange))
	}
	if src == nil {
		return Off, stateErrorf(ctxMeasure, ErrNilSource)
	}

	p0, p1 := v.split(bit)
	total := p0 + p1
	if total <= v.tol {
		return Off, stateErrorf(ctxMeasure, fmt.Errorf("total probability %g: %w", total, ErrDegenerateMeasurement))
	}
	if v.checkNorm && !scalar.EqualWithinAbs(total, 1, v.tol) {
		return Off, stateErrorf(ctxMeasure, fmt.Errorf("total probability %g: %w", total, ErrUnnormalizedState))
	}

	outcome := v.draw(p1/total, src)
	survivor, lost := p0, p1
	if outcome == On {
		survivor, lost = p1, p0
	}
	if survivor <= v.tol {
		return Off, stateErrorf(ctxMeasure, fmt.Errorf("outcome %v has probability %g: %w", outcome, survivor, ErrDegenerateMeasurement))
	}
	// already collapsed onto outcome: leave the amplitudes bit-for-bit as they are
	if lost == 0 && scalar.EqualWithinAbs(survivor, 1, v.tol) {
		return outcome, nil
	}

	collapse(v.amps, v.amps, bit, outcome, 1/math.Sqrt(survivor))

	return outcome, nil
}

// draw decides an outcome that is On with probability pOn.
func (v *Vector) draw(pOn float64, src rand.Source) Bit {
	switch {
	case pOn <= v.tol:
		return Off
	case pOn >= 1-v.tol:
		return On
	}
	coin := distuv.Bernoulli{P: pOn, Src: src}
	if coin.Rand() == 1 {
		return On
	}

	return Off
}

// Project returns the renormalized state conditioned on qubit bit having
// value outcome. v is not modified.
//
// Errors:
//   - ErrBitOutOfRange: bit outside [0, NumQubits()).
//   - ErrDegenerateMeasurement: outcome has ≈0 probability.
//
// Complexity:
//   - Time O(Len()), Space O(Len()).
func (v *Vector) Project(bit int, outcome Bit) (*Vector, error) {
	if v == nil {
		return nil, stateErrorf(ctxProject, ErrNilVector)
	}
	if bit < 0 || bit >= v.NumQubits() {
		return nil, stateErrorf(ctxProject,
			fmt.Errorf("bit %d of %d: %w", bit, v.NumQubits(), ErrBitOutOfRange))
	}

	p0, p1 := v.split(bit)
	survivor := p0
	if outcome == On {
		survivor = p1
	}
	if survivor <= v.tol {
		return nil, stateErrorf(ctxProject,
			fmt.Errorf("outcome %v has probability %g: %w", outcome, survivor, ErrDegenerateMeasurement))
	}

	out := make([]complexnum.Complex, len(v.amps))
	collapse(out, v.amps, bit, outcome, 1/math.Sqrt(survivor))

	return v.derive(out), nil
}

// collapse writes src into dst keeping only indices whose bit k equals
// outcome, each scaled by scale. dst and src may alias.
func collapse(dst, src []complexnum.Complex, k int, outcome Bit, scale float64) {
	for i, a := range src {
		if bitOf(i, k) == outcome {
			dst[i] = a.Scale(scale)
		} else {
			dst[i] = complexnum.Zero
		}
	}
}
