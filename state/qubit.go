// SPDX-License-Identifier: MIT

package state

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/quanta/complexnum"
)

// Qubit is a normalized amplitude pair alpha|0⟩ + beta|1⟩.
// The zero value is not a valid qubit; use NewQubit or Ket0/Ket1/KetPlus/KetMinus.
type Qubit struct {
	alpha complexnum.Complex
	beta  complexnum.Complex
}

// NewQubit returns alpha|0⟩ + beta|1⟩.
// Returns ErrUnnormalizedState unless |alpha|² + |beta|² ≈ 1 within the
// tolerance (DefaultTolerance unless WithTolerance is given).
func NewQubit(alpha, beta complexnum.Complex, opts ...Option) (Qubit, error) {
	o := gatherOptions(opts...)
	if !alpha.IsFinite() || !beta.IsFinite() {
		return Qubit{}, stateErrorf(ctxNewQubit, ErrNaNInf)
	}
	total := alpha.Probability() + beta.Probability()
	if !scalar.EqualWithinAbs(total, 1, o.tol) {
		return Qubit{}, stateErrorf(ctxNewQubit,
			fmt.Errorf("|alpha|²+|beta|² = %g: %w", total, ErrUnnormalizedState))
	}

	return Qubit{alpha: alpha, beta: beta}, nil
}

// Ket0 returns |0⟩.
func Ket0() Qubit { return Qubit{alpha: complexnum.One} }

// Ket1 returns |1⟩.
func Ket1() Qubit { return Qubit{beta: complexnum.One} }

// KetPlus returns (|0⟩+|1⟩)/√2.
func KetPlus() Qubit {
	a := complexnum.New(complexnum.InvSqrt2, 0)
	return Qubit{alpha: a, beta: a}
}

// KetMinus returns (|0⟩-|1⟩)/√2.
func KetMinus() Qubit {
	a := complexnum.New(complexnum.InvSqrt2, 0)
	return Qubit{alpha: a, beta: a.Neg()}
}

// Alpha returns the |0⟩ amplitude.
func (q Qubit) Alpha() complexnum.Complex { return q.alpha }

// Beta returns the |1⟩ amplitude.
func (q Qubit) Beta() complexnum.Complex { return q.beta }

// Vector converts q into the one-qubit state [alpha, beta].
func (q Qubit) Vector(opts ...Option) *Vector {
	return newVector([]complexnum.Complex{q.alpha, q.beta}, gatherOptions(opts...))
}

// String formats q as "(alpha)|0⟩ + (beta)|1⟩".
func (q Qubit) String() string {
	return fmt.Sprintf("(%v)|0⟩ + (%v)|1⟩", q.alpha, q.beta)
}
