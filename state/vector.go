// SPDX-License-Identifier: MIT

package state

import (
	"fmt"
	"math/bits"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/quanta/complexnum"
	"github.com/katalvlaran/quanta/matrix"
)

// error context tags
const (
	ctxNewQubit     = "NewQubit"
	ctxFromFlatData = "FromFlatData"
	ctxFromQubits   = "FromQubits"
	ctxCompose      = "Compose"
	ctxApply        = "Apply"
	ctxAt           = "At"
	ctxMeasure      = "Measure"
	ctxProject      = "Project"
	ctxProbability  = "ProbabilityOf"
)

// stateErrorf wraps err with an operation tag, preserving the sentinel via %w.
func stateErrorf(tag string, err error) error {
	return fmt.Errorf("state.%s: %w", tag, err)
}

// Vector is a dense state vector of 2ⁿ complex amplitudes.
type Vector struct {
	amps      []complexnum.Complex
	tol       float64
	checkNorm bool
}

var _ fmt.Stringer = (*Vector)(nil)

// newVector wraps amps without copying. Internal: callers own amps.
func newVector(amps []complexnum.Complex, o Options) *Vector {
	return &Vector{amps: amps, tol: o.tol, checkNorm: o.checkNorm}
}

// derive returns a vector over amps carrying v's policy.
func (v *Vector) derive(amps []complexnum.Complex) *Vector {
	return &Vector{amps: amps, tol: v.tol, checkNorm: v.checkNorm}
}

// FromFlatData builds a state from raw amplitudes (copied).
//
// Errors:
//   - ErrInvalidDimension: empty input or a length that is not a power of two.
//   - ErrNaNInf: a non-finite amplitude.
//   - ErrUnnormalizedState: Σ|a|² not ≈1 (unless WithSkipNormalization).
func FromFlatData(amps []complexnum.Complex, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)

	n := len(amps)
	if n == 0 || n&(n-1) != 0 {
		return nil, stateErrorf(ctxFromFlatData,
			fmt.Errorf("length %d is not a power of two: %w", n, ErrInvalidDimension))
	}
	for i, a := range amps {
		if !a.IsFinite() {
			return nil, stateErrorf(ctxFromFlatData, fmt.Errorf("amplitude %d: %w", i, ErrNaNInf))
		}
	}

	cp := make([]complexnum.Complex, n)
	copy(cp, amps)
	v := newVector(cp, o)
	if o.checkNorm {
		if total := v.TotalProbability(); !scalar.EqualWithinAbs(total, 1, o.tol) {
			return nil, stateErrorf(ctxFromFlatData,
				fmt.Errorf("total probability %g: %w", total, ErrUnnormalizedState))
		}
	}

	return v, nil
}

// FromQubits composes qubits [q0, q1, ..., qn-1] into an n-qubit state with
// qubit k at index bit k. Composition runs in reverse order: the last qubit
// is the outermost factor, i.e. the result is qn-1 ⊗ ... ⊗ q1 ⊗ q0.
//
// Errors: ErrEmptyInput for an empty list.
// Complexity: O(2ⁿ).
func FromQubits(qs []Qubit, opts ...Option) (*Vector, error) {
	if len(qs) == 0 {
		return nil, stateErrorf(ctxFromQubits, ErrEmptyInput)
	}

	acc := qs[len(qs)-1].Vector(opts...)
	for i := len(qs) - 2; i >= 0; i-- {
		next, err := Compose(acc, qs[i].Vector(opts...))
		if err != nil {
			return nil, stateErrorf(ctxFromQubits, err)
		}
		acc = next
	}

	return acc, nil
}

// Compose returns the tensor product outer ⊗ inner:
//
//	out[o*len(inner) + i] = outer[o] * inner[i]
//
// outer is the slower-varying index. The result inherits outer's options.
// Errors: ErrNilVector.
// Complexity: O(len(outer)·len(inner)).
func Compose(outer, inner *Vector) (*Vector, error) {
	if outer == nil || inner == nil {
		return nil, stateErrorf(ctxCompose, ErrNilVector)
	}

	m := len(inner.amps)
	out := make([]complexnum.Complex, len(outer.amps)*m)
	var o, i, base int
	for o = 0; o < len(outer.amps); o++ {
		base = o * m
		for i = 0; i < m; i++ {
			out[base+i] = outer.amps[o].Mul(inner.amps[i])
		}
	}

	return outer.derive(out), nil
}

// Apply returns gate·v: result[row] = Σ_col gate[row,col]·v[col].
// v is not modified.
//
// Errors: ErrNilVector, matrix.ErrNilMatrix, ErrDimensionMismatch
// (gate.Dims() != v.Len()).
// Complexity: O(Len()²).
func Apply(v *Vector, gate *matrix.Dense) (*Vector, error) {
	if v == nil {
		return nil, stateErrorf(ctxApply, ErrNilVector)
	}
	out, err := matrix.MatVec(gate, v.amps)
	if err != nil {
		return nil, stateErrorf(ctxApply, err)
	}

	return v.derive(out), nil
}

// Apply returns gate·v. See the package-level Apply.
func (v *Vector) Apply(gate *matrix.Dense) (*Vector, error) { return Apply(v, gate) }

// Len returns the number of amplitudes (2ⁿ).
func (v *Vector) Len() int { return len(v.amps) }

// NumQubits returns n where Len() == 2ⁿ.
func (v *Vector) NumQubits() int { return bits.TrailingZeros(uint(len(v.amps))) }

// At returns amplitude i. Errors: ErrOutOfRange.
func (v *Vector) At(i int) (complexnum.Complex, error) {
	if i < 0 || i >= len(v.amps) {
		return complexnum.Zero, stateErrorf(ctxAt, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return v.amps[i], nil
}

// Amplitudes returns a copy of the amplitudes.
func (v *Vector) Amplitudes() []complexnum.Complex {
	out := make([]complexnum.Complex, len(v.amps))
	copy(out, v.amps)

	return out
}

// Probabilities returns |a_i|² for every basis state i.
func (v *Vector) Probabilities() []float64 {
	out := make([]float64, len(v.amps))
	for i, a := range v.amps {
		out[i] = a.Probability()
	}

	return out
}

// TotalProbability returns Σ|a_i|².
func (v *Vector) TotalProbability() float64 {
	return floats.Sum(v.Probabilities())
}

// ProbabilityOf returns the probabilities of observing qubit bit as Off and On.
// Errors: ErrBitOutOfRange.
func (v *Vector) ProbabilityOf(bit int) (p0, p1 float64, err error) {
	if bit < 0 || bit >= v.NumQubits() {
		return 0, 0, stateErrorf(ctxProbability, fmt.Errorf("bit %d of %d: %w", bit, v.NumQubits(), ErrBitOutOfRange))
	}
	p0, p1 = v.split(bit)

	return p0, p1, nil
}

// split sums probabilities over the bit=0 and bit=1 index groups of qubit k.
// Indices alternate between the groups in runs of 2^k.
func (v *Vector) split(k int) (p0, p1 float64) {
	for i, a := range v.amps {
		if bitOf(i, k) == On {
			p1 += a.Probability()
		} else {
			p0 += a.Probability()
		}
	}

	return p0, p1
}

// Clone returns an independent copy with the same options.
func (v *Vector) Clone() *Vector { return v.derive(v.Amplitudes()) }

// Equal reports exact equality of lengths and amplitudes.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.amps) != len(o.amps) {
		return false
	}
	for i := range v.amps {
		if v.amps[i] != o.amps[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether lengths match and amplitudes agree within eps.
func (v *Vector) ApproxEqual(o *Vector, eps float64) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.amps) != len(o.amps) {
		return false
	}
	for i := range v.amps {
		if !v.amps[i].ApproxEqual(o.amps[i], eps) {
			return false
		}
	}

	return true
}

// String renders the amplitudes as "[a0, a1, ...]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, a := range v.amps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString("]")

	return b.String()
}
