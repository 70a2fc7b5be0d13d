// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/quanta/matrix"
)

const opLift = "Lift"

// Arity returns the number of qubits g acts on, or 0 when g is nil or its
// side length is not a power of two of at least 2.
func Arity(g *matrix.Dense) int {
	if g == nil || g.Dims() < 2 || !g.IsPowerOfTwo() {
		return 0
	}

	return bits.TrailingZeros(uint(g.Dims()))
}

// Lift embeds a k-qubit gate acting on qubits [lsb, lsb+k) into an n-qubit
// register:
//
//	Lift(g, lsb, n) = I(2^(n-lsb-k)) ⊗ g ⊗ I(2^lsb)
//
// The result is a 2ⁿ×2ⁿ operator suitable for state.Apply on an n-qubit
// vector. Lift(g, 0, k) returns a matrix equal to g.
//
// Errors:
//   - ErrInvalidGate: g is nil or its side is not a power of two ≥ 2.
//   - ErrQubitRange: lsb < 0 or lsb+k > n.
//
// Complexity:
//   - Time and space O(4ⁿ).
func Lift(g *matrix.Dense, lsb, n int) (*matrix.Dense, error) {
	k := Arity(g)
	if k == 0 {
		return nil, gatesErrorf(opLift, ErrInvalidGate)
	}
	if lsb < 0 || lsb+k > n {
		return nil, gatesErrorf(opLift,
			fmt.Errorf("%d-qubit gate at %d in %d-qubit register: %w", k, lsb, n, ErrQubitRange))
	}

	high, err := matrix.Identity(1<<(n-lsb-k), matrix.WithEpsilon(g.Epsilon()))
	if err != nil {
		return nil, gatesErrorf(opLift, err)
	}
	low, err := matrix.Identity(1<<lsb, matrix.WithEpsilon(g.Epsilon()))
	if err != nil {
		return nil, gatesErrorf(opLift, err)
	}

	out, err := matrix.Kronecker(high, g)
	if err != nil {
		return nil, gatesErrorf(opLift, err)
	}
	if out, err = out.Kronecker(low); err != nil {
		return nil, gatesErrorf(opLift, err)
	}

	return out, nil
}
