// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over Dense: matrix
// multiplication, the Kronecker product, scalar scaling, adjoint, unitarity
// check and matrix-vector product. All kernels perform strict fail-fast
// validation, never mutate operands and return a freshly allocated result.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/quanta/complexnum"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opKronecker = "Kronecker"
	opScale     = "Scale"
	opAdjoint   = "Adjoint"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate both operands non-nil with equal dims.
//   - Stage 2: i→k→j loop over the flat buffers, accumulating A[i,k]·B[k,j]
//     into C's row i; zero A[i,k] are skipped.
//
// Behavior highlights:
//   - One allocation (the result); the inner loop allocates nothing.
//   - The result inherits A's tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateSameDims(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.dims
	res := newDense(n, a.eps)
	var (
		i, j, k    int
		rowA, rowB int
		av         complexnum.Complex
	)
	for i = 0; i < n; i++ {
		rowA = i * n // row i offset in A and in C
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == complexnum.Zero {
				continue
			}
			rowB = k * n
			for j = 0; j < n; j++ {
				res.data[rowA+j] = res.data[rowA+j].Add(av.Mul(b.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// Mul returns m × o. See the package-level Mul.
func (m *Dense) Mul(o *Dense) (*Dense, error) { return Mul(m, o) }

// Kronecker computes the tensor product A ⊗ B.
//
// Definition (block structure): with p = A.dims and q = B.dims the result is
// (p·q)×(p·q) and
//
//	(A⊗B)[q·ra + rb, q·ca + cb] = A[ra,ca] · B[rb,cb]
//
// for ra,ca ∈ [0,p) and rb,cb ∈ [0,q). Block (ra,ca) of the result is
// A[ra,ca]·B. Operands of different sizes are the general case.
//
// Orientation: the receiver/first operand is the outer (block-selecting)
// factor, so a.Kronecker(b) is a⊗b, not b⊗a.
//
// Implementation:
//   - Iterate ra→rb→ca→cb so the output is written row by row; every index is
//     derived from the definition above, not from a flattened-offset shortcut.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(p²q²), Space O(p²q²).
func Kronecker(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	p, q := a.dims, b.dims
	n := p * q
	res := newDense(n, a.eps)
	var (
		ra, rb, ca, cb int
		outRow, bRow   int
		av             complexnum.Complex
	)
	for ra = 0; ra < p; ra++ {
		for rb = 0; rb < q; rb++ {
			outRow = (q*ra + rb) * n // flat offset of output row q·ra+rb
			bRow = rb * q            // flat offset of B's row rb
			for ca = 0; ca < p; ca++ {
				av = a.data[ra*p+ca]
				for cb = 0; cb < q; cb++ {
					res.data[outRow+q*ca+cb] = av.Mul(b.data[bRow+cb])
				}
			}
		}
	}

	return res, nil
}

// Kronecker returns m ⊗ o. See the package-level Kronecker.
func (m *Dense) Kronecker(o *Dense) (*Dense, error) { return Kronecker(m, o) }

// Scale returns c·M. Complex multiplication commutes, so c·M == M·c.
// Errors: ErrNilMatrix. Complexity: O(n²).
func Scale(c complexnum.Complex, m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense(m.dims, m.eps)
	for i, v := range m.data {
		res.data[i] = c.Mul(v)
	}

	return res, nil
}

// ScaleReal returns r·M for a real scalar r.
// Errors: ErrNilMatrix. Complexity: O(n²).
func ScaleReal(r float64, m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense(m.dims, m.eps)
	for i, v := range m.data {
		res.data[i] = v.Scale(r)
	}

	return res, nil
}

// Adjoint returns the conjugate transpose M†.
// Errors: ErrNilMatrix. Complexity: O(n²).
func Adjoint(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	n := m.dims
	res := newDense(n, m.eps)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[j*n+i] = m.data[i*n+j].Conj()
		}
	}

	return res, nil
}

// IsUnitary reports whether M·M† equals the identity within eps.
// A nil matrix is not unitary.
// Complexity: O(n³).
func IsUnitary(m *Dense, eps float64) bool {
	if m == nil {
		return false
	}
	adj, err := Adjoint(m)
	if err != nil {
		return false
	}
	prod, err := Mul(m, adj)
	if err != nil {
		return false
	}
	id, err := Identity(m.dims)
	if err != nil {
		return false
	}

	return prod.ApproxEqual(id, eps)
}

// IsUnitary reports whether M·M† equals the identity within m's own
// tolerance (DefaultEpsilon unless built WithEpsilon).
func (m *Dense) IsUnitary() bool {
	if m == nil {
		return false
	}

	return IsUnitary(m, m.eps)
}

// MatVec computes y = M·x, i.e. y[row] = Σ_col M[row,col]·x[col].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != dims).
//
// Complexity:
//   - Time O(n²), Space O(n) for y.
func MatVec(m *Dense, x []complexnum.Complex) ([]complexnum.Complex, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.dims); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	n := m.dims
	y := make([]complexnum.Complex, n)
	var i, j, base int
	var acc complexnum.Complex
	for i = 0; i < n; i++ {
		acc = complexnum.Zero
		base = i * n
		for j = 0; j < n; j++ {
			acc = acc.Add(m.data[base+j].Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}
