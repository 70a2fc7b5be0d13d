// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and kernels return these sentinels (optionally wrapped with
// an operation tag via matrixErrorf); tests match them with errors.Is.
// No function panics on user-triggered error conditions. Option constructors
// panic on nonsensical arguments only (programmer error).

package matrix

import "errors"

var (
	// ErrInvalidDimension is returned when construction data is not a square
	// grid, is empty, or (for FromFlatData) its side length is not a power of two.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrDimensionMismatch indicates operands of incompatible sizes,
	// e.g. Mul on matrices with different dims or MatVec with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0, dims).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf entry under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
