// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/finiteness checks here.
//   - Return sentinels wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quanta/complexnum"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDims is the composite NotNil(a) → NotNil(b) → a.dims == b.dims.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameDims(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameDims", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameDims", err)
	}
	if a.dims != b.dims {
		return validatorErrorf("ValidateSameDims", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches n.
// Complexity: O(1).
func ValidateVecLen(x []complexnum.Complex, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateFinite rejects the first NaN/±Inf entry, reporting its flat offset.
// Complexity: O(n).
func validateFinite(data []complexnum.Complex) error {
	for i, v := range data {
		if !v.IsFinite() {
			return validatorErrorf(fmt.Sprintf("validateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// isPowerOfTwo reports whether n is 2^k for some k >= 0.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// intSqrt returns the integer square root r with r² ≤ n < (r+1)².
func intSqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
