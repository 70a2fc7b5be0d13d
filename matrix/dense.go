// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula row*dims + col.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) at construction.
//
// Complexity quicksheet:
//   - FromFlatData/FromRows/Identity: O(n²); At: O(1); Data/Grid: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/quanta/complexnum"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"           // method tag used in error wrappers
	ctxFromFlatData = "FromFlatData" // ctor tag
	ctxFromRows     = "FromRows"     // ctor tag
	ctxIdentity     = "Identity"     // ctor tag
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable square matrix of complex numbers.
//   - dims is the side length.
//   - data is a flat buffer of length dims*dims in row-major order (offset = row*dims + col).
//   - eps is the tolerance inherited from construction options.
type Dense struct {
	dims int
	data []complexnum.Complex
	eps  float64
}

var _ fmt.Stringer = (*Dense)(nil)

// newDense allocates a zero dims×dims matrix. Internal: callers validate dims.
func newDense(dims int, eps float64) *Dense {
	return &Dense{
		dims: dims,
		data: make([]complexnum.Complex, dims*dims),
		eps:  eps,
	}
}

// FromFlatData builds a matrix from a row-major sequence of dims² entries.
//
// Implementation:
//   - Stage 1: require len(data) to be a non-zero perfect square.
//   - Stage 2: require the side length to be a power of two.
//   - Stage 3: enforce the numeric policy, then copy the input.
//
// Errors:
//   - ErrInvalidDimension (empty, non-square length, or non-power-of-two side).
//   - ErrNaNInf (non-finite entry while the finite-only policy is on).
//
// Complexity:
//   - Time O(n), Space O(n) for n = len(data).
func FromFlatData(data []complexnum.Complex, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	n := len(data)
	if n == 0 {
		return nil, matrixErrorf(ctxFromFlatData, ErrInvalidDimension)
	}
	dims := intSqrt(n)
	if dims*dims != n {
		return nil, matrixErrorf(ctxFromFlatData,
			fmt.Errorf("length %d is not a perfect square: %w", n, ErrInvalidDimension))
	}
	if !isPowerOfTwo(dims) {
		return nil, matrixErrorf(ctxFromFlatData,
			fmt.Errorf("side %d is not a power of two: %w", dims, ErrInvalidDimension))
	}
	if o.validateNaNInf {
		if err := validateFinite(data); err != nil {
			return nil, matrixErrorf(ctxFromFlatData, err)
		}
	}

	m := newDense(dims, o.eps)
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from a grid of rows.
// Every row must have exactly len(rows) entries.
//
// Unlike FromFlatData, the side length is NOT required to be a power of two:
// FromRows serves general fixtures (e.g. 3×3 operands for Kronecker checks).
// Use IsPowerOfTwo before treating the result as a gate.
//
// Errors:
//   - ErrInvalidDimension (no rows, or a row of the wrong length).
//   - ErrNaNInf (non-finite entry while the finite-only policy is on).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]complexnum.Complex, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	dims := len(rows)
	if dims == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimension)
	}
	for i, row := range rows {
		if len(row) != dims {
			return nil, matrixErrorf(ctxFromRows,
				fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), dims, ErrInvalidDimension))
		}
	}

	m := newDense(dims, o.eps)
	for i, row := range rows {
		copy(m.data[i*dims:(i+1)*dims], row)
	}
	if o.validateNaNInf {
		if err := validateFinite(m.data); err != nil {
			return nil, matrixErrorf(ctxFromRows, err)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix. n need not be a power of two.
// Errors: ErrInvalidDimension when n <= 0.
// Complexity: O(n²).
func Identity(n int, opts ...Option) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(ctxIdentity, ErrInvalidDimension)
	}
	o := gatherOptions(opts...)
	m := newDense(n, o.eps)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = complexnum.One
	}

	return m, nil
}

// Dims returns the side length. Complexity: O(1).
func (m *Dense) Dims() int { return m.dims }

// Epsilon returns the tolerance configured at construction. Complexity: O(1).
func (m *Dense) Epsilon() float64 { return m.eps }

// IsPowerOfTwo reports whether Dims() is 2^k, i.e. m can act on k qubits.
func (m *Dense) IsPowerOfTwo() bool { return isPowerOfTwo(m.dims) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.dims || col < 0 || col >= m.dims {
		return 0, ErrOutOfRange
	}

	return row*m.dims + col, nil
}

// At returns the entry at (row, col).
// Errors: ErrOutOfRange for indices outside [0, dims).
// Complexity: O(1).
func (m *Dense) At(row, col int) (complexnum.Complex, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return complexnum.Zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Data returns a copy of the row-major buffer.
// Complexity: O(n²).
func (m *Dense) Data() []complexnum.Complex {
	out := make([]complexnum.Complex, len(m.data))
	copy(out, m.data)

	return out
}

// Grid returns a copy of the entries as rows, the inverse of FromRows.
// Complexity: O(n²).
func (m *Dense) Grid() [][]complexnum.Complex {
	out := make([][]complexnum.Complex, m.dims)
	for i := range out {
		out[i] = make([]complexnum.Complex, m.dims)
		copy(out[i], m.data[i*m.dims:(i+1)*m.dims])
	}

	return out
}

// Equal reports exact (bitwise-value) equality of dims and entries.
// Use ApproxEqual for results of floating-point kernels.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.dims != o.dims {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether dims match and every entry agrees within eps.
func (m *Dense) ApproxEqual(o *Dense, eps float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.dims != o.dims {
		return false
	}
	for i := range m.data {
		if !m.data[i].ApproxEqual(o.data[i], eps) {
			return false
		}
	}

	return true
}

// Near is ApproxEqual within m's own tolerance (see WithEpsilon).
func (m *Dense) Near(o *Dense) bool {
	if m == nil {
		return o == nil
	}

	return m.ApproxEqual(o, m.eps)
}

// String renders one bracketed row per line, e.g. "[1+0i, 0+0i]\n[0+0i, 1+0i]\n".
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.dims; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.dims
		for j = 0; j < m.dims; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.dims {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
