// SPDX-License-Identifier: MIT
// Package state: sentinel error set.
// Dimension sentinels alias the matrix package so errors.Is matches either name.

package state

import (
	"errors"

	"github.com/katalvlaran/quanta/matrix"
)

var (
	// ErrInvalidDimension is returned when amplitude data is empty or its
	// length is not a power of two.
	ErrInvalidDimension = matrix.ErrInvalidDimension

	// ErrDimensionMismatch is returned by Apply when gate.Dims() != v.Len().
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOutOfRange is returned by At for an index outside [0, Len()).
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrNaNInf signals a NaN or ±Inf amplitude at construction.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrUnnormalizedState is returned when total probability is not ≈1.
	ErrUnnormalizedState = errors.New("state: total probability is not 1")

	// ErrEmptyInput is returned by FromQubits for an empty qubit list.
	ErrEmptyInput = errors.New("state: no qubits to compose")

	// ErrDegenerateMeasurement is returned when the surviving group of a
	// collapse has ≈0 probability, so renormalization would divide by ≈0.
	ErrDegenerateMeasurement = errors.New("state: degenerate measurement")

	// ErrBitOutOfRange is returned for a bit index outside [0, NumQubits()).
	ErrBitOutOfRange = errors.New("state: bit index out of range")

	// ErrNilSource is returned by Measure when no random source is supplied.
	ErrNilSource = errors.New("state: nil random source")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("state: nil vector")
)
