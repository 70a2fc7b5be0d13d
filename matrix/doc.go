// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a square matrix of complex numbers stored in
// a flat row-major buffer, together with the algebra a state-vector simulator
// needs: multiplication, the Kronecker (tensor) product, scalar scaling,
// the adjoint and a unitarity check.
//
// What & Why:
//
//	Quantum gates act on tensor products of two-level systems, so gate
//	matrices are 2ⁿ×2ⁿ. Dense keeps its side length (dims) next to a buffer of
//	dims² entries; element (row, col) lives at row*dims+col.
//
// Immutability:
//
//	A Dense exclusively owns its buffer. Constructors copy their input and
//	accessors return copies, so a Dense built once (e.g. a gate constant) can
//	be shared read-only between goroutines.
//
// Construction policy:
//
//	FromFlatData enforces a power-of-two side length; FromRows only enforces a
//	square grid so that general fixtures (3×3 and the like) can be built.
//	Callers needing the gate invariant check IsPowerOfTwo.
//
// Complexity quicksheet:
//
//	At: O(1); Mul: O(n³); Kronecker: O((n·m)²); Scale/Adjoint: O(n²).
package matrix
