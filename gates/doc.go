// SPDX-License-Identifier: MIT

// Package gates holds the standard gate table and the helper that embeds a
// k-qubit gate into an n-qubit register.
//
// Registry:
//
//	Standard builds the table once, on first use, and hands every caller the
//	same read-only *Registry. With returns an extended copy, so a shared
//	registry is never mutated. Every entry is validated at insertion: its
//	side length must be a power of two (at least 2) and it must be unitary
//	within the matrix's own tolerance (matrix.WithEpsilon).
//
// Qubit convention:
//
//	Qubit k is bit k of a state index (least-significant first), matching
//	state.FromQubits. A multi-qubit gate acting on qubits [lsb, lsb+k) sees
//	qubit lsb as its own lowest bit. For the two-qubit table entries this
//	means CNOT applied at lsb is controlled by qubit lsb+1 and targets lsb.
//
// Lift:
//
//	Lift(g, lsb, n) = I(2^(n-lsb-k)) ⊗ g ⊗ I(2^lsb)
package gates
