// SPDX-License-Identifier: MIT

// Package state implements the state-vector engine: qubits, their tensor
// composition into n-qubit state vectors, gate application and probabilistic
// single-bit measurement with collapse.
//
// What & Why:
//
//	A Vector holds 2ⁿ complex amplitudes. Bit k of an amplitude's index
//	(least-significant first) is the value of qubit k in that basis state, so
//	FromQubits composes its input in reverse order: the last qubit becomes
//	the outermost (slowest-varying) factor and qubit 0 the lowest index bit.
//
// Purity & the one stateful boundary:
//
//	Every operation returns a new Vector except Measure, which collapses the
//	receiver in place. Measure requires exclusive access to the vector for
//	the duration of the call; no other reader or writer may touch it
//	concurrently. Project is the pure counterpart for post-selection.
//
// Randomness:
//
//	Measure draws from an injected math/rand/v2 Source. A deterministic
//	source makes outcomes reproducible; nil is rejected.
//
// Normalization:
//
//	Σ|a|² ≈ 1 is checked at construction (FromFlatData, NewQubit) and before
//	a measurement, within the vector's tolerance. WithSkipNormalization turns
//	the check off for synthetic data such as benchmark fills.
package state
