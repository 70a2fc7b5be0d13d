// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set.
// Step failures wrap the underlying state or gates sentinel together with
// the failing step index.

package circuit

import "errors"

var (
	// ErrNoQubits is returned by Run for an empty initial register.
	ErrNoQubits = errors.New("circuit: no qubits")

	// ErrNilCircuit is returned by Run when the circuit is nil.
	ErrNilCircuit = errors.New("circuit: nil circuit")
)
