// SPDX-License-Identifier: MIT
// Package gates: sentinel error set.

package gates

import "errors"

var (
	// ErrUnknownGate is returned by Get for a name not in the registry.
	ErrUnknownGate = errors.New("gates: unknown gate")

	// ErrNotUnitary is returned when a gate fails the M·M† ≈ I check.
	ErrNotUnitary = errors.New("gates: matrix is not unitary")

	// ErrInvalidGate is returned for a nil gate, an empty name or a side
	// length that is not a power of two of at least 2.
	ErrInvalidGate = errors.New("gates: invalid gate")

	// ErrQubitRange is returned by Lift when the gate does not fit the register.
	ErrQubitRange = errors.New("gates: qubit range outside register")
)
