// SPDX-License-Identifier: MIT

// Package circuit drives a state vector through a list of steps.
//
// A Circuit is an ordered list of gate and measurement steps built with
// Apply, ApplyMatrix and Measure. A Runner executes it against an initial
// register of qubits:
//
//	c := circuit.New().Apply(gates.NameH, 1).Apply(gates.NameCNOT, 0).Measure(0).Measure(1)
//	res, err := circuit.NewRunner(reg, circuit.WithSeed(42)).Run(ctx, c, qubits)
//
// Gate steps are lifted into the full register with gates.Lift; lifted
// operators are cached per Runner. Measurement steps draw from the Runner's
// random source, so a fixed seed reproduces every outcome. Each run gets a
// UUID that tags its log lines and its Result.
package circuit
