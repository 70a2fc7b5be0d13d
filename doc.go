// Package quanta is a small quantum state-vector simulator.
//
// What is quanta?
//
//	A dense, single-threaded simulator for registers of a handful of qubits:
//		• complexnum: the Complex value type and its arithmetic
//		• matrix: square complex matrices, Mul, Kronecker, adjoint, unitarity
//		• state: qubits, state vectors, gate application, measurement
//		• gates: the standard gate table and Lift into an n-qubit register
//		• circuit: a step runner with seeded measurement and structured logs
//
// Qubit order:
//
//	Qubit k is bit k of a basis-state index, least-significant first.
//	state.FromQubits([q0, q1]) is q1 ⊗ q0, and a gate lifted to qubit k acts
//	on that bit.
//
// Quick example (Bell pair):
//
//	reg, _ := gates.Standard()
//	c := circuit.New().Apply(gates.NameH, 1).Apply(gates.NameCNOT, 0).Measure(0).Measure(1)
//	res, _ := circuit.NewRunner(reg, circuit.WithSeed(7)).Run(ctx, c, []state.Qubit{state.Ket0(), state.Ket0()})
//	// res.Outcomes[0].Value == res.Outcomes[1].Value
//
// Measurement is the only operation that mutates a vector; everything else
// returns fresh values, so matrices and gates can be shared freely.
package quanta
