// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/quanta/matrix"
)

// StepKind distinguishes registry gates, caller-supplied matrices and
// measurements.
type StepKind uint8

const (
	StepGate    StepKind = iota // registry gate, resolved by name at run time
	StepMatrix                  // the matrix given to ApplyMatrix
	StepMeasure
)

// Step is one instruction of a Circuit.
//
// For StepGate, Gate is a registry name. For StepMatrix, Matrix is the
// operator and Gate only labels it in logs and errors; the registry is never
// consulted. For both, Qubit is the lowest qubit the gate acts on. For
// StepMeasure, Qubit is the measured bit.
type Step struct {
	Kind   StepKind
	Gate   string
	Matrix *matrix.Dense
	Qubit  int
}

// String renders the step as "H@0" or "measure@1".
func (s Step) String() string {
	if s.Kind == StepMeasure {
		return fmt.Sprintf("measure@%d", s.Qubit)
	}

	return fmt.Sprintf("%s@%d", s.Gate, s.Qubit)
}

// Circuit is an ordered list of steps. The zero value is an empty circuit.
// Builder methods append and return the receiver for chaining.
type Circuit struct {
	steps []Step
}

// New returns an empty circuit.
func New() *Circuit { return &Circuit{} }

// Apply appends the registry gate name acting on qubits [lsb, lsb+k).
// The name is resolved when the circuit runs.
func (c *Circuit) Apply(gate string, lsb int) *Circuit {
	c.steps = append(c.steps, Step{Kind: StepGate, Gate: gate, Qubit: lsb})
	return c
}

// ApplyMatrix appends an arbitrary gate matrix; label is used in logs and
// errors. A nil m fails the run with gates.ErrInvalidGate.
func (c *Circuit) ApplyMatrix(label string, m *matrix.Dense, lsb int) *Circuit {
	c.steps = append(c.steps, Step{Kind: StepMatrix, Gate: label, Matrix: m, Qubit: lsb})
	return c
}

// Measure appends a measurement of qubit bit.
func (c *Circuit) Measure(bit int) *Circuit {
	c.steps = append(c.steps, Step{Kind: StepMeasure, Qubit: bit})
	return c
}

// Steps returns a copy of the step list.
func (c *Circuit) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)

	return out
}

// Len returns the number of steps.
func (c *Circuit) Len() int { return len(c.steps) }
