// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/quanta/complexnum"
	"github.com/katalvlaran/quanta/matrix"
)

// Standard gate names.
const (
	NameI    = "I"
	NameX    = "X"
	NameY    = "Y"
	NameZ    = "Z"
	NameH    = "H"
	NameS    = "S"
	NameT    = "T"
	NameCNOT = "CNOT"
	NameCZ   = "CZ"
	NameSWAP = "SWAP"
)

const (
	opGet  = "Get"
	opWith = "With"
)

func gatesErrorf(tag string, err error) error {
	return fmt.Errorf("gates.%s: %w", tag, err)
}

// Registry maps gate names to immutable matrices. A *Registry is read-only
// and safe for concurrent use.
type Registry struct {
	gates map[string]*matrix.Dense
}

var standard = sync.OnceValues(buildStandard)

// Standard returns the shared registry of I, X, Y, Z, H, S, T, CNOT, CZ and
// SWAP. The table is built and validated on the first call; later calls
// return the same value.
func Standard() (*Registry, error) { return standard() }

// buildStandard assembles the standard table from row literals.
func buildStandard() (*Registry, error) {
	var (
		o  = complexnum.Zero
		l  = complexnum.One
		i  = complexnum.I
		h  = complexnum.New(complexnum.InvSqrt2, 0)
		t8 = complexnum.New(complexnum.InvSqrt2, complexnum.InvSqrt2) // e^{iπ/4}
	)

	table := map[string][][]complexnum.Complex{
		NameI: {{l, o}, {o, l}},
		NameX: {{o, l}, {l, o}},
		NameY: {{o, i.Neg()}, {i, o}},
		NameZ: {{l, o}, {o, l.Neg()}},
		NameH: {{h, h}, {h, h.Neg()}},
		NameS: {{l, o}, {o, i}},
		NameT: {{l, o}, {o, t8}},
		// index = 2·high + low; high qubit controls
		NameCNOT: {
			{l, o, o, o},
			{o, l, o, o},
			{o, o, o, l},
			{o, o, l, o},
		},
		NameCZ: {
			{l, o, o, o},
			{o, l, o, o},
			{o, o, l, o},
			{o, o, o, l.Neg()},
		},
		NameSWAP: {
			{l, o, o, o},
			{o, o, l, o},
			{o, l, o, o},
			{o, o, o, l},
		},
	}

	reg := &Registry{gates: make(map[string]*matrix.Dense, len(table))}
	for name, rows := range table {
		m, err := matrix.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("gates: building %s: %w", name, err)
		}
		if err = validateGate(name, m); err != nil {
			return nil, fmt.Errorf("gates: building %s: %w", name, err)
		}
		reg.gates[name] = m
	}

	return reg, nil
}

// validateGate enforces a non-empty name, a power-of-two side length of at
// least 2 and unitarity within the gate's own tolerance.
func validateGate(name string, m *matrix.Dense) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidGate)
	}
	if m == nil {
		return fmt.Errorf("%s is nil: %w", name, ErrInvalidGate)
	}
	if m.Dims() < 2 || !m.IsPowerOfTwo() {
		return fmt.Errorf("%s has side %d: %w", name, m.Dims(), ErrInvalidGate)
	}
	if !m.IsUnitary() {
		return fmt.Errorf("%s: %w", name, ErrNotUnitary)
	}

	return nil
}

// Get returns the named gate. Errors: ErrUnknownGate.
func (r *Registry) Get(name string) (*matrix.Dense, error) {
	m, ok := r.gates[name]
	if !ok {
		return nil, gatesErrorf(opGet, fmt.Errorf("%q: %w", name, ErrUnknownGate))
	}

	return m, nil
}

// MustGet is Get that panics on an unknown name. Intended for names known at
// compile time, such as the Name* constants on the Standard registry.
func (r *Registry) MustGet(name string) *matrix.Dense {
	m, err := r.Get(name)
	if err != nil {
		panic(err)
	}

	return m
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.gates[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.gates))
}

// Len returns the number of registered gates.
func (r *Registry) Len() int { return len(r.gates) }

// With returns a copy of r with name bound to m, replacing any existing
// entry. r itself is unchanged.
//
// Errors: ErrInvalidGate (empty name, nil, side not a power of two ≥ 2),
// ErrNotUnitary.
func (r *Registry) With(name string, m *matrix.Dense) (*Registry, error) {
	if err := validateGate(name, m); err != nil {
		return nil, gatesErrorf(opWith, err)
	}
	out := &Registry{gates: maps.Clone(r.gates)}
	out.gates[name] = m

	return out, nil
}
