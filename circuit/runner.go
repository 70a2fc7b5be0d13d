// SPDX-License-Identifier: MIT

package circuit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/quanta/gates"
	"github.com/katalvlaran/quanta/matrix"
	"github.com/katalvlaran/quanta/state"
)

// Outcome records one measurement of a run.
type Outcome struct {
	Step  int       // index of the measurement step in the circuit
	Bit   int       // measured qubit
	Value state.Bit // observed value
}

// Result is the output of Runner.Run.
type Result struct {
	RunID    uuid.UUID
	State    *state.Vector // final, post-measurement state
	Outcomes []Outcome
}

// liftKey identifies a lifted registry operator: the same gate matrix at the
// same position in a register of the same width. Registries are finite and
// their matrices long-lived, so the cache is bounded by gates × positions ×
// widths actually run.
type liftKey struct {
	gate *matrix.Dense
	lsb  int
	n    int
}

// Runner executes circuits. It is safe for concurrent use: the lifted
// operator cache (registry gates only) and the random source are each
// guarded by a mutex, and every run owns its state vector.
type Runner struct {
	reg   *gates.Registry
	log   zerolog.Logger
	newID func() (uuid.UUID, error)

	srcMu sync.Mutex
	src   rand.Source

	mu    sync.Mutex
	cache map[liftKey]*matrix.Dense
}

// NewRunner returns a Runner resolving gate names in reg. A nil reg means
// gates.Standard().
func NewRunner(reg *gates.Registry, opts ...Option) *Runner {
	o := gatherOptions(opts...)

	return &Runner{
		reg:   reg,
		log:   o.log.With().Str("component", "circuit").Logger(),
		newID: o.newID,
		src:   o.src,
		cache: make(map[liftKey]*matrix.Dense),
	}
}

// Run composes qubits into a register (qubit k at index bit k) and executes
// c step by step. ctx is checked before every step.
//
// Errors:
//   - ErrNilCircuit, ErrNoQubits.
//   - ctx.Err() when cancelled between steps.
//   - Any gates or state sentinel from a failing step, wrapped with the step
//     index (gates.ErrUnknownGate, gates.ErrQubitRange, state.ErrBitOutOfRange, ...).
func (r *Runner) Run(ctx context.Context, c *Circuit, qubits []state.Qubit) (*Result, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if len(qubits) == 0 {
		return nil, ErrNoQubits
	}

	id, err := r.newID()
	if err != nil {
		return nil, fmt.Errorf("circuit: run id: %w", err)
	}
	log := r.log.With().
		Str("run_id", id.String()).
		Int("qubits", len(qubits)).
		Int("steps", c.Len()).
		Logger()

	v, err := state.FromQubits(qubits)
	if err != nil {
		return nil, fmt.Errorf("circuit: initial state: %w", err)
	}
	res := &Result{RunID: id}
	log.Debug().Msg("Starting run")

	n := len(qubits)
	for i, s := range c.steps {
		if err = ctx.Err(); err != nil {
			log.Warn().Err(err).Int("step", i).Msg("Run cancelled")
			return nil, fmt.Errorf("circuit: step %d: %w", i, err)
		}

		switch s.Kind {
		case StepGate:
			v, err = r.applyNamed(v, s, n)
		case StepMatrix:
			v, err = applyMatrix(v, s, n)
		case StepMeasure:
			var b state.Bit
			if b, err = r.measure(v, s.Qubit); err == nil {
				res.Outcomes = append(res.Outcomes, Outcome{Step: i, Bit: s.Qubit, Value: b})
				log.Debug().Int("step", i).Int("bit", s.Qubit).Stringer("value", b).Msg("Measured")
			}
		default:
			err = fmt.Errorf("unknown step kind %d", s.Kind)
		}
		if err != nil {
			log.Warn().Err(err).Int("step", i).Stringer("op", s).Msg("Run failed")
			return nil, fmt.Errorf("circuit: step %d (%v): %w", i, s, err)
		}
	}

	res.State = v
	log.Info().Int("measurements", len(res.Outcomes)).Msg("Run complete")

	return res, nil
}

// applyNamed resolves a registry gate, lifts it through the cache and applies it.
func (r *Runner) applyNamed(v *state.Vector, s Step, n int) (*state.Vector, error) {
	reg, err := r.registry()
	if err != nil {
		return nil, err
	}
	g, err := reg.Get(s.Gate)
	if err != nil {
		return nil, err
	}
	op, err := r.lifted(g, s.Qubit, n)
	if err != nil {
		return nil, err
	}

	return v.Apply(op)
}

// applyMatrix lifts and applies a caller-supplied matrix. The lifted operator
// is not cached.
func applyMatrix(v *state.Vector, s Step, n int) (*state.Vector, error) {
	if s.Matrix == nil {
		return nil, fmt.Errorf("%s has no matrix: %w", s.Gate, gates.ErrInvalidGate)
	}
	op, err := gates.Lift(s.Matrix, s.Qubit, n)
	if err != nil {
		return nil, err
	}

	return v.Apply(op)
}

func (r *Runner) registry() (*gates.Registry, error) {
	if r.reg != nil {
		return r.reg, nil
	}

	return gates.Standard()
}

// lifted returns gates.Lift(g, lsb, n), computing it at most once per key.
func (r *Runner) lifted(g *matrix.Dense, lsb, n int) (*matrix.Dense, error) {
	key := liftKey{gate: g, lsb: lsb, n: n}

	r.mu.Lock()
	op, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return op, nil
	}

	op, err := gates.Lift(g, lsb, n)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = op
	r.mu.Unlock()

	return op, nil
}

// measure serializes draws from the shared source; v is owned by the run.
func (r *Runner) measure(v *state.Vector, bit int) (state.Bit, error) {
	r.srcMu.Lock()
	defer r.srcMu.Unlock()

	return v.Measure(bit, r.src)
}
