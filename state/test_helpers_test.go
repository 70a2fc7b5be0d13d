// SPDX-License-Identifier: MIT
// Package state_test contains test helpers
//
// Purpose:
//   - Provide fixed gates, seeded sources and fuzzed normalized states.
//   - Keep every helper deterministic so failures reproduce exactly.

package state_test

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/katalvlaran/quanta/complexnum"
	"github.com/katalvlaran/quanta/matrix"
	"github.com/katalvlaran/quanta/state"
)

// testEps is the tolerance for comparing amplitudes and probabilities.
const testEps = 1e-9

// ir2 is 1/√2.
const ir2 = complexnum.InvSqrt2

// c is shorthand for complexnum.New.
func c(re, im float64) complexnum.Complex { return complexnum.New(re, im) }

// r is shorthand for a real-valued complex.
func r(re float64) complexnum.Complex { return complexnum.New(re, 0) }

// fixedSource is a rand.Source that always returns the same word.
// 0 makes every Bernoulli draw succeed; math.MaxUint64 makes every draw fail.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

const (
	alwaysOn  = fixedSource(0)
	alwaysOff = fixedSource(math.MaxUint64)
)

// mustVector builds a normalized state or fails the test.
func mustVector(tb testing.TB, amps ...complexnum.Complex) *state.Vector {
	tb.Helper()
	v, err := state.FromFlatData(amps)
	if err != nil {
		tb.Fatalf("FromFlatData: %v", err)
	}

	return v
}

// mustGate builds a square gate from rows or fails the test.
func mustGate(tb testing.TB, rows [][]complexnum.Complex) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// hadamard returns [[IR2, IR2], [IR2, -IR2]].
func hadamard(tb testing.TB) *matrix.Dense {
	tb.Helper()
	return mustGate(tb, [][]complexnum.Complex{{r(ir2), r(ir2)}, {r(ir2), r(-ir2)}})
}

// pauliY returns [[0, -i], [i, 0]].
func pauliY(tb testing.TB) *matrix.Dense {
	tb.Helper()
	return mustGate(tb, [][]complexnum.Complex{{r(0), c(0, -1)}, {c(0, 1), r(0)}})
}

// newFuzzer returns a deterministic fuzzer producing finite amplitudes.
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(v *complexnum.Complex, cf fuzz.Continue) {
			v.Re = cf.Float64()*2 - 1
			v.Im = cf.Float64()*2 - 1
		},
	)
}

// randomState returns a fuzzed, normalized n-qubit state.
func randomState(tb testing.TB, f *fuzz.Fuzzer, n int) *state.Vector {
	tb.Helper()
	amps := make([]complexnum.Complex, 1<<n)
	var total float64
	for i := range amps {
		f.Fuzz(&amps[i])
		total += amps[i].Probability()
	}
	if total == 0 {
		amps[0], total = complexnum.One, 1
	}
	norm := 1 / math.Sqrt(total)
	for i := range amps {
		amps[i] = amps[i].Scale(norm)
	}

	return mustVector(tb, amps...)
}

// randomQubit returns a fuzzed, normalized qubit.
func randomQubit(tb testing.TB, f *fuzz.Fuzzer) state.Qubit {
	tb.Helper()
	v := randomState(tb, f, 1)
	q, err := state.NewQubit(v.Amplitudes()[0], v.Amplitudes()[1])
	if err != nil {
		tb.Fatalf("NewQubit: %v", err)
	}

	return q
}
