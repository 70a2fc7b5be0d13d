// Package state_test provides benchmarks for composition, gate application
// and measurement over fuzzed normalized states.
package state_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/quanta/matrix"
	"github.com/katalvlaran/quanta/state"
)

// benchQubits are the register widths to benchmark.
var benchQubits = []int{4, 8, 10}

// sinks to defeat dead-code elimination
var (
	sinkV *state.Vector
	sinkB state.Bit
)

func BenchmarkFromQubits(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchQubits {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f := newFuzzer(5)
			qs := make([]state.Qubit, n)
			for i := range qs {
				qs[i] = randomQubit(b, f)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := state.FromQubits(qs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchQubits[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f := newFuzzer(6)
			v := randomState(b, f, n)
			id, err := matrix.Identity(1 << n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := v.Apply(id)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = out
			}
		})
	}
}

func BenchmarkMeasure(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchQubits {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			f := newFuzzer(7)
			base := randomState(b, f, n)
			src := rand.NewPCG(1, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				v := base.Clone()
				b.StartTimer()
				bit, err := v.Measure(i%n, src)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = bit
			}
		})
	}
}
