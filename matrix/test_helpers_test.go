// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quanta/complexnum"
	"github.com/katalvlaran/quanta/matrix"
)

// testEps is the tolerance for comparing kernel results.
const testEps = 1e-9

// c is shorthand for complexnum.New.
func c(re, im float64) complexnum.Complex { return complexnum.New(re, im) }

// r is shorthand for a real-valued complex.
func r(re float64) complexnum.Complex { return complexnum.New(re, 0) }

// mustFromRows builds a Dense from rows or fails the test.
func mustFromRows(tb testing.TB, rows [][]complexnum.Complex) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// mustReal builds a Dense whose entries are the given real values.
func mustReal(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	grid := make([][]complexnum.Complex, len(rows))
	for i, row := range rows {
		grid[i] = make([]complexnum.Complex, len(row))
		for j, v := range row {
			grid[i][j] = r(v)
		}
	}

	return mustFromRows(tb, grid)
}

// newFuzzer returns a deterministic fuzzer producing finite entries in [-10, 10).
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(v *complexnum.Complex, cf fuzz.Continue) {
			v.Re = cf.Float64()*20 - 10
			v.Im = cf.Float64()*20 - 10
		},
	)
}

// randomDense fills an n×n matrix with fuzzed complex entries.
func randomDense(tb testing.TB, f *fuzz.Fuzzer, n int) *matrix.Dense {
	tb.Helper()
	rows := make([][]complexnum.Complex, n)
	for i := range rows {
		rows[i] = make([]complexnum.Complex, n)
		for j := range rows[i] {
			f.Fuzz(&rows[i][j])
		}
	}

	return mustFromRows(tb, rows)
}

// randomReal returns an n×n real-valued Dense and its gonum twin.
func randomReal(tb testing.TB, f *fuzz.Fuzzer, n int) (*matrix.Dense, *mat.Dense) {
	tb.Helper()
	rows := make([][]float64, n)
	flat := make([]float64, 0, n*n)
	var v complexnum.Complex
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			f.Fuzz(&v)
			rows[i][j] = v.Re
			flat = append(flat, v.Re)
		}
	}

	return mustReal(tb, rows), mat.NewDense(n, n, flat)
}

// requireMatchesGonum asserts got equals the real matrix want entrywise
// with a zero imaginary part.
func requireMatchesGonum(tb testing.TB, got *matrix.Dense, want mat.Matrix) {
	tb.Helper()
	rows, cols := want.Dims()
	if got.Dims() != rows || rows != cols {
		tb.Fatalf("dims = %d, want %d×%d", got.Dims(), rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := got.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if !v.ApproxEqual(r(want.At(i, j)), testEps) {
				tb.Fatalf("(%d,%d) = %v, want %g", i, j, v, want.At(i, j))
			}
		}
	}
}
