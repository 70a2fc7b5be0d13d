// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/complexnum"
	"github.com/katalvlaran/quanta/matrix"
)

// TestFromFlatData covers perfect-square and power-of-two enforcement.
func TestFromFlatData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		wantDims int
		wantErr  error
	}{
		{"empty", 0, 0, matrix.ErrInvalidDimension},
		{"1x1", 1, 1, nil},
		{"not square 3", 3, 0, matrix.ErrInvalidDimension},
		{"2x2", 4, 2, nil},
		{"not square 8", 8, 0, matrix.ErrInvalidDimension},
		{"3x3 not power of two", 9, 0, matrix.ErrInvalidDimension},
		{"4x4", 16, 4, nil},
		{"not square 9999", 9999, 0, matrix.ErrInvalidDimension},
		{"6x6 not power of two", 36, 0, matrix.ErrInvalidDimension},
		{"8x8", 64, 8, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.FromFlatData(make([]complexnum.Complex, tc.n))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantDims, m.Dims())
			require.True(t, m.IsPowerOfTwo())
		})
	}
}

// TestFromFlatDataRowMajor checks the (row, col) → row*dims+col layout.
func TestFromFlatDataRowMajor(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromFlatData([]complexnum.Complex{r(1), r(2), r(3), r(4)})
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, r(2), v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, r(3), v)
}

// TestFromRows covers the square-grid check and the documented absence of the
// power-of-two requirement.
func TestFromRows(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.FromRows([][]complexnum.Complex{{r(1), r(2)}, {r(3)}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.FromRows([][]complexnum.Complex{{r(1), r(2), r(3)}, {r(4), r(5), r(6)}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	m, err := matrix.FromRows([][]complexnum.Complex{
		{r(1), r(2), r(3)},
		{r(4), r(5), r(6)},
		{r(7), r(8), r(9)},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.Dims())
	require.False(t, m.IsPowerOfTwo())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, r(8), v)
}

// TestNaNInfPolicy verifies the finite-only default and its opt-out.
func TestNaNInfPolicy(t *testing.T) {
	t.Parallel()

	data := []complexnum.Complex{r(1), c(0, math.NaN()), r(0), r(1)}
	_, err := matrix.FromFlatData(data)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromRows([][]complexnum.Complex{{r(math.Inf(1))}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.FromFlatData(data, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.Equal(t, 2, m.Dims())
}

// TestWithEpsilonPanics ensures nonsensical tolerances are programmer errors.
func TestWithEpsilonPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })

	m, err := matrix.Identity(2, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.Equal(t, 1e-6, m.Epsilon())
}

// TestEpsilonDrivesChecks verifies the carried tolerance decides IsUnitary
// and Near, and that kernel results inherit it.
func TestEpsilonDrivesChecks(t *testing.T) {
	t.Parallel()

	rows := [][]complexnum.Complex{{r(1 + 1e-5), r(0)}, {r(0), r(1)}}
	strict, err := matrix.FromRows(rows)
	require.NoError(t, err)
	loose, err := matrix.FromRows(rows, matrix.WithEpsilon(1e-3))
	require.NoError(t, err)

	require.Equal(t, matrix.DefaultEpsilon, strict.Epsilon())
	require.False(t, strict.IsUnitary())
	require.True(t, loose.IsUnitary())

	id, err := matrix.Identity(2)
	require.NoError(t, err)
	require.False(t, strict.Near(id))
	require.True(t, loose.Near(id))

	prod, err := loose.Mul(id)
	require.NoError(t, err)
	require.Equal(t, 1e-3, prod.Epsilon())
	require.True(t, prod.IsUnitary())

	var nilM *matrix.Dense
	require.False(t, nilM.IsUnitary())
	require.True(t, nilM.Near(nil))
}

// TestIdentity checks the diagonal layout and invalid sizes.
func TestIdentity(t *testing.T) {
	t.Parallel()

	_, err := matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, complexnum.One, v)
			} else {
				require.Equal(t, complexnum.Zero, v)
			}
		}
	}
}

// TestAtOutOfRange ensures At returns ErrOutOfRange instead of panicking.
func TestAtOutOfRange(t *testing.T) {
	t.Parallel()

	m, err := matrix.Identity(2)
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
}

// TestOwnership ensures constructors copy input and accessors return copies.
func TestOwnership(t *testing.T) {
	t.Parallel()

	data := []complexnum.Complex{r(1), r(2), r(3), r(4)}
	m, err := matrix.FromFlatData(data)
	require.NoError(t, err)

	data[0] = r(100)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, r(1), v)

	out := m.Data()
	out[0] = r(200)
	grid := m.Grid()
	grid[1][1] = r(300)

	v, _ = m.At(0, 0)
	require.Equal(t, r(1), v)
	v, _ = m.At(1, 1)
	require.Equal(t, r(4), v)

	back, err := matrix.FromRows(m.Grid())
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}

// TestEqualAndApproxEqual covers exact vs. tolerant comparison.
func TestEqualAndApproxEqual(t *testing.T) {
	t.Parallel()

	a := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := mustReal(t, [][]float64{{1, 2}, {3, 4 + 1e-12}})
	id3, err := matrix.Identity(3)
	require.NoError(t, err)

	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.True(t, a.ApproxEqual(b, testEps))
	require.False(t, a.ApproxEqual(id3, testEps))
	require.False(t, a.Equal(nil))
}

// TestString checks the diagnostic format.
func TestString(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]complexnum.Complex{{r(1), c(0, -1)}, {c(0, 1), r(1)}})
	require.Equal(t, "[1+0i, 0-1i]\n[0+1i, 1+0i]\n", m.String())
}
