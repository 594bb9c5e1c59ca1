// Package matrix_test contains unit tests for binary/ternary domain checks.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/unimod/matrix"
	"github.com/stretchr/testify/require"
)

// TestIsBinary_LocatesViolation verifies that the first out-of-domain entry
// is reported as a 1×1 submatrix at its exact (row, column).
func TestIsBinary_LocatesViolation(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int{
		{1, 0, 1},
		{0, 1, 2},
		{1, 3, 0},
	})
	ok, sub, err := matrix.IsBinary(m)
	require.NoError(t, err)
	require.False(t, ok)
	require.NotNil(t, sub)
	require.Equal(t, []int{1}, sub.Rows)
	require.Equal(t, []int{2}, sub.Columns)
}

// TestCheckDomain_Table covers integer and float domains with tolerance.
func TestCheckDomain_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rows   [][]float64
		domain matrix.Domain
		opts   []matrix.Option
		wantOK bool
		at     [2]int
	}{
		{"binary ok", [][]float64{{1, 0}, {0, 1}}, matrix.DomainBinary, nil, true, [2]int{}},
		{"binary rejects -1", [][]float64{{1, -1}}, matrix.DomainBinary, nil, false, [2]int{0, 1}},
		{"ternary accepts -1", [][]float64{{1, -1}}, matrix.DomainTernary, nil, true, [2]int{}},
		{"ternary rejects -2", [][]float64{{0, 1}, {-2, 0}}, matrix.DomainTernary, nil, false, [2]int{1, 0}},
		{"fraction rejected", [][]float64{{1, 0.5}}, matrix.DomainTernary, nil, false, [2]int{0, 1}},
		{"near one within eps", [][]float64{{1 + 1e-12, 0}}, matrix.DomainBinary, nil, true, [2]int{}},
		{"near one beyond eps", [][]float64{{1.01}}, matrix.DomainBinary, nil, false, [2]int{0, 0}},
		{"near one with loose eps", [][]float64{{1.01}}, matrix.DomainBinary, []matrix.Option{matrix.WithEpsilon(0.05)}, true, [2]int{}},
		{"NaN rejected", [][]float64{{0, math.NaN()}}, matrix.DomainTernary, nil, false, [2]int{0, 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustDense(t, tc.rows)
			ok, sub, err := matrix.CheckDomain(m, tc.domain, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Nil(t, sub)
				return
			}
			require.Equal(t, []int{tc.at[0]}, sub.Rows)
			require.Equal(t, []int{tc.at[1]}, sub.Columns)
		})
	}
}

// TestCheckDomain_Narrow runs the ternary check on the narrow int8 domain.
func TestCheckDomain_Narrow(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int8{{-1, 1}, {1, 1}})
	ok, _, err := matrix.IsTernary(m)
	require.NoError(t, err)
	require.True(t, ok)

	ok, _, err = matrix.IsBinary(m)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestCheckDomain_Errors covers nil input and an unknown domain.
func TestCheckDomain_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.IsBinary[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m := mustDense(t, [][]int{{1}})
	_, _, err = matrix.CheckDomain(m, matrix.Domain(7))
	require.ErrorIs(t, err, matrix.ErrPreconditionViolated)
	require.Equal(t, "unknown", matrix.Domain(7).String())
	require.Equal(t, "ternary", matrix.DomainTernary.String())
}
