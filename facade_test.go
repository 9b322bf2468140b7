// SPDX-License-Identifier: MIT

package binomcoefln_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/binomcoefln"
	"github.com/katalvlaran/binomcoefln/matrix"
	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {
	t.Parallel()
	require.InDelta(t, math.Log(10), binomcoefln.Scalar(5, 3), tol)
	require.InDelta(t, binomcoefln.Scalar(5, 3), binomcoefln.Scalar(5, 2), 1e-12)
	require.True(t, math.IsInf(binomcoefln.Scalar(4, 5), -1))
	require.True(t, math.IsInf(binomcoefln.Scalar(3, -2), -1))
	require.InDelta(t, math.Log(5.9058667), binomcoefln.Scalar(4, 2.2), 1e-6)
}

func TestFloats(t *testing.T) {
	t.Parallel()
	n := []float64{4, 6, 8}

	got, err := binomcoefln.Floats(n, 2, binomcoefln.WithDType("int8"))
	require.NoError(t, err)
	requireClose(t, []float64{math.Log(6), math.Log(15), math.Log(28)}, got)
	require.Equal(t, []float64{4, 6, 8}, n)

	opts := []binomcoefln.Option{binomcoefln.WithCopy(false)}
	got, err = binomcoefln.Floats(n, []int{2, 2, 2}, opts...)
	require.NoError(t, err)
	require.Same(t, &n[0], &got[0])
	require.Len(t, opts, 1)

	_, err = binomcoefln.Floats(n, []int{1})
	require.Error(t, err)
}

func TestMatrix(t *testing.T) {
	t.Parallel()
	n, err := matrix.NewFilled(2, 3, 6)
	require.NoError(t, err)

	out, err := binomcoefln.Matrix(n, 3)
	require.NoError(t, err)
	rows, cols := out.Shape()
	require.Equal(t, [2]int{2, 3}, [2]int{rows, cols})
	v, err := out.At(1, 2)
	require.NoError(t, err)
	require.InDelta(t, math.Log(20), v, tol)

	want, err := matrix.NewFilled(2, 3, math.Log(20))
	require.NoError(t, err)
	ok, err := matrix.AllClose(out, want, tol, 0)
	require.NoError(t, err)
	require.True(t, ok)

	var missing *matrix.Dense
	_, err = binomcoefln.Matrix(missing, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = binomcoefln.Matrix(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
