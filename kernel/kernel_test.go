// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/binomcoefln/kernel"
	"github.com/stretchr/testify/require"
)

// exactLn returns ln(C(n,k)) from the exact big-integer coefficient.
func exactLn(n, k int64) float64 {
	f, _ := new(big.Float).SetInt(new(big.Int).Binomial(n, k)).Float64()
	return math.Log(f)
}

func TestBinomCoefLn_KnownValues(t *testing.T) {
	t.Parallel()

	require.InDelta(t, math.Log(10), kernel.BinomCoefLn(5, 3), 1e-12)
	require.InDelta(t, 1.79175946922806, kernel.BinomCoefLn(4, 2), 1e-7)
	require.Equal(t, 0.0, kernel.BinomCoefLn(3, 3))
	require.InDelta(t, 0.0, kernel.BinomCoefLn(0, 0), 1e-4)
	require.InDelta(t, math.Log(5), kernel.BinomCoefLn(5, 4), 1e-12)
}

// TestBinomCoefLn_MatchesExact checks exp(kernel) against the exact integer
// coefficient within a relative tolerance of 1e-7.
func TestBinomCoefLn_MatchesExact(t *testing.T) {
	t.Parallel()

	for n := int64(0); n <= 60; n++ {
		for k := int64(0); k <= n; k++ {
			got := kernel.BinomCoefLn(float64(n), float64(k))
			want := exactLn(n, k)
			// |ln a - ln b| <= 1e-7 bounds the relative error of the coefficient.
			require.InDelta(t, want, got, 1e-7, "n=%d k=%d", n, k)
		}
	}
}

func TestBinomCoefLn_Symmetry(t *testing.T) {
	t.Parallel()

	require.InDelta(t, kernel.BinomCoefLn(5, 3), kernel.BinomCoefLn(5, 2), 1e-12)
	for n := 2.0; n <= 40; n++ {
		for k := 0.0; k <= n; k++ {
			require.InDelta(t, kernel.BinomCoefLn(n, k), kernel.BinomCoefLn(n, n-k), 1e-9, "n=%v k=%v", n, k)
		}
	}
}

func TestBinomCoefLn_Boundaries(t *testing.T) {
	t.Parallel()

	for _, n := range []float64{0, 1, 7, 100} {
		require.Equal(t, 0.0, kernel.BinomCoefLn(n, 0), "n=%v", n)
	}
	// n<k is checked first, so a negative integer n has no k==0 exception.
	require.True(t, math.IsInf(kernel.BinomCoefLn(-3, 0), -1))
	require.True(t, math.IsInf(kernel.BinomCoefLn(4, 5), -1))
	require.True(t, math.IsInf(kernel.BinomCoefLn(3, -2), -1))
	require.True(t, math.IsInf(kernel.BinomCoefLn(0, 1), -1))
}

func TestBinomCoefLn_NonInteger(t *testing.T) {
	t.Parallel()

	require.InDelta(t, math.Log(5.9058667), kernel.BinomCoefLn(4, 2.2), 1e-6)
	// C(x,1) == x on the continuous branch as well.
	require.InDelta(t, math.Log(0.5), kernel.BinomCoefLn(0.5, 1), 1e-12)
	require.InDelta(t, 0.405465108108164, kernel.BinomCoefLn(1.5, 1), 1e-12)
}

func TestBinomCoefLn_NonFinite(t *testing.T) {
	t.Parallel()

	require.True(t, math.IsNaN(kernel.BinomCoefLn(math.NaN(), 2)))
	require.True(t, math.IsNaN(kernel.BinomCoefLn(4, math.NaN())))
	// Pole: n = -1 with a non-integer k never yields a finite value.
	v := kernel.BinomCoefLn(-1, 0.5)
	require.True(t, math.IsNaN(v) || math.IsInf(v, 0))
	// n-k+1 = -1 sits on a pole of ln|B|: NaN, although C(1.5, 3.5) = 0.
	require.True(t, math.IsNaN(kernel.BinomCoefLn(1.5, 3.5)))
	require.True(t, math.IsInf(kernel.BinomCoefLn(2.5, 3.5), -1))
}

func TestLnBeta(t *testing.T) {
	t.Parallel()

	// B(4,3) = 3!·2!/6! = 1/60.
	require.InDelta(t, -math.Log(60), kernel.LnBeta(4, 3), 1e-12)
	require.InDelta(t, kernel.LnBeta(2.5, 7), kernel.LnBeta(7, 2.5), 1e-12)
}
