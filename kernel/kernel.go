// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// BinomCoefLn returns ln(C(n,k)).
//
// Integer pairs follow the exact-case table in the package docs; any
// non-integer operand (including ±Inf and NaN) uses the continuous
// Gamma/Beta extension directly.
// Complexity: O(1).
func BinomCoefLn(n, k float64) float64 {
	if !isInteger(n) || !isInteger(k) {
		return continuous(n, k)
	}
	// Zero coefficient: log is -Inf.
	if k < 0 || n < k {
		return math.Inf(-1)
	}
	if k == 0 {
		return 0
	}
	if k == 1 {
		return math.Log(math.Abs(n))
	}
	// C(n,k) == C(n,n-k); n-k ∈ {0,1} terminates on the branches above.
	if n-k < 2 {
		return BinomCoefLn(n, n-k)
	}

	return continuous(n, k)
}

// LnBeta returns the natural logarithm of the complete Beta function B(a,b).
// Complexity: O(1).
func LnBeta(a, b float64) float64 {
	return mathext.Lbeta(a, b)
}

// continuous evaluates -ln(n+1) - ln B(n-k+1, k+1).
func continuous(n, k float64) float64 {
	return -math.Log(n+1) - LnBeta(n-k+1, k+1)
}

// isInteger reports whether x is a finite mathematical integer.
func isInteger(x float64) bool {
	return !math.IsInf(x, 0) && x == math.Trunc(x)
}
