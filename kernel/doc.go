// Package kernel implements the scalar numeric rule behind binomcoefln:
// the natural logarithm of the binomial coefficient C(n,k) for one pair of
// real operands.
//
// What:
//
//   - BinomCoefLn(n, k): ln(C(n,k)) for integer and non-integer operands.
//   - LnBeta(a, b): ln|B(a,b)|, the collaborator used by the continuous
//     extension C(n,k) = 1 / ((n+1) · B(n-k+1, k+1)).
//
// Integer operands:
//
//   - k < 0 or n < k  ⇒ -Inf (the coefficient is zero).
//   - k == 0          ⇒ 0.
//   - k == 1          ⇒ ln|n|.
//   - n-k < 2         ⇒ evaluated as C(n, n-k) (symmetry keeps the Beta
//     arguments away from their small-argument region).
//   - otherwise       ⇒ -ln(n+1) - LnBeta(n-k+1, k+1).
//
// Non-integer operands go straight to the Beta formula. Poles (n = -1) and
// NaN operands produce non-finite results; they are values, not errors.
// Non-integer pairs where n-k+1 is a non-positive integer yield NaN, not
// the -Inf of a zero coefficient: ln|B| has a pole there.
//
// Complexity: O(1) time and space per call; no allocation, no state.
package kernel
