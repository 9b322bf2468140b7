// Package binomcoefln computes the natural logarithm of the binomial
// coefficient, ln C(n,k), element-wise over scalars and collections.
//
// One entry point, BinomCoefLn(n, k, ...Option), inspects the shape of n
// once and hands the work to the matching evaluator:
//
//	scalar n    kernel directly, or broadcast against a collection k
//	matrix n    matrix.Matrix in, *matrix.Dense out (or n itself)
//	buffer n    native numeric slice or dtype.Buffer in, same kind out
//	sequence n  []any, other slices, shape.Sequence; optional accessor or
//	            key path (in place)
//
// Elements that are not numeric produce NaN in the output without failing
// the call. Shape and configuration problems (length mismatch, a matrix
// paired with a loose sequence, an unknown dtype, an option that does not
// apply to a scalar n) return an error before anything is written.
//
// Integer pairs follow the exact rule: k<0 or k>n is -Inf, k==0 is 0,
// k==1 is ln|n|; other pairs use -ln(n+1) - lnB(n-k+1, k+1).
//
// Options:
//
//	WithCopy(false)     write into n instead of allocating
//	WithDType(name)     output representation: int8 ... float64, uint8_clamped
//	WithAccessor(fn)    read elements of a sequence through fn
//	WithPath(p)         read and write each element at key path p, in place
//	WithSep(s)          key path separator (default ".")
//	WithLogger(l)       zap logger for dispatch diagnostics (default no-op)
//
// Calls are synchronous and keep no state. Callers sharing an input under
// WithCopy(false) serialize access themselves.
package binomcoefln
