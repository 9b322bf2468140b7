// Package eval holds the iteration strategies of binomcoefln: one evaluator
// per primary-input shape, each pairing the elements of n with an operand k
// and writing kernel.BinomCoefLn results into an output container.
//
// The right-hand operand is classified once per call (see Classify) into a
// closed set of kinds:
//
//	Matrix    only pairs with a matrix n of the same [rows, cols]
//	Buffer    index-aligned, lengths must match, always numeric
//	Sequence  index-aligned, lengths must match, elements checked one by one
//	Scalar    broadcast to every index
//	Other     every output element becomes the NaN sentinel
//
// Errors are two-tier. Shape problems (length mismatch, a matrix paired with
// a non-matrix) abort the call before any element is written. Element-level
// problems (a non-numeric value on either side) never abort: the output
// element is set to NaN and iteration continues. Every evaluator returns the
// number of such substitutions.
package eval
