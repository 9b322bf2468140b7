// Package shape classifies dynamic operands into a closed set of input
// kinds and provides the predicates the evaluators build on.
//
// Kinds (decided once per operand):
//
//   - KindMatrix    implements matrix.Matrix.
//   - KindBuffer    implements dtype.Buffer, or is a native slice accepted
//     by dtype.Wrap ([]int8 … []float64).
//   - KindSequence  any other slice or array, or a Sequence implementation.
//   - KindScalar    a Go integer or float value.
//   - KindOther     everything else (nil, bool, string, map, struct, func …).
//
// Strings are deliberately NOT sequences.
package shape
