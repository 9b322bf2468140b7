// Package matrix provides the 2-D matrix container used by binomcoefln:
// a row-major Dense whose elements live in a flat, dtype-tagged buffer.
//
// The package provides:
//
//   - Matrix: the minimal surface the evaluators rely on (shape, At/Set,
//     flat Data buffer, DType tag, Clone).
//   - Dense: the concrete row-major implementation; any dtype.Buffer can
//     back it, so an int32 output matrix stores int32 values.
//   - Constructors and helpers (NewDense, NewDenseOf, NewDenseFrom,
//     NewFilled, ZerosLike) and central validators.
//
// 0×0 and 0×N matrices are legal: empty inputs yield empty outputs.
//
// Errors:
//
//   - ErrInvalidDimensions  negative rows or cols.
//   - ErrBadShape           buffer length differs from rows*cols.
//   - ErrOutOfRange         At/Set outside bounds (never a panic).
//   - ErrDimensionMismatch  two matrices with different shapes.
//   - ErrNilMatrix          nil matrix argument.
package matrix
