// Package dtype defines the numeric representation tags ("dtypes") and the
// fixed-type numeric buffers used as inputs and outputs of binomcoefln.
//
// A Buffer is a homogeneous, fixed-length numeric store addressed through
// float64 values. Each dtype has store semantics of its own:
//
//   - float64, float32: IEEE conversion (float32 rounds to nearest).
//   - int8…uint32: truncate toward zero, then wrap modulo 2^bits; NaN and
//     ±Inf store as 0.
//   - uint8_clamped: clamp into [0,255], round half to even; NaN stores as 0.
//
// Native Go slices of the matching element types are wrapped without
// copying (Wrap), so writes through the Buffer reach the caller's slice.
//
// Errors:
//
//   - ErrUnknownDType  the dtype name has no buffer representation.
//   - ErrBadLength     a negative buffer length was requested.
package dtype
