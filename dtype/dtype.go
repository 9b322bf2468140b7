// SPDX-License-Identifier: MIT

package dtype

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// DType names a numeric buffer representation.
type DType string

// Supported representations.
const (
	Int8         DType = "int8"
	Uint8        DType = "uint8"
	Uint8Clamped DType = "uint8_clamped"
	Int16        DType = "int16"
	Uint16       DType = "uint16"
	Int32        DType = "int32"
	Uint32       DType = "uint32"
	Float32      DType = "float32"
	Float64      DType = "float64"
)

// Default is the representation used when no dtype is requested.
const Default = Float64

// Number is the set of element types a Typed buffer can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Buffer is a fixed-length numeric store read and written as float64.
// Set applies the store semantics of DType (truncation, wrapping, clamping).
type Buffer interface {
	Len() int
	At(i int) float64
	Set(i int, v float64)
	DType() DType
	// Slice returns the backing native slice (shared, not copied).
	Slice() any
	Clone() Buffer
}

// Constructor allocates a zero-filled Buffer of length n.
type Constructor func(n int) Buffer

// constructors is the single source of truth for supported dtypes.
var constructors = map[DType]Constructor{
	Int8:         func(n int) Buffer { return newTyped(Int8, make([]int8, n), storeInt[int8]) },
	Uint8:        func(n int) Buffer { return newTyped(Uint8, make([]uint8, n), storeInt[uint8]) },
	Uint8Clamped: func(n int) Buffer { return newTyped(Uint8Clamped, make([]uint8, n), storeClamped) },
	Int16:        func(n int) Buffer { return newTyped(Int16, make([]int16, n), storeInt[int16]) },
	Uint16:       func(n int) Buffer { return newTyped(Uint16, make([]uint16, n), storeInt[uint16]) },
	Int32:        func(n int) Buffer { return newTyped(Int32, make([]int32, n), storeInt[int32]) },
	Uint32:       func(n int) Buffer { return newTyped(Uint32, make([]uint32, n), storeInt[uint32]) },
	Float32:      func(n int) Buffer { return newTyped(Float32, make([]float32, n), storeFloat[float32]) },
	Float64:      func(n int) Buffer { return newTyped(Float64, make([]float64, n), storeFloat[float64]) },
}

// Valid reports whether d names a supported representation.
func (d DType) Valid() bool {
	_, ok := constructors[d]
	return ok
}

// String implements fmt.Stringer.
func (d DType) String() string { return string(d) }

// Parse resolves a dtype name.
// Returns ErrUnknownDType (wrapped with the offending name) when unsupported.
func Parse(name string) (DType, error) {
	d := DType(name)
	if !d.Valid() {
		return "", fmt.Errorf("Parse(%q): %w", name, ErrUnknownDType)
	}

	return d, nil
}

// ConstructorFor returns the buffer constructor for name, or false when the
// dtype has no buffer representation.
func ConstructorFor(name string) (Constructor, bool) {
	ctor, ok := constructors[DType(name)]

	return ctor, ok
}

// New allocates a zero-filled buffer of dtype d and length n.
// Complexity: O(n).
func New(d DType, n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%s, %d): %w", d, n, ErrBadLength)
	}
	ctor, ok := constructors[d]
	if !ok {
		return nil, fmt.Errorf("New(%s, %d): %w", d, n, ErrUnknownDType)
	}

	return ctor(n), nil
}

// Wrap adapts a native slice to a Buffer sharing its storage.
// []uint8 wraps as Uint8; use Clamped for uint8_clamped semantics.
// The second result is false for unsupported values.
func Wrap(v any) (Buffer, bool) {
	switch s := v.(type) {
	case Buffer:
		return s, true
	case []int8:
		return newTyped(Int8, s, storeInt[int8]), true
	case []uint8:
		return newTyped(Uint8, s, storeInt[uint8]), true
	case []int16:
		return newTyped(Int16, s, storeInt[int16]), true
	case []uint16:
		return newTyped(Uint16, s, storeInt[uint16]), true
	case []int32:
		return newTyped(Int32, s, storeInt[int32]), true
	case []uint32:
		return newTyped(Uint32, s, storeInt[uint32]), true
	case []float32:
		return newTyped(Float32, s, storeFloat[float32]), true
	case []float64:
		return newTyped(Float64, s, storeFloat[float64]), true
	}

	return nil, false
}

// Clamped wraps data as a uint8_clamped buffer sharing its storage.
func Clamped(data []uint8) *Typed[uint8] {
	return newTyped(Uint8Clamped, data, storeClamped)
}

// ---------- store semantics ----------

// twoPow32 bounds the wrap-around window; every supported integer width
// divides it, so the final integer conversion wraps correctly.
const twoPow32 = 1 << 32

// storeInt truncates toward zero and wraps modulo 2^bits; NaN/±Inf become 0.
func storeInt[T constraints.Integer](v float64) T {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return T(int64(math.Mod(math.Trunc(v), twoPow32)))
}

// storeClamped clamps into [0,255] with round-half-even; NaN becomes 0.
func storeClamped(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}

	return uint8(math.RoundToEven(v))
}

func storeFloat[T constraints.Float](v float64) T { return T(v) }
