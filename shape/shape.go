// SPDX-License-Identifier: MIT

package shape

import (
	"reflect"

	"github.com/katalvlaran/binomcoefln/dtype"
	"github.com/katalvlaran/binomcoefln/matrix"
)

// Kind is the closed set of operand shapes.
type Kind int

const (
	KindOther Kind = iota
	KindScalar
	KindSequence
	KindBuffer
	KindMatrix
)

var kindNames = [...]string{"other", "scalar", "sequence", "buffer", "matrix"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Classify returns the Kind of v. Matrix wins over buffer, buffer over
// sequence.
// Complexity: O(1).
func Classify(v any) Kind {
	switch {
	case IsMatrixLike(v):
		return KindMatrix
	case IsBufferLike(v):
		return KindBuffer
	case IsArrayLike(v):
		return KindSequence
	}
	if _, ok := Number(v); ok {
		return KindScalar
	}

	return KindOther
}

// IsMatrixLike reports whether v is a non-nil matrix.Matrix.
func IsMatrixLike(v any) bool {
	m, ok := v.(matrix.Matrix)

	return ok && m != nil && !isNilPointer(v)
}

// IsBufferLike reports whether v is a fixed-type numeric buffer.
func IsBufferLike(v any) bool {
	if isNilPointer(v) {
		return false
	}
	_, ok := dtype.Wrap(v)

	return ok
}

// IsArrayLike reports whether v has a length and index access: any slice,
// array or Sequence. Buffers are array-like too.
func IsArrayLike(v any) bool {
	if _, ok := v.(Sequence); ok {
		return !isNilPointer(v)
	}
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}

	return false
}

// Number reports whether v is a Go integer or float and returns it as float64.
// bool, string, nil and named non-numeric types report false.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}

	return 0, false
}

// IsObject reports whether v is a keyed container: a map, a struct, or a
// non-nil pointer to a struct. Slices and arrays are not objects.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	}

	return false
}

// isNilPointer reports a typed nil pointer hiding inside an interface.
func isNilPointer(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
