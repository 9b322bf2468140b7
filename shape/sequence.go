// SPDX-License-Identifier: MIT

package shape

import "reflect"

// Sequence is an ordered, indexable collection of arbitrary elements.
type Sequence interface {
	Len() int
	At(i int) any
}

// MutableSequence is a Sequence whose elements can hold a float64 result.
type MutableSequence interface {
	Sequence
	SetFloat(i int, v float64)
}

// Values is a Sequence over a []any.
type Values []any

// Len returns the number of elements.
func (s Values) Len() int { return len(s) }

// At returns element i.
func (s Values) At(i int) any { return s[i] }

// SetFloat replaces element i with v.
func (s Values) SetFloat(i int, v float64) { s[i] = v }

// AsSequence adapts v to a Sequence: Sequence implementations are returned
// as-is, []any becomes Values (shared), other slices and arrays are read
// through reflection. Buffers are excluded; use dtype.Wrap for those.
func AsSequence(v any) (Sequence, bool) {
	switch s := v.(type) {
	case Sequence:
		return s, !isNilPointer(v)
	case []any:
		return Values(s), true
	}
	if IsBufferLike(v) || !IsArrayLike(v) {
		return nil, false
	}

	return reflectSeq{rv: reflect.ValueOf(v)}, true
}

// AsMutable reports whether seq can store float64 results in place.
// []any-backed sequences always can; reflected slices can when their element
// type is an empty interface or a float kind. Arrays passed by value cannot.
func AsMutable(seq Sequence) (MutableSequence, bool) {
	switch s := seq.(type) {
	case reflectSeq:
		if s.rv.Kind() != reflect.Slice {
			return nil, false
		}
		switch et := s.rv.Type().Elem(); et.Kind() {
		case reflect.Interface:
			return s, et.NumMethod() == 0
		case reflect.Float32, reflect.Float64:
			return s, true
		}
		return nil, false
	case MutableSequence:
		return s, true
	}

	return nil, false
}

// ElemsByValue reports whether seq is a reflected slice or array of struct
// or array values. At returns copies of such elements, so writes made
// through them never reach seq.
func ElemsByValue(seq Sequence) bool {
	s, ok := seq.(reflectSeq)
	if !ok {
		return false
	}
	switch s.rv.Type().Elem().Kind() {
	case reflect.Struct, reflect.Array:
		return true
	}

	return false
}

// reflectSeq reads arbitrary slices and arrays.
type reflectSeq struct {
	rv reflect.Value
}

func (s reflectSeq) Len() int { return s.rv.Len() }

func (s reflectSeq) At(i int) any { return s.rv.Index(i).Interface() }

// SetFloat is only reachable through AsMutable, which vets the element kind.
func (s reflectSeq) SetFloat(i int, v float64) {
	el := s.rv.Index(i)
	if el.Kind() == reflect.Interface {
		el.Set(reflect.ValueOf(v))
		return
	}
	el.SetFloat(v)
}
