// SPDX-License-Identifier: MIT

package dtype

// Typed is a Buffer backed by a native slice of T.
type Typed[T Number] struct {
	dt    DType
	data  []T
	store func(float64) T
}

// Compile-time assertion for interface conformance.
var _ Buffer = (*Typed[float64])(nil)

func newTyped[T Number](dt DType, data []T, store func(float64) T) *Typed[T] {
	return &Typed[T]{dt: dt, data: data, store: store}
}

// Len returns the number of elements.
func (b *Typed[T]) Len() int { return len(b.data) }

// At returns element i as float64. Panics on out-of-range i like a slice.
func (b *Typed[T]) At(i int) float64 { return float64(b.data[i]) }

// Set stores v at i using the dtype's store semantics.
func (b *Typed[T]) Set(i int, v float64) { b.data[i] = b.store(v) }

// DType returns the representation tag.
func (b *Typed[T]) DType() DType { return b.dt }

// Raw returns the backing slice (shared).
func (b *Typed[T]) Raw() []T { return b.data }

// Slice returns the backing slice as any (shared).
func (b *Typed[T]) Slice() any { return b.data }

// Clone returns an independent copy with the same dtype.
// Complexity: O(n).
func (b *Typed[T]) Clone() Buffer {
	data := make([]T, len(b.data))
	copy(data, b.data)

	return newTyped(b.dt, data, b.store)
}
