// SPDX-License-Identifier: MIT

package eval

import (
	"fmt"

	"github.com/katalvlaran/binomcoefln/deep"
	"github.com/katalvlaran/binomcoefln/shape"
)

// Slot tells an AccessorFunc which operand an element belongs to.
type Slot int

const (
	// SlotN marks elements of the primary input n.
	SlotN Slot = iota
	// SlotK marks elements of an object collection k.
	SlotK
)

// AccessorFunc extracts the numeric value of elem at index i.
// Results that are not Go numbers become the sentinel.
type AccessorFunc func(elem any, i int, slot Slot) any

// Accessor evaluates n through fn into out. k is read through fn as well
// when it is a sequence whose first element is an object (map, struct or
// pointer to struct); the choice is made once from k[0] and applies to the
// whole collection. out never aliases the elements of n.
// Complexity: O(len(n)).
func Accessor(out Writer, n shape.Sequence, k any, fn AccessorFunc) (int, error) {
	if out.Len() != n.Len() {
		return 0, evalErrorf("Accessor: out", n.Len(), out.Len(), ErrLengthMismatch)
	}
	op := Classify(k)
	if err := op.checkAligned("Accessor", n.Len()); err != nil {
		return 0, err
	}

	left := func(i int) (float64, bool) {
		return shape.Number(fn(n.At(i), i, SlotN))
	}
	right := op.at
	if op.Kind == shape.KindSequence && op.Seq.Len() > 0 && shape.IsObject(op.Seq.At(0)) {
		right = func(i int) (float64, bool) {
			return shape.Number(fn(op.Seq.At(i), i, SlotK))
		}
	}

	return pairwise(out, n.Len(), left, right), nil
}

// FieldPath evaluates n in place: each element's value at the path read by
// get is replaced through set with the result against k. An empty n is
// returned untouched. Elements where the path does not resolve count as
// sentinels and are left as they are.
//
// Implementation:
//   - Stage 1: k's shape is checked against n before any write.
//   - Stage 2: per element, read get(n[i]); write the kernel result or the
//     sentinel through set(n[i], v).
//   - Stage 3: a resolved path that set refused fails the call with
//     ErrUnwritable; the writable elements keep their results.
//
// Complexity: O(len(n) * path depth).
func FieldPath(n shape.Sequence, k any, get func(any) any, set func(any, any) bool) (int, error) {
	if n.Len() == 0 {
		return 0, nil
	}
	op := Classify(k)
	if err := op.checkAligned("FieldPath", n.Len()); err != nil {
		return 0, err
	}

	w := &pathWriter{n: n, get: get, set: set, first: -1}
	sentinels := pairwise(w, n.Len(), func(i int) (float64, bool) {
		return shape.Number(get(n.At(i)))
	}, op.at)
	if w.refused > 0 {
		return sentinels, fmt.Errorf("FieldPath: %d of %d elements, first at index %d: %w",
			w.refused, n.Len(), w.first, ErrUnwritable)
	}

	return sentinels, nil
}

// Path builds the get/set pair FieldPath expects for a key path.
func Path(path, sep string) (get func(any) any, set func(any, any) bool) {
	return deep.Getter(path, deep.WithSep(sep)), deep.Setter(path, deep.WithSep(sep))
}

// pathWriter writes into the element containers of n and tallies writes
// refused at paths that resolve.
type pathWriter struct {
	n       shape.Sequence
	get     func(any) any
	set     func(any, any) bool
	refused int
	first   int
}

func (w *pathWriter) Len() int { return w.n.Len() }

func (w *pathWriter) Set(i int, v float64) {
	el := w.n.At(i)
	if w.set(el, v) || w.get(el) == nil {
		return
	}
	if w.refused == 0 {
		w.first = i
	}
	w.refused++
}
