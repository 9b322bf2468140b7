// SPDX-License-Identifier: MIT

package eval

import "github.com/katalvlaran/binomcoefln/shape"

// Writer is an output container indexed like the primary input.
// dtype.Buffer implementations satisfy it directly.
type Writer interface {
	Len() int
	Set(i int, v float64)
}

// InPlace adapts a mutable sequence to a Writer, so an evaluator can
// overwrite its own input.
func InPlace(s shape.MutableSequence) Writer {
	return sequenceWriter{s}
}

type sequenceWriter struct {
	shape.MutableSequence
}

func (w sequenceWriter) Set(i int, v float64) { w.SetFloat(i, v) }
