// SPDX-License-Identifier: MIT

package eval

import (
	"math"

	"github.com/katalvlaran/binomcoefln/dtype"
	"github.com/katalvlaran/binomcoefln/matrix"
	"github.com/katalvlaran/binomcoefln/shape"
)

// sentinel is the value written for elements that are not numeric.
var sentinel = math.NaN()

// Operand is the right-hand operand k, classified once per call.
// Exactly one of the payload fields is set, selected by Kind.
type Operand struct {
	Kind   shape.Kind
	Scalar float64
	Matrix matrix.Matrix
	Buffer dtype.Buffer
	Seq    shape.Sequence
}

// Classify resolves k into an Operand.
// Complexity: O(1).
func Classify(k any) Operand {
	switch kind := shape.Classify(k); kind {
	case shape.KindMatrix:
		return Operand{Kind: kind, Matrix: k.(matrix.Matrix)}
	case shape.KindBuffer:
		buf, _ := dtype.Wrap(k)
		return Operand{Kind: kind, Buffer: buf}
	case shape.KindSequence:
		seq, _ := shape.AsSequence(k)
		return Operand{Kind: kind, Seq: seq}
	case shape.KindScalar:
		v, _ := shape.Number(k)
		return Operand{Kind: kind, Scalar: v}
	}

	return Operand{Kind: shape.KindOther}
}

// Len returns the element count of a collection operand, or -1.
func (o Operand) Len() int {
	switch o.Kind {
	case shape.KindMatrix:
		return o.Matrix.Len()
	case shape.KindBuffer:
		return o.Buffer.Len()
	case shape.KindSequence:
		return o.Seq.Len()
	}

	return -1
}

// checkAligned validates k against a non-matrix primary input of length n.
func (o Operand) checkAligned(tag string, n int) error {
	switch o.Kind {
	case shape.KindMatrix:
		return evalErrorf(tag, n, o.Len(), ErrMatrixOperand)
	case shape.KindBuffer, shape.KindSequence:
		if o.Len() != n {
			return evalErrorf(tag, n, o.Len(), ErrLengthMismatch)
		}
	}

	return nil
}

// at returns k's value for index i and whether it is numeric.
// Matrix operands are never read here.
func (o Operand) at(i int) (float64, bool) {
	switch o.Kind {
	case shape.KindScalar:
		return o.Scalar, true
	case shape.KindBuffer:
		return o.Buffer.At(i), true
	case shape.KindSequence:
		return shape.Number(o.Seq.At(i))
	}

	return 0, false
}
