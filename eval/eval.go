// SPDX-License-Identifier: MIT

package eval

import (
	"github.com/katalvlaran/binomcoefln/dtype"
	"github.com/katalvlaran/binomcoefln/kernel"
	"github.com/katalvlaran/binomcoefln/matrix"
	"github.com/katalvlaran/binomcoefln/shape"
)

// Sequence evaluates a generic sequence n against k into out.
//
// Implementation:
//   - Stage 1: check len(out) == len(n) and k's shape against n.
//   - Stage 2: for each i, pair the numeric n[i] with k's i-th value;
//     write the kernel result, or the sentinel when either side is not
//     numeric.
//
// Returns the number of sentinel writes.
// Complexity: O(len(n)).
func Sequence(out Writer, n shape.Sequence, k any) (int, error) {
	if out.Len() != n.Len() {
		return 0, evalErrorf("Sequence: out", n.Len(), out.Len(), ErrLengthMismatch)
	}
	op := Classify(k)
	if err := op.checkAligned("Sequence", n.Len()); err != nil {
		return 0, err
	}

	return pairwise(out, n.Len(), func(i int) (float64, bool) {
		return shape.Number(n.At(i))
	}, op.at), nil
}

// Buffer evaluates a typed buffer n against k into out. n's elements are
// numeric by construction; sentinels only come from k.
// out may be n itself.
// Complexity: O(n.Len()).
func Buffer(out Writer, n dtype.Buffer, k any) (int, error) {
	if out.Len() != n.Len() {
		return 0, evalErrorf("Buffer: out", n.Len(), out.Len(), ErrLengthMismatch)
	}
	op := Classify(k)
	if err := op.checkAligned("Buffer", n.Len()); err != nil {
		return 0, err
	}

	return pairwise(out, n.Len(), func(i int) (float64, bool) {
		return n.At(i), true
	}, op.at), nil
}

// Matrix evaluates matrix n against k into out.
//
// Implementation:
//   - Stage 1: len(out) must equal len(n).
//   - Stage 2: a matrix k must have n's [rows, cols]; walk (i,j) row-major
//     through At/Set. A scalar k walks the flat backing buffers.
//   - Sequences and buffers are rejected; any other k fills the sentinel.
//
// Complexity: O(rows*cols).
func Matrix(out, n matrix.Matrix, k any) (int, error) {
	if err := matrix.ValidateNotNil(n); err != nil {
		return 0, err
	}
	if err := matrix.ValidateNotNil(out); err != nil {
		return 0, err
	}
	if out.Len() != n.Len() {
		return 0, evalErrorf("Matrix: out", n.Len(), out.Len(), ErrLengthMismatch)
	}

	op := Classify(k)
	switch op.Kind {
	case shape.KindMatrix:
		if err := matrix.ValidateSameShape(n, op.Matrix); err != nil {
			return 0, err
		}
		return 0, rowMajor(out, n, op.Matrix)
	case shape.KindBuffer, shape.KindSequence:
		return 0, evalErrorf("Matrix", n.Len(), op.Len(), ErrMatrixOperand)
	case shape.KindScalar:
		src, dst := n.Data(), out.Data()
		for i := 0; i < src.Len(); i++ {
			dst.Set(i, kernel.BinomCoefLn(src.At(i), op.Scalar))
		}
		return 0, nil
	}

	dst := out.Data()
	for i := 0; i < dst.Len(); i++ {
		dst.Set(i, sentinel)
	}

	return dst.Len(), nil
}

func rowMajor(out, n, k matrix.Matrix) error {
	rows, cols := n.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			nv, err := n.At(i, j)
			if err != nil {
				return err
			}
			kv, err := k.At(i, j)
			if err != nil {
				return err
			}
			if err = out.Set(i, j, kernel.BinomCoefLn(nv, kv)); err != nil {
				return err
			}
		}
	}

	return nil
}

// pairwise drives the element loop shared by the non-matrix evaluators.
func pairwise(out Writer, length int, left, right func(i int) (float64, bool)) int {
	var sentinels int
	for i := 0; i < length; i++ {
		nv, okN := left(i)
		kv, okK := right(i)
		if !okN || !okK {
			out.Set(i, sentinel)
			sentinels++
			continue
		}
		out.Set(i, kernel.BinomCoefLn(nv, kv))
	}

	return sentinels
}
