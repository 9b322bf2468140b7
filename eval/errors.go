// SPDX-License-Identifier: MIT

package eval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binomcoefln/matrix"
)

var (
	// ErrMatrixOperand indicates a matrix paired with a non-matrix operand.
	ErrMatrixOperand = errors.New("eval: matrices only pair with matrices or scalars")

	// ErrLengthMismatch indicates index-aligned collections of different lengths.
	ErrLengthMismatch = errors.New("eval: input collections must have the same length")

	// ErrUnwritable indicates a key path that resolves but cannot hold the result.
	ErrUnwritable = errors.New("eval: value at key path cannot be written")

	// ErrDimensionMismatch indicates two matrices of different [rows, cols].
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// evalErrorf tags err with the evaluator name and operand lengths.
func evalErrorf(tag string, want, got int, err error) error {
	return fmt.Errorf("%s: len(n)=%d, len(other)=%d: %w", tag, want, got, err)
}
