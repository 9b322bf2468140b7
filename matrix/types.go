// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/binomcoefln/dtype"

// Matrix is a two-dimensional numeric array with a flat row-major backing
// buffer. Element (i,j) lives at Data().At(i*Cols()+j).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Shape returns (Rows(), Cols()).
	Shape() (rows, cols int)

	// Len returns Rows()*Cols().
	Len() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns v at position (i, j) using the buffer's store semantics.
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Data returns the flat row-major backing buffer (shared).
	Data() dtype.Buffer

	// DType returns the element representation of Data().
	DType() dtype.DType

	// Clone returns a deep copy with the same dtype.
	Clone() Matrix
}
