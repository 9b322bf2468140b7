// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Delegate element representation to a dtype.Buffer, so the dtype tag and
//     store semantics (truncate/wrap/clamp) travel with the matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/binomcoefln/dtype"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"           // method tag used in error wrappers
	ctxSet  = "Set"          // method tag used in error wrappers
	ctxNew  = "NewDenseOf"   // ctor tag
	ctxFrom = "NewDenseFrom" // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int          // row and column counts
	data dtype.Buffer // contiguous row-major storage (Len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c float64 zero matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled float64 buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseOf(dtype.Default, rows, cols)
}

// NewDenseOf creates an r×c zero matrix stored as dt.
// Errors: ErrInvalidDimensions; dtype.ErrUnknownDType for unsupported dt.
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseOf(dt dtype.DType, rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	buf, err := dtype.New(dt, rows*cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom wraps buf (no copy) as an r×c matrix.
// buf may be a dtype.Buffer or a native numeric slice accepted by dtype.Wrap.
// Errors: ErrInvalidDimensions; ErrBadShape when the length is not r*c or
// buf is not a supported buffer.
// Complexity: O(1).
func NewDenseFrom(buf any, rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidDimensions)
	}
	b, ok := dtype.Wrap(buf)
	if !ok || b.Len() != rows*cols {
		return nil, matrixErrorf(ctxFrom, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: b}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of elements (rows*cols).
func (m *Dense) Len() int { return m.r * m.c }

// Data returns the shared flat backing buffer.
func (m *Dense) Data() dtype.Buffer { return m.data }

// DType returns the representation tag of the backing buffer.
func (m *Dense) DType() dtype.DType { return m.data.DType() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; At/Set wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data.At(off), nil
}

// Set stores v at (row, col) through the buffer's store semantics,
// or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data.Set(off, v)

	return nil
}

// Clone returns a deep copy (new buffer, same dtype).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: m.data.Clone()}
}

// String renders rows as lines with comma-separated values (%g).
// Intended for logs and debugging, not hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data.At(base+j)))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
