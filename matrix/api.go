// SPDX-License-Identifier: MIT
// Package matrix: constructors and utilities.
//
// Purpose:
//   - Thin, intention-revealing entry points built on NewDenseOf.
//   - No logic duplication; each helper composes the canonical constructor.

package matrix

import "github.com/katalvlaran/binomcoefln/dtype"

// NewFilled returns a float64 rows×cols Dense with every element set to v.
// Used to broadcast a scalar against a matrix operand.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewFilled", err)
	}
	n := m.Len()
	for idx := 0; idx < n; idx++ {
		m.data.Set(idx, v)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the shape of m stored as dt.
// Complexity: O(r*c).
func ZerosLike(m Matrix, dt dtype.DType) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDenseOf(dt, m.Rows(), m.Cols())
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}
