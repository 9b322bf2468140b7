// SPDX-License-Identifier: MIT

package binomcoefln

import (
	"github.com/katalvlaran/binomcoefln/kernel"
	"github.com/katalvlaran/binomcoefln/matrix"
	"github.com/katalvlaran/binomcoefln/shape"
)

// Scalar returns ln C(n,k) for one pair.
func Scalar(n, k float64) float64 {
	return kernel.BinomCoefLn(n, k)
}

// Floats evaluates n against k and returns a []float64. Any WithDType
// option is overridden with float64; under WithCopy(false) the result is n.
func Floats(n []float64, k any, opts ...Option) ([]float64, error) {
	opts = append(opts[:len(opts):len(opts)], WithDType(DefaultDType))
	res, err := BinomCoefLn(n, k, opts...)
	if err != nil {
		return nil, err
	}

	return res.([]float64), nil
}

// Matrix evaluates matrix n against k (a matrix of the same shape, or a
// scalar).
func Matrix(n matrix.Matrix, k any, opts ...Option) (matrix.Matrix, error) {
	if !shape.IsMatrixLike(n) {
		return nil, binomErrorf("Matrix", matrix.ErrNilMatrix)
	}
	res, err := BinomCoefLn(n, k, opts...)
	if err != nil {
		return nil, err
	}

	return res.(matrix.Matrix), nil
}
