// SPDX-License-Identifier: MIT

package binomcoefln

import (
	"fmt"
	"math"

	"github.com/katalvlaran/binomcoefln/dtype"
	"github.com/katalvlaran/binomcoefln/eval"
	"github.com/katalvlaran/binomcoefln/kernel"
	"github.com/katalvlaran/binomcoefln/matrix"
	"github.com/katalvlaran/binomcoefln/shape"
	"go.uber.org/zap"
)

// BinomCoefLn computes ln C(n,k) for the pairing of n and k.
//
// Implementation:
//   - Stage 1: classify n once (scalar, matrix, buffer, sequence, other).
//   - Stage 2: validate options against that kind and allocate the output
//     unless WithCopy(false) reuses n.
//   - Stage 3: run the matching evaluator.
//
// Returns:
//   - float64 for a scalar n, or NaN when n or k cannot be interpreted.
//   - matrix.Matrix for a matrix n (*matrix.Dense when allocated).
//   - the native slice of the output dtype for a native slice or a
//     sequence n; a dtype.Buffer for a dtype.Buffer n.
//   - n itself under WithCopy(false) or WithPath.
//
// Errors: ErrOptionNotApplicable, ErrUnknownDType, ErrInPlaceUnsupported,
// eval.ErrMatrixOperand, eval.ErrLengthMismatch, eval.ErrDimensionMismatch.
//
// Complexity: O(len(n)), or O(rows*cols) for matrices.
func BinomCoefLn(n, k any, opts ...Option) (any, error) {
	return dispatch(n, k, gatherOptions(opts...))
}

func dispatch(n, k any, o Options) (any, error) {
	switch shape.Classify(n) {
	case shape.KindScalar:
		nv, _ := shape.Number(n)
		return scalarInput(nv, k, o)
	case shape.KindMatrix:
		return matrixInput(n.(matrix.Matrix), k, o)
	case shape.KindBuffer:
		return bufferInput(n, k, o)
	case shape.KindSequence:
		return sequenceInput(n, k, o)
	}
	o.logger.Debug("binomcoefln: n is not numeric", zap.String("type", fmt.Sprintf("%T", n)))

	return math.NaN(), nil
}

// scalarInput broadcasts nv against a collection k or evaluates the pair.
func scalarInput(nv float64, k any, o Options) (any, error) {
	if o.set&^setDType != 0 {
		return nil, binomErrorf("scalar n", ErrOptionNotApplicable)
	}

	op := eval.Classify(k)
	switch op.Kind {
	case shape.KindMatrix:
		filled, err := matrix.NewFilled(op.Matrix.Rows(), op.Matrix.Cols(), nv)
		if err != nil {
			return nil, binomErrorf("scalar n", err)
		}
		return dispatch(filled, k, o)
	case shape.KindBuffer, shape.KindSequence:
		filled := make([]float64, op.Len())
		for i := range filled {
			filled[i] = nv
		}
		return dispatch(filled, k, o)
	case shape.KindScalar:
		return kernel.BinomCoefLn(nv, op.Scalar), nil
	}

	return math.NaN(), nil
}

func matrixInput(m matrix.Matrix, k any, o Options) (any, error) {
	out := m
	if o.copy {
		buf, err := allocate(o, m.Len())
		if err != nil {
			return nil, err
		}
		d, err := matrix.NewDenseFrom(buf, m.Rows(), m.Cols())
		if err != nil {
			return nil, binomErrorf("matrix n", err)
		}
		out = d
	}

	sentinels, err := eval.Matrix(out, m, k)
	if err != nil {
		return nil, binomErrorf("matrix n", err)
	}
	o.logEvaluated(shape.KindMatrix, m.Len(), sentinels)

	return out, nil
}

func bufferInput(n, k any, o Options) (any, error) {
	in, _ := dtype.Wrap(n)
	_, wrapped := n.(dtype.Buffer)

	out := in
	if o.copy {
		var err error
		if out, err = allocate(o, in.Len()); err != nil {
			return nil, err
		}
	}

	sentinels, err := eval.Buffer(out, in, k)
	if err != nil {
		return nil, binomErrorf("buffer n", err)
	}
	o.logEvaluated(shape.KindBuffer, in.Len(), sentinels)

	switch {
	case !o.copy:
		return n, nil
	case wrapped:
		return out, nil
	}

	return out.Slice(), nil
}

func sequenceInput(n, k any, o Options) (any, error) {
	seq, _ := shape.AsSequence(n)
	if o.set&setPath != 0 {
		return pathInput(n, seq, k, o)
	}

	var (
		out    eval.Writer
		result any
	)
	if o.copy {
		buf, err := allocate(o, seq.Len())
		if err != nil {
			return nil, err
		}
		out, result = buf, buf.Slice()
	} else {
		ms, ok := shape.AsMutable(seq)
		if !ok {
			return nil, binomErrorf(fmt.Sprintf("sequence n of type %T", n), ErrInPlaceUnsupported)
		}
		out, result = eval.InPlace(ms), n
	}

	var (
		sentinels int
		err       error
	)
	if o.accessor != nil {
		sentinels, err = eval.Accessor(out, seq, k, o.accessor)
	} else {
		sentinels, err = eval.Sequence(out, seq, k)
	}
	if err != nil {
		return nil, binomErrorf("sequence n", err)
	}
	o.logEvaluated(shape.KindSequence, seq.Len(), sentinels)

	return result, nil
}

// pathInput evaluates the elements of n in place at the configured path.
func pathInput(n any, seq shape.Sequence, k any, o Options) (any, error) {
	if ignored := o.set & (setCopy | setDType | setAccessor); ignored != 0 {
		o.logger.Warn("binomcoefln: options ignored with a key path",
			zap.String("path", o.path),
			zap.Bool("copy", ignored&setCopy != 0),
			zap.Bool("dtype", ignored&setDType != 0),
			zap.Bool("accessor", ignored&setAccessor != 0))
	}

	if shape.ElemsByValue(seq) {
		return nil, binomErrorf(fmt.Sprintf("path %s on elements of %T", o.path, n), ErrInPlaceUnsupported)
	}

	get, set := eval.Path(o.path, o.sep)
	sentinels, err := eval.FieldPath(seq, k, get, set)
	if err != nil {
		return nil, binomErrorf("path "+o.path, err)
	}
	o.logEvaluated(shape.KindSequence, seq.Len(), sentinels)

	return n, nil
}

// allocate returns a zero buffer of the output dtype.
func allocate(o Options, length int) (dtype.Buffer, error) {
	name := o.outputDType()
	ctor, ok := dtype.ConstructorFor(name)
	if !ok {
		return nil, binomErrorf(fmt.Sprintf("dtype %q", name), ErrUnknownDType)
	}

	return ctor(length), nil
}

func (o Options) logEvaluated(kind shape.Kind, length, sentinels int) {
	o.logger.Debug("binomcoefln: evaluated",
		zap.Stringer("kind", kind),
		zap.Int("len", length),
		zap.Int("sentinels", sentinels))
}
