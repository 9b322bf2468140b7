// SPDX-License-Identifier: MIT

package binomcoefln_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/binomcoefln"
	"github.com/katalvlaran/binomcoefln/deep"
	"github.com/katalvlaran/binomcoefln/eval"
	"github.com/katalvlaran/binomcoefln/matrix"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const pairRecords = `
- x: [9, 0.5]
- x: [9, 1]
- x: [9, 1.5]
- x: [9, 2]
`

func decode(t *testing.T, doc string) []any {
	t.Helper()
	var recs []any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &recs))

	return recs
}

// column reads path from every record; unreadable values become NaN.
func column(recs []any, path string, opts ...deep.Option) []float64 {
	get := deep.Getter(path, opts...)
	out := make([]float64, len(recs))
	for i, r := range recs {
		v, ok := get(r).(float64)
		if !ok {
			v = math.NaN()
		}
		out[i] = v
	}

	return out
}

func TestBinomCoefLn_PathScalarK(t *testing.T) {
	t.Parallel()
	want := []float64{-0.693147180559945, 0, 0.405465108108164, 0.693147180559945}

	data := decode(t, pairRecords)
	res, err := binomcoefln.BinomCoefLn(data, 1, binomcoefln.WithPath("x.1"))
	require.NoError(t, err)
	require.Same(t, &data[0], &res.([]any)[0])
	requireClose(t, want, column(data, "x.1"))
	// Untouched siblings.
	require.Equal(t, 9, data[0].(map[string]any)["x"].([]any)[0])

	data = decode(t, pairRecords)
	_, err = binomcoefln.BinomCoefLn(data, 1,
		binomcoefln.WithPath("x/1"), binomcoefln.WithSep("/"))
	require.NoError(t, err)
	requireClose(t, want, column(data, "x/1", deep.WithSep("/")))
}

func TestBinomCoefLn_PathSequenceK(t *testing.T) {
	t.Parallel()
	y := []int{0, 1, 2, 3}

	data := decode(t, "[{x: 0}, {x: 1}, {x: 2}, {x: 3}]")
	_, err := binomcoefln.BinomCoefLn(data, y, binomcoefln.WithPath("x"))
	require.NoError(t, err)
	requireClose(t, []float64{0, 0, 0, 0}, column(data, "x"))

	data = decode(t, "[{x: [9, 0]}, {x: [9, 1]}, {x: [9, 2]}, {x: [9, 3]}]")
	_, err = binomcoefln.BinomCoefLn(data, y,
		binomcoefln.WithPath("x/1"), binomcoefln.WithSep("/"))
	require.NoError(t, err)
	requireClose(t, []float64{0, 0, 0, 0}, column(data, "x/1", deep.WithSep("/")))
}

func TestBinomCoefLn_PathSentinels(t *testing.T) {
	t.Parallel()

	data := decode(t, "[{x: [9, null]}, {x: [9, 1]}, {x: [9, true]}, {x: [9, 2]}]")
	_, err := binomcoefln.BinomCoefLn(data, 1, binomcoefln.WithPath("x.1"))
	require.NoError(t, err)
	requireClose(t, []float64{nan, 0, nan, math.Ln2}, column(data, "x.1"))

	data = decode(t, pairRecords)
	_, err = binomcoefln.BinomCoefLn(data, nil, binomcoefln.WithPath("x.1"))
	require.NoError(t, err)
	requireClose(t, []float64{nan, nan, nan, nan}, column(data, "x.1"))
}

func TestBinomCoefLn_PathErrors(t *testing.T) {
	t.Parallel()
	k, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	data := decode(t, pairRecords)
	_, err = binomcoefln.BinomCoefLn(data, k, binomcoefln.WithPath("x.1"))
	require.ErrorIs(t, err, eval.ErrMatrixOperand)
	_, err = binomcoefln.BinomCoefLn(data, []float64{1, 2}, binomcoefln.WithPath("x.1"))
	require.ErrorIs(t, err, eval.ErrLengthMismatch)
	// Rejected before the first write.
	get := deep.Getter("x.1")
	require.Equal(t, 0.5, get(data[0]))
	require.Equal(t, 1, get(data[1]))
}

func TestBinomCoefLn_PathStructs(t *testing.T) {
	t.Parallel()
	type point struct {
		N float64 `json:"n"`
	}
	data := []*point{{4}, {5}, {6}}

	res, err := binomcoefln.BinomCoefLn(data, 2, binomcoefln.WithPath("n"))
	require.NoError(t, err)
	require.Same(t, data[0], res.([]*point)[0])
	requireClose(t, []float64{math.Log(6), math.Log(10), math.Log(15)},
		[]float64{data[0].N, data[1].N, data[2].N})
}

func TestBinomCoefLn_PathIntegerTargets(t *testing.T) {
	t.Parallel()
	type count struct{ X int }

	// ln C(5,2) = ln 10 ≈ 2.30 and ln C(4,2) = ln 6 ≈ 1.79 truncate on store.
	recs := []*count{{5}, {4}}
	_, err := binomcoefln.BinomCoefLn(recs, 2, binomcoefln.WithPath("X"))
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, []int{recs[0].X, recs[1].X})

	maps := []map[string]int{{"x": 5}, {"x": 4}}
	_, err = binomcoefln.BinomCoefLn(maps, 2, binomcoefln.WithPath("x"))
	require.NoError(t, err)
	require.Equal(t, []map[string]int{{"x": 2}, {"x": 1}}, maps)
}

func TestBinomCoefLn_PathUnwritable(t *testing.T) {
	t.Parallel()
	type rec struct {
		X  float64
		Ok bool
	}

	values := []rec{{X: 5}, {X: 4}}
	_, err := binomcoefln.BinomCoefLn(values, 2, binomcoefln.WithPath("X"))
	require.ErrorIs(t, err, binomcoefln.ErrInPlaceUnsupported)
	require.Equal(t, []rec{{X: 5}, {X: 4}}, values)

	_, err = binomcoefln.BinomCoefLn([2]rec{{X: 5}, {X: 4}}, 2, binomcoefln.WithPath("X"))
	require.ErrorIs(t, err, binomcoefln.ErrInPlaceUnsupported)

	// A bool leaf cannot hold the sentinel its own value produces.
	_, err = binomcoefln.BinomCoefLn([]*rec{{Ok: true}}, 2, binomcoefln.WithPath("Ok"))
	require.ErrorIs(t, err, binomcoefln.ErrUnwritable)
}
