package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/binomcoefln/dtype"
	"github.com/katalvlaran/binomcoefln/matrix"
)

// ExampleNewDenseFrom wraps an existing int8 slice without copying.
func ExampleNewDenseFrom() {
	raw := []int8{1, 2, 3, 4, 5, 6}
	m, _ := matrix.NewDenseFrom(raw, 2, 3)

	_ = m.Set(1, 2, 300.7) // int8 store: truncate, then wrap
	fmt.Print(m)
	fmt.Println(m.DType(), raw[5])
	// Output:
	// [1, 2, 3]
	// [4, 5, 44]
	// int8 44
}

// ExampleZerosLike allocates an output with the same shape and a new dtype.
func ExampleZerosLike() {
	n, _ := matrix.NewFilled(2, 2, 7.5)
	out, _ := matrix.ZerosLike(n, dtype.Uint8Clamped)
	for i := 0; i < n.Len(); i++ {
		out.Data().Set(i, n.Data().At(i))
	}
	fmt.Print(out)
	// Output:
	// [8, 8]
	// [8, 8]
}
