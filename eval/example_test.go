package eval_test

import (
	"fmt"

	"github.com/katalvlaran/binomcoefln/dtype"
	"github.com/katalvlaran/binomcoefln/eval"
	"github.com/katalvlaran/binomcoefln/shape"
)

func ExampleSequence() {
	n := shape.Values{10, 6, "?"}
	out, _ := dtype.New(dtype.Int32, n.Len())

	sentinels, err := eval.Sequence(out, n, 2)
	fmt.Println(out.Slice(), sentinels, err)
	// Output: [3 2 0] 1 <nil>
}
