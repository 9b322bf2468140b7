// SPDX-License-Identifier: MIT

package binomcoefln

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binomcoefln/dtype"
	"github.com/katalvlaran/binomcoefln/eval"
)

var (
	// ErrOptionNotApplicable indicates an option other than WithDType used
	// with a scalar n.
	ErrOptionNotApplicable = errors.New("binomcoefln: only the dtype option applies to a scalar n")

	// ErrUnknownDType indicates a dtype with no buffer representation.
	ErrUnknownDType = dtype.ErrUnknownDType

	// ErrInPlaceUnsupported indicates WithCopy(false) on a sequence whose
	// elements cannot hold a float64 result, or WithPath on a sequence of
	// struct or array values.
	ErrInPlaceUnsupported = errors.New("binomcoefln: sequence cannot be written in place")

	// ErrUnwritable indicates a key path whose value cannot hold the result.
	ErrUnwritable = eval.ErrUnwritable
)

// binomErrorf tags err with the dispatch branch that raised it.
func binomErrorf(tag string, err error) error {
	return fmt.Errorf("binomcoefln: %s: %w", tag, err)
}
