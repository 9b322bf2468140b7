// SPDX-License-Identifier: MIT

package binomcoefln

import (
	"github.com/katalvlaran/binomcoefln/deep"
	"github.com/katalvlaran/binomcoefln/eval"
	"go.uber.org/zap"
)

// ---------- Defaults ----------

const (
	// DefaultCopy allocates a fresh output instead of writing into n.
	DefaultCopy = true

	// DefaultSep separates key path segments.
	DefaultSep = deep.DefaultSep

	// DefaultDType is the output representation of matrices and buffers
	// when none is requested. Generic sequences default to []float64 as well.
	DefaultDType = "float64"
)

const (
	panicAccessorNil = "binomcoefln: WithAccessor: accessor must be non-nil"
	panicPathEmpty   = "binomcoefln: WithPath: path must be non-empty"
	panicSepEmpty    = "binomcoefln: WithSep: separator must be non-empty"
	panicLoggerNil   = "binomcoefln: WithLogger: logger must be non-nil"
)

// Accessor extracts the numeric value of a sequence element.
// slot is SlotN for elements of n and SlotK for object elements of k.
type Accessor = eval.AccessorFunc

// Slot identifies the operand an accessed element belongs to.
type Slot = eval.Slot

// Operand slots passed to an Accessor.
const (
	SlotN = eval.SlotN
	SlotK = eval.SlotK
)

// setFlags records which knobs were explicitly provided.
type setFlags uint8

const (
	setCopy setFlags = 1 << iota
	setAccessor
	setPath
	setSep
	setDType
)

// Option mutates Options. Constructors panic only on programmer error.
type Option func(*Options)

// Options is the resolved configuration of one call.
type Options struct {
	copy     bool
	accessor Accessor
	path     string
	sep      string
	dtype    string
	logger   *zap.Logger

	set setFlags
}

// WithCopy selects between a fresh output (true) and writing into n (false).
func WithCopy(enabled bool) Option {
	return func(o *Options) {
		o.copy = enabled
		o.set |= setCopy
	}
}

// WithAccessor reads sequence elements through fn. Panics on nil.
func WithAccessor(fn Accessor) Option {
	if fn == nil {
		panic(panicAccessorNil)
	}

	return func(o *Options) {
		o.accessor = fn
		o.set |= setAccessor
	}
}

// WithPath evaluates each sequence element at key path p, in place.
// Copy, dtype and accessor options are ignored when a path is set.
// Panics on an empty path.
func WithPath(p string) Option {
	if p == "" {
		panic(panicPathEmpty)
	}

	return func(o *Options) {
		o.path = p
		o.set |= setPath
	}
}

// WithSep sets the key path separator. Panics on an empty separator.
func WithSep(sep string) Option {
	if sep == "" {
		panic(panicSepEmpty)
	}

	return func(o *Options) {
		o.sep = sep
		o.set |= setSep
	}
}

// WithDType requests the output representation by name. Unknown names are
// reported by BinomCoefLn as ErrUnknownDType when an output is allocated.
func WithDType(name string) Option {
	return func(o *Options) {
		o.dtype = name
		o.set |= setDType
	}
}

// WithLogger routes dispatch diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		copy:   DefaultCopy,
		sep:    DefaultSep,
		logger: zap.NewNop(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// outputDType returns the requested dtype name or the default.
func (o Options) outputDType() string {
	if o.set&setDType == 0 {
		return DefaultDType
	}

	return o.dtype
}
