// SPDX-License-Identifier: MIT

package deep

// DefaultSep is the key path separator used when none is configured.
const DefaultSep = "."

const panicSepInvalid = "deep: WithSep: separator must be non-empty"

// Option configures path parsing.
type Option func(*config)

type config struct {
	sep string
}

// WithSep sets the key path separator. Panics on an empty separator.
func WithSep(sep string) Option {
	if sep == "" {
		panic(panicSepInvalid)
	}

	return func(c *config) { c.sep = sep }
}

func gatherOptions(opts ...Option) config {
	c := config{sep: DefaultSep}
	for _, set := range opts {
		set(&c)
	}

	return c
}
