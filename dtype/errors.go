// SPDX-License-Identifier: MIT

package dtype

import "errors"

var (
	// ErrUnknownDType is returned when a dtype name has no corresponding
	// buffer constructor.
	ErrUnknownDType = errors.New("dtype: unknown data type")

	// ErrBadLength is returned when a buffer of negative length is requested.
	ErrBadLength = errors.New("dtype: negative buffer length")
)
