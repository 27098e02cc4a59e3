// SPDX-License-Identifier: EPL-2.0

package shift

import "errors"

var (
	// ErrZeroShift means the amount was 0, which would not change anything.
	ErrZeroShift = errors.New("shift amount is zero")

	// ErrShiftTooLarge means |amount| reached the bit depth, which would
	// blank every sample.
	ErrShiftTooLarge = errors.New("shift amount too large for bit depth")

	// ErrUnshiftable means the buffer is empty or floating point.
	ErrUnshiftable = errors.New("buffer cannot be bit shifted")
)
