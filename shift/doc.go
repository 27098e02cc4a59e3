// SPDX-License-Identifier: EPL-2.0

// Package shift moves every sample of an audio.Buffer by a fixed number of
// bits.
//
// # Direction
//
// The sign of the amount selects the direction for the whole module:
//
//	amount < 0  shift right, toward the least significant bit (quieter)
//	amount > 0  shift left, toward the most significant bit (louder)
//
// The amount must satisfy 0 < |amount| < depth, where depth is 8, 16 or 24
// depending on the buffer variant. Range reports the inclusive bounds.
//
// # Semantics
//
// Each container uses Go's native shift operators: 8-bit samples are
// unsigned and shift logically, 16-bit samples and the 24-bit samples kept
// in int32 slots shift arithmetically (sign-extending to the right). There
// is no clamping, so a left shift wraps inside the container exactly like
// the operator does.
//
// A right shift discards low bits for good. Shifting by +k and then -k only
// restores a sample when its top k bits were zero to begin with.
//
//	buf := audio.Sixteen{0x00FF, 0x7FFF}
//	if err := shift.Apply(buf, -4); err != nil {
//	    // ErrZeroShift, ErrShiftTooLarge or ErrUnshiftable
//	}
//	// buf is now {0x000F, 0x07FF}
//
// Validation always happens before the first sample is touched, so a
// failed Apply leaves the buffer as it was.
package shift
