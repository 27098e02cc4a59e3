// SPDX-License-Identifier: EPL-2.0

package shift

import (
	"fmt"

	"github.com/ik5/wavshift/audio"
)

// Range returns the inclusive bounds for amounts on bitDepth samples. 0 lies
// inside the bounds but is still rejected by Validate.
func Range(bitDepth uint8) (lo, hi int) {
	if bitDepth == 0 {
		return 0, 0
	}
	hi = int(bitDepth) - 1
	return -hi, hi
}

// Validate checks amount against bitDepth without touching any samples.
func Validate(bitDepth uint8, amount int) error {
	if amount == 0 {
		return ErrZeroShift
	}

	lo, hi := Range(bitDepth)
	if amount < lo || amount > hi {
		return fmt.Errorf("%w: %d bits on %d-bit samples, allowed %d..%d", ErrShiftTooLarge, amount, bitDepth, lo, hi)
	}

	return nil
}

// Apply shifts every sample of buf in place. Negative amounts shift right,
// positive amounts shift left. The variant and length of buf are unchanged.
func Apply(buf audio.Buffer, amount int) error {
	depth, ok := audio.BitDepth(buf)
	if !ok {
		kind := audio.KindEmpty
		if buf != nil {
			kind = buf.Kind()
		}
		return fmt.Errorf("%w: %s samples", ErrUnshiftable, kind)
	}

	if err := Validate(depth, amount); err != nil {
		return err
	}

	switch b := buf.(type) {
	case audio.Eight:
		shiftAll(b, amount)
	case audio.Sixteen:
		shiftAll(b, amount)
	case audio.TwentyFourIn32:
		shiftAll(b, amount)
	default:
		return fmt.Errorf("%w: %T", ErrUnshiftable, buf)
	}

	return nil
}

type sample interface {
	~uint8 | ~int16 | ~int32
}

// shiftAll applies the same shift to every element of s. amount must already
// be validated.
func shiftAll[S ~[]E, E sample](s S, amount int) {
	if amount < 0 {
		n := uint(-amount)
		for i := range s {
			s[i] >>= n
		}
		return
	}

	n := uint(amount)
	for i := range s {
		s[i] <<= n
	}
}
