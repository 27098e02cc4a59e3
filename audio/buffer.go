// SPDX-License-Identifier: EPL-2.0

package audio

// Kind is the tag of a sample Buffer.
type Kind int

const (
	KindEmpty Kind = iota
	KindEight
	KindSixteen
	KindTwentyFourIn32
	KindFloatingPoint
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindEight:
		return "8-bit unsigned"
	case KindSixteen:
		return "16-bit signed"
	case KindTwentyFourIn32:
		return "24-bit signed"
	case KindFloatingPoint:
		return "32-bit floating point"
	default:
		return "unknown"
	}
}

// Buffer holds decoded samples of a single width, interleaved exactly as
// they were stored. The set of implementations is closed: Empty, Eight,
// Sixteen, TwentyFourIn32 and FloatingPoint.
type Buffer interface {
	// Kind reports the variant tag. It never changes for a given buffer.
	Kind() Kind
	// Len is the number of samples (not frames).
	Len() int
	// BitDepth is the nominal width used for shifting. ok is false for
	// variants that cannot be shifted.
	BitDepth() (depth uint8, ok bool)

	sealed()
}

// Empty is a buffer without samples.
type Empty struct{}

// Eight holds unsigned 8-bit samples.
type Eight []uint8

// Sixteen holds signed 16-bit samples.
type Sixteen []int16

// TwentyFourIn32 holds signed 24-bit samples in 32-bit slots. Only the low
// 24 bits are written back out.
type TwentyFourIn32 []int32

// FloatingPoint holds IEEE 754 32-bit samples.
type FloatingPoint []float32

func (Empty) Kind() Kind          { return KindEmpty }
func (Eight) Kind() Kind          { return KindEight }
func (Sixteen) Kind() Kind        { return KindSixteen }
func (TwentyFourIn32) Kind() Kind { return KindTwentyFourIn32 }
func (FloatingPoint) Kind() Kind  { return KindFloatingPoint }

func (Empty) Len() int            { return 0 }
func (b Eight) Len() int          { return len(b) }
func (b Sixteen) Len() int        { return len(b) }
func (b TwentyFourIn32) Len() int { return len(b) }
func (b FloatingPoint) Len() int  { return len(b) }

func (Empty) BitDepth() (uint8, bool)          { return 0, false }
func (Eight) BitDepth() (uint8, bool)          { return 8, true }
func (Sixteen) BitDepth() (uint8, bool)        { return 16, true }
func (TwentyFourIn32) BitDepth() (uint8, bool) { return 24, true }
func (FloatingPoint) BitDepth() (uint8, bool)  { return 0, false }

func (Empty) sealed()          {}
func (Eight) sealed()          {}
func (Sixteen) sealed()        {}
func (TwentyFourIn32) sealed() {}
func (FloatingPoint) sealed()  {}

// BitDepth returns the shift width of b. A nil buffer behaves like Empty.
func BitDepth(b Buffer) (uint8, bool) {
	if b == nil {
		return 0, false
	}
	return b.BitDepth()
}

// IsShiftable reports whether b is one of the integer variants.
func IsShiftable(b Buffer) bool {
	_, ok := BitDepth(b)
	return ok
}
