// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// FromIntBuffer copies go-audio integer samples into the Buffer variant
// matching bitDepth. An empty IntBuffer always yields Empty.
func FromIntBuffer(bitDepth int, buf *goaudio.IntBuffer) (Buffer, error) {
	if buf == nil || len(buf.Data) == 0 {
		return Empty{}, nil
	}

	switch bitDepth {
	case 8:
		out := make(Eight, len(buf.Data))
		for i, v := range buf.Data {
			out[i] = uint8(v)
		}
		return out, nil
	case 16:
		out := make(Sixteen, len(buf.Data))
		for i, v := range buf.Data {
			out[i] = int16(v)
		}
		return out, nil
	case 24:
		out := make(TwentyFourIn32, len(buf.Data))
		for i, v := range buf.Data {
			out[i] = int32(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// ToIntBuffer converts the samples of c back into a go-audio buffer laid out
// with c.Format. Floating point samples are stored as their raw IEEE bits so
// that a 32-bit encoder writes them back unchanged.
func ToIntBuffer(c *Clip) (*goaudio.IntBuffer, error) {
	if c == nil {
		return nil, ErrNilClip
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(c.Format.Channels),
			SampleRate:  int(c.Format.SampleRate),
		},
		SourceBitDepth: int(c.Format.BitsPerSample),
	}

	switch s := c.Samples.(type) {
	case nil, Empty:
		buf.Data = []int{}
	case Eight:
		buf.Data = make([]int, len(s))
		for i, v := range s {
			buf.Data[i] = int(v)
		}
	case Sixteen:
		buf.Data = make([]int, len(s))
		for i, v := range s {
			buf.Data[i] = int(v)
		}
	case TwentyFourIn32:
		buf.Data = make([]int, len(s))
		for i, v := range s {
			buf.Data[i] = int(v)
		}
	case FloatingPoint:
		buf.Data = make([]int, len(s))
		for i, v := range s {
			buf.Data[i] = int(int32(math.Float32bits(v)))
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownBuffer, c.Samples)
	}

	return buf, nil
}
