// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/wavshift/audio"
)

// NewClip builds a clip of frames frames whose samples come from waveform,
// a function returning values in [-1, 1]. bitDepth selects the buffer
// variant: 8, 16, 24 for PCM and 32 for float.
func NewClip(bitDepth, sampleRate, channels, frames int, waveform func(sample int, channel int) float64) *audio.Clip {
	n := frames * channels
	format := audio.Format{
		AudioFormat:   audio.FormatPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: uint16(bitDepth),
	}

	at := func(i int) float64 {
		return waveform(i/channels, i%channels)
	}

	var samples audio.Buffer
	switch bitDepth {
	case 8:
		b := make(audio.Eight, n)
		for i := range b {
			b[i] = uint8(128 + math.Round(at(i)*127))
		}
		samples = b
	case 16:
		b := make(audio.Sixteen, n)
		for i := range b {
			b[i] = int16(math.Round(at(i) * 32767))
		}
		samples = b
	case 24:
		b := make(audio.TwentyFourIn32, n)
		for i := range b {
			b[i] = int32(math.Round(at(i) * 8388607))
		}
		samples = b
	case 32:
		format.AudioFormat = audio.FormatIEEEFloat
		b := make(audio.FloatingPoint, n)
		for i := range b {
			b[i] = float32(at(i))
		}
		samples = b
	default:
		panic("audiotest: unsupported bit depth")
	}

	if n == 0 {
		samples = audio.Empty{}
	}

	return &audio.Clip{Format: format, Samples: samples}
}

// NewSilentClip creates a clip that holds silence.
func NewSilentClip(bitDepth, sampleRate, channels, frames int) *audio.Clip {
	return NewClip(bitDepth, sampleRate, channels, frames, func(sample int, channel int) float64 {
		return 0.0
	})
}

// NewSineClip creates a clip with a sine wave at frequency Hz, scaled by
// amplitude.
func NewSineClip(bitDepth, sampleRate, channels, frames int, frequency, amplitude float64) *audio.Clip {
	return NewClip(bitDepth, sampleRate, channels, frames, func(sample int, channel int) float64 {
		t := float64(sample) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	})
}

// NewConstantClip creates a clip with a constant value.
func NewConstantClip(bitDepth, sampleRate, channels, frames int, value float64) *audio.Clip {
	return NewClip(bitDepth, sampleRate, channels, frames, func(sample int, channel int) float64 {
		return value
	})
}

// Clone deep-copies c so a test can compare before and after an in-place
// shift.
func Clone(c *audio.Clip) *audio.Clip {
	out := &audio.Clip{Format: c.Format}
	switch s := c.Samples.(type) {
	case audio.Eight:
		out.Samples = append(audio.Eight(nil), s...)
	case audio.Sixteen:
		out.Samples = append(audio.Sixteen(nil), s...)
	case audio.TwentyFourIn32:
		out.Samples = append(audio.TwentyFourIn32(nil), s...)
	case audio.FloatingPoint:
		out.Samples = append(audio.FloatingPoint(nil), s...)
	default:
		out.Samples = c.Samples
	}
	return out
}
