// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Audio format codes as stored in a WAV fmt chunk.
const (
	FormatPCM       uint16 = 1
	FormatIEEEFloat uint16 = 3
)

// Format is the metadata of a decoded file. It is carried through a shift
// untouched and handed back to the encoder as-is.
type Format struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
}

func (f Format) String() string {
	kind := "PCM"
	if f.AudioFormat == FormatIEEEFloat {
		kind = "float"
	}
	return fmt.Sprintf("%s %d-bit, %d Hz, %d channel(s)", kind, f.BitsPerSample, f.SampleRate, f.Channels)
}

// Clip pairs a Format with the samples decoded under it.
type Clip struct {
	Format  Format
	Samples Buffer
}

// Frames returns the number of sample frames in the clip.
func (c *Clip) Frames() int {
	if c == nil || c.Samples == nil || c.Format.Channels == 0 {
		return 0
	}
	return c.Samples.Len() / int(c.Format.Channels)
}
