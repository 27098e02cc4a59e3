// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/internal/memfile"
)

// Encode writes c with its original format. The encoder patches the RIFF
// header on Close, so a writer that cannot seek is staged in memory first.
func (Codec) Encode(w io.Writer, c *audio.Clip) error {
	if c == nil {
		return audio.ErrNilClip
	}

	switch c.Format.AudioFormat {
	case audio.FormatPCM, audio.FormatIEEEFloat:
	default:
		return fmt.Errorf("%w: format tag %d", ErrUnsupportedWavFormat, c.Format.AudioFormat)
	}

	buf, err := audio.ToIntBuffer(c)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	ws, ok := w.(io.WriteSeeker)
	var staged *memfile.Writer
	if !ok {
		staged = &memfile.Writer{}
		ws = staged
	}

	enc := gowav.NewEncoder(ws,
		int(c.Format.SampleRate),
		int(c.Format.BitsPerSample),
		int(c.Format.Channels),
		int(c.Format.AudioFormat))

	// an empty Write still emits the header and an empty data chunk
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV header: %w", err)
	}

	if staged != nil {
		if _, err := staged.WriteTo(w); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
