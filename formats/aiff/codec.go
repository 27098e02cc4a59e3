package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/internal/memfile"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Codec reads and writes big-endian AIFF files.
type Codec struct{}

func (Codec) Extension() string { return "aiff" }

func (Codec) Decode(r io.Reader) (*audio.Clip, error) {
	// go-audio requires io.ReadSeeker
	rs, err := memfile.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	// 8-bit AIFF is signed and has no Eight counterpart
	if dec.BitDepth != 16 && dec.BitDepth != 24 {
		return nil, fmt.Errorf("%w: got %d-bit", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	samples, err := readAll(dec, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	return &audio.Clip{
		Format: audio.Format{
			AudioFormat:   audio.FormatPCM,
			Channels:      uint16(format.NumChannels),
			SampleRate:    uint32(format.SampleRate),
			BitsPerSample: uint16(dec.BitDepth),
		},
		Samples: samples,
	}, nil
}

func readAll(dec aiffReader, bitDepth int) (audio.Buffer, error) {
	chunk := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: dec.Format(),
	}
	all := &goaudio.IntBuffer{Format: chunk.Format, SourceBitDepth: bitDepth}

	for {
		n, err := dec.PCMBuffer(chunk)
		if n > 0 {
			all.Data = append(all.Data, chunk.Data[:n]...)
		}
		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
	}

	return audio.FromIntBuffer(bitDepth, all)
}

// Encode writes c as AIFF. Only 16 and 24-bit integer clips are accepted.
func (Codec) Encode(w io.Writer, c *audio.Clip) error {
	if c == nil {
		return audio.ErrNilClip
	}
	if c.Format.AudioFormat != audio.FormatPCM || (c.Format.BitsPerSample != 16 && c.Format.BitsPerSample != 24) {
		return fmt.Errorf("%w: got %s", ErrUnsupportedBitDepth, c.Format)
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

	enc := aiff.NewEncoder(ws, int(c.Format.SampleRate), int(c.Format.BitsPerSample), int(c.Format.Channels))
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff header: %w", err)
	}

	if staged != nil {
		if _, err := staged.WriteTo(w); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
