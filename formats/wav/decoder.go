package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/internal/memfile"
)

const (
	readChunk = 4096

	// formatExtensible is WAVE_FORMAT_EXTENSIBLE; its integer sub formats are
	// read and written back as plain PCM.
	formatExtensible uint16 = 0xFFFE
)

// wavReader is an interface for wav.Decoder to allow testing
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Codec reads and writes RIFF/WAVE files.
type Codec struct{}

func (Codec) Extension() string { return "wav" }

// Decode reads the whole file. PCM data becomes Eight, Sixteen or
// TwentyFourIn32; 32-bit IEEE float becomes FloatingPoint; a file without
// samples becomes Empty.
func (Codec) Decode(r io.Reader) (*audio.Clip, error) {
	rs, err := memfile.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	tag := uint16(dec.WavAudioFormat)
	if tag == formatExtensible && dec.BitDepth <= 24 {
		tag = audio.FormatPCM
	}

	clip := &audio.Clip{
		Format: audio.Format{
			AudioFormat:   tag,
			Channels:      uint16(dec.NumChans),
			SampleRate:    uint32(dec.SampleRate),
			BitsPerSample: uint16(dec.BitDepth),
		},
	}

	switch tag {
	case audio.FormatPCM:
		switch dec.BitDepth {
		case 8, 16, 24:
		default:
			return nil, fmt.Errorf("%w: got %d-bit", ErrUnsupportedBitDepth, dec.BitDepth)
		}
		clip.Samples, err = readPCM(dec, int(dec.BitDepth))
	case audio.FormatIEEEFloat:
		if dec.BitDepth != 32 {
			return nil, fmt.Errorf("%w: got %d-bit float", ErrUnsupportedBitDepth, dec.BitDepth)
		}
		if err := dec.FwdToPCM(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}
		if dec.PCMChunk == nil {
			return nil, ErrUnsupportedWavLayout
		}
		clip.Samples, err = readFloat32(dec.PCMChunk.R, dec.PCMChunk.Size)
	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedWavFormat, tag)
	}
	if err != nil {
		return nil, err
	}

	return clip, nil
}

// readPCM drains dec chunk by chunk into a single Buffer.
func readPCM(dec wavReader, bitDepth int) (audio.Buffer, error) {
	chunk := &goaudio.IntBuffer{
		Data:   make([]int, readChunk),
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
			return nil, fmt.Errorf("reading PCM data: %w", err)
		}
	}

	return audio.FromIntBuffer(bitDepth, all)
}

// readFloat32 decodes little-endian IEEE 754 samples. A trailing partial
// sample is ignored.
func readFloat32(r io.Reader, size int) (audio.Buffer, error) {
	if size <= 0 {
		return audio.Empty{}, nil
	}

	raw := make([]byte, size)
	n, err := io.ReadFull(r, raw)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("reading float data: %w", err)
	}

	count := n / 4
	if count == 0 {
		return audio.Empty{}, nil
	}

	out := make(audio.FloatingPoint, count)
	for i := range count {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out, nil
}
