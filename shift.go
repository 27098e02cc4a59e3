package wavshift

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/formats/aiff"
	"github.com/ik5/wavshift/formats/wav"
	"github.com/ik5/wavshift/shift"
)

var (
	ErrOutputExists = errors.New("output file already exists")
)

// DefaultRegistry returns a registry with every supported codec: WAV under
// "wav" and AIFF under "aiff" and "aif".
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Codec{})
	reg.Register("aiff", aiff.Codec{})
	reg.Register("aif", aiff.Codec{})
	return reg
}

// Shift is a high-level convenience function that decodes a clip from r,
// shifts every sample by amount and encodes the result to w with the same
// format.
//
// The pipeline is:
//  1. Decode the whole input with codec
//  2. Validate amount against the decoded bit depth and shift in place
//  3. Encode the shifted clip with the original format
//
// Nothing is written to w when decoding or shifting fails. The returned
// clip is the shifted clip on success, and the decoded clip when the shift
// was refused (for example shift.ErrUnshiftable on float input), so callers
// can report what they found.
//
// Example:
//
//	in, _ := os.Open("in.wav")
//	out, _ := os.Create("out.wav")
//	clip, err := wavshift.Shift(wav.Codec{}, in, out, -2)
//	if errors.Is(err, shift.ErrUnshiftable) {
//	    fmt.Println("nothing to shift in", clip.Samples.Kind())
//	}
func Shift(codec audio.Codec, r io.Reader, w io.Writer, amount int) (*audio.Clip, error) {
	clip, err := codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	if err := shift.Apply(clip.Samples, amount); err != nil {
		return clip, err
	}

	if err := codec.Encode(w, clip); err != nil {
		return clip, fmt.Errorf("encoding: %w", err)
	}

	return clip, nil
}

// ShiftFile shifts the file at inPath and writes the result to outPath.
// The codec is chosen by the extension of inPath, and the output is written
// in the same format. outPath must not exist yet; the output file is only
// created once the shift succeeded.
func ShiftFile(inPath, outPath string, amount int) (*audio.Clip, error) {
	codec, err := DefaultRegistry().ForPath(inPath)
	if err != nil {
		return nil, err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer in.Close()

	clip, err := codec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", inPath, err)
	}

	if err := shift.Apply(clip.Samples, amount); err != nil {
		return clip, err
	}

	return clip, WriteNew(codec, outPath, clip)
}

// WriteNew encodes clip into a file that must not exist yet. A partially
// written file is removed on failure.
func WriteNew(codec audio.Codec, path string, clip *audio.Clip) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return fmt.Errorf("%w", err)
	}

	if err := codec.Encode(out, clip); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w", err)
	}

	return nil
}
