// SPDX-License-Identifier: EPL-2.0

package wavshift

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/wavshift/audio"
	"github.com/ik5/wavshift/formats/aiff"
	"github.com/ik5/wavshift/formats/wav"
	"github.com/ik5/wavshift/internal/audiotest"
	"github.com/ik5/wavshift/shift"
)

func writeClip(t *testing.T, codec audio.Codec, path string, clip *audio.Clip) {
	t.Helper()

	if err := WriteNew(codec, path, clip); err != nil {
		t.Fatalf("WriteNew(%s) error = %v", path, err)
	}
}

func readClip(t *testing.T, codec audio.Codec, path string) *audio.Clip {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	clip, err := codec.Decode(f)
	if err != nil {
		t.Fatalf("Decode(%s) error = %v", path, err)
	}
	return clip
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	if got, want := reg.Formats(), []string{"aif", "aiff", "wav"}; !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
	if c, _ := reg.Get("wav"); c != (wav.Codec{}) {
		t.Errorf("Get(wav) = %T, want wav.Codec", c)
	}
	if c, _ := reg.Get("aif"); c != (aiff.Codec{}) {
		t.Errorf("Get(aif) = %T, want aiff.Codec", c)
	}
}

func TestShift_Stream(t *testing.T) {
	t.Parallel()

	src := &audio.Clip{
		Format:  audio.Format{AudioFormat: audio.FormatPCM, Channels: 2, SampleRate: 8000, BitsPerSample: 16},
		Samples: audio.Sixteen{0x00FF, 0x7FFF, -256, 16},
	}

	var in bytes.Buffer
	if err := (wav.Codec{}).Encode(&in, src); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var out bytes.Buffer
	clip, err := Shift(wav.Codec{}, bytes.NewReader(in.Bytes()), &out, -4)
	if err != nil {
		t.Fatalf("Shift() error = %v", err)
	}
	if want := (audio.Sixteen{0x000F, 0x07FF, -16, 1}); !slices.Equal(clip.Samples.(audio.Sixteen), want) {
		t.Errorf("Shift() samples = %v, want %v", clip.Samples, want)
	}

	got, err := wav.Codec{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Format != src.Format {
		t.Errorf("format changed: %+v, want %+v", got.Format, src.Format)
	}
	if !slices.Equal(got.Samples.(audio.Sixteen), clip.Samples.(audio.Sixteen)) {
		t.Errorf("written samples = %v, want %v", got.Samples, clip.Samples)
	}
}

func TestShift_NothingWrittenOnError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		clip   *audio.Clip
		amount int
		want   error
	}{
		{"zero", audiotest.NewConstantClip(16, 8000, 1, 10, 0.5), 0, shift.ErrZeroShift},
		{"too large", audiotest.NewConstantClip(8, 8000, 1, 10, 0.5), 8, shift.ErrShiftTooLarge},
		{"float", audiotest.NewConstantClip(32, 8000, 1, 10, 0.5), 1, shift.ErrUnshiftable},
		{"empty", audiotest.NewSilentClip(16, 8000, 1, 0), -1, shift.ErrUnshiftable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var in bytes.Buffer
			if err := (wav.Codec{}).Encode(&in, tt.clip); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			var out bytes.Buffer
			clip, err := Shift(wav.Codec{}, &in, &out, tt.amount)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Shift() error = %v, want %v", err, tt.want)
			}
			if clip == nil {
				t.Fatal("Shift() clip = nil, want decoded clip")
			}
			if out.Len() != 0 {
				t.Errorf("Shift() wrote %d bytes on failure", out.Len())
			}
		})
	}
}

func TestShift_DecodeError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	clip, err := Shift(wav.Codec{}, bytes.NewReader([]byte("junk")), &out, 1)
	if err == nil {
		t.Fatal("Shift() error = nil, want decode error")
	}
	if clip != nil {
		t.Errorf("Shift() clip = %v, want nil", clip)
	}
}

func TestShiftFile_WAV24(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.wav")
	outPath := filepath.Join(dir, "out.wav")

	src := audiotest.NewSineClip(24, 48000, 2, 256, 1000, 0.5)
	writeClip(t, wav.Codec{}, inPath, src)
	orig := audiotest.Clone(src)

	if _, err := ShiftFile(inPath, outPath, -3); err != nil {
		t.Fatalf("ShiftFile() error = %v", err)
	}

	got := readClip(t, wav.Codec{}, outPath)
	if got.Format != orig.Format {
		t.Errorf("format = %+v, want %+v", got.Format, orig.Format)
	}

	want := orig.Samples.(audio.TwentyFourIn32)
	have := got.Samples.(audio.TwentyFourIn32)
	for i := range want {
		if have[i] != want[i]>>3 {
			t.Fatalf("sample %d = %d, want %d", i, have[i], want[i]>>3)
		}
	}
}

func TestShiftFile_AIFF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.aif")
	outPath := filepath.Join(dir, "out.aif")

	src := audiotest.NewConstantClip(16, 44100, 1, 32, 0.01)
	writeClip(t, aiff.Codec{}, inPath, src)

	if _, err := ShiftFile(inPath, outPath, 2); err != nil {
		t.Fatalf("ShiftFile() error = %v", err)
	}

	got := readClip(t, aiff.Codec{}, outPath)
	want := src.Samples.(audio.Sixteen)[0] << 2
	for i, v := range got.Samples.(audio.Sixteen) {
		if v != want {
			t.Fatalf("sample %d = %d, want %d", i, v, want)
		}
	}
}

func TestShiftFile_OutputExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.wav")
	outPath := filepath.Join(dir, "out.wav")

	writeClip(t, wav.Codec{}, inPath, audiotest.NewConstantClip(8, 8000, 1, 8, 0.1))
	if err := os.WriteFile(outPath, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ShiftFile(inPath, outPath, 1)
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("ShiftFile() error = %v, want ErrOutputExists", err)
	}

	data, _ := os.ReadFile(outPath)
	if string(data) != "keep me" {
		t.Error("ShiftFile() overwrote an existing file")
	}
}

func TestShiftFile_UnshiftableWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "float.wav")
	outPath := filepath.Join(dir, "out.wav")

	writeClip(t, wav.Codec{}, inPath, audiotest.NewSineClip(32, 8000, 1, 64, 100, 0.5))

	clip, err := ShiftFile(inPath, outPath, 1)
	if !errors.Is(err, shift.ErrUnshiftable) {
		t.Fatalf("ShiftFile() error = %v, want ErrUnshiftable", err)
	}
	if clip.Samples.Kind() != audio.KindFloatingPoint {
		t.Errorf("clip kind = %v, want float", clip.Samples.Kind())
	}
	if _, err := os.Stat(outPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output exists after refused shift: %v", err)
	}
}

func TestShiftFile_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := ShiftFile("song.mp3", filepath.Join(t.TempDir(), "out.mp3"), 1)
	if !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("ShiftFile() error = %v, want ErrUnknownFormat", err)
	}
}

func TestShiftFile_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := ShiftFile(filepath.Join(dir, "nope.wav"), filepath.Join(dir, "out.wav"), 1)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ShiftFile() error = %v, want ErrNotExist", err)
	}
}

func TestWriteNew_RemovesPartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.aiff")
	clip := audiotest.NewSilentClip(8, 8000, 1, 4)

	if err := WriteNew(aiff.Codec{}, path, clip); !errors.Is(err, aiff.ErrUnsupportedBitDepth) {
		t.Fatalf("WriteNew() error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial file left behind: %v", err)
	}
}
