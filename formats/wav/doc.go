// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files as audio.Clip values.
//
// It uses the github.com/go-audio library for the container handling.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16-bit and 24-bit, any channel count
//   - IEEE float 32-bit, decoded into audio.FloatingPoint
//   - WAVE_FORMAT_EXTENSIBLE with integer samples, written back as PCM
//
// Anything else fails with ErrUnsupportedBitDepth or ErrUnsupportedWavFormat.
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	clip, err := wav.Codec{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(clip.Format, clip.Samples.Kind())
//
// A file whose data chunk holds no samples decodes to audio.Empty.
//
// # Encoding
//
//	out, _ := os.Create("out.wav")
//	err := wav.Codec{}.Encode(out, clip)
//
// The encoder rewrites the RIFF sizes once all samples are written, which
// needs an io.WriteSeeker. Plain writers are staged in memory first.
//
// # Error Handling
//
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedBitDepth: PCM depth other than 8/16/24, or non 32-bit float
//   - ErrUnsupportedWavFormat: compressed or unknown format tags
//   - ErrUnsupportedWavLayout: no readable data chunk
package wav
