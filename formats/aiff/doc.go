// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding and
// encoding for audio.Clip values.
//
// This package uses github.com/go-audio/aiff to handle the container.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM 16-bit and 24-bit, big-endian
//   - Mono and multi-channel
//   - Any sample rate
//
// 8-bit AIFF stores signed samples, which have no equivalent among the
// audio buffer variants, so it is rejected with ErrUnsupportedBitDepth.
//
// # Usage
//
//	file, _ := os.Open("audio.aif")
//	clip, err := aiff.Codec{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	out, _ := os.Create("shifted.aiff")
//	err = aiff.Codec{}.Encode(out, clip)
package aiff
