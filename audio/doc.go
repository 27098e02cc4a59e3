// SPDX-License-Identifier: EPL-2.0

// Package audio holds decoded audio as typed sample buffers.
//
// This package contains the data model shared by the codecs and the shift
// engine:
//   - Buffer, a closed set of sample containers
//   - Format and Clip, the metadata that travels with the samples
//   - Codec and Registry, for picking a container format by extension
//
// # Sample Buffers
//
// Samples are kept exactly as stored, interleaved, in the narrowest Go type
// that holds them:
//
//	Empty           no samples
//	Eight           []uint8, unsigned 8-bit
//	Sixteen         []int16
//	TwentyFourIn32  []int32, 24-bit values, low 24 bits written out
//	FloatingPoint   []float32
//
// The variant is fixed once a buffer is created. A type switch selects the
// variant:
//
//	switch s := clip.Samples.(type) {
//	case audio.Sixteen:
//	    peak := slices.Max(s)
//	case audio.FloatingPoint:
//	    // leave alone
//	}
//
// BitDepth and IsShiftable report whether a buffer has an integer depth
// that can be bit shifted. Empty and FloatingPoint do not.
//
// # Format Registry
//
// The registry maps file extensions to codecs:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Codec{})
//	codec, err := registry.ForPath("take1.WAV")
//
// Unknown extensions fail with a *FormatError that matches ErrUnknownFormat.
//
// # go-audio Interop
//
// FromIntBuffer and ToIntBuffer convert between Buffer and the
// github.com/go-audio/audio IntBuffer used by the codec libraries.
package audio
