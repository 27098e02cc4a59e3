// SPDX-License-Identifier: EPL-2.0

// Package wavshift bit-shifts the samples of uncompressed audio files.
//
// Every sample of the file is shifted by the same number of bits, to the
// right (quieter, amount < 0) or to the left (louder, amount > 0). The
// format metadata is written back unchanged. The transform is destructive:
// low bits dropped by a right shift are gone for good, and a left shift
// wraps inside the sample container without clamping.
//
// # Supported Formats
//
//   - WAV, PCM 8-bit (unsigned), 16-bit and 24-bit via formats/wav
//   - AIFF, PCM 16-bit and 24-bit via formats/aiff
//
// 32-bit float WAV files decode fine but cannot be shifted; the shift
// reports shift.ErrUnshiftable and nothing is written. The same holds for
// files without samples.
//
// # Quick Start
//
//	clip, err := wavshift.ShiftFile("voice.wav", "voice-quiet.wav", -3)
//	switch {
//	case errors.Is(err, shift.ErrUnshiftable):
//	    fmt.Println("cannot shift", clip.Samples.Kind(), "samples")
//	case errors.Is(err, shift.ErrShiftTooLarge), errors.Is(err, shift.ErrZeroShift):
//	    // ask for another amount
//	}
//
// # Building Blocks
//
// The pieces can also be used on their own:
//
//	clip, _ := wav.Codec{}.Decode(file)   // decode
//	_ = shift.Apply(clip.Samples, 4)      // shift in place
//	_ = wav.Codec{}.Encode(out, clip)     // encode with the same format
//
// The shift amount must satisfy 0 < |amount| < depth, where depth is 8, 16
// or 24. shift.Range reports the bounds for a given depth.
//
// The command line front end lives in cmd/wavshift.
package wavshift
