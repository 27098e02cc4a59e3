package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("only 8, 16 and 24-bit PCM or 32-bit float supported")
	ErrUnsupportedWavFormat = errors.New("unsupported WAV audio format")
)
