// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrUnknownBuffer       = errors.New("unknown sample buffer")
	ErrNilClip             = errors.New("nil clip")
	ErrUnknownFormat       = errors.New("unknown audio format")
)
