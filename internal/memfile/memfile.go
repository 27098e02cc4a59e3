// SPDX-License-Identifier: EPL-2.0

// Package memfile provides in-memory seekable readers and writers for the
// go-audio encoders and decoders, which need io.ReadSeeker / io.WriteSeeker.
package memfile

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativePosition = errors.New("negative position")

// Reader implements io.ReadSeeker for in-memory data
type Reader struct {
	data   []byte
	offset int64
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadSeeker returns r unchanged when it can already seek, and otherwise
// reads it fully into memory.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return NewReader(data), nil
}

func (rs *Reader) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *Reader) Seek(offset int64, whence int) (int64, error) {
	newOffset, err := seek(rs.offset, int64(len(rs.data)), offset, whence)
	if err != nil {
		return 0, err
	}
	rs.offset = newOffset
	return newOffset, nil
}

// Writer implements io.WriteSeeker on a growable byte slice. Seeking past
// the end and writing fills the gap with zeros.
type Writer struct {
	data   []byte
	offset int64
}

func (w *Writer) Write(p []byte) (int, error) {
	end := w.offset + int64(len(p))
	if end > int64(len(w.data)) {
		if end > int64(cap(w.data)) {
			grown := make([]byte, end, max(end, int64(2*cap(w.data))))
			copy(grown, w.data)
			w.data = grown
		} else {
			w.data = w.data[:end]
		}
	}
	copy(w.data[w.offset:end], p)
	w.offset = end
	return len(p), nil
}

func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	newOffset, err := seek(w.offset, int64(len(w.data)), offset, whence)
	if err != nil {
		return 0, err
	}
	w.offset = newOffset
	return newOffset, nil
}

// Bytes returns everything written so far.
func (w *Writer) Bytes() []byte { return w.data }

// WriteTo copies the written bytes to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.data)
	return int64(n), err
}

func seek(cur, size, offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = cur + offset
	case io.SeekEnd:
		newOffset = size + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, ErrNegativePosition
	}
	return newOffset, nil
}
