// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Codec reads and writes one uncompressed container format.
type Codec interface {
	// Decode reads a whole file into a Clip.
	Decode(r io.Reader) (*Clip, error)
	// Encode writes c using c.Format verbatim.
	Encode(w io.Writer, c *Clip) error
	// Extension is the canonical file extension without the dot.
	Extension() string
}

// Registry for codecs by file extension (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

// Register maps format to c. format is case-insensitive and may carry a
// leading dot.
func (r *Registry) Register(format string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeExt(format)] = c
}

func (r *Registry) Get(format string) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[normalizeExt(format)]
	return c, ok
}

// ForPath picks the codec registered for the extension of path.
func (r *Registry) ForPath(path string) (Codec, error) {
	ext := filepath.Ext(path)
	if c, ok := r.Get(ext); ok {
		return c, nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return nil, &FormatError{Ext: ext, Known: r.Formats()}
}

// Formats lists the registered extensions in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FormatError is returned by ForPath for unregistered extensions. It matches
// ErrUnknownFormat with errors.Is.
type FormatError struct {
	Ext   string
	Known []string
}

func (e *FormatError) Error() string {
	return "unknown audio format " + e.Ext + ", expected one of: " + strings.Join(e.Known, ", ")
}

func (e *FormatError) Is(target error) bool { return target == ErrUnknownFormat }

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
