// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"io"
	"slices"
	"strings"
	"sync"
)

// Encoder writes a canonical buffer into a container.
type Encoder interface {
	Encode(ctx context.Context, w io.WriteSeeker, buf *Buffer, sampleRate int) error
}

// Decoder reads a container into a canonical buffer and its sample rate.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, int, error)
}

// Registry for codecs by format key (e.g., "wav", "mp3", "ogg").
// Keys are case-insensitive.
type Registry struct {
	encoders map[string]Encoder
	decoders map[string]Decoder
	mtx      *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[string]Encoder),
		decoders: make(map[string]Decoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[strings.ToLower(format)] = e
}

func (r *Registry) RegisterDecoder(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[strings.ToLower(format)]
	return e, ok
}

func (r *Registry) GetDecoder(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.decoders[strings.ToLower(format)]
	return d, ok
}

// Formats lists the formats that have an encoder, sorted.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.encoders))
	for f := range r.encoders {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	return formats
}
