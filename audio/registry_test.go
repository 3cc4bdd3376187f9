// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"io"
	"slices"
	"testing"
)

type mockEncoder struct {
	name string
}

func (e *mockEncoder) Encode(ctx context.Context, w io.WriteSeeker, buf *Buffer, sampleRate int) error {
	return nil
}

type mockDecoder struct{}

func (mockDecoder) Decode(r io.Reader) (*Buffer, int, error) {
	return NewBuffer(1, 1), 8000, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	encoder := &mockEncoder{name: "wav"}

	registry.Register("wav", encoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered encoder")
	}

	if got != encoder {
		t.Error("Registry.Get() returned different encoder instance")
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	encoder := &mockEncoder{name: "flac"}
	registry.Register("FLAC", encoder)

	for _, key := range []string{"flac", "Flac", "FLAC"} {
		if got, ok := registry.Get(key); !ok || got != encoder {
			t.Errorf("Registry.Get(%q) = %v, %v", key, got, ok)
		}
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if _, ok := registry.Get("aac"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
	if _, ok := registry.GetDecoder("aac"); ok {
		t.Error("Registry.GetDecoder() returned ok=true for non-existent format")
	}
}

func TestRegistry_DecodersAreSeparate(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.RegisterDecoder("aiff", mockDecoder{})

	if _, ok := registry.GetDecoder("aiff"); !ok {
		t.Error("Registry.GetDecoder() failed to retrieve registered decoder")
	}
	if _, ok := registry.Get("aiff"); ok {
		t.Error("decoder registration should not provide an encoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", "wav", "mp3", "flac"} {
		registry.Register(f, &mockEncoder{name: f})
	}

	want := []string{"flac", "mp3", "ogg", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	encoder := &mockEncoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", encoder)
			done <- true
		}()
	}

	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			_ = registry.Formats()
			done <- true
		}()
	}

	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok || got != encoder {
		t.Error("Registry returned wrong encoder after concurrent operations")
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockEncoder{name: "wav"})

	b.ResetTimer()
	for range b.N {
		_, _ = registry.Get("wav")
	}
}
