// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
	"time"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/internal/audiotest"
)

func TestPCM16(t *testing.T) {
	t.Parallel()

	buf := &audio.Buffer{Data: [][]float64{{0, 1}, {-1, 0.5}}}
	raw := PCM16(buf)

	if len(raw) != 8 {
		t.Fatalf("len = %d, want 8", len(raw))
	}

	want := []int16{0, -32767, 32767, 16383}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestCodec_Args(t *testing.T) {
	t.Parallel()

	c := Codec{Name: "libvorbis", Container: "ogg", Args: []string{"-q:a", "5"}}
	args := c.args(22050, 2)

	for _, pair := range [][2]string{{"-ar", "22050"}, {"-ac", "2"}, {"-codec:a", "libvorbis"}, {"-q:a", "5"}} {
		i := slices.Index(args, pair[0])
		if i < 0 || i+1 >= len(args) || args[i+1] != pair[1] {
			t.Errorf("args %v lack %s %s", args, pair[0], pair[1])
		}
	}

	tail := args[len(args)-3:]
	if !slices.Equal(tail, []string{"-f", "ogg", "pipe:1"}) {
		t.Errorf("output args = %v, want [-f ogg pipe:1]", tail)
	}
}

func TestEncode_MP3(t *testing.T) {
	t.Parallel()

	if _, err := Available(); err != nil {
		t.Skip(err)
	}

	buf := &audio.Buffer{Data: audiotest.Sine(44100, 1, 4410, 440, 0.5)}
	var out bytes.Buffer
	err := Encode(context.Background(), &out, buf, 44100, Codec{Name: "libmp3lame", Container: "mp3"})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if out.Len() == 0 {
		t.Fatal("Encode() produced no output")
	}
}

func TestEncode_UnknownCodec(t *testing.T) {
	t.Parallel()

	if _, err := Available(); err != nil {
		t.Skip(err)
	}

	buf := &audio.Buffer{Data: audiotest.Silence(1, 100)}
	var out bytes.Buffer
	if err := Encode(context.Background(), &out, buf, 8000, Codec{Name: "no-such-codec", Container: "mp3"}); err == nil {
		t.Error("Encode() error = nil, want failure for unknown codec")
	}
}

func TestEncode_CanceledContext(t *testing.T) {
	t.Parallel()

	if _, err := Available(); err != nil {
		t.Skip(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := &audio.Buffer{Data: audiotest.Silence(1, 100)}
	var out bytes.Buffer
	err := Encode(ctx, &out, buf, 8000, Codec{Name: "libmp3lame", Container: "mp3"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Encode() error = %v, want context.Canceled", err)
	}
}

// stubFFmpeg writes an executable shell script standing in for ffmpeg.
func stubFFmpeg(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell stubs need a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	return path
}

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestRun_PassesStreams(t *testing.T) {
	t.Parallel()

	bin := stubFFmpeg(t, "exec cat")
	buf := &audio.Buffer{Data: audiotest.Sine(8000, 2, 8000, 440, 0.5)}

	var out bytes.Buffer
	if err := run(context.Background(), bin, &out, buf, 8000, Codec{Name: "pcm", Container: "raw"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !bytes.Equal(out.Bytes(), PCM16(buf)) {
		t.Errorf("output is %d bytes, want the %d input bytes", out.Len(), len(PCM16(buf)))
	}
}

func TestRun_DestinationFailure(t *testing.T) {
	t.Parallel()

	// floods stdout and never reads stdin
	bin := stubFFmpeg(t, "exec head -c 4194304 /dev/zero")
	buf := &audio.Buffer{Data: audiotest.Silence(2, 10*44100)}

	done := make(chan error, 1)
	go func() {
		done <- run(context.Background(), bin, failingWriter{}, buf, 44100, Codec{Name: "pcm", Container: "raw"})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, errDiskFull) {
			t.Errorf("run() error = %v, want %v", err, errDiskFull)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run() still blocked after the destination failed")
	}
}

func TestRun_ProcessFailure(t *testing.T) {
	t.Parallel()

	bin := stubFFmpeg(t, "echo 'Unknown encoder' >&2\nexit 1")
	buf := &audio.Buffer{Data: audiotest.Silence(1, 100)}

	var out bytes.Buffer
	err := run(context.Background(), bin, &out, buf, 8000, Codec{Name: "nope", Container: "raw"})
	if err == nil {
		t.Fatal("run() error = nil, want failure")
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("run() error = %v, want *exec.ExitError", err)
	}
}
