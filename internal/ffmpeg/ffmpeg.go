// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg pipes raw PCM through an ffmpeg process to produce
// containers the pure Go libraries cannot write.
package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
	"golang.org/x/sync/errgroup"
)

// ErrUnavailable reports that no ffmpeg binary was found in PATH.
var ErrUnavailable = errors.New("ffmpeg not found in PATH")

var (
	probeOnce sync.Once
	binPath   string
	probeErr  error
)

// Available reports the ffmpeg binary path. PATH is searched once per
// process.
func Available() (string, error) {
	probeOnce.Do(func() {
		binPath, probeErr = exec.LookPath("ffmpeg")
		if probeErr != nil {
			probeErr = fmt.Errorf("%w: %v", ErrUnavailable, probeErr)
		}
	})

	return binPath, probeErr
}

// Codec describes one ffmpeg output.
type Codec struct {
	// Name is the ffmpeg audio codec, e.g. libmp3lame.
	Name string
	// Container is the ffmpeg muxer, e.g. mp3 or ogg.
	Container string
	// Args are extra output options such as "-q:a", "4".
	Args []string
}

func (c Codec) args(sampleRate, channels int) []string {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-f", "s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"-i", "pipe:0",
		"-codec:a", c.Name,
	}
	args = append(args, c.Args...)

	return append(args, "-f", c.Container, "pipe:1")
}

// waitDelay bounds how long Wait keeps draining stderr after ffmpeg is gone.
const waitDelay = 5 * time.Second

// Encode writes buf as s16le into ffmpeg and copies the container bytes to w.
// A failing w stops ffmpeg and its error is returned.
func Encode(ctx context.Context, w io.Writer, buf *audio.Buffer, sampleRate int, codec Codec) error {
	bin, err := Available()
	if err != nil {
		return err
	}

	return run(ctx, bin, w, buf, sampleRate, codec)
}

func run(ctx context.Context, bin string, w io.Writer, buf *audio.Buffer, sampleRate int, codec Codec) error {
	g, gctx := errgroup.WithContext(ctx)

	cmd := exec.CommandContext(gctx, bin, codec.args(sampleRate, buf.Channels())...)
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start: %w", err)
	}

	g.Go(func() error {
		defer stdin.Close()
		if _, err := stdin.Write(PCM16(buf)); err != nil {
			return fmt.Errorf("feeding ffmpeg: %w", err)
		}
		return nil
	})

	var outErr error
	g.Go(func() error {
		if _, err := io.Copy(w, stdout); err != nil {
			outErr = fmt.Errorf("writing ffmpeg output: %w", err)
			return outErr
		}
		return nil
	})

	pipeErr := g.Wait()
	waitErr := cmd.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w", err)
	}

	// ffmpeg was killed because the destination failed
	if outErr != nil {
		return outErr
	}

	if waitErr != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("ffmpeg %s: %w", codec.Name, waitErr)
		}
		return fmt.Errorf("ffmpeg %s: %w: %s", codec.Name, waitErr, msg)
	}

	return pipeErr
}

// PCM16 interleaves buf as signed 16-bit little-endian bytes.
func PCM16(buf *audio.Buffer) []byte {
	samples := buf.Interleaved()
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(utils.Float64ToInt16(s)))
	}

	return out
}
