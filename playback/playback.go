// SPDX-License-Identifier: EPL-2.0

// Package playback plays canonical buffers on the default output device
// through PortAudio. Play blocks until the last buffer has been handed to
// the device or the context is canceled.
package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/ik5/audman/audio"
)

// DefaultFramesPerBuffer is used when Player.FramesPerBuffer is zero.
const DefaultFramesPerBuffer = 1024

var ErrEmptyBuffer = errors.New("nothing to play")

type outputStream interface {
	Start() error
	Write() error
	Stop() error
	Close() error
}

// Seams over the PortAudio calls, swapped in tests.
var (
	paInitialize    = portaudio.Initialize
	paTerminate     = portaudio.Terminate
	paDefaultOutput = func() (string, error) {
		d, err := portaudio.DefaultOutputDevice()
		if err != nil {
			return "", err
		}
		return d.Name, nil
	}
	paOpenStream = func(channels int, sampleRate float64, framesPerBuffer int, out *[]float32) (outputStream, error) {
		s, err := portaudio.OpenDefaultStream(0, channels, sampleRate, framesPerBuffer, out)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
)

// Player writes buffers to the default output device with a blocking
// stream. Calls are serialized.
type Player struct {
	FramesPerBuffer int

	mtx       *sync.Mutex
	probeOnce *sync.Once
	probeErr  error
}

func New() *Player {
	return &Player{
		FramesPerBuffer: DefaultFramesPerBuffer,
		mtx:             &sync.Mutex{},
		probeOnce:       &sync.Once{},
	}
}

// Available reports whether PortAudio can be initialized and has a default
// output device. The check runs once per Player.
func (p *Player) Available() error {
	p.probeOnce.Do(func() {
		p.mtx.Lock()
		defer p.mtx.Unlock()

		if err := paInitialize(); err != nil {
			p.probeErr = fmt.Errorf("failed to initialize PortAudio: %w", err)
			return
		}
		defer paTerminate()

		if _, err := paDefaultOutput(); err != nil {
			p.probeErr = fmt.Errorf("no default output device: %w", err)
		}
	})

	return p.probeErr
}

func (p *Player) framesPerBuffer() int {
	if p.FramesPerBuffer <= 0 {
		return DefaultFramesPerBuffer
	}
	return p.FramesPerBuffer
}

// Play blocks until buf has been played at sampleRate.
func (p *Player) Play(ctx context.Context, buf *audio.Buffer, sampleRate int) (err error) {
	if buf.Channels() == 0 || buf.Frames() == 0 {
		return ErrEmptyBuffer
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if err := paInitialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	defer func() {
		if terr := paTerminate(); terr != nil && err == nil {
			err = fmt.Errorf("failed to terminate PortAudio: %w", terr)
		}
	}()

	channels := buf.Channels()
	fpb := p.framesPerBuffer()
	out := make([]float32, fpb*channels)

	stream, err := paOpenStream(channels, float64(sampleRate), fpb, &out)
	if err != nil {
		return fmt.Errorf("opening output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("starting output stream: %w", err)
	}

	frames := buf.Frames()
	for start := 0; start < frames; start += fpb {
		if err := ctx.Err(); err != nil {
			stream.Stop()
			return fmt.Errorf("%w", err)
		}

		fill(out, buf, start, fpb)
		if err := stream.Write(); err != nil {
			stream.Stop()
			return fmt.Errorf("writing output stream: %w", err)
		}
	}

	if err := stream.Stop(); err != nil {
		return fmt.Errorf("stopping output stream: %w", err)
	}

	return nil
}

// fill interleaves frames [start, start+n) into out, padding with silence
// past the end of buf.
func fill(out []float32, buf *audio.Buffer, start, n int) {
	channels := buf.Channels()
	frames := buf.Frames()
	for i := range n {
		f := start + i
		for c := range channels {
			var v float32
			if f < frames {
				v = float32(buf.Data[c][f])
			}
			out[i*channels+c] = v
		}
	}
}
