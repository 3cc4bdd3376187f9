// SPDX-License-Identifier: EPL-2.0

package audman

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/metadata"
	"github.com/ik5/audman/playback"
)

// Tagger writes tags into an already saved file.
type Tagger interface {
	Tag(path string, tags []metadata.Tag) error
}

// Player plays a buffer and returns once playback has finished.
type Player interface {
	Play(ctx context.Context, buf *audio.Buffer, sampleRate int) error
}

// prober is implemented by players that can report missing hardware up
// front, such as *playback.Player.
type prober interface {
	Available() error
}

// Result is what Process hands back to the host graph.
type Result struct {
	// Audio is the payload exactly as it was passed in.
	Audio audio.Payload
	// Path is the written file.
	Path string
}

// Node saves audio payloads to disk. A Node only holds its wiring and may
// be shared between goroutines.
//
// Calls that resolve to the same output path race: each replaces the file
// atomically, so the last rename wins and the file is never a mix of writes.
type Node struct {
	registry    *audio.Registry
	taggers     map[string]Tagger
	player      Player
	logger      *slog.Logger
	defaultRate int

	playerOnce *sync.Once
	playerErr  error
}

type Option func(*Node)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(n *Node) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithRegistry replaces the codec registry.
func WithRegistry(r *audio.Registry) Option {
	return func(n *Node) {
		if r != nil {
			n.registry = r
		}
	}
}

// WithTagger sets the tagger for a format. A nil tagger disables tagging
// for that format.
func WithTagger(format string, t Tagger) Option {
	return func(n *Node) {
		format = strings.ToLower(format)
		if t == nil {
			delete(n.taggers, format)
			return
		}
		n.taggers[format] = t
	}
}

func WithPlayer(p Player) Option {
	return func(n *Node) { n.player = p }
}

// WithoutPlayback leaves the node without a player; preview requests are
// logged and skipped.
func WithoutPlayback() Option {
	return func(n *Node) { n.player = nil }
}

// WithDefaultSourceRate sets the rate assumed for payloads that do not carry
// one. The default is 44100.
func WithDefaultSourceRate(rate int) Option {
	return func(n *Node) {
		if rate > 0 {
			n.defaultRate = rate
		}
	}
}

// New returns a Node wired with every built-in codec, tagger and the
// PortAudio player.
func New(opts ...Option) *Node {
	n := &Node{
		registry:    DefaultRegistry(),
		taggers:     DefaultTaggers(),
		player:      playback.New(),
		logger:      slog.Default(),
		defaultRate: audio.DefaultSampleRate,
		playerOnce:  &sync.Once{},
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Process normalizes payload and writes it as spec describes. Shape, type,
// structure and directory failures abort before anything is written. An
// encode failure leaves no file behind. Tagging and preview problems are
// logged and never fail the call.
func (n *Node) Process(ctx context.Context, payload audio.Payload, spec OutputSpec) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}
	spec = spec.withDefaults()

	if err := os.MkdirAll(spec.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: creating %s: %w", audio.ErrIO, spec.OutputDir, err)
	}

	path := spec.Path()

	buf, srcRate, err := audio.Prepare(payload, n.defaultRate)
	if err != nil {
		return Result{}, err
	}

	buf, err = audio.Resample(buf, srcRate, spec.SampleRate)
	if err != nil {
		return Result{}, err
	}

	buf = audio.NormalizePeak(buf)

	if err := n.write(ctx, path, spec.Format, buf, spec.SampleRate); err != nil {
		return Result{}, err
	}

	n.logger.Info("audio saved",
		slog.String("path", path),
		slog.String("format", spec.Format),
		slog.Int("sample_rate", spec.SampleRate),
		slog.Int("channels", buf.Channels()),
		slog.Int("frames", buf.Frames()),
	)

	n.tag(path, spec)

	if spec.Preview {
		n.preview(ctx, buf, spec.SampleRate)
	}

	return Result{Audio: payload, Path: path}, nil
}

// write encodes into a pending file next to path and renames it into place
// only after the encoder succeeded.
func (n *Node) write(ctx context.Context, path, format string, buf *audio.Buffer, rate int) error {
	enc, ok := n.registry.Get(format)
	if !ok {
		return fmt.Errorf("%w: %q (have %s)", audio.ErrUnsupportedContainer,
			format, strings.Join(n.registry.Formats(), ", "))
	}

	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer pending.Cleanup()

	if err := enc.Encode(ctx, pending, buf, rate); err != nil {
		return fmt.Errorf("%w: %s: %w", audio.ErrEncode, format, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}

func (n *Node) tag(path string, spec OutputSpec) {
	if strings.TrimSpace(spec.Metadata) == "" {
		return
	}

	tags, err := metadata.Parse(spec.Metadata)
	if err != nil {
		n.logger.Warn("metadata ignored", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	if len(tags) == 0 {
		return
	}

	tagger, ok := n.taggers[strings.ToLower(spec.Format)]
	if !ok {
		n.logger.Warn("tagging not available", slog.String("path", path), slog.String("format", spec.Format))
		return
	}

	if err := tagger.Tag(path, tags); err != nil {
		n.logger.Error("writing tags failed", slog.String("path", path), slog.String("error", err.Error()))
		return
	}

	n.logger.Debug("tags written", slog.String("path", path), slog.Int("count", len(tags)))
}

func (n *Node) preview(ctx context.Context, buf *audio.Buffer, rate int) {
	if n.player == nil {
		n.logger.Warn("playback not available")
		return
	}

	n.playerOnce.Do(func() {
		if p, ok := n.player.(prober); ok {
			n.playerErr = p.Available()
		}
	})
	if n.playerErr != nil {
		n.logger.Warn("playback not available", slog.String("error", n.playerErr.Error()))
		return
	}

	if err := n.player.Play(ctx, buf, rate); err != nil {
		n.logger.Error("playback failed", slog.String("error", err.Error()))
	}
}
