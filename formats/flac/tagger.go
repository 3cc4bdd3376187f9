// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/ik5/audman/metadata"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/meta"
)

const vendor = "audman"

// Tagger rewrites a FLAC file with a VORBIS_COMMENT block. Existing comments
// are kept unless a new tag replaces them.
type Tagger struct{}

func (Tagger) Tag(path string, tags []metadata.Tag) error {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotFlacFile, err)
	}
	defer stream.Close()

	layout, err := layoutFor(int(stream.Info.NChannels))
	if err != nil {
		return err
	}

	var (
		blocks   []*meta.Block
		existing [][2]string
	)
	for _, b := range stream.Blocks {
		switch body := b.Body.(type) {
		case *meta.VorbisComment:
			existing = body.Tags
		case *meta.SeekTable:
			// offsets change with the rewrite
		default:
			if b.Type != meta.TypePadding {
				blocks = append(blocks, b)
			}
		}
	}
	blocks = append(blocks, commentBlock(mergeComments(existing, tags)))

	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("creating pending flac: %w", err)
	}
	defer pending.Cleanup()

	info := *stream.Info
	info.FrameSizeMin, info.FrameSizeMax = 0, 0

	enc, err := flac.NewEncoder(writeSeeker{pending}, &info, blocks...)
	if err != nil {
		return fmt.Errorf("writing flac header: %w", err)
	}

	for num := 0; ; num++ {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			enc.Close()
			return fmt.Errorf("reading flac frame: %w", err)
		}

		pcm := make([][]int32, len(f.Subframes))
		for c, sub := range f.Subframes {
			pcm[c] = sub.Samples
		}

		out := verbatimFrame(f.HasFixedBlockSize, info.SampleRate, info.BitsPerSample, layout, pcm)
		if err := enc.WriteFrame(out); err != nil {
			enc.Close()
			return fmt.Errorf("writing flac frame %d: %w", num, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing tagged flac: %w", err)
	}

	return pending.CloseAtomicallyReplace()
}

// mergeComments keeps existing comments whose field name is not being set
// and appends the new tags with upper-cased field names.
func mergeComments(existing [][2]string, tags []metadata.Tag) [][2]string {
	replaced := make(map[string]bool, len(tags))
	for _, t := range tags {
		replaced[strings.ToUpper(t.Key)] = true
	}

	out := make([][2]string, 0, len(existing)+len(tags))
	for _, kv := range existing {
		if !replaced[strings.ToUpper(kv[0])] {
			out = append(out, kv)
		}
	}
	for _, t := range tags {
		out = append(out, [2]string{strings.ToUpper(t.Key), t.Value})
	}

	return out
}

func commentBlock(tags [][2]string) *meta.Block {
	// vendor length, vendor, comment count, then length-prefixed NAME=value
	length := 4 + len(vendor) + 4
	for _, kv := range tags {
		length += 4 + len(kv[0]) + 1 + len(kv[1])
	}

	return &meta.Block{
		Header: meta.Header{
			Type:   meta.TypeVorbisComment,
			Length: int64(length),
		},
		Body: &meta.VorbisComment{
			Vendor: vendor,
			Tags:   tags,
		},
	}
}
