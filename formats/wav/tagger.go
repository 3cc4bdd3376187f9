// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gowav "github.com/go-audio/wav"
	"github.com/google/renameio/v2"
	"github.com/ik5/audman/metadata"
)

// Tagger rewrites a WAV file with a LIST/INFO chunk holding the tags.
type Tagger struct{}

func (Tagger) Tag(path string, tags []metadata.Tag) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening wav for tagging: %w", err)
	}
	defer f.Close()

	d, pcm, err := decodePCM(f)
	if err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("creating pending wav: %w", err)
	}
	defer pending.Cleanup()

	enc := gowav.NewEncoder(pending, int(d.SampleRate), int(d.BitDepth), int(d.NumChans), formatPCM)
	enc.Metadata = infoChunk(tags)

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("rewriting wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing tagged wav: %w", err)
	}

	return pending.CloseAtomicallyReplace()
}

// infoChunk maps tags onto INFO fields. Unknown keys end up in Comments as
// key=value lines.
func infoChunk(tags []metadata.Tag) *gowav.Metadata {
	m := &gowav.Metadata{}
	var extra []string

	for _, t := range tags {
		switch strings.ToLower(t.Key) {
		case "title", "name":
			m.Title = t.Value
		case "artist":
			m.Artist = t.Value
		case "comment", "comments", "description":
			m.Comments = joinLine(m.Comments, t.Value)
		case "copyright":
			m.Copyright = t.Value
		case "date", "year", "creation_date":
			m.CreationDate = t.Value
		case "engineer":
			m.Engineer = t.Value
		case "technician":
			m.Technician = t.Value
		case "genre":
			m.Genre = t.Value
		case "keywords":
			m.Keywords = t.Value
		case "medium":
			m.Medium = t.Value
		case "product", "album":
			m.Product = t.Value
		case "subject":
			m.Subject = t.Value
		case "software", "encoder":
			m.Software = t.Value
		case "source":
			m.Source = t.Value
		case "location":
			m.Location = t.Value
		case "track", "tracknumber":
			m.TrackNbr = t.Value
		default:
			extra = append(extra, t.Key+"="+t.Value)
		}
	}

	for _, e := range extra {
		m.Comments = joinLine(m.Comments, e)
	}

	return m
}

func joinLine(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}
