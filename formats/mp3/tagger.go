// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/ik5/audman/metadata"
)

// Tagger writes ID3v2.4 frames in place.
type Tagger struct{}

func (Tagger) Tag(path string, tags []metadata.Tag) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening id3 tag: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	applyFrames(tag, tags)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("saving id3 tag: %w", err)
	}

	return nil
}

func applyFrames(tag *id3v2.Tag, tags []metadata.Tag) {
	for _, t := range tags {
		switch strings.ToLower(t.Key) {
		case "title", "name":
			tag.SetTitle(t.Value)
		case "artist":
			tag.SetArtist(t.Value)
		case "album":
			tag.SetAlbum(t.Value)
		case "year", "date":
			tag.SetYear(t.Value)
		case "genre":
			tag.SetGenre(t.Value)
		case "composer":
			tag.AddTextFrame(tag.CommonID("Composer"), id3v2.EncodingUTF8, t.Value)
		case "track", "tracknumber":
			tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, t.Value)
		case "comment", "comments", "description":
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding: id3v2.EncodingUTF8,
				Language: "eng",
				Text:     t.Value,
			})
		default:
			tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
				Encoding:    id3v2.EncodingUTF8,
				Description: t.Key,
				Value:       t.Value,
			})
		}
	}
}
