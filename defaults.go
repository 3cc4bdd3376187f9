// SPDX-License-Identifier: EPL-2.0

package audman

import (
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/formats/aiff"
	"github.com/ik5/audman/formats/flac"
	"github.com/ik5/audman/formats/mp3"
	"github.com/ik5/audman/formats/vorbis"
	"github.com/ik5/audman/formats/wav"
)

// Formats lists the container formats a Node can write.
var Formats = []string{"wav", "mp3", "ogg", "flac"}

// DefaultRegistry returns a registry with an encoder for every entry in
// Formats and decoders for those plus AIFF.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Encoder{})
	r.Register("mp3", mp3.Encoder{})
	r.Register("ogg", vorbis.Encoder{})
	r.Register("flac", flac.Encoder{})

	r.RegisterDecoder("wav", wav.Decoder{})
	r.RegisterDecoder("mp3", mp3.Decoder{})
	r.RegisterDecoder("ogg", vorbis.Decoder{})
	r.RegisterDecoder("flac", flac.Decoder{})
	r.RegisterDecoder("aiff", aiff.Decoder{})
	r.RegisterDecoder("aif", aiff.Decoder{})

	return r
}

// DefaultTaggers maps formats to their taggers. Ogg has none.
func DefaultTaggers() map[string]Tagger {
	return map[string]Tagger{
		"wav":  wav.Tagger{},
		"mp3":  mp3.Tagger{},
		"flac": flac.Tagger{},
	}
}
