// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/formats/mp3"
	"github.com/ik5/audman/metadata"
)

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	buf, rate, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded MP3: %d Hz, %d channels, %d frames\n",
		rate, buf.Channels(), buf.Frames())
}

// ExampleEncoder_Encode writes a constant bitrate MP3 and tags it.
func ExampleEncoder_Encode() {
	f, err := os.Create("output.mp3")
	if err != nil {
		log.Fatal(err)
	}

	buf := audio.NewBuffer(2, 44100)
	if err := (mp3.Encoder{Bitrate: 192}).Encode(context.Background(), f, buf, 44100); err != nil {
		log.Fatal(err)
	}
	f.Close()

	tags, err := metadata.Parse(`{"title": "Silence", "artist": "Nobody"}`)
	if err != nil {
		log.Fatal(err)
	}

	if err := (mp3.Tagger{}).Tag("output.mp3", tags); err != nil {
		log.Fatal(err)
	}
}
