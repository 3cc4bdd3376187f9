// SPDX-License-Identifier: EPL-2.0

// Package audman saves in-memory audio payloads to disk for a node-graph
// media host.
//
// A Node takes whatever the upstream node produced (a tensor, a keyed
// structure or plain nested slices), brings it into a (channels, frames)
// float buffer, resamples it to the requested rate, scales it down if it
// clips and writes it as WAV, MP3, Ogg Vorbis or FLAC. It can then tag the
// file and play it back.
//
// # Quick Start
//
//	node := audman.New(audman.WithLogger(logger))
//
//	res, err := node.Process(ctx, audio.Structure{
//	    "waveform":    samples, // [][]float64, [1][C][N], audio.Tensor, ...
//	    "sample_rate": 22050,
//	}, audman.OutputSpec{
//	    Filename:   "take3",
//	    Format:     "flac",
//	    OutputDir:  "outputs/audio",
//	    SampleRate: 44100,
//	    Metadata:   `{"title": "Take 3", "year": 2024}`,
//	})
//	// res.Path == "outputs/audio/take3.flac"
//
// # Pipeline
//
// Process runs these steps in order:
//  1. create the output directory
//  2. build <output_dir>/<filename>.<format>, keeping an extension the
//     filename already has
//  3. resolve the payload (a structure needs a "waveform" key, its
//     "sample_rate" overrides the default source rate)
//  4. coerce array-like data to float64
//  5. bring the data to two dimensions (batch axis must be 1)
//  6. resample when source and target rate differ
//  7. divide by the peak when it exceeds 1.0
//  8. encode into a temporary file that atomically replaces the target
//  9. tag the file when metadata was given
//  10. play the buffer when Preview is set
//
// Steps 1 to 8 fail the call with an error that matches one of the audio
// package sentinels under errors.Is. Steps 9 and 10 only log.
//
// # Formats
//
// WAV and FLAC are written in pure Go. MP3 and Ogg Vorbis are encoded by an
// ffmpeg binary found in PATH; without it those formats fail with
// audio.ErrEncode. Ogg files are never tagged.
//
// # Logging
//
// All diagnostics go to the *slog.Logger given with WithLogger.
//
// # Concurrency
//
// Process is safe for concurrent use. Two calls writing the same path race
// and the last rename wins. Preview playback blocks until it finishes.
package audman
