// SPDX-License-Identifier: EPL-2.0

package audman

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/audman/audio"
)

const (
	DefaultFilename   = "audio"
	DefaultFormat     = "wav"
	DefaultOutputDir  = "outputs/audio"
	DefaultSampleRate = audio.DefaultSampleRate

	MinSampleRate  = 8000
	MaxSampleRate  = 48000
	SampleRateStep = 100
)

// OutputSpec describes where and how one payload is saved. Zero fields take
// the defaults above; Preview defaults to false.
type OutputSpec struct {
	Filename   string
	Format     string
	OutputDir  string
	SampleRate int
	Preview    bool
	// Metadata is an optional flat mapping literal, see metadata.Parse.
	Metadata string
}

func (s OutputSpec) withDefaults() OutputSpec {
	if s.Filename == "" {
		s.Filename = DefaultFilename
	}
	if s.Format == "" {
		s.Format = DefaultFormat
	}
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	if s.SampleRate == 0 {
		s.SampleRate = DefaultSampleRate
	}

	return s
}

// Validate checks the sample rate against the declared bounds and step.
// The format is left to the codec registry.
func (s OutputSpec) Validate() error {
	s = s.withDefaults()

	if s.SampleRate < MinSampleRate || s.SampleRate > MaxSampleRate {
		return fmt.Errorf("%w: sample_rate %d outside [%d, %d]",
			audio.ErrInvalidOption, s.SampleRate, MinSampleRate, MaxSampleRate)
	}
	if s.SampleRate%SampleRateStep != 0 {
		return fmt.Errorf("%w: sample_rate %d is not a multiple of %d",
			audio.ErrInvalidOption, s.SampleRate, SampleRateStep)
	}

	if strings.ContainsAny(s.Filename, `/\`) {
		return fmt.Errorf("%w: filename %q contains a path separator", audio.ErrInvalidOption, s.Filename)
	}

	return nil
}

// Path is <output_dir>/<filename>.<format>. A filename that already ends in
// .<format>, in any letter case, keeps its extension as is.
func (s OutputSpec) Path() string {
	s = s.withDefaults()

	ext := "." + strings.ToLower(s.Format)
	name := s.Filename
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}

	return filepath.Join(s.OutputDir, name)
}
