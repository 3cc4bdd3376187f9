// SPDX-License-Identifier: EPL-2.0

package audman

// FieldType is the host-side widget type of a schema field.
type FieldType string

const (
	TypeAudio   FieldType = "AUDIO"
	TypeString  FieldType = "STRING"
	TypeInt     FieldType = "INT"
	TypeBoolean FieldType = "BOOLEAN"
	TypeEnum    FieldType = "ENUM"
)

// Field declares one input or output of the node.
type Field struct {
	Name      string
	Type      FieldType
	Required  bool
	Default   any
	Options   []string
	Min       int
	Max       int
	Step      int
	Multiline bool
}

// InputSchema lists the node inputs in display order.
func InputSchema() []Field {
	return []Field{
		{Name: "audio", Type: TypeAudio, Required: true},
		{Name: "filename", Type: TypeString, Required: true, Default: DefaultFilename},
		{Name: "format", Type: TypeEnum, Required: true, Default: DefaultFormat, Options: append([]string(nil), Formats...)},
		{Name: "output_dir", Type: TypeString, Required: true, Default: DefaultOutputDir},
		{
			Name:     "sample_rate",
			Type:     TypeInt,
			Required: true,
			Default:  DefaultSampleRate,
			Min:      MinSampleRate,
			Max:      MaxSampleRate,
			Step:     SampleRateStep,
		},
		{Name: "preview_audio", Type: TypeBoolean, Required: true, Default: true},
		{Name: "metadata", Type: TypeString, Multiline: true, Default: ""},
	}
}

// OutputSchema lists what Process returns: the untouched payload and the
// written path.
func OutputSchema() []Field {
	return []Field{
		{Name: "audio", Type: TypeAudio},
		{Name: "file_path", Type: TypeString},
	}
}
