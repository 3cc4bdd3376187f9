// SPDX-License-Identifier: EPL-2.0

package metadata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid reports metadata text that is not a flat key -> scalar mapping.
var ErrInvalid = errors.New("invalid metadata")

// Tag is one key/value pair destined for the file's tag block.
type Tag struct {
	Key   string
	Value string
}

var scalarTags = map[string]bool{
	"!!str":       true,
	"!!int":       true,
	"!!float":     true,
	"!!bool":      true,
	"!!null":      true,
	"!!timestamp": true,
}

// Parse reads a mapping literal such as
//
//	{"title": "Take 3", "artist": "ARVR", "year": 2024}
//
// and returns its pairs in document order. JSON objects, single-quoted
// dictionary literals and YAML block mappings are accepted. Nested values,
// sequences, anchors, aliases, custom tags, duplicate or empty keys and
// multiple documents are rejected. Blank input yields no tags.
func Parse(s string) ([]Tag, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	dec := yaml.NewDecoder(strings.NewReader(s))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: expected a single document", ErrInvalid)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: expected a mapping", ErrInvalid)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping, got %s", ErrInvalid, kindName(root.Kind))
	}
	if root.Anchor != "" {
		return nil, fmt.Errorf("%w: anchors are not allowed", ErrInvalid)
	}

	tags := make([]Tag, 0, len(root.Content)/2)
	seen := make(map[string]bool, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if err := checkScalar(key); err != nil {
			return nil, fmt.Errorf("%w: key at line %d: %v", ErrInvalid, key.Line, err)
		}
		if key.Tag == "!!null" || strings.TrimSpace(key.Value) == "" {
			return nil, fmt.Errorf("%w: empty key at line %d", ErrInvalid, key.Line)
		}
		if seen[key.Value] {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalid, key.Value)
		}
		seen[key.Value] = true

		if err := checkScalar(value); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", ErrInvalid, key.Value, err)
		}

		v := value.Value
		if value.Tag == "!!null" {
			v = ""
		}

		tags = append(tags, Tag{Key: key.Value, Value: v})
	}

	return tags, nil
}

func checkScalar(n *yaml.Node) error {
	switch {
	case n.Kind == yaml.AliasNode:
		return errors.New("aliases are not allowed")
	case n.Kind != yaml.ScalarNode:
		return fmt.Errorf("expected a scalar, got %s", kindName(n.Kind))
	case n.Anchor != "":
		return errors.New("anchors are not allowed")
	case !scalarTags[n.Tag]:
		return fmt.Errorf("tag %s is not allowed", n.Tag)
	}

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// Lookup returns the value of the first tag whose key matches name,
// ignoring case.
func Lookup(tags []Tag, name string) (string, bool) {
	for _, t := range tags {
		if strings.EqualFold(t.Key, name) {
			return t.Value, true
		}
	}
	return "", false
}
