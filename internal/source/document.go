package source

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"datamodel-generator/internal/metadata"
)

// Document is the root of a model source file.
type Document struct {
	// Version of the document schema.
	Version string `yaml:"version,omitempty"`

	// Model is the model name; it also names the output file.
	Model string `yaml:"model,omitempty"`

	// Main names the main element, overriding a header marked Main.
	Main string `yaml:"main,omitempty"`

	// Empty forces the empty-model skeleton.
	Empty bool `yaml:"empty,omitempty"`

	// System lists system values reported to the client.
	System SystemBlock `yaml:"system,omitempty"`

	// ResultSets are mapped through metadata.Builder, in order.
	ResultSets []ResultSet `yaml:"resultSets,omitempty"`

	// Records are explicit record definitions.
	Records []RecordDef `yaml:"records,omitempty"`
}

// ResultSet is one result set described by its columns.
type ResultSet struct {
	Columns []metadata.Column `yaml:"columns"`
}

// RecordDef declares or extends a record directly.
type RecordDef struct {
	Name        string               `yaml:"name"`
	Array       bool                 `yaml:"array,omitempty"`
	Group       bool                 `yaml:"group,omitempty"`
	Id          string               `yaml:"id,omitempty"`
	NameField   string               `yaml:"nameField,omitempty"`
	RowNumber   string               `yaml:"rowNumber,omitempty"`
	HasChildren string               `yaml:"hasChildren,omitempty"`
	Permissions string               `yaml:"permissions,omitempty"`
	Items       string               `yaml:"items,omitempty"`
	Fields      []metadata.FieldMeta `yaml:"fields,omitempty"`
}

// SystemEntry is one named system value.
type SystemEntry struct {
	Key   string
	Value any
}

// SystemBlock keeps system values in document order.
type SystemBlock struct {
	Entries []SystemEntry
	// Present is true when the document has a system mapping, even an empty one.
	Present bool
}

// UnmarshalYAML implements custom YAML unmarshaling for SystemBlock.
// Accepts a mapping; timestamps decode to time.Time.
func (s *SystemBlock) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: system must be a mapping, got %v", node.Line, node.Kind)
	}

	s.Present = true
	s.Entries = make([]SystemEntry, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("line %d: system key: %w", keyNode.Line, err)
		}

		val, err := decodeSystemValue(valNode)
		if err != nil {
			return fmt.Errorf("line %d: system value %q: %w", valNode.Line, key, err)
		}

		s.Entries = append(s.Entries, SystemEntry{Key: key, Value: val})
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for SystemBlock.
func (s SystemBlock) MarshalYAML() (any, error) {
	if !s.Present {
		return nil, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range s.Entries {
		var val yaml.Node
		if err := val.Encode(e.Value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Key}, &val)
	}

	return node, nil
}

func decodeSystemValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!timestamp" {
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return nil, err
		}

		return t, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}

	if v == nil {
		return nil, fmt.Errorf("null is not a valid system value")
	}

	return v, nil
}
