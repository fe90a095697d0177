package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the document schema version written by default.
const CurrentVersion = "1"

// LoadFile loads and parses a model source document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model source %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if doc.Model == "" {
		doc.Model = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return doc, nil
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model source YAML: %w", err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
