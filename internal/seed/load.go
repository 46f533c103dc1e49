package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yml
var demoYAML []byte

// Demo returns the built-in sample library.
func Demo() (*Document, error) {
	return Parse(demoYAML)
}

// Load reads a seed file from disk. An empty path yields the demo document.
func Load(path string) (*Document, error) {
	if path == "" {
		return Demo()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML seed document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing seed YAML: %w", err)
		}
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return &doc, nil
}
