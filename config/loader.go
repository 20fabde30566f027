package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes limits from YAML bytes, filling in Default() for any
// field the document omits.
func Parse(data []byte) (*Limits, error) {
	limits := Default()
	if err := yaml.Unmarshal(data, limits); err != nil {
		return nil, fmt.Errorf("config: invalid limits document: %w", err)
	}
	return limits, nil
}

// Load reads and parses a limits file from disk.
func Load(path string) (*Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}
