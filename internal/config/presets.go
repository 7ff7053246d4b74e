package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named view configuration a user can recall by name (e.g. a
// "standup" preset pinning depth and a property set).
type Preset struct {
	Depth       int      `yaml:"depth"`
	StateFilter string   `yaml:"state_filter"`
	Properties  []string `yaml:"properties"`
	Tags        []string `yaml:"tags"`
}

// Presets is the parsed content of a views.yaml file: a name to Preset
// mapping.
type Presets map[string]Preset

// LoadPresets reads and parses a views.yaml file. A missing file is not
// an error — it yields an empty preset set.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Presets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading presets file: %w", err)
	}
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parsing presets file: %w", err)
	}
	return p, nil
}
