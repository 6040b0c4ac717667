package committype

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a per-project catalog from a YAML file of the form:
//
//	types:
//	  - label: feat
//	    symbol: "✨"
//	    description: A new feature
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read commit type catalog: %w", err)
	}

	var file struct {
		Types []Type `yaml:"types"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse commit type catalog %s: %w", path, err)
	}

	catalog, err := New(file.Types)
	if err != nil {
		return Catalog{}, fmt.Errorf("invalid commit type catalog %s: %w", path, err)
	}
	return catalog, nil
}
