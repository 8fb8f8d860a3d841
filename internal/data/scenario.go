package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ComponentDesc is one component entry in a scenario document: a mapping
// carrying a "type" tag that selects the builder, plus an opaque payload the
// builder decodes itself.
type ComponentDesc struct {
	Type string
	Node yaml.Node
}

func (d *ComponentDesc) UnmarshalYAML(n *yaml.Node) error {
	var meta struct {
		Type string `yaml:"type"`
	}
	if err := n.Decode(&meta); err != nil {
		return err
	}
	d.Type = meta.Type
	d.Node = *n
	return nil
}

// EntityDesc describes one entity to create at world init.
type EntityDesc struct {
	Tag        string          `yaml:"tag"`
	Components []ComponentDesc `yaml:"components"`
}

// Scenario is a parsed scenario document.
type Scenario struct {
	Entities []EntityDesc `yaml:"entities"`
}

type scenarioFile struct {
	Entities []EntityDesc `yaml:"entities"`
}

// LoadScenario loads entity descriptions from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &Scenario{Entities: f.Entities}, nil
}

// Count reports the number of entity descriptions.
func (s *Scenario) Count() int {
	return len(s.Entities)
}
