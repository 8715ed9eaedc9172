package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TargetConfig describes a database connection the load subcommand writes
// generated rows into.
type TargetConfig struct {
	Name    string            `yaml:"name"`
	Kind    string            `yaml:"kind"`
	DSN     string            `yaml:"dsn"`
	Schema  string            `yaml:"schema,omitempty"`
	Options map[string]string `yaml:"options,omitempty"`
}

// LoadTargetConfig reads and validates a YAML target definition.
func LoadTargetConfig(path string) (*TargetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading target file: %w", err)
	}
	var target TargetConfig
	if err := yaml.Unmarshal(data, &target); err != nil {
		return nil, fmt.Errorf("parsing target file %s: %w", path, err)
	}
	if err := target.validate(); err != nil {
		return nil, fmt.Errorf("target file %s: %w", path, err)
	}
	return &target, nil
}

func (t *TargetConfig) validate() error {
	switch t.Kind {
	case "postgres", "sqlite":
	case "":
		return newInvalidOption("kind", t.Kind, "target kind is required")
	default:
		return newInvalidOption("kind", t.Kind, "supported kinds are postgres and sqlite")
	}
	if t.DSN == "" {
		return newInvalidOption("dsn", t.DSN, "target dsn is required")
	}
	return nil
}
