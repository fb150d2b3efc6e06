package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultMetadataFiles are the metadata file names searched in order.
var DefaultMetadataFiles = []string{"action.yml", "action.yaml"}

// Metadata is the subset of an action metadata file that stepwait reads.
type Metadata struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Author      string                `yaml:"author,omitempty"`
	Inputs      map[string]InputSpec  `yaml:"inputs,omitempty"`
	Outputs     map[string]OutputSpec `yaml:"outputs,omitempty"`
	Runs        Runs                  `yaml:"runs"`
}

// InputSpec describes one action input.
type InputSpec struct {
	Description string `yaml:"description"`
	Required    bool   `yaml:"required,omitempty"`
	Default     string `yaml:"default,omitempty"`
}

// OutputSpec describes one action output.
type OutputSpec struct {
	Description string `yaml:"description"`
}

// Runs describes how the action is executed.
type Runs struct {
	Using string   `yaml:"using"`
	Image string   `yaml:"image,omitempty"`
	Main  string   `yaml:"main,omitempty"`
	Args  []string `yaml:"args,omitempty"`
}

// InputDefaults returns the declared default of every input that has one.
func (m *Metadata) InputDefaults() map[string]string {
	defaults := make(map[string]string)
	for name, in := range m.Inputs {
		if in.Default != "" {
			defaults[name] = in.Default
		}
	}
	return defaults
}

// LoadMetadata parses an action metadata file.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided metadata path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, path)
		}
		return nil, err
	}

	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if m.Inputs == nil {
		m.Inputs = make(map[string]InputSpec)
	}
	if m.Outputs == nil {
		m.Outputs = make(map[string]OutputSpec)
	}
	return &m, nil
}

// FindMetadataFile returns explicitPath when it exists, or the first of
// DefaultMetadataFiles found in dir. It returns "" when nothing is found.
func FindMetadataFile(explicitPath, dir string) string {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err == nil {
			return explicitPath
		}
		return ""
	}

	for _, name := range DefaultMetadataFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
