package classfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML class definition from the given path.
func LoadFile(path string) (*ClassDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a ClassDefinition.
func Parse(data []byte) (*ClassDefinition, error) {
	var cd ClassDefinition

	err := yaml.Unmarshal(data, &cd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse class YAML: %w", err)
	}

	if cd.Name == "" {
		return nil, errors.New("failed to parse class YAML: missing name")
	}

	applyDefaults(&cd)

	return &cd, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cd *ClassDefinition) {
	if cd.SuperName == "" && cd.Name != RootType {
		cd.SuperName = RootType
	}
}

// Marshal serializes a ClassDefinition to YAML.
func Marshal(cd *ClassDefinition) ([]byte, error) {
	return yaml.Marshal(cd)
}

// WriteFile writes a ClassDefinition to the given path, creating parent
// directories as needed.
func WriteFile(cd *ClassDefinition, path string) error {
	data, err := Marshal(cd)
	if err != nil {
		return fmt.Errorf("failed to marshal class %s: %w", cd.Name, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write class file %s: %w", path, err)
	}

	return nil
}

// PathFor returns the location of class name below root, e.g.
// "root/com/acme/Foo.yaml" for "com/acme/Foo".
func PathFor(root, name string) string {
	return filepath.Join(root, filepath.FromSlash(name)+".yaml")
}
