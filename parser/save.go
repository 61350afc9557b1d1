package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/reqtrace/model"
)

// SaveRequirement writes a requirement to a YAML file, creating parent
// directories as needed.
func SaveRequirement(req model.Requirement, path string) error {
	return saveDocument(req, path)
}

// SaveSpecification writes a specification to a YAML file, creating
// parent directories as needed.
func SaveSpecification(spec model.Specification, path string) error {
	return saveDocument(spec, path)
}

func saveDocument(doc any, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
