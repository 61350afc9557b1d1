// Package parser loads requirement and specification documents from YAML
// files. Documents are discovered by walking a project directory, then
// classified by identifier prefix: a document whose id starts with REQ-
// is a requirement, SPEC- a specification, anything else is skipped.
package parser

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/reqtrace/model"
)

// DocumentGlob matches candidate documents under a project directory.
const DocumentGlob = "**/*.yaml"

// Project bundles everything loaded from one project directory.
type Project struct {
	Requirements   []model.Requirement
	Specifications []model.Specification
}

// Loader reads documents from disk. Malformed or mis-shaped documents
// are logged and skipped during directory walks; only I/O level problems
// (unreadable directory) surface as errors.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a document loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadProject loads all requirements and specifications under dir.
func (l *Loader) LoadProject(dir string) (*Project, error) {
	requirements, err := l.LoadRequirements(dir)
	if err != nil {
		return nil, err
	}
	specifications, err := l.LoadSpecifications(dir)
	if err != nil {
		return nil, err
	}
	return &Project{Requirements: requirements, Specifications: specifications}, nil
}

// LoadRequirements walks dir for YAML documents with a REQ- identifier
// and constructs requirements through the validating factory. Documents
// that fail construction are logged and skipped.
func (l *Loader) LoadRequirements(dir string) ([]model.Requirement, error) {
	paths, err := l.documentPaths(dir)
	if err != nil {
		return nil, err
	}

	var requirements []model.Requirement
	for _, path := range paths {
		data, id, err := l.probe(path)
		if err != nil {
			l.logger.Warn("skipping unreadable document",
				slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		if !strings.HasPrefix(id, model.RequirementPrefix) {
			continue
		}

		var raw model.Requirement
		if err := yaml.Unmarshal(data, &raw); err != nil {
			l.logger.Warn("skipping malformed requirement",
				slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		req, err := model.NewRequirement(raw)
		if err != nil {
			l.logger.Warn("skipping invalid requirement",
				slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		requirements = append(requirements, req)
	}
	return requirements, nil
}

// LoadSpecifications walks dir for YAML documents with a SPEC- identifier
// and constructs specifications through the validating factory.
func (l *Loader) LoadSpecifications(dir string) ([]model.Specification, error) {
	paths, err := l.documentPaths(dir)
	if err != nil {
		return nil, err
	}

	var specifications []model.Specification
	for _, path := range paths {
		data, id, err := l.probe(path)
		if err != nil {
			l.logger.Warn("skipping unreadable document",
				slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		if !strings.HasPrefix(id, model.SpecificationPrefix) {
			continue
		}

		var raw model.Specification
		if err := yaml.Unmarshal(data, &raw); err != nil {
			l.logger.Warn("skipping malformed specification",
				slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		spec, err := model.NewSpecification(raw)
		if err != nil {
			l.logger.Warn("skipping invalid specification",
				slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		specifications = append(specifications, spec)
	}
	return specifications, nil
}

// documentPaths resolves DocumentGlob under dir to absolute file paths in
// walk order.
func (l *Loader) documentPaths(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), DocumentGlob)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", DocumentGlob, err)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.Join(dir, match))
	}
	return paths, nil
}

// probe reads a file and extracts its id field without committing to a
// document shape yet.
func (l *Loader) probe(path string) (data []byte, id string, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	var header struct {
		ID string `yaml:"id"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, "", fmt.Errorf("invalid YAML: %w", err)
	}
	return data, header.ID, nil
}
