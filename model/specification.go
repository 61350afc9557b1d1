package model

import (
	"fmt"
	"strings"
)

// Specification describes how one or more requirements are implemented.
// RelatedRequirements point at Requirement IDs; Dependencies point at
// other Specification IDs and may form cycles, which the trace package
// detects rather than prevents.
type Specification struct {
	ID                  string   `yaml:"id" json:"id"`
	Title               string   `yaml:"title" json:"title"`
	Description         string   `yaml:"description" json:"description"`
	RelatedRequirements []string `yaml:"related_requirements" json:"related_requirements"`
	ImplementationUnit  string   `yaml:"implementation_unit" json:"implementation_unit"`
	UnitTest            string   `yaml:"unit_test" json:"unit_test"`
	DesignNotes         string   `yaml:"design_notes,omitempty" json:"design_notes,omitempty"`
	Dependencies        []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// NewSpecification validates and returns a specification. Identifier
// prefixes are enforced for the specification itself, each related
// requirement, and each dependency.
func NewSpecification(s Specification) (Specification, error) {
	if err := s.Validate(); err != nil {
		return Specification{}, err
	}
	return s, nil
}

// Validate checks the construction invariants.
func (s Specification) Validate() error {
	if !strings.HasPrefix(s.ID, SpecificationPrefix) {
		return fmt.Errorf("specification ID must start with %q: %s", SpecificationPrefix, s.ID)
	}
	for _, reqID := range s.RelatedRequirements {
		if !strings.HasPrefix(reqID, RequirementPrefix) {
			return fmt.Errorf("related requirement ID must start with %q: %s", RequirementPrefix, reqID)
		}
	}
	for _, depID := range s.Dependencies {
		if !strings.HasPrefix(depID, SpecificationPrefix) {
			return fmt.Errorf("dependency ID must start with %q: %s", SpecificationPrefix, depID)
		}
	}
	return nil
}
