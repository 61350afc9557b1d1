// Package model defines the requirement and specification entities that
// every other package operates on. Entities are validated at construction:
// a Requirement or Specification that exists has a well-formed identifier
// and a valid category, so downstream code never re-checks shape.
package model

import (
	"fmt"
	"strings"
)

const (
	// RequirementPrefix is the mandatory identifier prefix for requirements.
	RequirementPrefix = "REQ-"

	// SpecificationPrefix is the mandatory identifier prefix for specifications.
	SpecificationPrefix = "SPEC-"
)

// Requirement is a stated need the system under management must satisfy.
type Requirement struct {
	ID                 string   `yaml:"id" json:"id"`
	Title              string   `yaml:"title" json:"title"`
	Description        string   `yaml:"description" json:"description"`
	Category           Category `yaml:"type" json:"type"`
	AcceptanceCriteria []string `yaml:"acceptance_criteria" json:"acceptance_criteria"`
	Tags               []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Source             string   `yaml:"source,omitempty" json:"source,omitempty"`
	Rationale          string   `yaml:"rationale,omitempty" json:"rationale,omitempty"`
}

// NewRequirement validates and returns a requirement. The identifier must
// carry the REQ- prefix and the category must be a member of the closed
// set; violations fail here, not in a later validation pass.
func NewRequirement(r Requirement) (Requirement, error) {
	if err := r.Validate(); err != nil {
		return Requirement{}, err
	}
	return r, nil
}

// Validate checks the construction invariants. Exposed so documents
// unmarshalled directly into the struct can be checked through the same
// path the factory uses.
func (r Requirement) Validate() error {
	if !strings.HasPrefix(r.ID, RequirementPrefix) {
		return fmt.Errorf("requirement ID must start with %q: %s", RequirementPrefix, r.ID)
	}
	if !r.Category.IsValid() {
		return fmt.Errorf("invalid requirement type: %s", r.Category)
	}
	return nil
}
