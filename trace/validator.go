package trace

import (
	"fmt"
	"strings"

	"github.com/c360studio/reqtrace/model"
)

// MissingLink is a specification reference to a requirement that does not
// exist in the requirement index.
type MissingLink struct {
	SpecID        string
	RequirementID string
}

// Validator checks cross-reference integrity between requirements and
// specifications. It is pure computation over the index: construct one
// per analysis run and discard it.
type Validator struct {
	index *Index
}

// NewValidator indexes the supplied entities and returns a validator.
func NewValidator(requirements []model.Requirement, specifications []model.Specification) *Validator {
	return &Validator{index: NewIndex(requirements, specifications)}
}

// Index exposes the underlying cross-reference index.
func (v *Validator) Index() *Index {
	return v.index
}

// ValidateCrossReferences accumulates every dangling requirement
// reference, every dangling dependency reference, and one error per
// dependency cycle. Errors accumulate; nothing short-circuits. The
// result passes iff the error list is empty.
func (v *Validator) ValidateCrossReferences() model.ValidationResult {
	var errors []string

	for _, link := range v.danglingRequirements() {
		errors = append(errors, fmt.Sprintf(
			"Specification %s references non-existent requirement %s",
			link.SpecID, link.RequirementID))
	}

	for _, specID := range v.index.SpecificationIDs() {
		for _, depID := range v.index.Dependencies(specID) {
			if _, ok := v.index.Specification(depID); !ok {
				errors = append(errors, fmt.Sprintf(
					"Specification %s depends on non-existent specification %s",
					specID, depID))
			}
		}
	}

	for _, cycle := range findCycles(v.index) {
		errors = append(errors, "Circular dependency detected: "+strings.Join(cycle, " -> "))
	}

	return model.ResultFromErrors(errors)
}

// MissingRequirementLinks returns the dangling requirement references as
// (specification, requirement) pairs. This is the same condition
// ValidateCrossReferences reports as an error, exposed separately so the
// caller can downgrade it to a warning. Both views come from one scan,
// so they cannot disagree.
func (v *Validator) MissingRequirementLinks() []MissingLink {
	return v.danglingRequirements()
}

// danglingRequirements is the single scan behind both the error view and
// the warning view. Order follows specification input order, then the
// declared order of related requirements.
func (v *Validator) danglingRequirements() []MissingLink {
	var links []MissingLink
	for _, specID := range v.index.SpecificationIDs() {
		spec, _ := v.index.Specification(specID)
		for _, reqID := range spec.RelatedRequirements {
			if _, ok := v.index.Requirement(reqID); !ok {
				links = append(links, MissingLink{SpecID: specID, RequirementID: reqID})
			}
		}
	}
	return links
}

// UntracedRequirements returns requirements no specification references,
// in requirement input order. Forward traceability: every requirement
// should be implemented by at least one specification.
func (v *Validator) UntracedRequirements() []string {
	var untraced []string
	for _, reqID := range v.index.RequirementIDs() {
		if len(v.index.SpecsForRequirement(reqID)) == 0 {
			untraced = append(untraced, reqID)
		}
	}
	return untraced
}
