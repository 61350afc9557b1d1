// Package trace builds the cross-reference graph between requirements and
// specifications and validates its integrity: dangling requirement
// references, dangling dependency references, and circular specification
// dependencies.
package trace

import "github.com/c360studio/reqtrace/model"

// Index holds identifier-keyed views of the caller's entity lists plus
// the adjacencies derived from them. Duplicate identifiers resolve
// last-write-wins while keeping the first-seen position, so iteration
// order stays deterministic for a given input order.
type Index struct {
	requirements   map[string]model.Requirement
	specifications map[string]model.Specification

	reqOrder  []string
	specOrder []string

	// requirement ID -> IDs of specifications that reference it,
	// in specification input order.
	specsByRequirement map[string][]string
}

// NewIndex indexes the supplied entities. The index only reads the
// entities; it never mutates them, and it lives for one analysis run.
func NewIndex(requirements []model.Requirement, specifications []model.Specification) *Index {
	idx := &Index{
		requirements:       make(map[string]model.Requirement, len(requirements)),
		specifications:     make(map[string]model.Specification, len(specifications)),
		specsByRequirement: make(map[string][]string),
	}

	for _, req := range requirements {
		if _, seen := idx.requirements[req.ID]; !seen {
			idx.reqOrder = append(idx.reqOrder, req.ID)
		}
		idx.requirements[req.ID] = req
	}
	for _, spec := range specifications {
		if _, seen := idx.specifications[spec.ID]; !seen {
			idx.specOrder = append(idx.specOrder, spec.ID)
		}
		idx.specifications[spec.ID] = spec
	}

	for _, specID := range idx.specOrder {
		for _, reqID := range idx.specifications[specID].RelatedRequirements {
			idx.specsByRequirement[reqID] = append(idx.specsByRequirement[reqID], specID)
		}
	}

	return idx
}

// Requirement looks up a requirement by identifier.
func (idx *Index) Requirement(id string) (model.Requirement, bool) {
	req, ok := idx.requirements[id]
	return req, ok
}

// Specification looks up a specification by identifier.
func (idx *Index) Specification(id string) (model.Specification, bool) {
	spec, ok := idx.specifications[id]
	return spec, ok
}

// RequirementIDs returns requirement identifiers in input order.
func (idx *Index) RequirementIDs() []string {
	return idx.reqOrder
}

// SpecificationIDs returns specification identifiers in input order.
func (idx *Index) SpecificationIDs() []string {
	return idx.specOrder
}

// SpecsForRequirement returns the specifications referencing a
// requirement, in specification input order.
func (idx *Index) SpecsForRequirement(reqID string) []string {
	return idx.specsByRequirement[reqID]
}

// Dependencies returns the declared dependency edges of a specification
// in declaration order, or nil for an unknown identifier.
func (idx *Index) Dependencies(specID string) []string {
	spec, ok := idx.specifications[specID]
	if !ok {
		return nil
	}
	return spec.Dependencies
}
