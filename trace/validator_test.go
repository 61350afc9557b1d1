package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/reqtrace/model"
)

func req(id string) model.Requirement {
	return model.Requirement{
		ID:                 id,
		Title:              "title " + id,
		Description:        "description",
		Category:           model.CategoryFunctional,
		AcceptanceCriteria: []string{"criterion"},
	}
}

func spec(id string, related []string, deps []string) model.Specification {
	return model.Specification{
		ID:                  id,
		Title:               "title " + id,
		Description:         "description",
		RelatedRequirements: related,
		ImplementationUnit:  "src/unit.py",
		UnitTest:            "tests/test_unit.py",
		Dependencies:        deps,
	}
}

func TestValidateCrossReferences_Valid(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{spec("SPEC-001", []string{"REQ-001"}, nil)},
	)

	result := v.ValidateCrossReferences()
	assert.True(t, result.OK())
	assert.Empty(t, result.Errors)
}

func TestValidateCrossReferences_DanglingRequirement(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{spec("SPEC-001", []string{"REQ-001", "REQ-999"}, nil)},
	)

	result := v.ValidateCrossReferences()
	require.False(t, result.OK())
	assert.Equal(t, []string{
		"Specification SPEC-001 references non-existent requirement REQ-999",
	}, result.Errors)
}

func TestValidateCrossReferences_DanglingDependency(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{spec("SPEC-001", []string{"REQ-001"}, []string{"SPEC-404"})},
	)

	result := v.ValidateCrossReferences()
	require.False(t, result.OK())
	assert.Equal(t, []string{
		"Specification SPEC-001 depends on non-existent specification SPEC-404",
	}, result.Errors)
}

func TestValidateCrossReferences_ThreeNodeCycle(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{
			spec("SPEC-A", []string{"REQ-001"}, []string{"SPEC-B"}),
			spec("SPEC-B", []string{"REQ-001"}, []string{"SPEC-C"}),
			spec("SPEC-C", []string{"REQ-001"}, []string{"SPEC-A"}),
		},
	)

	result := v.ValidateCrossReferences()
	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t,
		"Circular dependency detected: SPEC-A -> SPEC-B -> SPEC-C -> SPEC-A",
		result.Errors[0])
}

func TestValidateCrossReferences_MutualCycle(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{
			spec("SPEC-1", []string{"REQ-001"}, []string{"SPEC-2"}),
			spec("SPEC-2", []string{"REQ-001"}, []string{"SPEC-1"}),
		},
	)

	result := v.ValidateCrossReferences()
	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t,
		"Circular dependency detected: SPEC-1 -> SPEC-2 -> SPEC-1",
		result.Errors[0])
}

func TestValidateCrossReferences_SelfDependency(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{
			spec("SPEC-1", []string{"REQ-001"}, []string{"SPEC-1"}),
		},
	)

	result := v.ValidateCrossReferences()
	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Circular dependency detected: SPEC-1 -> SPEC-1", result.Errors[0])
}

func TestValidateCrossReferences_CycleWithUnknownDependency(t *testing.T) {
	// The dangling edge is reported once as a dangling dependency; the
	// cycle walk treats the unknown node as a leaf and still terminates.
	v := NewValidator(
		nil,
		[]model.Specification{
			spec("SPEC-1", nil, []string{"SPEC-404", "SPEC-2"}),
			spec("SPEC-2", nil, []string{"SPEC-1"}),
		},
	)

	result := v.ValidateCrossReferences()
	require.False(t, result.OK())
	assert.Equal(t, []string{
		"Specification SPEC-1 depends on non-existent specification SPEC-404",
		"Circular dependency detected: SPEC-1 -> SPEC-2 -> SPEC-1",
	}, result.Errors)
}

func TestValidateCrossReferences_SharedTailNotReExplored(t *testing.T) {
	// SPEC-3 depends on SPEC-1 which is already fully visited; no cycle.
	v := NewValidator(
		nil,
		[]model.Specification{
			spec("SPEC-1", nil, []string{"SPEC-2"}),
			spec("SPEC-2", nil, nil),
			spec("SPEC-3", nil, []string{"SPEC-1"}),
		},
	)

	result := v.ValidateCrossReferences()
	assert.True(t, result.OK())
}

func TestValidateCrossReferences_Idempotent(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{
			spec("SPEC-1", []string{"REQ-X"}, []string{"SPEC-2"}),
			spec("SPEC-2", []string{"REQ-001"}, []string{"SPEC-1"}),
		},
	)

	first := v.ValidateCrossReferences()
	second := v.ValidateCrossReferences()
	assert.Equal(t, first, second)
}

func TestMissingRequirementLinks(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-A")},
		[]model.Specification{
			spec("SPEC-1", []string{"REQ-A"}, nil),
			spec("SPEC-2", []string{"REQ-X"}, []string{"SPEC-1"}),
		},
	)

	links := v.MissingRequirementLinks()
	require.Len(t, links, 1)
	assert.Equal(t, MissingLink{SpecID: "SPEC-2", RequirementID: "REQ-X"}, links[0])

	// Same condition, error view: exactly one error and no cycle errors.
	result := v.ValidateCrossReferences()
	require.Len(t, result.Errors, 1)
	assert.Equal(t,
		"Specification SPEC-2 references non-existent requirement REQ-X",
		result.Errors[0])
}

func TestMissingRequirementLinks_Empty(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{spec("SPEC-001", []string{"REQ-001"}, nil)},
	)
	assert.Empty(t, v.MissingRequirementLinks())
}

func TestUntracedRequirements(t *testing.T) {
	v := NewValidator(
		[]model.Requirement{req("REQ-001"), req("REQ-002"), req("REQ-003")},
		[]model.Specification{
			spec("SPEC-001", []string{"REQ-001", "REQ-003"}, nil),
		},
	)
	assert.Equal(t, []string{"REQ-002"}, v.UntracedRequirements())
}

func TestIndex_DuplicateIdentifiersLastWriteWins(t *testing.T) {
	first := req("REQ-001")
	first.Title = "first"
	second := req("REQ-001")
	second.Title = "second"

	idx := NewIndex([]model.Requirement{first, second}, nil)
	got, ok := idx.Requirement("REQ-001")
	require.True(t, ok)
	assert.Equal(t, "second", got.Title)
	assert.Equal(t, []string{"REQ-001"}, idx.RequirementIDs())
}

func TestIndex_SpecsForRequirementOrder(t *testing.T) {
	idx := NewIndex(
		[]model.Requirement{req("REQ-001")},
		[]model.Specification{
			spec("SPEC-002", []string{"REQ-001"}, nil),
			spec("SPEC-001", []string{"REQ-001"}, nil),
		},
	)
	assert.Equal(t, []string{"SPEC-002", "SPEC-001"}, idx.SpecsForRequirement("REQ-001"))
}
