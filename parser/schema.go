package parser

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/c360studio/reqtrace/model"
)

//go:embed schemas/requirement.json
var requirementSchema []byte

//go:embed schemas/specification.json
var specificationSchema []byte

// SchemaValidator checks document shape against the embedded requirement
// and specification schemas. Schemas are compiled once at construction
// and the validator is injected wherever shape checking is needed; there
// is no process-wide schema cache.
type SchemaValidator struct {
	requirement   *gojsonschema.Schema
	specification *gojsonschema.Schema
}

// NewSchemaValidator compiles the embedded schemas.
func NewSchemaValidator() (*SchemaValidator, error) {
	req, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(requirementSchema))
	if err != nil {
		return nil, fmt.Errorf("compile requirement schema: %w", err)
	}
	spec, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(specificationSchema))
	if err != nil {
		return nil, fmt.Errorf("compile specification schema: %w", err)
	}
	return &SchemaValidator{requirement: req, specification: spec}, nil
}

// ValidateRequirement checks a requirement against the schema.
func (v *SchemaValidator) ValidateRequirement(req model.Requirement) model.ValidationResult {
	return validateAgainst(v.requirement, req)
}

// ValidateSpecification checks a specification against the schema.
func (v *SchemaValidator) ValidateSpecification(spec model.Specification) model.ValidationResult {
	return validateAgainst(v.specification, spec)
}

func validateAgainst(schema *gojsonschema.Schema, doc any) model.ValidationResult {
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return model.InvalidResult(err.Error())
	}
	if result.Valid() {
		return model.ValidResult()
	}
	errors := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errors = append(errors, e.String())
	}
	return model.ResultFromErrors(errors)
}
