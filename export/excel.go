// Package export renders requirements and specifications into an Excel
// traceability matrix: one sheet per entity kind, a requirement-to-
// specification matrix, and a summary sheet with traceability statistics.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/c360studio/reqtrace/model"
	"github.com/c360studio/reqtrace/trace"
)

const (
	sheetRequirements   = "Requirements"
	sheetSpecifications = "Specifications"
	sheetMatrix         = "Traceability Matrix"
	sheetSummary        = "Summary"

	requirementsHeaderColor   = "366092"
	specificationsHeaderColor = "70AD47"
)

// Exporter writes a traceability matrix workbook for one entity set.
type Exporter struct {
	requirements   []model.Requirement
	specifications []model.Specification
	index          *trace.Index
}

// NewExporter builds an exporter over the given entities.
func NewExporter(requirements []model.Requirement, specifications []model.Specification) *Exporter {
	return &Exporter{
		requirements:   requirements,
		specifications: specifications,
		index:          trace.NewIndex(requirements, specifications),
	}
}

// ExportExcel writes the workbook to path.
func (e *Exporter) ExportExcel(path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := e.writeRequirementsSheet(f); err != nil {
		return err
	}
	if err := e.writeSpecificationsSheet(f); err != nil {
		return err
	}
	if err := e.writeMatrixSheet(f); err != nil {
		return err
	}
	if err := e.writeSummarySheet(f); err != nil {
		return err
	}

	// Drop the default sheet excelize seeds new workbooks with.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeRequirementsSheet(f *excelize.File) error {
	headers := []string{"ID", "Title", "Description", "Type", "Tags", "Acceptance Criteria", "Source", "Rationale"}
	if err := newSheet(f, sheetRequirements, headers, requirementsHeaderColor); err != nil {
		return err
	}

	for i, req := range e.requirements {
		row := []any{
			req.ID,
			req.Title,
			req.Description,
			req.Category.String(),
			strings.Join(req.Tags, ", "),
			strings.Join(req.AcceptanceCriteria, "\n"),
			req.Source,
			req.Rationale,
		}
		if err := writeRow(f, sheetRequirements, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeSpecificationsSheet(f *excelize.File) error {
	headers := []string{"ID", "Title", "Description", "Related Requirements", "Implementation Unit", "Unit Test", "Design Notes", "Dependencies"}
	if err := newSheet(f, sheetSpecifications, headers, specificationsHeaderColor); err != nil {
		return err
	}

	for i, spec := range e.specifications {
		row := []any{
			spec.ID,
			spec.Title,
			spec.Description,
			strings.Join(spec.RelatedRequirements, ", "),
			spec.ImplementationUnit,
			spec.UnitTest,
			spec.DesignNotes,
			strings.Join(spec.Dependencies, ", "),
		}
		if err := writeRow(f, sheetSpecifications, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// writeMatrixSheet emits one row per requirement with the specifications
// that implement it; requirements nothing points at show as "Not Traced".
func (e *Exporter) writeMatrixSheet(f *excelize.File) error {
	headers := []string{"Requirement ID", "Requirement Title", "Type", "Specification IDs", "Implementation Units", "Unit Tests", "Status"}
	if err := newSheet(f, sheetMatrix, headers, requirementsHeaderColor); err != nil {
		return err
	}

	for i, req := range e.requirements {
		specIDs := e.index.SpecsForRequirement(req.ID)

		var units, tests []string
		for _, specID := range specIDs {
			if spec, ok := e.index.Specification(specID); ok {
				units = append(units, spec.ImplementationUnit)
				tests = append(tests, spec.UnitTest)
			}
		}

		status := "Traced"
		if len(specIDs) == 0 {
			status = "Not Traced"
		}

		row := []any{
			req.ID,
			req.Title,
			req.Category.String(),
			strings.Join(specIDs, ", "),
			strings.Join(units, ", "),
			strings.Join(tests, ", "),
			status,
		}
		if err := writeRow(f, sheetMatrix, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) writeSummarySheet(f *excelize.File) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetSummary, err)
	}

	untraced := 0
	for _, req := range e.requirements {
		if len(e.index.SpecsForRequirement(req.ID)) == 0 {
			untraced++
		}
	}

	rows := [][]any{
		{"Traceability Matrix Summary", ""},
		{"Export ID", uuid.New().String()},
		{"Generated", time.Now().Format(time.RFC3339)},
		{"Requirements", len(e.requirements)},
		{"Specifications", len(e.specifications)},
		{"Requirements without specifications", untraced},
	}
	for i, row := range rows {
		if err := writeRow(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func newSheet(f *excelize.File, name string, headers []string, headerColor string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeRow(f, name, 1, toAnySlice(headers)); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(name, "A1", last, styleID); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
