package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/c360studio/reqtrace/model"
)

func TestExportExcel(t *testing.T) {
	requirements := []model.Requirement{
		{
			ID:                 "REQ-001",
			Title:              "Authenticate users",
			Description:        "desc",
			Category:           model.CategorySecurity,
			AcceptanceCriteria: []string{"a", "b"},
			Tags:               []string{"auth"},
		},
		{
			ID:                 "REQ-002",
			Title:              "Orphan requirement",
			Description:        "desc",
			Category:           model.CategoryFunctional,
			AcceptanceCriteria: []string{"c"},
		},
	}
	specifications := []model.Specification{
		{
			ID:                  "SPEC-001",
			Title:               "Auth implementation",
			Description:         "desc",
			RelatedRequirements: []string{"REQ-001"},
			ImplementationUnit:  "src/auth.py",
			UnitTest:            "tests/test_auth.py",
		},
	}

	path := filepath.Join(t.TempDir(), "matrix.xlsx")
	require.NoError(t, NewExporter(requirements, specifications).ExportExcel(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t,
		[]string{"Requirements", "Specifications", "Traceability Matrix", "Summary"},
		f.GetSheetList())

	id, err := f.GetCellValue("Requirements", "A2")
	require.NoError(t, err)
	assert.Equal(t, "REQ-001", id)

	unit, err := f.GetCellValue("Specifications", "E2")
	require.NoError(t, err)
	assert.Equal(t, "src/auth.py", unit)

	status, err := f.GetCellValue("Traceability Matrix", "G2")
	require.NoError(t, err)
	assert.Equal(t, "Traced", status)

	orphanStatus, err := f.GetCellValue("Traceability Matrix", "G3")
	require.NoError(t, err)
	assert.Equal(t, "Not Traced", orphanStatus)

	untraced, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.Equal(t, "1", untraced)
}
