// Package coverage determines which specification-declared unit tests
// were actually exercised, by cross-checking the test functions present
// in each declared test file against the raw text of a test-run log.
package coverage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/c360studio/reqtrace/coverage/pyscan"
	"github.com/c360studio/reqtrace/model"
)

// ErrTestListNotFound reports a missing test-run log. Unlike a missing
// unit-test file, which is a coverage finding, a missing log makes the
// whole analysis meaningless, so this is fatal.
var ErrTestListNotFound = errors.New("test list file not found")

// Analyzer computes unit-test coverage for a set of specifications.
// Construct one per analysis run; it holds no state across runs.
type Analyzer struct {
	root      string
	unitTests []string
	scanner   *pyscan.Scanner
	logger    *slog.Logger
}

// NewAnalyzer builds an analyzer over the unit-test files declared by the
// given specifications. Duplicate declarations collapse to one entry in
// first-seen order. Relative unit-test paths are resolved against root
// when reading files from disk; the declared form is kept for matching
// against the log and for report keys.
func NewAnalyzer(root string, specifications []model.Specification, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]bool)
	var unitTests []string
	for _, spec := range specifications {
		if !seen[spec.UnitTest] {
			seen[spec.UnitTest] = true
			unitTests = append(unitTests, spec.UnitTest)
		}
	}

	return &Analyzer{
		root:      root,
		unitTests: unitTests,
		scanner:   pyscan.NewScanner(logger),
		logger:    logger,
	}
}

// AnalyzeTestList reads the test-run log at testListPath and classifies
// every declared unit-test file and its test functions as covered or
// missing. A file with no discoverable test functions (including a file
// that does not exist) is untested outright: nothing can prove its
// execution. A file with at least one covered function counts as tested,
// with its missing functions retained for diagnostics.
func (a *Analyzer) AnalyzeTestList(ctx context.Context, testListPath string) (*Report, error) {
	content, err := os.ReadFile(testListPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTestListNotFound, testListPath)
		}
		return nil, fmt.Errorf("read test list: %w", err)
	}

	executed := parseTestList(string(content))
	a.logger.Debug("parsed test list",
		slog.String("path", testListPath),
		slog.Int("entries", len(executed)))

	report := newReport()

	for _, unitTest := range a.unitTests {
		functions := a.scanner.TestFunctions(ctx, a.resolve(unitTest))
		if len(functions) == 0 {
			report.untestedUnits[unitTest] = true
			continue
		}

		covered := make(map[string]bool)
		missing := make(map[string]bool)
		for fn := range functions {
			if functionCovered(unitTest, fn, executed) {
				covered[fn] = true
			} else {
				missing[fn] = true
			}
		}

		// Partial coverage counts as tested at the file level; the
		// missing functions stay in the report for diagnostics.
		if len(covered) > 0 {
			report.testedUnits[unitTest] = true
			report.testedFunctions[unitTest] = covered
			if len(missing) > 0 {
				report.untestedFunctions[unitTest] = missing
			}
		} else {
			report.untestedUnits[unitTest] = true
			report.untestedFunctions[unitTest] = missing
		}
	}

	return report, nil
}

// UnitTests returns the declared unit-test paths in first-seen order.
func (a *Analyzer) UnitTests() []string {
	return a.unitTests
}

func (a *Analyzer) resolve(unitTest string) string {
	if a.root == "" || filepath.IsAbs(unitTest) {
		return unitTest
	}
	return filepath.Join(a.root, unitTest)
}
