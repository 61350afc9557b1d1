package coverage

import "sort"

// Report holds the outcome of one coverage analysis: which declared
// unit-test files were confirmed executed, which were not, and the
// per-file function breakdown behind that classification.
type Report struct {
	testedUnits       map[string]bool
	untestedUnits     map[string]bool
	testedFunctions   map[string]map[string]bool
	untestedFunctions map[string]map[string]bool
}

func newReport() *Report {
	return &Report{
		testedUnits:       make(map[string]bool),
		untestedUnits:     make(map[string]bool),
		testedFunctions:   make(map[string]map[string]bool),
		untestedFunctions: make(map[string]map[string]bool),
	}
}

// TestedUnits returns the sorted paths of unit-test files with at least
// one confirmed-executed test function.
func (r *Report) TestedUnits() []string {
	return sortedKeys(r.testedUnits)
}

// UntestedUnits returns the sorted paths of unit-test files with no
// confirmed-executed test function.
func (r *Report) UntestedUnits() []string {
	return sortedKeys(r.untestedUnits)
}

// TestedFunctions returns the confirmed-executed functions per file,
// sorted within each file.
func (r *Report) TestedFunctions() map[string][]string {
	return sortedFunctionMap(r.testedFunctions)
}

// UntestedFunctions returns the functions not found in the test list per
// file, sorted within each file. A file can appear here and in
// TestedFunctions at once: partial coverage keeps the missing functions
// for diagnostics.
func (r *Report) UntestedFunctions() map[string][]string {
	return sortedFunctionMap(r.untestedFunctions)
}

// CoveragePercentage is tested files over all declared files, as a
// percentage. Zero declared files is a vacuous pass: 100.0.
func (r *Report) CoveragePercentage() float64 {
	total := len(r.testedUnits) + len(r.untestedUnits)
	if total == 0 {
		return 100.0
	}
	return float64(len(r.testedUnits)) / float64(total) * 100
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFunctionMap(m map[string]map[string]bool) map[string][]string {
	out := make(map[string][]string, len(m))
	for file, functions := range m {
		out[file] = sortedKeys(functions)
	}
	return out
}
