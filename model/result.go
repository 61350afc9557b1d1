package model

// ValidationResult is the outcome of a validation pass: a pass/fail flag
// plus the ordered error messages that were accumulated. Results are
// value types; callers treat them as immutable.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidResult returns a passing result with no errors.
func ValidResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// InvalidResult returns a failing result carrying the given errors.
func InvalidResult(errors ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: errors}
}

// ResultFromErrors builds a result that passes iff no errors accumulated.
func ResultFromErrors(errors []string) ValidationResult {
	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// OK reports whether validation passed.
func (r ValidationResult) OK() bool {
	return r.Valid
}
