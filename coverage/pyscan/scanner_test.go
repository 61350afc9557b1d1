package pyscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, code string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestTestFunctions_TopLevel(t *testing.T) {
	code := `"""Tests for authentication."""

def test_login():
    assert True

def test_logout():
    assert True

def helper():
    pass
`
	path := writeFile(t, "test_auth.py", code)

	s := NewScanner(nil)
	functions := s.TestFunctions(context.Background(), path)

	if len(functions) != 2 {
		t.Fatalf("functions = %v, want 2 entries", functions)
	}
	if !functions["test_login"] || !functions["test_logout"] {
		t.Errorf("missing expected functions: %v", functions)
	}
	if functions["helper"] {
		t.Error("helper should not be collected")
	}
}

func TestTestFunctions_NestedAndMethods(t *testing.T) {
	code := `class TestAuth:
    def test_valid_credentials(self):
        assert True

    def setup_method(self):
        pass

def test_outer():
    def test_inner():
        pass
    test_inner()
`
	path := writeFile(t, "test_nested.py", code)

	s := NewScanner(nil)
	functions := s.TestFunctions(context.Background(), path)

	for _, want := range []string{"test_valid_credentials", "test_outer", "test_inner"} {
		if !functions[want] {
			t.Errorf("missing %s in %v", want, functions)
		}
	}
	if functions["setup_method"] {
		t.Error("setup_method should not be collected")
	}
}

func TestTestFunctions_MissingFile(t *testing.T) {
	s := NewScanner(nil)
	functions := s.TestFunctions(context.Background(), filepath.Join(t.TempDir(), "nope.py"))
	if len(functions) != 0 {
		t.Errorf("functions = %v, want empty", functions)
	}
}

func TestTestFunctions_MalformedSourceFallsBack(t *testing.T) {
	// Broken enough that the structural parse reports errors; the line
	// pattern still finds the well-formed definitions.
	code := `def test_working():
    pass

def broken(:
    ???

def test_also_working():
    pass
`
	path := writeFile(t, "test_broken.py", code)

	s := NewScanner(nil)
	functions := s.TestFunctions(context.Background(), path)

	if !functions["test_working"] || !functions["test_also_working"] {
		t.Errorf("fallback missed functions: %v", functions)
	}
}

func TestScanPattern_MatchesIndentedDefs(t *testing.T) {
	content := []byte("class T:\n    def test_indented(self):\n        pass\ndef not_a_test():\n    pass\n")
	functions := scanPattern(content)
	if !functions["test_indented"] {
		t.Errorf("scanPattern = %v, want test_indented", functions)
	}
	if len(functions) != 1 {
		t.Errorf("scanPattern = %v, want exactly one entry", functions)
	}
}
