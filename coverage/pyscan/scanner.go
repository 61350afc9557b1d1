// Package pyscan enumerates pytest-style test functions in Python source
// files using tree-sitter, with a line-pattern fallback for source the
// structural parse cannot handle.
package pyscan

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// TestPrefix is the naming convention for test functions.
const TestPrefix = "test_"

// fallbackPattern matches "def test_xxx(" at any indentation, mirroring
// what the structural walk finds on well-formed source.
var fallbackPattern = regexp.MustCompile(`(?m)^\s*def\s+(test_\w+)\s*\(`)

// Scanner extracts test function names from Python files.
type Scanner struct {
	parser *sitter.Parser
	logger *slog.Logger
}

// NewScanner creates a scanner with the Python grammar loaded.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Scanner{parser: p, logger: logger}
}

// TestFunctions returns the names of all functions in the file whose name
// starts with TestPrefix, including nested definitions. A path that does
// not exist or cannot be read yields an empty set: a specification may
// declare a test file that has not been written yet, and that is a
// coverage finding, not an error. Parse trouble triggers the pattern
// fallback instead of propagating.
func (s *Scanner) TestFunctions(ctx context.Context, path string) map[string]bool {
	functions := make(map[string]bool)

	content, err := os.ReadFile(path)
	if err != nil {
		return functions
	}

	tree, err := s.parser.ParseCtx(ctx, nil, content)
	if err != nil || tree == nil {
		s.logger.Debug("structural parse failed, using pattern fallback",
			slog.String("path", path))
		return scanPattern(content)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		s.logger.Debug("source has syntax errors, using pattern fallback",
			slog.String("path", path))
		return scanPattern(content)
	}

	collectTestFunctions(root, content, functions)
	return functions
}

// collectTestFunctions walks the whole tree so nested test functions
// (inside classes or other functions) are found too.
func collectTestFunctions(node *sitter.Node, content []byte, out map[string]bool) {
	if node.Type() == "function_definition" {
		if name := node.ChildByFieldName("name"); name != nil {
			text := name.Content(content)
			if strings.HasPrefix(text, TestPrefix) {
				out[text] = true
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectTestFunctions(node.NamedChild(i), content, out)
	}
}

func scanPattern(content []byte) map[string]bool {
	functions := make(map[string]bool)
	for _, match := range fallbackPattern.FindAllSubmatch(content, -1) {
		functions[string(match[1])] = true
	}
	return functions
}
