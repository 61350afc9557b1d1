package coverage

import "strings"

// parseTestList extracts executed-test candidates from the raw text of a
// test-run log. The log format is free: plain paths, runner-style
// "path::function" references, or prose. Each non-blank, non-comment
// line is classified in order:
//
//   - a line starting with "tests/" or "test" is taken whole;
//   - a line containing "::" contributes the part before the first "::";
//   - a line ending in ".py" is taken whole;
//   - a line containing "test" anywhere (case-insensitive) is taken whole.
//
// The last rule is deliberately loose and can pull in unrelated log
// lines; it is kept for compatibility with logs that only mention test
// files mid-sentence.
func parseTestList(content string) map[string]bool {
	executed := make(map[string]bool)

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "tests/") || strings.HasPrefix(line, "test"):
			executed[line] = true
		case strings.Contains(line, "::"):
			executed[line[:strings.Index(line, "::")]] = true
		case strings.HasSuffix(line, ".py"):
			executed[line] = true
		case strings.Contains(strings.ToLower(line), "test"):
			executed[line] = true
		}
	}

	return executed
}

// functionCovered reports whether a declared test file + function pair is
// confirmed by the executed-test set. Three strategies, tried in order,
// any match short-circuits:
//
//  1. the exact "path::function" form appears verbatim;
//  2. that form appears as a substring of some executed entry;
//  3. the bare path and the bare function name both appear as substrings
//     of the same executed entry.
func functionCovered(testPath, function string, executed map[string]bool) bool {
	ref := testPath + "::" + function

	if executed[ref] {
		return true
	}
	for entry := range executed {
		if strings.Contains(entry, ref) {
			return true
		}
		if strings.Contains(entry, testPath) && strings.Contains(entry, function) {
			return true
		}
	}
	return false
}
