package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTestList_Classification(t *testing.T) {
	content := `# comment line

tests/test_auth.py
test_standalone.py
src/tests/test_api.py::test_get PASSED
module/test_util.py
Running Tests for the payment module
completely unrelated line
`
	executed := parseTestList(content)

	assert.True(t, executed["tests/test_auth.py"], "tests/ prefix taken whole")
	assert.True(t, executed["test_standalone.py"], "test prefix taken whole")
	assert.True(t, executed["src/tests/test_api.py"], ":: split keeps the path part")
	assert.True(t, executed["module/test_util.py"], ".py suffix taken whole")
	assert.True(t, executed["Running Tests for the payment module"], "loose 'test' fallback")
	assert.False(t, executed["completely unrelated line"])
	assert.False(t, executed["# comment line"])
}

func TestParseTestList_Empty(t *testing.T) {
	assert.Empty(t, parseTestList(""))
	assert.Empty(t, parseTestList("\n\n# only comments\n"))
}

func TestParseTestList_SplitsOnFirstSeparator(t *testing.T) {
	executed := parseTestList("src/pkg/file.py::TestClass::test_method")
	assert.True(t, executed["src/pkg/file.py"])
	assert.Len(t, executed, 1)
}

func TestFunctionCovered_Exact(t *testing.T) {
	executed := map[string]bool{"tests/test_auth.py::test_login": true}
	assert.True(t, functionCovered("tests/test_auth.py", "test_login", executed))
	assert.False(t, functionCovered("tests/test_auth.py", "test_logout", executed))
}

func TestFunctionCovered_Containment(t *testing.T) {
	executed := map[string]bool{"tests/test_auth.py::test_login PASSED [ 50%]": true}
	assert.True(t, functionCovered("tests/test_auth.py", "test_login", executed))
}

func TestFunctionCovered_PathAndNameCoOccur(t *testing.T) {
	executed := map[string]bool{"ran test_login from tests/test_auth.py today": true}
	assert.True(t, functionCovered("tests/test_auth.py", "test_login", executed))

	// Path alone in the entry is not enough.
	executed = map[string]bool{"ran everything in tests/test_auth.py": true}
	assert.False(t, functionCovered("tests/test_auth.py", "test_login", executed))
}
