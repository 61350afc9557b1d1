package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection_SingleNumbers(t *testing.T) {
	indexes, err := parseSelection("1,3,5", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, indexes)
}

func TestParseSelection_Ranges(t *testing.T) {
	indexes, err := parseSelection("1-3,5", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4}, indexes)
}

func TestParseSelection_OutOfBoundsDropped(t *testing.T) {
	indexes, err := parseSelection("0,2,9", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, indexes)
}

func TestParseSelection_Invalid(t *testing.T) {
	_, err := parseSelection("one,two", 3)
	assert.Error(t, err)
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"REQ-1", "REQ-2"}, splitIDs(" REQ-1 , REQ-2 ,"))
	assert.Empty(t, splitIDs("  "))
}

func TestDocumentFileName(t *testing.T) {
	assert.Equal(t, "req_sys_001.yaml", documentFileName("REQ-SYS-001"))
}
