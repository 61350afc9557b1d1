package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, ".", c.Project.Dir)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "traceability_matrix.xlsx", c.Export.Output)
}

func TestValidate_BadLogLevel(t *testing.T) {
	c := DefaultConfig()
	c.Log.Level = "loud"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Project:  ProjectConfig{Dir: "/srv/project"},
		Coverage: CoverageConfig{TestList: "run.log"},
	})

	assert.Equal(t, "/srv/project", base.Project.Dir)
	assert.Equal(t, "run.log", base.Coverage.TestList)
	// Untouched fields keep their defaults.
	assert.Equal(t, "info", base.Log.Level)
	assert.Equal(t, "traceability_matrix.xlsx", base.Export.Output)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reqtrace.yaml")
	content := "project:\n  dir: docs\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "docs", c.Project.Dir)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "traceability_matrix.xlsx", c.Export.Output)
}

func TestSaveToFile_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c := DefaultConfig()
	c.Coverage.TestList = "logs/tests.txt"
	require.NoError(t, c.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}
