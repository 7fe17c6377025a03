package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExtract_EmptyDirXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bills.xlsx")
	stdout, err := execute(t, "extract", t.TempDir(), "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Extracted 0 of 0 files")
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestExtract_JSONStdout(t *testing.T) {
	stdout, err := execute(t, "extract", t.TempDir(), "--format", "json", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestExtract_BadFormat(t *testing.T) {
	_, err := execute(t, "extract", t.TempDir(), "--format", "csv", "-o", "-")
	assert.Error(t, err)
}

func TestExtract_MissingDir(t *testing.T) {
	_, err := execute(t, "extract", filepath.Join(t.TempDir(), "nope"), "-o", filepath.Join(t.TempDir(), "o.xlsx"))
	assert.Error(t, err)
}

func TestExtract_JSONFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bills.json")
	_, err := execute(t, "extract", t.TempDir(), "--format", "json", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file left behind")
}
