package billx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func names(files []InputFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a10.xls"))
	touch(t, filepath.Join(root, "a2.xls"))
	touch(t, filepath.Join(root, "a1.XLS"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "report.xlsx"))
	touch(t, filepath.Join(root, "batch", "inner", "a3.xls"))

	t.Run("recursive", func(t *testing.T) {
		files, err := Discover(root, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"a1.XLS", "a2.xls", "a3.xls", "a10.xls"}, names(files))
		for _, f := range files {
			assert.True(t, filepath.IsAbs(f.Path))
			assert.Equal(t, f.Name, filepath.Base(f.Path))
		}
	})

	t.Run("flat", func(t *testing.T) {
		files, err := Discover(root, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"a1.XLS", "a2.xls", "a10.xls"}, names(files))
	})
}

func TestDiscover_StableTies(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a", "bill1.xls"))
	touch(t, filepath.Join(root, "b", "bill01.xls"))
	touch(t, filepath.Join(root, "c", "bill1.xls"))

	files, err := Discover(root, true)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "a", "bill1.xls"), files[0].Path)
	assert.Equal(t, filepath.Join(root, "b", "bill01.xls"), files[1].Path)
	assert.Equal(t, filepath.Join(root, "c", "bill1.xls"), files[2].Path)
}

func TestDiscover_Empty(t *testing.T) {
	files, err := Discover(t.TempDir(), true)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscover_NotDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), true)
	assert.ErrorIs(t, err, ErrNotDirectory)

	file := filepath.Join(t.TempDir(), "a.xls")
	touch(t, file)
	_, err = Discover(file, true)
	assert.ErrorIs(t, err, ErrNotDirectory)
}
