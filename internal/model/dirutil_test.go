package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDirPreview(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	preview := GetDirPreview(dir, 0)
	assert.Empty(t, preview.ErrorMsg)
	assert.Equal(t, 3, preview.Total)
	assert.False(t, preview.Truncated)
	assert.Contains(t, preview.Names, "a.txt")
	assert.Contains(t, preview.Names, "sub/")
}

func TestGetDirPreviewTruncates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	preview := GetDirPreview(dir, 2)
	assert.True(t, preview.Truncated)
	assert.Len(t, preview.Names, 2)
	assert.Equal(t, 4, preview.Total)
}

func TestGetDirPreviewMissingDir(t *testing.T) {
	preview := GetDirPreview(filepath.Join(t.TempDir(), "nope"), 0)
	assert.NotEmpty(t, preview.ErrorMsg)
	assert.Empty(t, preview.Names)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "bin"), ExpandTilde("~/bin"))
	assert.Equal(t, "/usr/bin", ExpandTilde("/usr/bin"))
}
