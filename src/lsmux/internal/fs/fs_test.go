package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp")
	fs := New()
	dir, err := fs.UserCacheDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, dir)
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(filepath.Join(dir, "foo/bar"))
	assert.NoError(t, err)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fs := New()

	t.Run("exists", func(t *testing.T) {
		p := filepath.Join(dir, "present")
		require.NoError(t, fs.WriteFile(p, "x"))
		result, err := fs.FileExists(p)
		assert.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("does not exist", func(t *testing.T) {
		result, err := fs.FileExists(filepath.Join(dir, "missing"))
		assert.NoError(t, err)
		assert.False(t, result)
	})

	t.Run("directory", func(t *testing.T) {
		result, err := fs.FileExists(dir)
		assert.NoError(t, err)
		assert.False(t, result)
	})
}

func TestReadWriteRemove(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	p := filepath.Join(dir, "file.txt")

	require.NoError(t, fs.WriteFile(p, "contents"))
	data, err := fs.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))
	assert.NoError(t, fs.Remove(p))
	_, err = fs.ReadFile(p)
	assert.Error(t, err)
}

func TestTempFile(t *testing.T) {
	fs := New()
	f, err := fs.TempFile(t.TempDir(), "session-*.log")
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, filepath.Base(f.Name()), "session-")
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	require.NoError(t, fs.WriteFile(filepath.Join(dir, "a.zip"), ""))
	require.NoError(t, fs.WriteFile(filepath.Join(dir, "b.txt"), ""))

	matches, err := fs.Glob(filepath.Join(dir, "*.zip"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.zip")}, matches)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, fs.WriteFile(src, "binary"))

	t.Run("success", func(t *testing.T) {
		require.NoError(t, fs.CopyFile(src, dst, 0755))
		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
		data, err := fs.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "binary", string(data))
	})

	t.Run("missing source", func(t *testing.T) {
		assert.Error(t, fs.CopyFile(filepath.Join(dir, "missing"), dst, 0755))
	})
}

func TestLookPath(t *testing.T) {
	fs := New()
	_, err := fs.LookPath("definitely-not-a-real-binary-name")
	assert.Error(t, err)
}
