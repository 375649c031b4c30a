package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colinmarc/gitcore/internal/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "gitcore-path-value")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestNewDirPathFlagWithDefault(t *testing.T) {
	t.Parallel()

	t.Run("single valid path should pass", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		p := pathutil.NewDirPathFlagWithDefault("/tmp")
		err := p.Set(path)
		assert.NoError(t, err)
		assert.Equal(t, path, p.String())
		assert.Equal(t, "path", p.Type())
	})

	t.Run("no path should use default", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		p := pathutil.NewDirPathFlagWithDefault(path)
		assert.Equal(t, path, p.String())
	})

	t.Run("invalid path should fail", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		p := pathutil.NewDirPathFlagWithDefault("/tmp")
		err := p.Set(filepath.Join(path, "doesn't exists"))
		assert.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("path should concat", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		finalPath := filepath.Join(path, "a", "b", "c")
		require.NoError(t, os.MkdirAll(finalPath, 0o755))

		p := pathutil.NewDirPathFlagWithDefault("/tmp")
		require.NoError(t, p.Set(path))
		require.NoError(t, p.Set("a"))
		require.NoError(t, p.Set("b"))
		require.NoError(t, p.Set("c"))

		assert.Equal(t, finalPath, p.String())
	})

	t.Run("empty values should be ignored", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		finalPath := filepath.Join(path, "a", "b", "c")
		require.NoError(t, os.MkdirAll(finalPath, 0o755))

		p := pathutil.NewDirPathFlagWithDefault("/tmp")
		require.NoError(t, p.Set(path))
		require.NoError(t, p.Set("a"))
		require.NoError(t, p.Set(""))
		require.NoError(t, p.Set("b"))
		require.NoError(t, p.Set(""))
		require.NoError(t, p.Set("c"))
		require.NoError(t, p.Set(""))

		assert.Equal(t, finalPath, p.String())
	})

	t.Run("absolute path should overwrite", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		fullPath := filepath.Join(path, "a", "b", "c")
		path2 := filepath.Join(path, "a", "b")
		require.NoError(t, os.MkdirAll(fullPath, 0o755))

		p := pathutil.NewDirPathFlagWithDefault("/tmp")
		require.NoError(t, p.Set(fullPath))
		require.NoError(t, p.Set(path2))

		assert.Equal(t, path2, p.String())
	})

	t.Run("should fail if path is a file", func(t *testing.T) {
		t.Parallel()

		f := tempFile(t)
		p := pathutil.NewDirPathFlagWithDefault("/tmp")
		err := p.Set(f.Name())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestNewFilePathFlagWithDefault(t *testing.T) {
	t.Parallel()

	t.Run("should fail if path is a directory", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		p := pathutil.NewFilePathFlagWithDefault("/tmp")
		err := p.Set(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("should pass if path is a file", func(t *testing.T) {
		t.Parallel()

		f := tempFile(t)
		p := pathutil.NewFilePathFlagWithDefault("/tmp")
		err := p.Set(f.Name())
		require.NoError(t, err)
	})
}

func TestNewPathFlagWithDefault(t *testing.T) {
	t.Parallel()

	t.Run("should pass if path is a directory", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		p := pathutil.NewPathFlagWithDefault("/tmp")
		err := p.Set(path)
		require.NoError(t, err)
	})

	t.Run("should pass if path is a file", func(t *testing.T) {
		t.Parallel()

		f := tempFile(t)
		p := pathutil.NewPathFlagWithDefault("/tmp")
		err := p.Set(f.Name())
		require.NoError(t, err)
	})
}
