package filesystem

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ FileSystem = (*AferoFileSystem)(nil)

func TestMemoryFileSystem_WalkIsLexical(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/work/repo/b.json", []byte("{}")))
	require.NoError(t, mfs.WriteFile("/work/repo/a/z.json", []byte("{}")))
	require.NoError(t, mfs.WriteFile("/work/repo/a/y.json", []byte("{}")))

	dir, err := mfs.Open("/work/repo")
	require.NoError(t, err)

	var files []string
	err = dir.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/y.json", "a/z.json", "b.json"}, files)
}

func TestMemoryFileSystem_WalkSkipDir(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/repo/.git/config.json", []byte("{}")))
	require.NoError(t, mfs.WriteFile("/repo/app.json", []byte("{}")))

	dir, err := mfs.Open("/repo")
	require.NoError(t, err)

	var seen []string
	err = dir.Walk(func(f File, err error) error {
		if f.Info().IsDir() && f.Info().Name() == ".git" {
			return filepath.SkipDir
		}
		if !f.Info().IsDir() {
			seen = append(seen, f.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.json"}, seen)
}

func TestMemoryFileSystem_WalkRecoversPanics(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/repo/app.json", []byte("{}")))

	dir, err := mfs.Open("/repo")
	require.NoError(t, err)

	err = dir.Walk(func(f File, err error) error {
		if !f.Info().IsDir() {
			panic("boom")
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMemoryFileSystem_WalkStopsOnError(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/repo/a.json", []byte("{}")))
	require.NoError(t, mfs.WriteFile("/repo/b.json", []byte("{}")))

	dir, err := mfs.Open("/repo")
	require.NoError(t, err)

	stop := errors.New("stop")
	count := 0
	err = dir.Walk(func(f File, err error) error {
		if !f.Info().IsDir() {
			count++
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}

func TestMemoryFileSystem_OpenErrors(t *testing.T) {
	mfs := NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("/repo/a.json", []byte("{}")))

	_, err := mfs.Open("/missing")
	assert.Error(t, err)

	_, err = mfs.Open("/repo/a.json")
	assert.ErrorContains(t, err, "not a directory")
}

func TestMemoryFileSystem_WriteReadRemove(t *testing.T) {
	mfs := NewMemoryFileSystem()

	require.NoError(t, mfs.WriteFile("/out/configs/x.sql", []byte("select 1 from dual;")))
	content, err := mfs.ReadFile("/out/configs/x.sql")
	require.NoError(t, err)
	assert.Equal(t, "select 1 from dual;", string(content))

	entries, err := mfs.ReadDir("/out")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "configs", entries[0].Name())

	require.NoError(t, mfs.RemoveAll("/out"))
	exists, err := mfs.Exists("/out/configs/x.sql")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mfs.RemoveAll("/never-created"))
}

func TestOSFileSystem_RoundTrip(t *testing.T) {
	root := t.TempDir()
	osfs := NewOSFileSystem()

	path := filepath.Join(root, "nested", "file.sql")
	require.NoError(t, osfs.WriteFile(path, []byte("x")))

	dir, err := osfs.Open(root)
	require.NoError(t, err)

	var rel []string
	require.NoError(t, dir.Walk(func(f File, err error) error {
		if err != nil {
			return err
		}
		if !f.Info().IsDir() {
			rel = append(rel, f.RelativePath())
		}
		return nil
	}))
	assert.Equal(t, []string{"nested/file.sql"}, rel)
}
