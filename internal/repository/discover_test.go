package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dbconfig/internal/files/filesystem"
	"github.com/vvka-141/dbconfig/internal/logging"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

func workspace(t *testing.T) *filesystem.AferoFileSystem {
	t.Helper()
	fs := filesystem.NewMemoryFileSystem()
	for _, dir := range []string{"/work/beta", "/work/alpha", "/work/notes", "/work/.vscode", "/work/configDeployment"} {
		require.NoError(t, fs.MkdirAll(dir))
	}
	require.NoError(t, fs.WriteFile("/work/deployment.sql", []byte("")))
	return fs
}

func TestDiscover_ImmediateSubdirectories(t *testing.T) {
	fs := workspace(t)
	resolver := &mapResolver{repos: map[string]dbconfig.Repository{
		"/work/alpha": {Name: "alpha"},
		"/work/beta":  {Name: "beta"},
	}}

	repos, err := Discover(context.Background(), fs, resolver, DiscoverOptions{
		WorkingDir: "/work",
		Exclude:    []string{"configDeployment"},
	}, logging.NewNullLogger())
	require.NoError(t, err)

	assert.Equal(t, []dbconfig.Repository{{Name: "alpha"}, {Name: "beta"}}, repos)
	assert.Equal(t, []string{"/work/alpha", "/work/beta", "/work/notes"}, resolver.asked)
}

func TestDiscover_ExplicitDirectories(t *testing.T) {
	fs := workspace(t)
	resolver := &mapResolver{repos: map[string]dbconfig.Repository{"/work/beta": {Name: "beta"}}}

	repos, err := Discover(context.Background(), fs, resolver, DiscoverOptions{
		WorkingDir: "/work",
		Dirs:       []string{"beta"},
	}, logging.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, []dbconfig.Repository{{Name: "beta"}}, repos)
	assert.Equal(t, []string{"/work/beta"}, resolver.asked)
}

func TestDiscover_ExplicitDirectoryMissing(t *testing.T) {
	fs := workspace(t)

	_, err := Discover(context.Background(), fs, &mapResolver{}, DiscoverOptions{
		WorkingDir: "/work",
		Dirs:       []string{"gamma"},
	}, logging.NewNullLogger())
	assert.ErrorIs(t, err, dbconfig.ErrInvalidConfig)

	_, err = Discover(context.Background(), fs, &mapResolver{}, DiscoverOptions{
		WorkingDir: "/work",
		Dirs:       []string{"deployment.sql"},
	}, logging.NewNullLogger())
	assert.ErrorIs(t, err, dbconfig.ErrInvalidConfig)
}

func TestDiscover_ResolverErrorStops(t *testing.T) {
	fs := workspace(t)
	boom := errors.New("boom")

	_, err := Discover(context.Background(), fs, &mapResolver{err: boom}, DiscoverOptions{WorkingDir: "/work"}, logging.NewNullLogger())
	assert.ErrorIs(t, err, boom)
}

func TestDiscover_WithGitCLIResolver(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem()
	require.NoError(t, fs.MkdirAll(repoDir))
	require.NoError(t, fs.MkdirAll("/work/scratch"))

	runner := gitRepo().on(repoDir, "show -s --pretty=%D HEAD", "HEAD -> develop\n")
	resolver := NewGitCLIResolver(runner, logging.NewNullLogger())

	repos, err := Discover(context.Background(), fs, resolver, DiscoverOptions{WorkingDir: "/work"}, logging.NewNullLogger())
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "develop", repos[0].BranchName)
	assert.Equal(t, "db-config", repos[0].Name)
}
