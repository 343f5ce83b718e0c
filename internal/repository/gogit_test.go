package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dbconfig/internal/logging"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

func initRepo(t *testing.T) (string, plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	commit, err := wt.Commit("initial", &git.CommitOptions{
		AllowEmptyCommits: true,
		Author:            &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Unix(0, 0)},
	})
	require.NoError(t, err)

	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://dev.example.com/org/_git/app-db"},
	})
	require.NoError(t, err)

	for _, name := range []string{"main", "develop"} {
		ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", name), commit)
		require.NoError(t, repo.Storer.SetReference(ref))
	}
	return dir, commit
}

func TestGoGitResolver_Branch(t *testing.T) {
	dir, commit := initRepo(t)

	repo, ok, err := NewGoGitResolver(logging.NewNullLogger()).Resolve(context.Background(), dir)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "app-db", repo.Name)
	assert.Equal(t, "https://dev.example.com/org/_git/app-db", repo.RepoURL)
	assert.Equal(t, "master", repo.BranchName)
	assert.Equal(t, []string{"develop", "main"}, repo.RemoteBranches)
	assert.Equal(t, commit.String(), repo.LatestCommit)
}

func TestGoGitResolver_DetachedHead(t *testing.T) {
	dir, commit := initRepo(t)

	r, err := git.PlainOpen(dir)
	require.NoError(t, err)
	require.NoError(t, r.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, commit)))

	repo, ok, err := NewGoGitResolver(logging.NewNullLogger()).Resolve(context.Background(), dir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "develop", repo.BranchName, "first remote branch at HEAD")
}

func TestGoGitResolver_NotARepository(t *testing.T) {
	_, ok, err := NewGoGitResolver(logging.NewNullLogger()).Resolve(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGoGitResolver_NoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, _, err = NewGoGitResolver(logging.NewNullLogger()).Resolve(context.Background(), dir)
	assert.ErrorIs(t, err, dbconfig.ErrRepository)
}
