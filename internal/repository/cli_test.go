package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dbconfig/internal/logging"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

const (
	repoDir = "/work/db"
	sha     = "0123456789abcdef0123456789abcdef01234567"
)

func gitRepo() *fakeRunner {
	return newFakeRunner().
		on(repoDir, "status", "On branch main\n").
		on(repoDir, "log -n 1 --pretty=format:%H", sha).
		on(repoDir, "remote show origin", remoteShowOutput)
}

func TestNewGitCLIResolver_NilArgs(t *testing.T) {
	assert.Panics(t, func() { NewGitCLIResolver(nil, logging.NewNullLogger()) })
	assert.Panics(t, func() { NewGitCLIResolver(newFakeRunner(), nil) })
}

func TestGitCLIResolver_BranchTip(t *testing.T) {
	runner := gitRepo().on(repoDir, "show -s --pretty=%D HEAD", "HEAD -> main, origin/main\n")
	r := NewGitCLIResolver(runner, logging.NewNullLogger())

	repo, ok, err := r.Resolve(context.Background(), repoDir)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, dbconfig.Repository{
		Name:           "db-config",
		Path:           repoDir,
		BranchName:     "main",
		RepoURL:        "https://dev.example.com/org/project/_git/db-config",
		RemoteBranches: []string{"develop", "main", "release/2.0"},
		LatestCommit:   sha,
	}, repo)
	assert.Zero(t, runner.count(repoDir+"|branch -r --contains "+sha))
}

func TestGitCLIResolver_DetachedHeadFallsBackToContainingBranch(t *testing.T) {
	runner := gitRepo().
		on(repoDir, "show -s --pretty=%D HEAD", "HEAD\n").
		on(repoDir, "branch -r --contains "+sha, "  origin/release/2.0\n")
	r := NewGitCLIResolver(runner, logging.NewNullLogger())

	repo, ok, err := r.Resolve(context.Background(), repoDir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "release/2.0", repo.BranchName)
}

func TestGitCLIResolver_UnknownBranch(t *testing.T) {
	runner := gitRepo().on(repoDir, "show -s --pretty=%D HEAD", "HEAD\n")
	r := NewGitCLIResolver(runner, logging.NewNullLogger())

	repo, ok, err := r.Resolve(context.Background(), repoDir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, dbconfig.UnknownBranch, repo.BranchName)
}

func TestGitCLIResolver_NotARepository(t *testing.T) {
	r := NewGitCLIResolver(newFakeRunner(), logging.NewNullLogger())

	repo, ok, err := r.Resolve(context.Background(), "/work/notes")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, repo)
}

func TestGitCLIResolver_MissingRemoteIsRepositoryError(t *testing.T) {
	runner := newFakeRunner().
		on(repoDir, "status", "").
		on(repoDir, "log -n 1 --pretty=format:%H", sha)
	r := NewGitCLIResolver(runner, logging.NewNullLogger())

	_, ok, err := r.Resolve(context.Background(), repoDir)
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, dbconfig.ErrRepository)
	assert.Equal(t, dbconfig.ExitRepositoryError, dbconfig.ExitCodeForError(err))
}

func TestGitCLIResolver_ConcurrentCallsAgree(t *testing.T) {
	runner := gitRepo().on(repoDir, "show -s --pretty=%D HEAD", "HEAD -> main\n")
	r := NewGitCLIResolver(runner, logging.NewNullLogger())

	var wg sync.WaitGroup
	results := make([]dbconfig.Repository, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo, _, err := r.Resolve(context.Background(), repoDir)
			assert.NoError(t, err)
			results[i] = repo
		}(i)
	}
	wg.Wait()

	for _, repo := range results {
		assert.Equal(t, results[0], repo)
	}
}
