package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	globalFlags.workDir = "."
	globalFlags.gitBackend = ""
	globalFlags.repositories = nil
	globalFlags.templateDir = ""
	globalFlags.dataOwner = ""
	generateFlags.scriptRoot = ""
	generateFlags.deploymentScript = ""
	generateFlags.dryRun = false
}

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// workspace creates a working directory holding one git repository,
// app-db, with an origin remote and the given files.
func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	work := t.TempDir()
	dir := filepath.Join(work, "app-db")

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	head, err := wt.Commit("initial", &git.CommitOptions{
		AllowEmptyCommits: true,
		Author:            &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Unix(0, 0)},
	})
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{"https://dev.example.com/org/_git/app-db"}})
	require.NoError(t, err)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "master"), head)))

	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(work, "notes"), 0755))
	return work
}

var validFiles = map[string]string{
	"owner.json":             `{"dataOwnerUserId": "OWNER"}`,
	"users/app.user.json":    `{"name": "app", "passwordType": "PipelineVariable", "profile": "INL_LUA"}`,
	"grants.privileges.json": `[{"grant": "select", "on": "OWNER.T", "to": "APP"}]`,
	"data.tablespace.json":   `{"name": "APP_DATA"}`,
}
