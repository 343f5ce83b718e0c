package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// GitCLIResolver resolves repository identity with the git executable.
// Concurrent calls for the same directory share one resolution.
type GitCLIResolver struct {
	runner CommandRunner
	logger dbconfig.Logger
	group  singleflight.Group
}

// NewGitCLIResolver creates a resolver that runs git through runner.
// Panics if runner or logger is nil.
func NewGitCLIResolver(runner CommandRunner, logger dbconfig.Logger) *GitCLIResolver {
	if runner == nil {
		panic("runner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GitCLIResolver{runner: runner, logger: logger}
}

type resolution struct {
	repo dbconfig.Repository
	ok   bool
}

// Resolve implements dbconfig.RepositoryResolver.
func (r *GitCLIResolver) Resolve(ctx context.Context, dir string) (dbconfig.Repository, bool, error) {
	v, err, _ := r.group.Do(dir, func() (any, error) {
		repo, ok, err := r.resolve(ctx, dir)
		return resolution{repo: repo, ok: ok}, err
	})
	if err != nil {
		return dbconfig.Repository{}, false, err
	}
	res := v.(resolution)
	return res.repo, res.ok, nil
}

func (r *GitCLIResolver) git(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := r.runner.Run(ctx, dir, "git", args...)
	return string(out), err
}

func (r *GitCLIResolver) resolve(ctx context.Context, dir string) (dbconfig.Repository, bool, error) {
	if _, err := r.git(ctx, dir, "status"); err != nil {
		r.logger.Verbose("Skipping %s: not a git repository", dir)
		return dbconfig.Repository{}, false, nil
	}

	commit, err := r.git(ctx, dir, "log", "-n", "1", "--pretty=format:%H")
	if err != nil {
		return dbconfig.Repository{}, false, fmt.Errorf("%s: failed to read latest commit: %w: %w", dir, dbconfig.ErrRepository, err)
	}
	commit = strings.Trim(strings.TrimSpace(commit), `"`)

	remote, err := r.git(ctx, dir, "remote", "show", "origin")
	if err != nil {
		return dbconfig.Repository{}, false, fmt.Errorf("%s: failed to read remote origin: %w: %w", dir, dbconfig.ErrRepository, err)
	}
	fetchURL, branches := ParseRemoteShow(remote)

	branch := r.currentBranch(ctx, dir, commit)

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	repo := dbconfig.Repository{
		Name:           NameFromURL(fetchURL),
		Path:           abs,
		BranchName:     branch,
		RepoURL:        fetchURL,
		RemoteBranches: branches,
		LatestCommit:   commit,
	}
	r.logger.Verbose("Resolved %s: %s@%s (%s)", dir, repo.Name, repo.BranchName, repo.LatestCommit)
	return repo, true, nil
}

// currentBranch reads the branch from HEAD's decoration and falls back to
// the remote branches containing commit. Detached checkouts in build agents
// usually have no local branch.
func (r *GitCLIResolver) currentBranch(ctx context.Context, dir, commit string) string {
	if out, err := r.git(ctx, dir, "show", "-s", "--pretty=%D", "HEAD"); err == nil {
		if branch := ParseDecoration(out); branch != "" {
			return branch
		}
	}
	if commit != "" {
		r.logger.Verbose("%s: HEAD is not a branch tip, searching remote branches containing %s", dir, commit)
		if out, err := r.git(ctx, dir, "branch", "-r", "--contains", commit); err == nil {
			if branch := ParseContainingBranch(out); branch != "" {
				return branch
			}
		}
	}
	return dbconfig.UnknownBranch
}
