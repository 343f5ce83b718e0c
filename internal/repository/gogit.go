package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// GoGitResolver resolves repository identity by reading the repository
// directly with go-git.
type GoGitResolver struct {
	logger dbconfig.Logger
}

// NewGoGitResolver creates a GoGitResolver.
// Panics if logger is nil.
func NewGoGitResolver(logger dbconfig.Logger) *GoGitResolver {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GoGitResolver{logger: logger}
}

// Resolve implements dbconfig.RepositoryResolver. Only dir itself is
// checked for a .git directory; parents are not searched.
func (r *GoGitResolver) Resolve(ctx context.Context, dir string) (dbconfig.Repository, bool, error) {
	if err := ctx.Err(); err != nil {
		return dbconfig.Repository{}, false, err
	}

	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		r.logger.Verbose("Skipping %s: not a git repository", dir)
		return dbconfig.Repository{}, false, nil
	}
	if err != nil {
		return dbconfig.Repository{}, false, fmt.Errorf("%s: %w: %w", dir, dbconfig.ErrRepository, err)
	}

	head, err := repo.Head()
	if err != nil {
		return dbconfig.Repository{}, false, fmt.Errorf("%s: failed to read HEAD: %w: %w", dir, dbconfig.ErrRepository, err)
	}

	var fetchURL string
	if remote, err := repo.Remote("origin"); err == nil && len(remote.Config().URLs) > 0 {
		fetchURL = remote.Config().URLs[0]
	} else if err != nil && !errors.Is(err, git.ErrRemoteNotFound) {
		return dbconfig.Repository{}, false, fmt.Errorf("%s: failed to read remote origin: %w: %w", dir, dbconfig.ErrRepository, err)
	}

	branches, containing, err := remoteBranches(repo, head.Hash())
	if err != nil {
		return dbconfig.Repository{}, false, fmt.Errorf("%s: failed to list remote branches: %w: %w", dir, dbconfig.ErrRepository, err)
	}

	branch := dbconfig.UnknownBranch
	switch {
	case head.Name().IsBranch():
		branch = head.Name().Short()
	case containing != "":
		branch = containing
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	identity := dbconfig.Repository{
		Name:           NameFromURL(fetchURL),
		Path:           abs,
		BranchName:     branch,
		RepoURL:        fetchURL,
		RemoteBranches: branches,
		LatestCommit:   head.Hash().String(),
	}
	r.logger.Verbose("Resolved %s: %s@%s (%s)", dir, identity.Name, identity.BranchName, identity.LatestCommit)
	return identity, true, nil
}

// remoteBranches lists origin's branches, sorted, and the first of them
// whose tip is at.
func remoteBranches(repo *git.Repository, at plumbing.Hash) ([]string, string, error) {
	refs, err := repo.References()
	if err != nil {
		return nil, "", err
	}
	defer refs.Close()

	var names []string
	var containing string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsRemote() {
			return nil
		}
		name, ok := strings.CutPrefix(ref.Name().Short(), originPrefix)
		if !ok || name == "HEAD" {
			return nil
		}
		names = append(names, name)
		if ref.Type() == plumbing.HashReference && ref.Hash() == at && (containing == "" || name < containing) {
			containing = name
		}
		return nil
	})
	sort.Strings(names)
	return names, containing, err
}
