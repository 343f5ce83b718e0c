package dbconfig

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// GenerateConfig contains all parameters needed for a generation run.
type GenerateConfig struct {
	// WorkingDir is the root that repositories are discovered under and that
	// master script paths are made relative to.
	WorkingDir string

	// ScriptRoot is the directory, relative to WorkingDir, that is recreated
	// and populated with generated scripts.
	ScriptRoot string

	// DeploymentScript is the master script file name inside WorkingDir.
	DeploymentScript string

	// Repositories optionally restricts discovery to these directories,
	// relative to WorkingDir. Empty means every immediate subdirectory.
	Repositories []string

	// DataOwner is used when no config file declares dataOwnerUserId.
	DataOwner string

	// AllowedProfiles lists the accepted user profile types.
	AllowedProfiles []string

	// DryRun compiles and validates without writing scripts.
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.WorkingDir == "" {
		errs = append(errs, fmt.Errorf("WorkingDir is required: %w", ErrInvalidConfig))
	}

	if c.ScriptRoot == "" {
		errs = append(errs, fmt.Errorf("ScriptRoot is required: %w", ErrInvalidConfig))
	}

	if c.DeploymentScript == "" {
		errs = append(errs, fmt.Errorf("DeploymentScript is required: %w", ErrInvalidConfig))
	}

	if c.WorkingDir != "" && c.ScriptRoot != "" && PathWithin(absPath(c.ScriptRootPath()), absPath(c.WorkingDir)) {
		errs = append(errs, fmt.Errorf("ScriptRoot %q would recreate the working directory: %w", c.ScriptRoot, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ScriptRootPath resolves ScriptRoot against WorkingDir.
func (c *GenerateConfig) ScriptRootPath() string {
	if filepath.IsAbs(c.ScriptRoot) {
		return filepath.Clean(c.ScriptRoot)
	}
	return filepath.Join(c.WorkingDir, c.ScriptRoot)
}

// PathWithin reports whether target is dir itself or lies beneath it.
// Both paths are compared lexically after cleaning.
func PathWithin(dir, target string) bool {
	rel, err := filepath.Rel(absPath(dir), absPath(target))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// Repository is the identity of one source-control checkout.
// It is created once per discovered directory and never modified afterwards.
type Repository struct {
	Name           string   `json:"name"`
	Path           string   `json:"path"`
	BranchName     string   `json:"branchName"`
	RepoURL        string   `json:"repoUrl"`
	RemoteBranches []string `json:"remoteBranches"`
	LatestCommit   string   `json:"latestCommit"`
}

// RepoFile records one processed config file for stale-object pruning.
type RepoFile struct {
	Repo     string `json:"repo"`
	Branch   string `json:"branch"`
	FileName string `json:"fileName"`
}

// RepositoryResolver determines the identity of a repository directory.
// ok is false when dir is not a repository.
type RepositoryResolver interface {
	Resolve(ctx context.Context, dir string) (repo Repository, ok bool, err error)
}

// SecretLookup provides named secrets, typically pipeline variables.
// found is false when the store has no value for name.
type SecretLookup interface {
	Lookup(ctx context.Context, name string) (value string, found bool, err error)
}
