package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/dbconfig/internal/files/filesystem"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// DiscoverOptions selects the directories to probe.
type DiscoverOptions struct {
	// WorkingDir is searched for immediate subdirectories.
	WorkingDir string
	// Dirs restricts discovery to these directories, relative to
	// WorkingDir unless absolute.
	Dirs []string
	// Exclude names subdirectories of WorkingDir that are never probed,
	// typically the generated script root.
	Exclude []string
}

// Discover resolves every candidate directory and returns the repositories
// in directory name order. Directories that are not repositories are skipped.
func Discover(ctx context.Context, fs filesystem.FileSystemProvider, resolver dbconfig.RepositoryResolver, opts DiscoverOptions, logger dbconfig.Logger) ([]dbconfig.Repository, error) {
	dirs, err := candidates(fs, opts)
	if err != nil {
		return nil, err
	}

	var repos []dbconfig.Repository
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		repo, ok, err := resolver.Resolve(ctx, dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Verbose("Skipped %s", dir)
			continue
		}
		repos = append(repos, repo)
	}
	logger.Info("Discovered %d repositories under %s", len(repos), opts.WorkingDir)
	return repos, nil
}

func candidates(fs filesystem.FileSystemProvider, opts DiscoverOptions) ([]string, error) {
	if len(opts.Dirs) > 0 {
		dirs := make([]string, 0, len(opts.Dirs))
		for _, d := range opts.Dirs {
			if !filepath.IsAbs(d) {
				d = filepath.Join(opts.WorkingDir, d)
			}
			info, err := fs.Stat(d)
			if err != nil {
				return nil, fmt.Errorf("repository directory %s: %w: %w", d, dbconfig.ErrInvalidConfig, err)
			}
			if !info.IsDir() {
				return nil, fmt.Errorf("repository directory %s is not a directory: %w", d, dbconfig.ErrInvalidConfig)
			}
			dirs = append(dirs, d)
		}
		return dirs, nil
	}

	entries, err := fs.ReadDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", opts.WorkingDir, err)
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, e := range opts.Exclude {
		excluded[filepath.Clean(e)] = true
	}

	var dirs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") || excluded[name] {
			continue
		}
		dirs = append(dirs, filepath.Join(opts.WorkingDir, name))
	}
	return dirs, nil
}
