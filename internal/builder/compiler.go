package builder

import (
	"context"
	"fmt"
	"slices"

	"github.com/vvka-141/dbconfig/internal/files/scanner"
	"github.com/vvka-141/dbconfig/internal/identity"
	"github.com/vvka-141/dbconfig/internal/model"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// Result is the output of one compilation run.
type Result struct {
	// Configs holds one configuration per processed file, in discovery order.
	Configs []*model.DatabaseConfiguration
	// TouchedFiles lists every processed file for stale-object pruning.
	TouchedFiles []dbconfig.RepoFile
	// DataOwner is the data owner that privileges are managed for.
	DataOwner string
}

// HasPrivileges reports whether any compiled configuration manages grants.
func (r *Result) HasPrivileges() bool {
	for _, c := range r.Configs {
		if c.HasPrivileges() {
			return true
		}
	}
	return false
}

// CompilerOptions configures a Compiler.
type CompilerOptions struct {
	// WorkingDir is the root config file paths are made relative to.
	WorkingDir string
	// DataOwner is used when no whole-config file declares dataOwnerUserId.
	DataOwner string
	// AllowedProfiles lists the accepted user profile types.
	// Empty means dbconfig.DefaultAllowedProfiles.
	AllowedProfiles []string
}

// Compiler builds every config file of every repository.
// Thread-Safety: NOT safe for concurrent Compile() calls on the same instance.
type Compiler struct {
	scanner *scanner.Scanner
	builder *Builder
	opts    CompilerOptions
	logger  dbconfig.Logger
}

// NewCompiler creates a Compiler.
// Panics if scanner, builder or logger is nil.
func NewCompiler(sc *scanner.Scanner, b *Builder, opts CompilerOptions, logger dbconfig.Logger) *Compiler {
	if sc == nil {
		panic("scanner cannot be nil")
	}
	if b == nil {
		panic("builder cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if len(opts.AllowedProfiles) == 0 {
		opts.AllowedProfiles = dbconfig.DefaultAllowedProfiles
	}
	return &Compiler{scanner: sc, builder: b, opts: opts, logger: logger}
}

// Compile builds one DatabaseConfiguration per JSON file found in repos.
//
// A malformed file or an unresolvable password aborts the run. Validation
// problems are gathered across all files and returned together as a
// *dbconfig.ValidationError after every file has been built.
func (c *Compiler) Compile(ctx context.Context, repos []dbconfig.Repository) (*Result, error) {
	result := &Result{}

	for _, repo := range repos {
		files, err := c.scanner.ScanRepository(repo.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repository %s: %w", repo.Name, err)
		}
		c.logger.Verbose("Found %d config files in %s", len(files), repo.Name)

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			cfg, err := c.builder.Build(ctx, file, repo)
			if err != nil {
				return nil, err
			}

			cfg.ConfigFilePath = ConfigFilePath(c.opts.WorkingDir, file.Path, repo.Name, file.RelativePath)
			cfg.ScriptName = ScriptName(cfg.ConfigFilePath)
			cfg.ConfigID = identity.ConfigID(repo.RepoURL, cfg.ConfigFilePath).String()
			cfg.Checksum = file.Checksum

			result.Configs = append(result.Configs, cfg)
			result.TouchedFiles = append(result.TouchedFiles, dbconfig.RepoFile{
				Repo:     repo.RepoURL,
				Branch:   repo.BranchName,
				FileName: cfg.ConfigFilePath,
			})
		}
	}

	result.DataOwner = c.dataOwner(result.Configs)
	if problems := c.validate(result); len(problems) > 0 {
		return nil, &dbconfig.ValidationError{Problems: problems}
	}

	c.logger.Info("Compiled %d config files from %d repositories", len(result.Configs), len(repos))
	return result, nil
}

// dataOwner returns the first declared data owner, or the configured fallback.
func (c *Compiler) dataOwner(configs []*model.DatabaseConfiguration) string {
	for _, cfg := range configs {
		if cfg.DataOwner != "" {
			return cfg.DataOwner
		}
	}
	return c.opts.DataOwner
}

func (c *Compiler) validate(result *Result) []string {
	var problems []string

	if result.HasPrivileges() && result.DataOwner == "" {
		problems = append(problems, "Data Owner user ID required when managing privileges.  Set dataOwnerUserId in the configuration.")
	}

	for _, cfg := range result.Configs {
		if cfg.HasPrivileges() && cfg.GitHash == "" {
			problems = append(problems, fmt.Sprintf("%s: Commit is required when managing privileges.", cfg.ConfigFilePath))
		}
		for _, u := range cfg.Users {
			problems = append(problems, c.validateUser(u)...)
		}
	}
	return problems
}

func (c *Compiler) validateUser(u model.User) []string {
	var problems []string
	for _, p := range u.Profile {
		if !slices.Contains(c.opts.AllowedProfiles, p.Value) {
			problems = append(problems, fmt.Sprintf("User: %s Invalid User Type '%s'", u.Name, p.Value))
		}
	}
	return problems
}
