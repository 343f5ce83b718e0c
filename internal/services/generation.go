package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/dbconfig/internal/builder"
	"github.com/vvka-141/dbconfig/internal/checksum"
	"github.com/vvka-141/dbconfig/internal/files/filesystem"
	"github.com/vvka-141/dbconfig/internal/files/scanner"
	"github.com/vvka-141/dbconfig/internal/generator"
	"github.com/vvka-141/dbconfig/internal/repository"
	"github.com/vvka-141/dbconfig/internal/templates"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// GenerationResult is what a run discovered, compiled and wrote.
type GenerationResult struct {
	Repositories []dbconfig.Repository
	Compilation  *builder.Result
	// Summary is nil for dry runs.
	Summary *generator.Summary
}

// GenerationService implements the discover → compile → generate workflow.
// Thread-Safety: NOT safe for concurrent Generate() calls sharing a working directory.
type GenerationService struct {
	fs       filesystem.FileSystem
	resolver dbconfig.RepositoryResolver
	builder  *builder.Builder
	engine   *templates.Engine
	logger   dbconfig.Logger
}

// NewGenerationService creates a GenerationService with all dependencies injected.
// Panics on nil dependencies.
func NewGenerationService(
	fs filesystem.FileSystem,
	resolver dbconfig.RepositoryResolver,
	b *builder.Builder,
	engine *templates.Engine,
	logger dbconfig.Logger,
) *GenerationService {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if b == nil {
		panic("builder cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GenerationService{fs: fs, resolver: resolver, builder: b, engine: engine, logger: logger}
}

// Discover returns the repositories that a run with cfg would compile.
func (s *GenerationService) Discover(ctx context.Context, cfg dbconfig.GenerateConfig) ([]dbconfig.Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	excluded := excludedDirs(cfg)
	repos, err := repository.Discover(ctx, s.fs, s.resolver, repository.DiscoverOptions{
		WorkingDir: cfg.WorkingDir,
		Dirs:       cfg.Repositories,
		Exclude:    excluded,
	}, s.logger)
	if err != nil {
		return nil, err
	}
	if err := s.checkScriptRoot(cfg, repos, excluded); err != nil {
		return nil, err
	}
	return repos, nil
}

// checkScriptRoot rejects a script root that overlaps a repository, since
// generation recreates the script root from scratch. Excluded directories are
// never resolved, so they count as repositories when they hold a checkout.
func (s *GenerationService) checkScriptRoot(cfg dbconfig.GenerateConfig, repos []dbconfig.Repository, excluded []string) error {
	root := cfg.ScriptRootPath()
	paths := make([]string, 0, len(repos)+len(excluded))
	for _, r := range repos {
		paths = append(paths, r.Path)
	}
	for _, e := range excluded {
		dir := filepath.Join(cfg.WorkingDir, e)
		if ok, err := s.fs.Exists(filepath.Join(dir, ".git")); err == nil && ok {
			paths = append(paths, dir)
		}
	}
	for _, p := range paths {
		if dbconfig.PathWithin(root, p) || dbconfig.PathWithin(p, root) {
			return fmt.Errorf("ScriptRoot %q overlaps repository %s: %w", cfg.ScriptRoot, p, dbconfig.ErrInvalidConfig)
		}
	}
	return nil
}

// Compile discovers repositories and compiles their config files without
// writing anything.
func (s *GenerationService) Compile(ctx context.Context, cfg dbconfig.GenerateConfig) (*GenerationResult, error) {
	repos, err := s.Discover(ctx, cfg)
	if err != nil {
		return nil, err
	}

	compiler := builder.NewCompiler(
		scanner.NewScannerWithFS(checksum.New(), s.fs),
		s.builder,
		builder.CompilerOptions{
			WorkingDir:      cfg.WorkingDir,
			DataOwner:       cfg.DataOwner,
			AllowedProfiles: cfg.AllowedProfiles,
		},
		s.logger,
	)
	result, err := compiler.Compile(ctx, repos)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{Repositories: repos, Compilation: result}, nil
}

// Generate runs the whole workflow. With cfg.DryRun the scripts are not written.
func (s *GenerationService) Generate(ctx context.Context, cfg dbconfig.GenerateConfig) (*GenerationResult, error) {
	res, err := s.Compile(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.DryRun {
		s.logger.Info("Dry run: %d config files compiled, no scripts written", len(res.Compilation.Configs))
		return res, nil
	}

	gen := generator.New(s.fs, s.engine, generator.Options{
		WorkingDir:       cfg.WorkingDir,
		ScriptRoot:       cfg.ScriptRoot,
		DeploymentScript: cfg.DeploymentScript,
	}, s.logger)

	summary, err := gen.Generate(ctx, generator.Input{
		Configs:      res.Compilation.Configs,
		Repositories: res.Repositories,
		TouchedFiles: res.Compilation.TouchedFiles,
	})
	if err != nil {
		return nil, fmt.Errorf("script generation failed: %w", err)
	}
	res.Summary = summary
	return res, nil
}

// excludedDirs keeps discovery out of the generated script root.
func excludedDirs(cfg dbconfig.GenerateConfig) []string {
	root := cfg.ScriptRoot
	if filepath.IsAbs(root) {
		rel, err := filepath.Rel(cfg.WorkingDir, root)
		if err != nil || strings.HasPrefix(rel, "..") {
			return nil
		}
		root = rel
	}
	first, _, _ := strings.Cut(filepath.ToSlash(filepath.Clean(root)), "/")
	return []string{first}
}
