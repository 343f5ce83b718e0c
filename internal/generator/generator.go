package generator

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/vvka-141/dbconfig/internal/files/filesystem"
	"github.com/vvka-141/dbconfig/internal/model"
	"github.com/vvka-141/dbconfig/internal/templates"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// Options locates the generated output.
type Options struct {
	// WorkingDir is the root master script entries are relative to.
	WorkingDir string
	// ScriptRoot is the scratch directory, relative to WorkingDir unless
	// absolute. It is deleted and recreated on every run.
	ScriptRoot string
	// DeploymentScript is the master script path, relative to WorkingDir
	// unless absolute.
	DeploymentScript string
	// ChunkSize overrides dbconfig.ChunkSize when positive.
	ChunkSize int
}

// Input is everything one generation run consumes.
type Input struct {
	Configs      []*model.DatabaseConfiguration
	Repositories []dbconfig.Repository
	TouchedFiles []dbconfig.RepoFile
}

// Summary describes what a run wrote.
type Summary struct {
	ScriptRoot       string
	DeploymentScript string
	// Entries are the master script lines without the leading @, in order.
	Entries []string
	// Counts is the number of scripts per category.
	Counts map[string]int
}

// Generator writes deployment scripts.
// Thread-Safety: NOT safe for concurrent Generate() calls sharing a script root.
type Generator struct {
	fs     filesystem.FileSystem
	engine *templates.Engine
	opts   Options
	logger dbconfig.Logger
}

// New creates a Generator.
// Panics if fs, engine or logger is nil.
func New(fs filesystem.FileSystem, engine *templates.Engine, opts Options, logger dbconfig.Logger) *Generator {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if opts.ScriptRoot == "" {
		opts.ScriptRoot = dbconfig.DefaultScriptRoot
	}
	if opts.DeploymentScript == "" {
		opts.DeploymentScript = dbconfig.DefaultDeploymentScript
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = dbconfig.ChunkSize
	}
	return &Generator{fs: fs, engine: engine, opts: opts, logger: logger}
}

func (g *Generator) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(g.opts.WorkingDir, p)
}

func (g *Generator) scriptRoot() string { return g.resolve(g.opts.ScriptRoot) }

// DeploymentScriptPath is where the master script is written.
func (g *Generator) DeploymentScriptPath() string { return g.resolve(g.opts.DeploymentScript) }

// Generate recreates the script tree, writes every script and the master
// script, and checks that the master script exists afterwards.
func (g *Generator) Generate(ctx context.Context, in Input) (*Summary, error) {
	if err := g.prepareDirectories(); err != nil {
		return nil, err
	}

	for _, repo := range in.Repositories {
		if err := g.writeRemoveBranches(repo); err != nil {
			return nil, err
		}
		if err := g.writeRemoveFiles(repo, in.TouchedFiles); err != nil {
			return nil, err
		}
	}

	for _, cfg := range in.Configs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.writeConfigScripts(cfg); err != nil {
			return nil, fmt.Errorf("failed to generate scripts for %s: %w", cfg.ConfigFilePath, err)
		}
	}

	if err := g.writeStaticScripts(); err != nil {
		return nil, err
	}

	entries, err := g.writeDeploymentScript()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ScriptRoot:       g.scriptRoot(),
		DeploymentScript: g.DeploymentScriptPath(),
		Entries:          entries,
		Counts:           make(map[string]int, len(RunOrder)),
	}
	for _, e := range entries {
		summary.Counts[categoryOf(g.rootEntry(), e)]++
	}
	g.logger.Info("Wrote %d scripts to %s", len(entries), summary.ScriptRoot)
	return summary, nil
}

// prepareDirectories deletes the script root and recreates every category.
func (g *Generator) prepareDirectories() error {
	root := g.scriptRoot()
	if err := g.fs.RemoveAll(root); err != nil {
		return fmt.Errorf("failed to remove %s: %w", root, err)
	}
	for _, c := range RunOrder {
		if err := g.fs.MkdirAll(filepath.Join(root, c)); err != nil {
			return fmt.Errorf("failed to create %s: %w", c, err)
		}
	}
	return nil
}

func (g *Generator) write(category, name, content string) error {
	p := filepath.Join(g.scriptRoot(), category, name)
	g.logger.Verbose("Writing %s/%s", category, name)
	if err := g.fs.WriteFile(p, []byte(content)); err != nil {
		return err
	}
	return nil
}

func (g *Generator) render(category, name string, kind templates.Kind, tokens templates.Tokens) error {
	content, err := g.engine.Render(kind, tokens)
	if err != nil {
		return err
	}
	return g.write(category, name, content)
}

func (g *Generator) writeStaticScripts() error {
	static := []struct {
		category string
		name     string
		kind     templates.Kind
	}{
		{CategoryProfiles, "profiles.sql", templates.Profile},
		{CategoryUsers, "drop_alter_user.sql", templates.AlterUser},
		{CategoryUsers, "user_quota.sql", templates.Quota},
		{CategoryRoles, "drop_roles.sql", templates.DropRole},
		{CategoryDatabaseLinks, "drop_db_links.sql", templates.DropDatabaseLinks},
		{CategoryDirectories, "directories.sql", templates.Directories},
		{CategoryNetworkAcls, "network_acls.sql", templates.NetworkAcls},
		{CategoryPrivileges, "privileges.sql", templates.Privileges},
		{CategoryRefreshMView, "RefreshMView.sql", templates.RefreshMView},
	}
	for _, s := range static {
		if err := g.render(s.category, s.name, s.kind, nil); err != nil {
			return err
		}
	}
	return nil
}

// rootEntry is the script root as it appears in master script entries.
func (g *Generator) rootEntry() string {
	root := g.opts.ScriptRoot
	if filepath.IsAbs(root) && g.opts.WorkingDir != "" {
		if rel, err := filepath.Rel(g.opts.WorkingDir, root); err == nil {
			root = rel
		}
	}
	return path.Clean(filepath.ToSlash(root))
}

func categoryOf(root, entry string) string {
	rest := strings.TrimPrefix(entry, root+"/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return ""
}
