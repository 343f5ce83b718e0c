package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dbconfig/internal/config"
	"github.com/vvka-141/dbconfig/internal/logging"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// globalFlags holds the persistent flags shared by every command.
var globalFlags struct {
	workDir      string
	gitBackend   string
	repositories []string
	templateDir  string
	dataOwner    string
}

// session is everything a command needs to build its dependencies.
type session struct {
	ctx     context.Context
	workDir string
	verbose bool
	project *config.ProjectConfig
	gen     dbconfig.GenerateConfig
}

// newSession loads .env and dbconfig.yaml from the working directory and
// applies flag overrides.
func newSession(cmd *cobra.Command) (*session, error) {
	workDir, err := filepath.Abs(globalFlags.workDir)
	if err != nil {
		return nil, fmt.Errorf("invalid working directory %s: %w", globalFlags.workDir, dbconfig.ErrInvalidConfig)
	}

	verbose := getVerboseFlag(cmd)
	loadDotenv(filepath.Join(workDir, ".env"), logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose))

	project, err := config.LoadOrDefault(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	if globalFlags.gitBackend != "" {
		project.GitBackend = globalFlags.gitBackend
	}
	if len(globalFlags.repositories) > 0 {
		project.Repositories = globalFlags.repositories
	}
	if globalFlags.templateDir != "" {
		project.TemplateDir = globalFlags.templateDir
	}
	if globalFlags.dataOwner != "" {
		project.DataOwner = globalFlags.dataOwner
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &session{
		ctx:     ctx,
		workDir: workDir,
		verbose: verbose,
		project: project,
		gen: dbconfig.GenerateConfig{
			WorkingDir:       workDir,
			ScriptRoot:       project.ScriptRoot,
			DeploymentScript: project.DeploymentScript,
			Repositories:     project.Repositories,
			DataOwner:        project.DataOwner,
			AllowedProfiles:  project.AllowedProfiles,
			Verbose:          verbose,
		},
	}, nil
}

// loadDotenv loads path into the environment. A missing file is fine; any
// other failure is logged and the run goes on without it.
func loadDotenv(path string, logger dbconfig.Logger) {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return
	}
	logger.Verbose("Ignoring %s: %v", path, err)
}

// templateDir is the override template directory, resolved against the
// working directory, or "" for the built-in templates only.
func (s *session) templateDir() string {
	dir := s.project.TemplateDir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(s.workDir, dir)
}
