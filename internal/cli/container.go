package cli

import (
	"os"

	"go.uber.org/dig"

	"github.com/vvka-141/dbconfig/internal/builder"
	"github.com/vvka-141/dbconfig/internal/config"
	"github.com/vvka-141/dbconfig/internal/files/filesystem"
	"github.com/vvka-141/dbconfig/internal/logging"
	"github.com/vvka-141/dbconfig/internal/repository"
	"github.com/vvka-141/dbconfig/internal/secrets"
	"github.com/vvka-141/dbconfig/internal/services"
	"github.com/vvka-141/dbconfig/internal/templates"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// registerProviders registers every constructor the commands depend on.
func registerProviders(container *dig.Container, s *session) error {
	providers := []any{
		func() *session { return s },
		func(s *session) dbconfig.Logger {
			return logging.NewConsoleLoggerTo(os.Stderr, s.verbose)
		},
		func() filesystem.FileSystem { return filesystem.NewOSFileSystem() },
		func(s *session, logger dbconfig.Logger) (dbconfig.SecretLookup, error) {
			return secrets.Build(s.ctx, s.project.Secrets, s.workDir, logger)
		},
		secrets.NewResolver,
		builder.NewBuilder,
		func(s *session) (*templates.Engine, error) {
			return templates.NewEngine(s.templateDir())
		},
		func(s *session, logger dbconfig.Logger) dbconfig.RepositoryResolver {
			if s.project.GitBackend == config.GitBackendGoGit {
				return repository.NewGoGitResolver(logger)
			}
			return repository.NewGitCLIResolver(repository.ExecRunner{}, logger)
		},
		services.NewGenerationService,
	}
	for _, p := range providers {
		if err := container.Provide(p); err != nil {
			return err
		}
	}
	return nil
}

// resolveService builds the generation service for s.
func resolveService(s *session) (*services.GenerationService, error) {
	container := dig.New()
	if err := registerProviders(container, s); err != nil {
		return nil, err
	}

	var svc *services.GenerationService
	err := container.Invoke(func(gs *services.GenerationService) {
		svc = gs
	})
	if err != nil {
		return nil, dig.RootCause(err)
	}
	return svc, nil
}
