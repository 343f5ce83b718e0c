package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vvka-141/dbconfig/internal/config"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// Build assembles the lookup chain named by cfg.Sources. Relative dotenv
// files are resolved against workingDir; missing ones are skipped.
func Build(ctx context.Context, cfg config.SecretsConfig, workingDir string, logger dbconfig.Logger) (Chain, error) {
	var chain Chain
	for _, source := range cfg.Sources {
		switch source {
		case config.SecretSourceEnv:
			chain = append(chain, NewEnvLookup())

		case config.SecretSourceDotenv:
			var files []string
			for _, f := range cfg.DotenvFiles {
				if !filepath.IsAbs(f) {
					f = filepath.Join(workingDir, f)
				}
				if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
					logger.Verbose("Secrets file %s not found, skipping", f)
					continue
				}
				files = append(files, f)
			}
			lookup, err := NewDotenvLookup(files...)
			if err != nil {
				return nil, err
			}
			chain = append(chain, lookup)

		case config.SecretSourceKeyVault:
			lookup, err := NewKeyVaultLookup(cfg.KeyVaultURL)
			if err != nil {
				return nil, err
			}
			chain = append(chain, lookup)

		case config.SecretSourceSecretsManager:
			lookup, err := NewAWSSecretsLookup(ctx, cfg.AWSRegion, cfg.AWSPrefix)
			if err != nil {
				return nil, err
			}
			chain = append(chain, lookup)

		default:
			return nil, fmt.Errorf("unknown secret source %q: %w", source, dbconfig.ErrInvalidConfig)
		}
		logger.Verbose("Secret source enabled: %s", source)
	}
	return chain, nil
}
