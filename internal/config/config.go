package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Git backends.
const (
	GitBackendCLI   = "cli"
	GitBackendGoGit = "gogit"
)

// Secret sources, tried in the order they are listed.
const (
	SecretSourceEnv            = "env"
	SecretSourceDotenv         = "dotenv"
	SecretSourceKeyVault       = "azure-keyvault"
	SecretSourceSecretsManager = "aws-secretsmanager"
)

type SecretsConfig struct {
	Sources     []string `yaml:"sources"`
	DotenvFiles []string `yaml:"dotenvFiles,omitempty"`
	KeyVaultURL string   `yaml:"keyVaultURL,omitempty"`
	AWSRegion   string   `yaml:"awsRegion,omitempty"`
	AWSPrefix   string   `yaml:"awsPrefix,omitempty"`
}

type ProjectConfig struct {
	ScriptRoot       string        `yaml:"scriptRoot"`
	DeploymentScript string        `yaml:"deploymentScript"`
	Repositories     []string      `yaml:"repositories,omitempty"`
	GitBackend       string        `yaml:"gitBackend"`
	TemplateDir      string        `yaml:"templateDir,omitempty"`
	AllowedProfiles  []string      `yaml:"allowedProfiles"`
	DataOwner        string        `yaml:"dataOwner,omitempty"`
	Secrets          SecretsConfig `yaml:"secrets"`
}

const ConfigFileName = "dbconfig.yaml"

// Defaults returns the configuration used when no file is present.
func Defaults() *ProjectConfig {
	return &ProjectConfig{
		ScriptRoot:       dbconfig.DefaultScriptRoot,
		DeploymentScript: dbconfig.DefaultDeploymentScript,
		GitBackend:       GitBackendCLI,
		AllowedProfiles:  slices.Clone(dbconfig.DefaultAllowedProfiles),
		Secrets: SecretsConfig{
			Sources:     []string{SecretSourceEnv},
			DotenvFiles: []string{".env"},
		},
	}
}

// Load reads dbconfig.yaml from dir and fills unset keys from Defaults.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", configPath, dbconfig.ErrInvalidConfig, err)
	}
	if err := mergo.Merge(&cfg, *Defaults()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load that falls back to Defaults when dir has no config file.
func LoadOrDefault(dir string) (*ProjectConfig, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Defaults(), nil
	}
	return cfg, err
}

// Validate reports every unsupported value.
func (c *ProjectConfig) Validate() error {
	var errs []error

	switch c.GitBackend {
	case GitBackendCLI, GitBackendGoGit:
	default:
		errs = append(errs, fmt.Errorf("unknown gitBackend %q (use %s or %s): %w", c.GitBackend, GitBackendCLI, GitBackendGoGit, dbconfig.ErrInvalidConfig))
	}

	for _, s := range c.Secrets.Sources {
		switch s {
		case SecretSourceEnv, SecretSourceDotenv:
		case SecretSourceKeyVault:
			if c.Secrets.KeyVaultURL == "" {
				errs = append(errs, fmt.Errorf("secret source %s requires keyVaultURL: %w", s, dbconfig.ErrInvalidConfig))
			}
		case SecretSourceSecretsManager:
		default:
			errs = append(errs, fmt.Errorf("unknown secret source %q: %w", s, dbconfig.ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}
