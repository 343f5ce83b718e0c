package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// candidates returns the spellings a pipeline variable may take once it is
// exported to a process environment: as written, with dots replaced by
// underscores, and upper-cased.
func candidates(name string) []string {
	underscored := strings.ReplaceAll(name, ".", "_")
	out := []string{name}
	for _, c := range []string{underscored, strings.ToUpper(underscored)} {
		if c != out[len(out)-1] && c != name {
			out = append(out, c)
		}
	}
	return out
}

// EnvLookup reads secrets from the process environment.
type EnvLookup struct {
	getenv func(string) (string, bool)
}

// NewEnvLookup creates a lookup over os.LookupEnv.
func NewEnvLookup() *EnvLookup {
	return &EnvLookup{getenv: os.LookupEnv}
}

func (l *EnvLookup) Lookup(_ context.Context, name string) (string, bool, error) {
	for _, c := range candidates(name) {
		if v, ok := l.getenv(c); ok && v != "" {
			return v, true, nil
		}
	}
	return "", false, nil
}

// StaticLookup serves secrets from a fixed map.
type StaticLookup map[string]string

func (m StaticLookup) Lookup(_ context.Context, name string) (string, bool, error) {
	for _, c := range candidates(name) {
		if v, ok := m[c]; ok && v != "" {
			return v, true, nil
		}
	}
	return "", false, nil
}

// NewDotenvLookup reads the given .env files once. Later files override
// earlier ones for the same key.
func NewDotenvLookup(files ...string) (StaticLookup, error) {
	merged := StaticLookup{}
	for _, f := range files {
		values, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read secrets file %s: %w", f, err)
		}
		for k, v := range values {
			merged[k] = v
		}
	}
	return merged, nil
}

// Chain tries each lookup in order and returns the first value found.
// A backend error stops the chain.
type Chain []dbconfig.SecretLookup

func (c Chain) Lookup(ctx context.Context, name string) (string, bool, error) {
	for _, l := range c {
		v, found, err := l.Lookup(ctx, name)
		if err != nil {
			return "", false, err
		}
		if found {
			return v, true, nil
		}
	}
	return "", false, nil
}
