package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

//go:embed sql/*.sql
var embedded embed.FS

const cacheSize = 32

// Tokens maps a token such as "<username>" to its replacement.
type Tokens map[string]string

// Engine loads templates and substitutes tokens.
// Engine is safe for concurrent use.
type Engine struct {
	override fs.FS
	builtin  fs.FS
	cache    *lru.Cache[Kind, string]
}

// NewEngine creates an engine over the embedded templates. When dir is not
// empty, files found there take precedence over the embedded ones.
func NewEngine(dir string) (*Engine, error) {
	var override fs.FS
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("template directory %s: %w", dir, errors.Join(err, dbconfig.ErrTemplate))
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("template directory %s is not a directory: %w", dir, dbconfig.ErrTemplate)
		}
		override = os.DirFS(dir)
	}
	return NewEngineFS(override)
}

// NewEngineFS creates an engine whose templates in override, if any, take
// precedence over the embedded ones.
func NewEngineFS(override fs.FS) (*Engine, error) {
	builtin, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}
	cache, err := lru.New[Kind, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create template cache: %w", err)
	}
	return &Engine{override: override, builtin: builtin, cache: cache}, nil
}

// Load returns the raw text of the template for kind.
func (e *Engine) Load(kind Kind) (string, error) {
	if content, ok := e.cache.Get(kind); ok {
		return content, nil
	}

	name, err := kind.File()
	if err != nil {
		return "", fmt.Errorf("%w: %w", dbconfig.ErrTemplate, err)
	}

	content, err := e.read(name)
	if err != nil {
		return "", fmt.Errorf("no template found for %s: %w", kind, errors.Join(err, dbconfig.ErrTemplate))
	}
	e.cache.Add(kind, content)
	return content, nil
}

func (e *Engine) read(name string) (string, error) {
	if e.override != nil {
		b, err := fs.ReadFile(e.override, name)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	b, err := fs.ReadFile(e.builtin, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Render loads the template for kind and substitutes tokens.
func (e *Engine) Render(kind Kind, tokens Tokens) (string, error) {
	content, err := e.Load(kind)
	if err != nil {
		return "", err
	}
	return Replace(content, tokens), nil
}

// Replace substitutes every occurrence of each token in content. Longer
// tokens win when two start at the same position.
func Replace(content string, tokens Tokens) string {
	if len(tokens) == 0 {
		return content
	}
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, tokens[k])
	}
	return strings.NewReplacer(pairs...).Replace(content)
}
