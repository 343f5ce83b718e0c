package generator

import (
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/dbconfig/internal/files/filesystem"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// collectScripts walks the script root and groups .sql files by their
// top-level category directory, each group in walk order.
func (g *Generator) collectScripts() (map[string][]string, error) {
	dir, err := g.fs.Open(g.scriptRoot())
	if err != nil {
		return nil, fmt.Errorf("failed to open script root: %w", err)
	}

	byCategory := make(map[string][]string)
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if file.Info().IsDir() || !strings.EqualFold(path.Ext(file.RelativePath()), ".sql") {
			return nil
		}
		rel := file.RelativePath()
		i := strings.IndexByte(rel, '/')
		if i < 0 {
			return nil
		}
		byCategory[rel[:i]] = append(byCategory[rel[:i]], rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan generated scripts: %w", err)
	}
	return byCategory, nil
}

// MasterScript renders entries as @path lines.
func MasterScript(entries []string) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("@")
		b.WriteString(e)
		b.WriteString("\n")
	}
	return b.String()
}

// writeDeploymentScript composes the master script in RunOrder and checks
// that it was written.
func (g *Generator) writeDeploymentScript() ([]string, error) {
	byCategory, err := g.collectScripts()
	if err != nil {
		return nil, err
	}

	root := g.rootEntry()
	var entries []string
	for _, category := range RunOrder {
		for _, rel := range byCategory[category] {
			entries = append(entries, path.Join(root, rel))
		}
	}

	target := g.DeploymentScriptPath()
	if err := g.fs.WriteFile(target, []byte(MasterScript(entries))); err != nil {
		return nil, fmt.Errorf("failed to write deployment script: %w", err)
	}

	exists, err := g.fs.Exists(target)
	if err != nil || !exists {
		return nil, &dbconfig.DeploymentScriptMissingError{Path: target}
	}
	g.logger.Verbose("Deployment script %s lists %d scripts", target, len(entries))
	return entries, nil
}
