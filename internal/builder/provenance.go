package builder

import (
	"path"
	"path/filepath"
	"strings"
)

var scriptNameReplacer = strings.NewReplacer(".", "_", "/", "_", "\\", "_", " ", "")

// ConfigFilePath returns filePath relative to workingDir with forward
// slashes. Files outside workingDir fall back to repoName/relPath.
func ConfigFilePath(workingDir, filePath, repoName, relPath string) string {
	if workingDir != "" {
		if rel, err := filepath.Rel(workingDir, filePath); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return path.Join(repoName, filepath.ToSlash(relPath))
}

// ScriptName reduces a config file path to an identifier usable in
// generated file names: the .json extension is dropped, separators and dots
// become underscores and spaces are removed.
//
//	"db/app/APP.user.json" → "db_app_APP_user"
func ScriptName(configFilePath string) string {
	name := strings.TrimPrefix(filepath.ToSlash(configFilePath), "/")
	if ext := path.Ext(name); strings.EqualFold(ext, ".json") {
		name = name[:len(name)-len(ext)]
	}
	return scriptNameReplacer.Replace(name)
}
