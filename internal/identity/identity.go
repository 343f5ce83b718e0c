// Package identity derives stable identifiers for config files.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceConfigFile is the UUID v5 namespace for config file identities,
// derived from the URL namespace and "dbconfig/config-file/v1".
var NamespaceConfigFile = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dbconfig/config-file/v1"))

// ConfigID returns a deterministic UUID v5 for a config file in a repository.
// The same repository URL and relative path always produce the same ID,
// regardless of case, slash direction or a leading "./" or "/".
//
// Examples:
//   - ("https://dev/org/_git/db", "db/app.user.json") → uuid_v5(ns, "https://dev/org/_git/db#db/app.user.json")
//   - ("HTTPS://DEV/org/_git/DB", "./db\\App.User.json") → same ID
func ConfigID(repoURL, relPath string) uuid.UUID {
	return uuid.NewSHA1(NamespaceConfigFile, []byte(normalize(repoURL)+"#"+normalizePath(relPath)))
}

func normalize(s string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "/")
}

func normalizePath(path string) string {
	normalized := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))
	normalized = strings.TrimPrefix(normalized, "./")
	return strings.TrimPrefix(normalized, "/")
}
