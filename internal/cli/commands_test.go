package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dbconfig/internal/templates"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

func TestGenerateCmd_EndToEnd(t *testing.T) {
	work := workspace(t, validFiles)
	t.Setenv("APP_PASSWORD", "pw")

	out, err := run(t, "generate", "-C", work, "--git-backend", "gogit")
	require.NoError(t, err, out)

	assert.Contains(t, out, "app-db")
	assert.Contains(t, out, "Wrote")

	master, err := os.ReadFile(filepath.Join(work, dbconfig.DefaultDeploymentScript))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(master)), "\n")
	assert.Equal(t, "@configDeployment/remove/remove_branches_app-db.sql", lines[0])
	assert.Contains(t, lines, "@configDeployment/tablespaces/tablespace_app-db_data_tablespace.sql")
	assert.Contains(t, lines, "@configDeployment/users/create_user_app-db_users_app_user.sql")
	for _, line := range lines {
		_, err := os.Stat(filepath.Join(work, strings.TrimPrefix(line, "@")))
		assert.NoError(t, err, line)
	}
}

func TestGenerateCmd_ScriptRootFlags(t *testing.T) {
	work := workspace(t, validFiles)
	t.Setenv("APP_PASSWORD", "pw")

	_, err := run(t, "generate", "-C", work, "--git-backend", "gogit", "--script-root", "out", "--deployment-script", "out-deploy.sql")
	require.NoError(t, err)

	master, err := os.ReadFile(filepath.Join(work, "out-deploy.sql"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(master), "@out/remove/"))
}

func TestGenerateCmd_ProjectConfigFile(t *testing.T) {
	work := workspace(t, validFiles)
	t.Setenv("APP_PASSWORD", "pw")
	require.NoError(t, os.WriteFile(filepath.Join(work, "dbconfig.yaml"), []byte("gitBackend: gogit\nscriptRoot: build\n"), 0644))

	_, err := run(t, "generate", "-C", work)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(work, "build", "users", "create_user_app-db_users_app_user.sql"))
	assert.NoError(t, err)
}

func TestGenerateCmd_DotenvSuppliesSecrets(t *testing.T) {
	work := workspace(t, validFiles)
	require.NoError(t, os.WriteFile(filepath.Join(work, "dbconfig.yaml"), []byte("secrets:\n  sources: [dotenv]\n  dotenvFiles: [ci.env]\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(work, "ci.env"), []byte("APP.Password=from-dotenv\n"), 0600))

	_, err := run(t, "generate", "-C", work, "--git-backend", "gogit")
	require.NoError(t, err)

	script, err := os.ReadFile(filepath.Join(work, "configDeployment", "users", "create_user_app-db_users_app_user.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(script), "'from-dotenv' password")
}

func TestGenerateCmd_DryRun(t *testing.T) {
	work := workspace(t, validFiles)
	t.Setenv("APP_PASSWORD", "pw")

	out, err := run(t, "generate", "-C", work, "--git-backend", "gogit", "--dry-run")
	require.NoError(t, err)
	assert.NotContains(t, out, "Wrote")

	_, err = os.Stat(filepath.Join(work, dbconfig.DefaultDeploymentScript))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCmd_MissingPassword(t *testing.T) {
	work := workspace(t, validFiles)

	_, err := run(t, "generate", "-C", work, "--git-backend", "gogit")
	require.Error(t, err)
	assert.Equal(t, dbconfig.ExitPasswordResolutionError, dbconfig.ExitCodeForError(err))
}

func TestGenerateCmd_InvalidGitBackend(t *testing.T) {
	work := workspace(t, validFiles)

	_, err := run(t, "generate", "-C", work, "--git-backend", "svn")
	require.Error(t, err)
	assert.Equal(t, dbconfig.ExitConfigError, dbconfig.ExitCodeForError(err))
}

func TestGenerateCmd_RejectsArgs(t *testing.T) {
	_, err := run(t, "generate", "extra")
	require.Error(t, err)
	assert.Equal(t, dbconfig.ExitUsageError, dbconfig.ExitCodeForError(err))
}

func TestValidateCmd(t *testing.T) {
	files := map[string]string{
		"grants.privileges.json": `[{"grant": "select", "on": "OWNER.T", "to": "APP"}]`,
		"bad.user.json":          `{"name": "x", "passwordType": "No_Authentication", "profile": "SUPERUSER"}`,
	}
	work := workspace(t, files)

	_, err := run(t, "validate", "-C", work, "--git-backend", "gogit")
	require.Error(t, err)
	assert.ErrorIs(t, err, dbconfig.ErrValidation)
	assert.Contains(t, err.Error(), "Data Owner user ID required")
	assert.Contains(t, err.Error(), "User: x Invalid User Type 'SUPERUSER'")

	out, err := run(t, "validate", "-C", work, "--git-backend", "gogit", "--data-owner", "OWNER")
	require.Error(t, err, out)
	assert.NotContains(t, err.Error(), "Data Owner user ID required")
}

func TestValidateCmd_ParseError(t *testing.T) {
	work := workspace(t, map[string]string{"broken.role.json": `{"name": `})

	_, err := run(t, "validate", "-C", work, "--git-backend", "gogit")
	require.Error(t, err)
	assert.Equal(t, dbconfig.ExitParseError, dbconfig.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "broken.role.json")

	var report bytes.Buffer
	reportError(&report, err)
	assert.True(t, strings.HasPrefix(report.String(), "Error parsing JSON in file: "), report.String())
	assert.Contains(t, report.String(), "broken.role.json")
}

func TestReportError_Plain(t *testing.T) {
	var report bytes.Buffer
	reportError(&report, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", report.String())
}

func TestInspectCmd(t *testing.T) {
	work := workspace(t, validFiles)
	t.Setenv("APP_PASSWORD", "pw")

	out, err := run(t, "inspect", "-C", work, "--git-backend", "gogit", "app-db/users/*.json")
	require.NoError(t, err)
	assert.Contains(t, out, "app-db/users/app.user.json")
	assert.Contains(t, out, `"name": "app"`)
	assert.NotContains(t, out, "pw\"")
	assert.NotContains(t, out, "owner.json")

	_, err = run(t, "inspect", "-C", work, "--git-backend", "gogit", "nothing.json")
	assert.ErrorContains(t, err, "no config file matches nothing.json")
}

func TestReposCmd(t *testing.T) {
	work := workspace(t, nil)

	out, err := run(t, "repos", "-C", work, "--git-backend", "gogit")
	require.NoError(t, err)
	assert.Contains(t, out, "Repositories (1)")
	assert.Contains(t, out, "https://dev.example.com/org/_git/app-db @ master")
}

func TestTemplatesCmd(t *testing.T) {
	out, err := run(t, "templates")
	require.NoError(t, err)
	for _, info := range templates.All() {
		assert.Contains(t, out, info.Name)
		assert.Contains(t, out, info.File)
	}
}

func TestTemplatesShowCmd(t *testing.T) {
	work := t.TempDir()

	out, err := run(t, "templates", "show", "remove_branches.sql", "-C", work)
	require.NoError(t, err)
	assert.Contains(t, out, "<branch_array>")

	override := filepath.Join(work, "sql")
	require.NoError(t, os.MkdirAll(override, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(override, "privileges.sql"), []byte("-- custom grants\n"), 0644))

	out, err = run(t, "templates", "show", "Privileges", "-C", work, "--template-dir", "sql")
	require.NoError(t, err)
	assert.Equal(t, "-- custom grants\n", out)

	_, err = run(t, "templates", "show", "nope")
	assert.ErrorContains(t, err, `unknown template "nope"`)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dbconfig "), out)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny("a/b.json", nil))
	assert.True(t, matchesAny("a/b.json", []string{"a/b.json"}))
	assert.True(t, matchesAny("a/b.json", []string{"x", "a/*.json"}))
	assert.False(t, matchesAny("a/b/c.json", []string{"a/*.json"}))
}

func TestFindTemplate(t *testing.T) {
	info, ok := findTemplate("createuser")
	require.True(t, ok)
	assert.Equal(t, templates.CreateUser, info.Kind)

	info, ok = findTemplate("USER_QUOTA.SQL")
	require.True(t, ok)
	assert.Equal(t, templates.Quota, info.Kind)

	_, ok = findTemplate("missing")
	assert.False(t, ok)
}
