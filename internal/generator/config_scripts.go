package generator

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vvka-141/dbconfig/internal/model"
	"github.com/vvka-141/dbconfig/internal/templates"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

var json = jsoniter.Config{EscapeHTML: false, SortMapKeys: true}.Froze()

// rowSeparator joins fabricated rows into one cursor query.
const rowSeparator = "\nunion\n"

func (g *Generator) writeConfigScripts(cfg *model.DatabaseConfiguration) error {
	steps := []func(*model.DatabaseConfiguration) error{
		g.writeSnapshot,
		g.writeTablespaces,
		g.writeUsers,
		g.writeRoles,
		g.writeDatabaseLinks,
	}
	for _, step := range steps {
		if err := step(cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeSnapshot stores the password-free configuration in numbered chunks.
func (g *Generator) writeSnapshot(cfg *model.DatabaseConfiguration) error {
	snapshot, err := cfg.MarshalSnapshot()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	chunks := Chunk(snapshot, g.opts.ChunkSize)
	for i, chunk := range chunks {
		n := i + 1
		tokens := templates.Tokens{
			"<repo_data>":        templates.Escape(cfg.Repo.RepoURL),
			"<branch_value>":     templates.Escape(cfg.Repo.BranchName),
			"<config_values>":    templates.QuotedText(chunk),
			"<number>":           strconv.Itoa(n),
			"<chunk_count>":      strconv.Itoa(len(chunks)),
			"<commit>":           templates.Escape(cfg.Repo.LatestCommit),
			"<config_file_path>": templates.Escape(cfg.ConfigFilePath),
			"<config_file>":      templates.Escape(cfg.ConfigFilePath),
			"<config_id>":        cfg.ConfigID,
			"<checksum>":         cfg.Checksum,
		}
		name := fmt.Sprintf("database_config_%s_%03d.sql", cfg.ScriptName, n)
		if err := g.render(CategoryConfigs, name, templates.WriteDatabaseConfig, tokens); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeTablespaces(cfg *model.DatabaseConfiguration) error {
	if len(cfg.TableSpaces) == 0 {
		return nil
	}

	rows := make([]string, 0, len(cfg.TableSpaces))
	for _, ts := range cfg.TableSpaces {
		var b strings.Builder
		b.WriteString("select\n")
		fmt.Fprintf(&b, "  %s tablespace_name\n", templates.LiteralOrNull(ts.Name))
		fmt.Fprintf(&b, ", %s autoextnd\n", templates.LiteralOrNull(ts.AutoExtend.String()))
		fmt.Fprintf(&b, ", %s block_size\n", templates.LiteralOr(ts.BlockSize.String(), "8"))
		fmt.Fprintf(&b, ", %s bigfile\n", templates.LiteralOr(ts.BigFile.String(), "'true'"))
		fmt.Fprintf(&b, ", %s initialsize\n", templates.LiteralOrNull(ts.InitialSize.String()))
		fmt.Fprintf(&b, ", %s max_size\n", templates.LiteralOrNull(ts.MaxSize.String()))
		fmt.Fprintf(&b, ", %s temp\n", templates.LiteralOr(ts.Temp.String(), "'false'"))
		fmt.Fprintf(&b, ", %s encrypted\n", templates.LiteralOr(ts.Encrypt.String(), "'false'"))
		fmt.Fprintf(&b, ", %s instance\n", templates.LiteralOrNull(ts.Instance.String()))
		fmt.Fprintf(&b, ", %s repo\n", templates.Literal(cfg.Repo.RepoURL))
		fmt.Fprintf(&b, ", %s branch\n", templates.Literal(cfg.Repo.BranchName))
		fmt.Fprintf(&b, ", %s config_file\n", templates.Literal(cfg.ConfigFilePath))
		fmt.Fprintf(&b, ", %s commit_id\n", templates.Literal(cfg.Repo.LatestCommit))
		b.WriteString("from\n  dual")
		rows = append(rows, b.String())
	}

	return g.render(CategoryTablespaces, "tablespace_"+cfg.ScriptName+".sql", templates.Tablespaces, templates.Tokens{
		"<replace>":          strings.Join(rows, rowSeparator),
		"<config_file_path>": cfg.ConfigFilePath,
	})
}

func (g *Generator) provenanceTokens(cfg *model.DatabaseConfiguration) templates.Tokens {
	return templates.Tokens{
		"<repoUrl>":        templates.Escape(cfg.Repo.RepoURL),
		"<branchName>":     templates.Escape(cfg.Repo.BranchName),
		"<configFilePath>": templates.Escape(cfg.ConfigFilePath),
		"<latestCommit>":   templates.Escape(cfg.Repo.LatestCommit),
	}
}

// fabricate renders one row per entity and joins them for a cursor.
func (g *Generator) fabricate(kind templates.Kind, rowTokens []templates.Tokens) (string, error) {
	rows := make([]string, 0, len(rowTokens))
	for _, tokens := range rowTokens {
		row, err := g.engine.Render(kind, tokens)
		if err != nil {
			return "", err
		}
		rows = append(rows, strings.TrimRight(row, "\n"))
	}
	return strings.Join(rows, rowSeparator), nil
}

func (g *Generator) writeUsers(cfg *model.DatabaseConfiguration) error {
	if len(cfg.Users) == 0 {
		return nil
	}

	var rowTokens []templates.Tokens
	for _, u := range cfg.Users {
		tokens := g.provenanceTokens(cfg)
		tokens["<username>"] = templates.LiteralOrNull(u.Name)
		tokens["<passwordType>"] = templates.LiteralOrNull(string(u.PasswordType))
		tokens["<password>"] = templates.LiteralOrNull(u.Password)
		tokens["<gatekeeperProxyFlag>"] = flag(u.GatekeeperProxyFlag)
		tokens["<expirePasswordFlag>"] = flag(u.ExpirePasswordFlag)
		tokens["<passwordDN>"] = jsonText(u.PasswordDN)
		tokens["<profile>"] = jsonText(u.Profile)
		tokens["<tablespace>"] = jsonText(u.Tablespace)
		tokens["<accountStatus>"] = jsonText(u.AccountStatus)
		tokens["<environment>"] = templates.InList(environmentNames(u.Environments))
		tokens["<excludeEnvironments>"] = templates.InList(exclusionNames(u.ExcludeEnvironments))
		rowTokens = append(rowTokens, tokens)
	}

	rows, err := g.fabricate(templates.UserFabrication, rowTokens)
	if err != nil {
		return err
	}
	return g.render(CategoryUsers, "create_user_"+cfg.ScriptName+".sql", templates.CreateUser, templates.Tokens{
		"<replace>":          rows,
		"<config_file_path>": cfg.ConfigFilePath,
	})
}

func (g *Generator) writeRoles(cfg *model.DatabaseConfiguration) error {
	if len(cfg.Roles) == 0 {
		return nil
	}

	var rowTokens []templates.Tokens
	for _, r := range cfg.Roles {
		tokens := g.provenanceTokens(cfg)
		tokens["<rolename>"] = templates.Literal(r.Name)
		tokens["<roleDN>"] = jsonText(r.RoleDN)
		tokens["<password>"] = templates.LiteralOrNull(r.Password)
		tokens["<environment>"] = templates.InList(environmentNames(r.Environments))
		tokens["<excludeEnvironment>"] = templates.InList(exclusionNames(r.ExcludeEnvironments))
		rowTokens = append(rowTokens, tokens)
	}

	rows, err := g.fabricate(templates.RoleFabrication, rowTokens)
	if err != nil {
		return err
	}
	return g.render(CategoryRoles, "create_role_"+cfg.ScriptName+".sql", templates.CreateRole, templates.Tokens{
		"<replace>":          rows,
		"<config_file_path>": cfg.ConfigFilePath,
	})
}

func (g *Generator) writeDatabaseLinks(cfg *model.DatabaseConfiguration) error {
	if len(cfg.DatabaseLinks) == 0 {
		return nil
	}

	var rowTokens []templates.Tokens
	for _, l := range cfg.DatabaseLinks {
		tokens := g.provenanceTokens(cfg)
		tokens["<owner>"] = templates.Literal(l.Owner)
		tokens["<name>"] = templates.Literal(l.Name)
		tokens["<connectionstring>"] = jsonText(l.ConnectionString)
		tokens["<sourceUserName>"] = jsonText(l.SourceUserName)
		tokens["<sourceUserPassword>"] = templates.LiteralOrNull(l.SourceUserPassword)
		tokens["<environment>"] = templates.InList(environmentNames(l.Environments))
		tokens["<excludeEnvironment>"] = templates.InList(exclusionNames(l.ExcludeEnvironments))
		rowTokens = append(rowTokens, tokens)
	}

	rows, err := g.fabricate(templates.DBLinkFabrication, rowTokens)
	if err != nil {
		return err
	}
	return g.render(CategoryDatabaseLinks, "create_db_link_"+cfg.ScriptName+".sql", templates.DatabaseLinks, templates.Tokens{
		"<replace>":          rows,
		"<config_file_path>": cfg.ConfigFilePath,
	})
}

func flag(b bool) string {
	if b {
		return "'true'"
	}
	return "null"
}

// jsonText embeds scoped values as a SQL text literal of their JSON.
func jsonText(values []model.ScopedValue) string {
	if len(values) == 0 {
		return "null"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "null"
	}
	return templates.QuotedText(string(b))
}

func environmentNames(tags []model.EnvironmentTag) []string {
	if len(tags) == 0 {
		return []string{dbconfig.DefaultEnvironment}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Environment)
	}
	return out
}

func exclusionNames(tags []model.ExclusionTag) []string {
	if len(tags) == 0 {
		return []string{dbconfig.NoExclusion}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.ExcludeEnvironment)
	}
	return out
}
