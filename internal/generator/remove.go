package generator

import (
	"path/filepath"
	"strings"

	"github.com/vvka-141/dbconfig/internal/templates"
	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// BranchArray renders the branches to keep as coalesce(...) terms for an
// IN list. A repository with no known remote branches keeps its current one.
func BranchArray(repo dbconfig.Repository) string {
	branches := repo.RemoteBranches
	if len(branches) == 0 {
		branches = []string{repo.BranchName}
	}
	terms := make([]string, 0, len(branches))
	for _, b := range branches {
		terms = append(terms, "coalesce("+templates.Literal(b)+", '"+dbconfig.NullValue+"')")
	}
	return strings.Join(terms, ", ")
}

// FilesClause renders the condition that keeps every file still present in
// repo on its current branch, or "" when there is none.
func FilesClause(repo dbconfig.Repository, touched []dbconfig.RepoFile) string {
	var terms []string
	for _, f := range touched {
		if f.Repo == repo.RepoURL && f.Branch == repo.BranchName {
			terms = append(terms, "coalesce("+templates.Literal(f.FileName)+", '"+dbconfig.NullValue+"')")
		}
	}
	if len(terms) == 0 {
		return ""
	}
	return "and config_file not in (" + strings.Join(terms, "\n, ") + ")"
}

var repoKeyReplacer = strings.NewReplacer("/", "_", "\\", "_", " ", "")

// repoKey names the remove scripts of repo after its directory relative to
// the working directory, so repositories sharing a base name stay apart.
// Repositories outside the working directory fall back to their name.
func (g *Generator) repoKey(repo dbconfig.Repository) string {
	if repo.Path == "" {
		return repo.Name
	}
	rel, err := filepath.Rel(g.opts.WorkingDir, repo.Path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return repo.Name
	}
	return repoKeyReplacer.Replace(filepath.ToSlash(rel))
}

func (g *Generator) writeRemoveBranches(repo dbconfig.Repository) error {
	return g.render(CategoryRemove, "remove_branches_"+g.repoKey(repo)+".sql", templates.RemoveDatabaseBranches, templates.Tokens{
		"<repo_data>":    templates.Escape(repo.RepoURL),
		"<branch_array>": BranchArray(repo),
	})
}

func (g *Generator) writeRemoveFiles(repo dbconfig.Repository, touched []dbconfig.RepoFile) error {
	return g.render(CategoryRemove, "remove_files_"+g.repoKey(repo)+".sql", templates.RemoveDatabaseFiles, templates.Tokens{
		"<repo>":   templates.Escape(repo.RepoURL),
		"<branch>": templates.Escape(repo.BranchName),
		"<files>":  FilesClause(repo, touched),
	})
}
