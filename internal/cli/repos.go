package cli

import (
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List the repositories found under the working directory",
	Args:  cobra.NoArgs,
	RunE:  runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	svc, err := resolveService(s)
	if err != nil {
		return err
	}
	repos, err := svc.Discover(s.ctx, s.gen)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	p.repositories(repos)
	for _, r := range repos {
		if len(r.RemoteBranches) > 0 {
			p.field(r.Name+" branches", len(r.RemoteBranches))
		}
	}
	return nil
}
