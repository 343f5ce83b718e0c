package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [config-file...]",
	Short: "Print the normalized configuration of each config file",
	Long: `Compiles every repository and prints the normalized, password-free
configuration that would be stored for each config file.

Arguments filter by config file path relative to the working directory;
shell-style patterns are accepted.`,
	Example: `  dbconfig inspect
  dbconfig inspect 'app-db/users/*.user.json'`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	svc, err := resolveService(s)
	if err != nil {
		return err
	}
	res, err := svc.Compile(s.ctx, s.gen)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	shown := 0
	for _, cfg := range res.Compilation.Configs {
		if !matchesAny(cfg.ConfigFilePath, args) {
			continue
		}
		snapshot, err := cfg.MarshalSnapshot()
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", cfg.ConfigFilePath, err)
		}
		p.title(fmt.Sprintf("%s (%s)", cfg.ConfigFilePath, cfg.Kind))
		p.field("Repository", fmt.Sprintf("%s @ %s", cfg.Repo.Name, cfg.Repo.BranchName))
		p.field("Config ID", cfg.ConfigID)
		p.field("Checksum", cfg.Checksum)
		fmt.Fprintln(p.w, snapshot)
		fmt.Fprintln(p.w)
		shown++
	}
	if shown == 0 && len(args) > 0 {
		return fmt.Errorf("no config file matches %s", strings.Join(args, ", "))
	}
	return nil
}

func matchesAny(p string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if pattern == p {
			return true
		}
		if ok, err := path.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}
