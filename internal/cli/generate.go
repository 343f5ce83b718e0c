package cli

import (
	"github.com/spf13/cobra"
)

var generateFlags struct {
	scriptRoot       string
	deploymentScript string
	dryRun           bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compile every repository and write the deployment scripts",
	Long: `Discovers the repositories under the working directory, compiles their
configuration files and writes the deployment scripts.

The script root is deleted and recreated on every run. The deployment
script lists every generated script in execution order.`,
	Example: `  dbconfig generate
  dbconfig generate -C /agent/_work/1/s --script-root out --deployment-script out/deploy.sql
  dbconfig generate --dry-run --verbose`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateFlags.scriptRoot, "script-root", "", "Directory for generated scripts, relative to the working directory")
	generateCmd.Flags().StringVar(&generateFlags.deploymentScript, "deployment-script", "", "Path of the master deployment script, relative to the working directory")
	generateCmd.Flags().BoolVar(&generateFlags.dryRun, "dry-run", false, "Compile and validate without writing scripts")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if generateFlags.scriptRoot != "" {
		s.gen.ScriptRoot = generateFlags.scriptRoot
	}
	if generateFlags.deploymentScript != "" {
		s.gen.DeploymentScript = generateFlags.deploymentScript
	}
	s.gen.DryRun = generateFlags.dryRun

	svc, err := resolveService(s)
	if err != nil {
		return err
	}
	res, err := svc.Generate(s.ctx, s.gen)
	if err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout()).summary(res)
	return nil
}
