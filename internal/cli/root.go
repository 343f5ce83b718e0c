package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dbconfig/internal/files/loader"
)

var rootCmd = &cobra.Command{
	Use:   "dbconfig",
	Short: "Compile database configuration repositories into deployment scripts",
	Long: `dbconfig reads JSON configuration fragments (tablespaces, profiles, users,
roles, privileges, database links, directories, network ACLs) from every
repository under a working directory and writes an ordered set of SQL
scripts plus a master deployment script that runs them.

Configuration files are optional. dbconfig.yaml in the working directory
sets defaults; flags override it. A .env file in the working directory is
loaded before secrets are read from the environment.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Malformed JSON in a config file
  12 - Configuration failed validation
  13 - A password could not be resolved
  14 - Deployment script was not written
  15 - Repository identity could not be resolved`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err for the user. Malformed config files are reported
// by path so the user can find the broken file.
func reportError(w io.Writer, err error) {
	if loader.IsParseError(err) {
		fmt.Fprintln(w, loader.Describe(err))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.workDir, "workdir", "C", ".", "Working directory containing the repositories")
	rootCmd.PersistentFlags().StringVar(&globalFlags.gitBackend, "git-backend", "", "Repository identity backend: cli or gogit")
	rootCmd.PersistentFlags().StringSliceVar(&globalFlags.repositories, "repo", nil, "Repository directory to include (repeatable; default: every subdirectory)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.templateDir, "template-dir", "", "Directory of SQL templates overriding the built-in ones")
	rootCmd.PersistentFlags().StringVar(&globalFlags.dataOwner, "data-owner", "", "Data owner used when no config file declares dataOwnerUserId")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
