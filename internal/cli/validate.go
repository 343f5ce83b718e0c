package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compile every repository and report problems without writing scripts",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
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
	p.summary(res)
	p.ok(fmt.Sprintf("%d config files are valid", len(res.Compilation.Configs)))
	return nil
}
