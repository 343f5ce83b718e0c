package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dbconfig/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the SQL templates",
	Long: `Lists the SQL templates used to render deployment scripts.

A template directory (--template-dir or templateDir in dbconfig.yaml)
may override any of them by file name.`,
	Args: cobra.NoArgs,
	RunE: runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a template as it would be used",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

func init() {
	templatesCmd.AddCommand(templatesShowCmd)
	rootCmd.AddCommand(templatesCmd)
}

func runTemplatesList(cmd *cobra.Command, _ []string) error {
	p := newPrinter(cmd.OutOrStdout())
	p.title("Templates")
	for _, info := range templates.All() {
		fmt.Fprintf(p.w, "  %-24s %-24s %s\n", info.Name, info.File, info.Description)
	}
	return nil
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	info, ok := findTemplate(args[0])
	if !ok {
		return fmt.Errorf("unknown template %q; run 'dbconfig templates' to list them", args[0])
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	engine, err := templates.NewEngine(s.templateDir())
	if err != nil {
		return err
	}
	content, err := engine.Load(info.Kind)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}

// findTemplate matches a template by name or file name, ignoring case.
func findTemplate(name string) (templates.Info, bool) {
	for _, info := range templates.All() {
		if strings.EqualFold(info.Name, name) || strings.EqualFold(info.File, name) {
			return info, true
		}
	}
	return templates.Info{}, false
}
