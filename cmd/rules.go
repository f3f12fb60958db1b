package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gunktools/gunk/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active junk rules",
	Long:  "Print the rule set a scan would use, after config and flag overlays.",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(nil)
		if err != nil {
			return err
		}
		set, err := buildRules(root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Names:")
		for _, n := range set.Names {
			fmt.Fprintf(out, "  %s\n", n)
		}
		fmt.Fprintln(out, "Patterns:")
		for _, p := range set.Patterns {
			fmt.Fprintf(out, "  %s\n", rules.PatternSource(p))
		}
		fmt.Fprintln(out, "Extensions:")
		for _, e := range set.Extensions {
			fmt.Fprintf(out, "  %s\n", e)
		}
		fmt.Fprintln(out, "Folders:")
		for _, f := range set.Folders {
			fmt.Fprintf(out, "  %s\n", f)
		}
		return nil
	},
}
