package cmd

import (
	"context"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gunktools/gunk/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan for junk files",
	Long: `Scan a directory tree for junk files and review the results.

On a terminal this opens the interactive results table; redirected output
gets a plain listing instead (nothing is deleted).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	set, err := buildRules(root)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		_, _, err := ui.RunStatic(ctx, cmd.OutOrStdout(), root, set)
		return err
	}

	m := ui.New(ctx, root, set)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
