package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gunktools/gunk/internal/core"
	"github.com/gunktools/gunk/internal/rules"
	"github.com/gunktools/gunk/internal/store"
	"github.com/gunktools/gunk/internal/sweep"
	"github.com/gunktools/gunk/internal/ui"
)

var (
	cleanYes    bool
	cleanDryRun bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Scan and delete junk files",
	Long: `Scan a directory tree and delete every junk file found.

Deletion is permanent. On a terminal you are asked to confirm; elsewhere
--yes is required.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Delete without asking for confirmation")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Show what would be deleted without deleting")
}

func runClean(cmd *cobra.Command, args []string) error {
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

	return clean(ctx, cmd.OutOrStdout(), root, set)
}

func clean(ctx context.Context, out io.Writer, root string, set *rules.Set) error {
	matches, aborted, err := ui.RunStatic(ctx, out, root, set)
	if err != nil {
		return err
	}
	if aborted {
		// An interrupted scan has a partial match list; never delete from it.
		fmt.Fprintln(out, "Nothing deleted.")
		return nil
	}
	if len(matches) == 0 {
		return nil
	}

	results := store.New()
	results.ReplaceAll(matches)

	if cleanDryRun {
		fmt.Fprintf(out, "\nDry run: %d item(s), %s would be deleted.\n",
			results.Len(), core.FormatSize(results.TotalSize()))
		return nil
	}

	if !cleanYes {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("refusing to delete without --yes on non-interactive input")
		}
		fmt.Fprintf(out, "\nDelete %d item(s), %s? [y/N] ",
			results.Len(), core.FormatSize(results.TotalSize()))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	var freed int64
	var failed int
	for _, result := range sweep.Delete(results.SelectedPaths()) {
		switch result.Outcome {
		case sweep.Deleted:
			if item := results.Get(result.Path); item != nil {
				freed += item.Size
			}
			results.Remove(result.Path)
		case sweep.PartiallyDeleted:
			failed++
			fmt.Fprintf(out, "Could not completely remove: %s\n", result.Path)
		case sweep.Failed:
			failed++
			fmt.Fprintf(out, "Error deleting %s: %s\n", result.Path, result.Reason)
		}
	}

	fmt.Fprintf(out, "\nCleanup completed: freed %s", core.FormatSize(freed))
	if failed > 0 {
		fmt.Fprintf(out, ", %d item(s) left", failed)
	}
	fmt.Fprintln(out)

	if vol, err := core.Volume(root); err == nil {
		fmt.Fprintf(out, "Volume %s: %s free of %s\n", vol.Path,
			core.FormatSize(int64(vol.FreeBytes)), core.FormatSize(int64(vol.TotalBytes)))
	}
	return nil
}
