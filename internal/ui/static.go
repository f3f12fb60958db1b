package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/gunktools/gunk/internal/core"
	"github.com/gunktools/gunk/internal/rules"
	"github.com/gunktools/gunk/internal/scan"
)

// RunStatic runs a scan without the interactive TUI and prints one line per
// match. Used on non-TTY output and by the headless clean command. It
// returns the matches in discovery order and whether the scan was aborted;
// an aborted scan yields a partial list the caller must not act on.
func RunStatic(ctx context.Context, w io.Writer, root string, set *rules.Set) ([]scan.Entry, bool, error) {
	sc := scan.New()
	events, err := sc.Start(ctx, root, set)
	if err != nil {
		return nil, false, err
	}

	fmt.Fprintf(w, "Scanning %s\n\n", root)

	var matches []scan.Entry
	aborted := false
	for ev := range events {
		switch ev := ev.(type) {
		case scan.MatchEvent:
			matches = append(matches, ev.Entry)
			fmt.Fprintf(w, "  %-10s  %s  %s\n",
				core.FormatSize(ev.Entry.Size),
				ev.Entry.ModTime.Format("2006-01-02 15:04:05"),
				ev.Entry.Path)
		case scan.DoneEvent:
			fmt.Fprintf(w, "\nScan completed in %s. Found %d items, total size: %s\n",
				core.FormatDuration(ev.Elapsed), ev.Matches, core.FormatSize(ev.TotalBytes))
		case scan.AbortedEvent:
			aborted = true
			fmt.Fprintln(w, "\nScan aborted")
		}
	}
	return matches, aborted, nil
}
