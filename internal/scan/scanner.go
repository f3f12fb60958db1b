// Package scan implements the cancellable junk scan: a pre-order directory
// walk that classifies entries against a rule set and streams match,
// progress, and completion events to the consumer.
package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gunktools/gunk/internal/rules"
)

// ErrScanActive is returned by Start while a previous scan is still
// running. Callers treat it as "request ignored".
var ErrScanActive = errors.New("scan: a scan is already running")

// terminalSendTimeout bounds how long the worker waits to hand the terminal
// event to a consumer that may already be gone (e.g. during shutdown).
const terminalSendTimeout = time.Second

// Scanner runs at most one scan at a time on a background goroutine.
// The zero value is not usable; call New.
type Scanner struct {
	running atomic.Bool
}

// New returns an idle Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Running reports whether a scan is currently in flight.
func (s *Scanner) Running() bool {
	return s.running.Load()
}

// Start begins scanning the tree rooted at root against set and returns the
// event stream. The walk runs on its own goroutine; events arrive in
// traversal order and the stream always ends with DoneEvent or AbortedEvent
// before the channel is closed.
//
// An unreadable root is a hard failure: the error is returned synchronously
// and no scan starts. Starting while a scan is running returns
// ErrScanActive. All other filesystem errors are swallowed per entry.
func (s *Scanner) Start(ctx context.Context, root string, set *rules.Set) (<-chan Event, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrScanActive
	}

	info, err := os.Lstat(root)
	if err != nil {
		s.running.Store(false)
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		s.running.Store(false)
		return nil, fmt.Errorf("scan root %s: not a directory", root)
	}
	if _, err := os.ReadDir(root); err != nil {
		s.running.Store(false)
		return nil, fmt.Errorf("scan root: %w", err)
	}

	ch := make(chan Event, 32)
	go s.run(ctx, root, set, ch)
	return ch, nil
}

func (s *Scanner) run(ctx context.Context, root string, set *rules.Set, ch chan<- Event) {
	defer close(ch)
	defer s.running.Store(false)

	w := &walker{ctx: ctx, set: set, ch: ch}
	start := time.Now()

	if w.walk(root) {
		s.sendTerminal(ch, DoneEvent{
			TotalBytes: w.totalBytes,
			Matches:    w.matches,
			Elapsed:    time.Since(start),
		})
		return
	}
	s.sendTerminal(ch, AbortedEvent{})
}

// sendTerminal delivers the final event with a bounded wait so an abandoned
// consumer cannot pin the worker forever.
func (s *Scanner) sendTerminal(ch chan<- Event, ev Event) {
	timer := time.NewTimer(terminalSendTimeout)
	defer timer.Stop()
	select {
	case ch <- ev:
	case <-timer.C:
	}
}

// walker carries the per-scan walk state.
type walker struct {
	ctx        context.Context
	set        *rules.Set
	ch         chan<- Event
	totalBytes int64
	matches    int
}

// emit sends an event unless the scan has been cancelled. It reports
// whether the walk may continue.
func (w *walker) emit(ev Event) bool {
	select {
	case w.ch <- ev:
		return true
	case <-w.ctx.Done():
		return false
	}
}

func (w *walker) cancelled() bool {
	return w.ctx.Err() != nil
}

// walk visits dir and its subtree in pre-order. It returns false as soon as
// cancellation is observed; the current directory is not finished.
func (w *walker) walk(dir string) bool {
	if !w.emit(ProgressEvent{Dir: dir}) {
		return false
	}
	if w.cancelled() {
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable below the root: skip the directory, keep scanning.
		return true
	}

	// Matched junk folders are leaves: emitted once with their recursive
	// size, never descended into. Remaining subdirectories are walked after
	// the file pass. Symlinks are never directories here, so cycles cannot
	// recurse.
	var descend []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !w.set.MatchFolder(e.Name()) {
			descend = append(descend, path)
			continue
		}
		info, infoErr := e.Info()
		if infoErr != nil {
			continue
		}
		size := DirSize(w.ctx, path)
		if w.cancelled() {
			return false
		}
		if !w.report(Entry{Path: path, Size: size, ModTime: info.ModTime()}) {
			return false
		}
	}

	if w.cancelled() {
		return false
	}

	for _, e := range entries {
		if e.IsDir() || !w.set.MatchFile(e.Name()) {
			continue
		}
		info, infoErr := e.Info()
		if infoErr != nil {
			// Race-deleted or unreadable: no event, no abort.
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !w.report(Entry{Path: path, Size: info.Size(), ModTime: info.ModTime()}) {
			return false
		}
	}

	for _, sub := range descend {
		if !w.walk(sub) {
			return false
		}
	}
	return true
}

func (w *walker) report(entry Entry) bool {
	if !w.emit(MatchEvent{Entry: entry}) {
		return false
	}
	w.totalBytes += entry.Size
	w.matches++
	return true
}
