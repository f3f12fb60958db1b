// Package ui implements the interactive results screen: a selectable table
// of matches fed by the scan event stream, with batch deletion.
package ui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gunktools/gunk/internal/core"
	"github.com/gunktools/gunk/internal/rules"
	"github.com/gunktools/gunk/internal/scan"
	"github.com/gunktools/gunk/internal/store"
	"github.com/gunktools/gunk/internal/sweep"
)

// shutdownGrace bounds how long quitting waits for a cancelled scan worker
// to acknowledge before forcing exit.
const shutdownGrace = time.Second

// scanRetryDelay is how long a rescan waits for the previous worker to
// finish winding down before trying again.
const scanRetryDelay = 50 * time.Millisecond

// ─── Messages ────────────────────────────────────────────────────────────────

type scanStreamMsg struct {
	id int
	ch <-chan scan.Event
}

type scanFailedMsg struct {
	id  int
	err error
}

type scanEventMsg struct {
	id int
	ev scan.Event
	ch <-chan scan.Event
}

type retryScanMsg struct {
	id int
}

type deleteResultMsg struct {
	result sweep.Result
}

type volumeMsg struct {
	usage core.VolumeUsage
	err   error
}

type shutdownTimeoutMsg struct{}

// ─── Sorting ─────────────────────────────────────────────────────────────────

type sortMode int

const (
	sortDiscovery sortMode = iota
	sortSizeDesc
	sortSizeAsc
	sortPath
	sortModified
)

func (m sortMode) String() string {
	switch m {
	case sortSizeDesc:
		return "size ↓"
	case sortSizeAsc:
		return "size ↑"
	case sortPath:
		return "path"
	case sortModified:
		return "modified"
	default:
		return "found"
	}
}

// ─── Key map ─────────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle      key.Binding
	SelectAll   key.Binding
	DeselectAll key.Binding
	Delete      key.Binding
	Sort        key.Binding
	Rescan      key.Binding
	Abort       key.Binding
	Reveal      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		SelectAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		DeselectAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "select none")),
		Delete:      key.NewBinding(key.WithKeys("D", "enter"), key.WithHelp("D/enter", "delete selected")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Rescan:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
		Abort:       key.NewBinding(key.WithKeys("x", "esc"), key.WithHelp("x", "abort scan")),
		Reveal:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "reveal")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.Delete, k.Sort, k.Rescan, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.SelectAll, k.DeselectAll, k.Delete, k.Reveal},
		{k.Sort, k.Rescan, k.Abort, k.Help, k.Quit},
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the scan-and-clean screen. All result
// mutation happens here, on the program's update loop; the scan worker only
// emits events.
type Model struct {
	root  string
	set   *rules.Set
	sc    *scan.Scanner
	items *store.Store

	table   table.Model
	spinner spinner.Model
	sweep   progress.Model
	help    help.Model
	keys    keyMap

	baseCtx    context.Context
	baseCancel context.CancelFunc
	scanCtx    context.Context
	scanCancel context.CancelFunc
	scanID     int

	scanning   bool
	scanStart  time.Time
	currentDir string
	lastScan   scan.DoneEvent
	scanErr    error
	quitting   bool

	// view is the display ordering of the store's items; the store itself
	// stays in discovery order.
	view []*store.Item
	sort sortMode

	confirming bool
	confirm    []string

	deleting     bool
	deleteQueue  []string
	deleteDone   int
	deleteFailed int
	freedBytes   int64

	volume    core.VolumeUsage
	volumeOK  bool
	lastEvent string
	width     int
	height    int
}

// New builds the model for one scan root and rule set.
func New(ctx context.Context, root string, set *rules.Set) Model {
	baseCtx, baseCancel := context.WithCancel(ctx)
	scanCtx, scanCancel := context.WithCancel(baseCtx)

	t := table.New(
		table.WithColumns(defaultColumns(80)),
		table.WithFocused(true),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(ts)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(clrPrimary)

	return Model{
		root:       root,
		set:        set,
		sc:         scan.New(),
		items:      store.New(),
		table:      t,
		spinner:    sp,
		sweep:      progress.New(progress.WithDefaultGradient()),
		help:       help.New(),
		keys:       newKeyMap(),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		scanCtx:    scanCtx,
		scanCancel: scanCancel,
		scanID:     1,
		scanning:   true,
		scanStart:  time.Now(),
		lastEvent:  "Scanning…",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		startScanCmd(m.scanCtx, m.sc, m.root, m.set, m.scanID),
		volumeCmd(m.root),
	)
}

// ─── Update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateLayout(msg.Width, msg.Height)

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case progress.FrameMsg:
		updated, cmd := m.sweep.Update(msg)
		if next, ok := updated.(progress.Model); ok {
			m.sweep = next
		}
		cmds = append(cmds, cmd)

	case volumeMsg:
		if msg.err == nil {
			m.volume = msg.usage
			m.volumeOK = true
		}

	case scanStreamMsg:
		if msg.id != m.scanID {
			break
		}
		cmds = append(cmds, waitEventCmd(msg.id, msg.ch))

	case scanFailedMsg:
		if msg.id != m.scanID {
			break
		}
		if errors.Is(msg.err, scan.ErrScanActive) {
			// The previous worker is still winding down; not a failure.
			cmds = append(cmds, retryScanCmd(msg.id))
			break
		}
		m.scanning = false
		m.scanErr = msg.err
		m.lastEvent = fmt.Sprintf("Scan failed: %v", msg.err)

	case retryScanMsg:
		if msg.id != m.scanID || !m.scanning {
			break
		}
		if m.sc.Running() {
			cmds = append(cmds, retryScanCmd(msg.id))
			break
		}
		cmds = append(cmds, startScanCmd(m.scanCtx, m.sc, m.root, m.set, m.scanID))

	case scanEventMsg:
		if msg.id != m.scanID {
			break
		}
		if cmd := m.applyScanEvent(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.quitting && !m.scanning {
			return m, tea.Quit
		}

	case deleteResultMsg:
		if cmd := m.applyDeleteResult(msg.result); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case shutdownTimeoutMsg:
		if m.quitting {
			return m, tea.Quit
		}

	case tea.KeyMsg:
		if m.confirming {
			switch msg.String() {
			case "y", "Y":
				paths := m.confirm
				m.confirming = false
				m.confirm = nil
				if cmd := m.startDelete(paths); cmd != nil {
					cmds = append(cmds, cmd)
				}
			case "n", "N", "esc":
				m.confirming = false
				m.confirm = nil
				m.lastEvent = "Deletion cancelled"
			}
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.requestQuit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Abort):
			if m.scanning {
				m.scanCancel()
				m.lastEvent = "Aborting…"
			}
		case key.Matches(msg, m.keys.Rescan):
			if !m.scanning && !m.deleting {
				var scanCmds []tea.Cmd
				m, scanCmds = m.startScan()
				cmds = append(cmds, scanCmds...)
			}
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCurrent()
		case key.Matches(msg, m.keys.SelectAll):
			m.items.SelectAll()
			m.refreshRows()
		case key.Matches(msg, m.keys.DeselectAll):
			m.items.DeselectAll()
			m.refreshRows()
		case key.Matches(msg, m.keys.Sort):
			m.sort = (m.sort + 1) % 5
			m.refreshRows()
			m.lastEvent = fmt.Sprintf("Sorted by %s", m.sort)
		case key.Matches(msg, m.keys.Reveal):
			if item := m.currentItem(); item != nil {
				core.Reveal(item.Path)
			}
		case key.Matches(msg, m.keys.Delete):
			m.requestDelete()
		}
	}

	if !m.confirming {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}
	return ui.container.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		ui.tableBox.Render(m.table.View()),
		m.statusView(),
		m.footerView(),
	))
}

// ─── Scan lifecycle ──────────────────────────────────────────────────────────

func (m Model) startScan() (Model, []tea.Cmd) {
	m.scanCancel()
	ctx, cancel := context.WithCancel(m.baseCtx)
	m.scanCtx = ctx
	m.scanCancel = cancel
	m.scanID++
	m.scanning = true
	m.scanErr = nil
	m.scanStart = time.Now()
	m.currentDir = ""
	m.lastEvent = "Scanning…"
	m.items.Clear()
	m.refreshRows()
	return m, []tea.Cmd{
		m.spinner.Tick,
		startScanCmd(ctx, m.sc, m.root, m.set, m.scanID),
		volumeCmd(m.root),
	}
}

func (m *Model) applyScanEvent(msg scanEventMsg) tea.Cmd {
	switch ev := msg.ev.(type) {
	case scan.ProgressEvent:
		m.currentDir = ev.Dir
	case scan.MatchEvent:
		m.items.Add(ev.Entry)
		m.refreshRows()
	case scan.DoneEvent:
		m.scanning = false
		m.lastScan = ev
		m.currentDir = ""
		m.lastEvent = fmt.Sprintf("Scan completed in %s. Found %d items, total %s",
			core.FormatDuration(ev.Elapsed), ev.Matches, core.FormatSize(ev.TotalBytes))
		return nil
	case scan.AbortedEvent:
		m.scanning = false
		m.currentDir = ""
		m.lastEvent = "Scan aborted"
		return nil
	}
	return waitEventCmd(msg.id, msg.ch)
}

// requestQuit cancels any running scan and waits briefly for the worker to
// acknowledge before exiting.
func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	m.baseCancel()
	if !m.scanning {
		return m, tea.Quit
	}
	m.quitting = true
	m.lastEvent = "Stopping scan…"
	return m, tea.Tick(shutdownGrace, func(time.Time) tea.Msg {
		return shutdownTimeoutMsg{}
	})
}

// ─── Selection and deletion ──────────────────────────────────────────────────

func (m *Model) currentItem() *store.Item {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.view) {
		return nil
	}
	return m.view[idx]
}

func (m *Model) toggleCurrent() {
	item := m.currentItem()
	if item == nil {
		return
	}
	m.items.Toggle(item.Path)
	m.refreshRows()
}

// requestDelete asks for confirmation before deleting the selected subset.
// Disabled while a scan or a deletion batch is running.
func (m *Model) requestDelete() {
	if m.scanning || m.deleting {
		return
	}
	if !m.items.AnySelected() {
		m.lastEvent = "Nothing selected"
		return
	}
	paths := m.items.SelectedPaths()
	m.confirming = true
	m.confirm = paths
}

func (m *Model) startDelete(paths []string) tea.Cmd {
	if len(paths) == 0 || m.deleting {
		return nil
	}
	m.deleting = true
	m.deleteQueue = paths
	m.deleteDone = 0
	m.deleteFailed = 0
	m.freedBytes = 0
	m.lastEvent = fmt.Sprintf("Deleting %d item(s)…", len(paths))
	return tea.Batch(m.sweep.SetPercent(0), deleteCmd(paths[0]))
}

func (m *Model) applyDeleteResult(result sweep.Result) tea.Cmd {
	if item := m.items.Get(result.Path); item != nil {
		switch result.Outcome {
		case sweep.Deleted:
			m.freedBytes += item.Size
			m.items.Remove(result.Path)
		case sweep.PartiallyDeleted:
			m.deleteFailed++
			m.lastEvent = fmt.Sprintf("Could not completely remove %s", result.Path)
		case sweep.Failed:
			m.deleteFailed++
			m.lastEvent = fmt.Sprintf("Error deleting %s: %s", result.Path, result.Reason)
		}
	}
	m.refreshRows()

	if !m.deleting {
		return nil
	}
	m.deleteDone++
	percent := 1.0
	if len(m.deleteQueue) > 0 {
		percent = float64(m.deleteDone) / float64(len(m.deleteQueue))
	}
	progressCmd := m.sweep.SetPercent(percent)

	if m.deleteDone >= len(m.deleteQueue) {
		total := len(m.deleteQueue)
		m.deleting = false
		m.deleteQueue = nil
		if m.deleteFailed > 0 {
			m.lastEvent = fmt.Sprintf("Cleanup finished: %d removed, %d left (freed %s)",
				total-m.deleteFailed, m.deleteFailed, core.FormatSize(m.freedBytes))
		} else {
			m.lastEvent = fmt.Sprintf("Cleanup completed, freed %s", core.FormatSize(m.freedBytes))
		}
		cmds := []tea.Cmd{progressCmd, volumeCmd(m.root)}
		return tea.Batch(cmds...)
	}
	next := m.deleteQueue[m.deleteDone]
	return tea.Batch(progressCmd, deleteCmd(next))
}

// ─── Table plumbing ──────────────────────────────────────────────────────────

// refreshRows rebuilds the display ordering and table rows from the store.
func (m *Model) refreshRows() {
	items := m.items.Items()
	m.view = make([]*store.Item, len(items))
	copy(m.view, items)

	switch m.sort {
	case sortSizeDesc:
		sort.SliceStable(m.view, func(i, j int) bool { return m.view[i].Size > m.view[j].Size })
	case sortSizeAsc:
		sort.SliceStable(m.view, func(i, j int) bool { return m.view[i].Size < m.view[j].Size })
	case sortPath:
		sort.SliceStable(m.view, func(i, j int) bool {
			return strings.ToLower(m.view[i].Path) < strings.ToLower(m.view[j].Path)
		})
	case sortModified:
		sort.SliceStable(m.view, func(i, j int) bool { return m.view[i].ModTime.Before(m.view[j].ModTime) })
	}

	rows := make([]table.Row, 0, len(m.view))
	for _, item := range m.view {
		mark := " "
		if item.Selected {
			mark = "✓"
		}
		rows = append(rows, table.Row{
			mark,
			item.Path,
			core.FormatSize(item.Size),
			item.ModTime.Format("2006-01-02 15:04:05"),
		})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func defaultColumns(width int) []table.Column {
	const markWidth, sizeWidth, modWidth = 3, 12, 20
	pathWidth := max(width-markWidth-sizeWidth-modWidth-12, 24)
	return []table.Column{
		{Title: "✓", Width: markWidth},
		{Title: "Path", Width: pathWidth},
		{Title: "Size", Width: sizeWidth},
		{Title: "Modified", Width: modWidth},
	}
}

func (m *Model) updateLayout(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	if width < 60 {
		width = 60
	}
	if height < 12 {
		height = 12
	}
	m.width = width
	m.height = height

	m.table.SetColumns(defaultColumns(width))
	headerHeight := lipgloss.Height(m.headerView())
	statusHeight := lipgloss.Height(m.statusView())
	footerHeight := lipgloss.Height(m.footerView())
	m.table.SetHeight(max(height-headerHeight-statusHeight-footerHeight-4, 5))
	m.table.SetWidth(width - 4)
	m.sweep.Width = max(width-28, 20)
}

// ─── Commands ────────────────────────────────────────────────────────────────

func startScanCmd(ctx context.Context, sc *scan.Scanner, root string, set *rules.Set, id int) tea.Cmd {
	return func() tea.Msg {
		ch, err := sc.Start(ctx, root, set)
		if err != nil {
			return scanFailedMsg{id: id, err: err}
		}
		return scanStreamMsg{id: id, ch: ch}
	}
}

func retryScanCmd(id int) tea.Cmd {
	return tea.Tick(scanRetryDelay, func(time.Time) tea.Msg {
		return retryScanMsg{id: id}
	})
}

func waitEventCmd(id int, ch <-chan scan.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return scanEventMsg{id: id, ev: ev, ch: ch}
	}
}

func deleteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return deleteResultMsg{result: sweep.Delete([]string{path})[0]}
	}
}

func volumeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		usage, err := core.Volume(path)
		return volumeMsg{usage: usage, err: err}
	}
}
