package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gunktools/gunk/internal/core"
)

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) headerView() string {
	title := ui.title.Render("gunk")
	subtitle := ui.subtitle.Render("junk file cleaner")
	root := ui.muted.Render("Root: " + m.root)

	line := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", subtitle)
	info := root
	if m.volumeOK {
		vol := fmt.Sprintf("Volume %s: %s free of %s (%.0f%% used)",
			m.volume.Path,
			core.FormatSize(int64(m.volume.FreeBytes)),
			core.FormatSize(int64(m.volume.TotalBytes)),
			m.volume.UsedPercent)
		info = lipgloss.JoinHorizontal(lipgloss.Left, root, "  ·  ", ui.muted.Render(vol))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, line, info))
}

// ─── Status line ─────────────────────────────────────────────────────────────

func (m Model) statusView() string {
	if m.scanning {
		dir := m.currentDir
		if maxLen := m.width - 20; maxLen > 10 && len(dir) > maxLen {
			dir = "…" + dir[len(dir)-maxLen:]
		}
		line := fmt.Sprintf("%s Scanning: %s", m.spinner.View(), dir)
		return ui.status.Render(line)
	}

	if m.scanErr != nil {
		return ui.danger.Render(fmt.Sprintf("Error: %v", m.scanErr))
	}

	selected := fmt.Sprintf("Selected: %d (%s)",
		len(m.items.SelectedPaths()), core.FormatSize(m.items.SelectedSize()))
	if m.items.AllSelected() {
		selected = fmt.Sprintf("Selected: all (%s)", core.FormatSize(m.items.SelectedSize()))
	}
	parts := []string{
		fmt.Sprintf("Items: %d", m.items.Len()),
		fmt.Sprintf("Total: %s", core.FormatSize(m.items.TotalSize())),
		selected,
		fmt.Sprintf("Sort: %s", m.sort),
	}
	lines := []string{ui.status.Render(strings.Join(parts, " · "))}
	if m.deleting {
		lines = append(lines,
			ui.muted.Render(fmt.Sprintf("Deleting %d/%d", m.deleteDone, len(m.deleteQueue))),
			ui.muted.Render(m.sweep.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) footerView() string {
	if m.confirming {
		label := fmt.Sprintf("Delete %d selected item(s) permanently? (y/n)", len(m.confirm))
		return ui.confirm.Render(label)
	}
	if m.lastEvent != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			ui.muted.Render(m.lastEvent),
			m.help.View(m.keys))
	}
	return m.help.View(m.keys)
}
