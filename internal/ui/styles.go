package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrPrimary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	clrMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	clrDanger  = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	clrWarn    = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrGood    = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
)

// ─── Styles ──────────────────────────────────────────────────────────────────

type styles struct {
	container lipgloss.Style
	tableBox  lipgloss.Style
	title     lipgloss.Style
	subtitle  lipgloss.Style
	status    lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	danger    lipgloss.Style
	warning   lipgloss.Style
	good      lipgloss.Style
	confirm   lipgloss.Style
}

var ui = styles{
	container: lipgloss.NewStyle().Padding(0, 1),
	tableBox: lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}),
	title:    lipgloss.NewStyle().Foreground(clrPrimary).Bold(true),
	subtitle: lipgloss.NewStyle().Foreground(clrMuted),
	status:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#111827", Dark: "#e5e7eb"}),
	muted:    lipgloss.NewStyle().Foreground(clrMuted),
	accent:   lipgloss.NewStyle().Foreground(clrPrimary),
	danger:   lipgloss.NewStyle().Foreground(clrDanger).Bold(true),
	warning:  lipgloss.NewStyle().Foreground(clrWarn),
	good:     lipgloss.NewStyle().Foreground(clrGood),
	confirm: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(clrDanger).
		Bold(true).
		Padding(0, 1),
}
