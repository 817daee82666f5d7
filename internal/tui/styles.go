package tui

import (
	"github.com/charmbracelet/lipgloss"

	"drawdata/internal/dataset"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	warnFg    = lipgloss.Color("#FFA500")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	cursorStyle = lipgloss.NewStyle().Foreground(warnFg)

	labelStyles = map[dataset.Label]lipgloss.Style{
		dataset.Red:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D62728")),
		dataset.Green: lipgloss.NewStyle().Foreground(lipgloss.Color("#2CA02C")),
		dataset.Blue:  lipgloss.NewStyle().Foreground(lipgloss.Color("#1F77B4")),
	}
)
