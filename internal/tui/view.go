package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"drawdata/internal/controller"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	f := m.frame()

	// Header
	header := titleStyle.Render(" drawdata ─ paint a labeled 2D dataset ") + "  " + m.toolState()
	header = lipgloss.NewStyle().Width(f.contentW).MaxHeight(headerHeight).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Canvas
	var canvasView string
	if m.showTable {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(f.canvasW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(f.canvasH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		canvasView = lipgloss.Place(f.canvasW, f.canvasH, lipgloss.Center, lipgloss.Center, box)
	} else {
		canvasView = lipgloss.NewStyle().Width(f.canvasW).Height(f.canvasH).Render(m.renderCanvas(f.canvasW, f.canvasH))
	}
	if m.popup != "" && !m.showTable {
		box := boxStyle.MaxWidth(min(48, f.canvasW)).Render(m.popup)
		canvasView = lipgloss.Place(f.canvasW, f.canvasH, lipgloss.Left, lipgloss.Top, box)
	}

	// Body row
	body := canvasView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvasView)
	}

	// Footer: prompt or status, then help with the pointer position at the right
	var line1 string
	if m.prompt != promptNone {
		line1 = m.ti.View()
	} else {
		line1 = dimStyle.Render(" " + m.status + " ")
	}
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.1f y=%.1f  ", m.hoverX, m.hoverY))
	}
	help := lipgloss.NewStyle().MaxWidth(max(0, f.contentW-lipgloss.Width(coords))).Render(m.renderHelp())
	spacerW := max(0, f.contentW-lipgloss.Width(help)-lipgloss.Width(coords))
	line2 := lipgloss.JoinHorizontal(lipgloss.Bottom, help, strings.Repeat(" ", spacerW), coords)
	footer := lipgloss.NewStyle().Width(f.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, line1, line2))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(f.contentW).Height(m.height).Render(ui)
}

// toolState shows the active label or erase mode with the cluster parameters.
func (m Model) toolState() string {
	var tool string
	if m.ctrl.Mode() == controller.Erase {
		tool = cursorStyle.Render("erase")
	} else {
		l := m.ctrl.Label()
		tool = labelStyles[l].Bold(true).Render("● " + l.String())
	}
	return tool + dimStyle.Render(fmt.Sprintf("  σ=%g n=%d  points=%d", m.ctrl.Sigma(), m.ctrl.Count(), m.store.Len()))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"r/g/b label",
		"x erase",
		"d draw",
		"u undo",
		"c clear",
		"[ ] sigma",
		", . count",
		"s save",
		"o open",
		"e plot",
		"t table",
		"i info",
		"f fit",
		"h help",
		"q quit",
	}
	return dimStyle.Render(" " + strings.Join(keys, "  "))
}
