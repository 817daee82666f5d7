package tui

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"drawdata/internal/controller"
	"drawdata/internal/dataset"
)

const (
	sigmaStep = 1.0
	countStep = 1
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, m.frame().contentH-2)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.prompt != promptNone {
		return m.updatePrompt(msg)
	}
	if m.showSidebar {
		// If list is filtering, send keys to list and ignore global commands
		if m.l.FilterState() != list.Filtering {
			switch msg.String() {
			case "esc", "tab", "o":
				m.showSidebar = false
				m.status = "open cancelled"
				return m, nil
			case "enter":
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.openItem(it)
				}
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showTable {
		switch msg.String() {
		case "esc", "t", "q":
			m.showTable = false
			return m, nil
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.popup = ""
	case "r":
		m.setLabel(dataset.Red)
	case "g":
		m.setLabel(dataset.Green)
	case "b":
		m.setLabel(dataset.Blue)
	case "x":
		m.ctrl.SetMode(controller.Erase)
		m.status = fmt.Sprintf("erase mode  radius=%g", m.ctrl.Sigma())
	case "d":
		m.ctrl.SetMode(controller.Draw)
		m.status = "draw mode  label=" + m.ctrl.Label().String()
	case "u":
		p, err := m.store.Undo()
		if errors.Is(err, dataset.ErrEmptyStore) {
			m.status = "nothing to undo"
			break
		}
		m.status = fmt.Sprintf("undo: removed (%.2f, %.2f) %s", p.X, p.Y, p.Label)
	case "c":
		n := m.store.Len()
		m.store.Clear()
		m.status = fmt.Sprintf("cleared %d points", n)
	case "[":
		m.ctrl.SetSigma(max(0, m.ctrl.Sigma()-sigmaStep))
		m.status = fmt.Sprintf("sigma: %g", m.ctrl.Sigma())
	case "]":
		m.ctrl.SetSigma(min(dataset.MaxSigma, m.ctrl.Sigma()+sigmaStep))
		m.status = fmt.Sprintf("sigma: %g", m.ctrl.Sigma())
	case ",":
		m.ctrl.SetCount(max(0, m.ctrl.Count()-countStep))
		m.status = fmt.Sprintf("count: %d", m.ctrl.Count())
	case ".":
		m.ctrl.SetCount(min(dataset.MaxCount, m.ctrl.Count()+countStep))
		m.status = fmt.Sprintf("count: %d", m.ctrl.Count())
	case "S":
		m.openPrompt(promptSigma, "sigma: ", strconv.FormatFloat(m.ctrl.Sigma(), 'g', -1, 64))
	case "n":
		m.openPrompt(promptCount, "count: ", strconv.Itoa(m.ctrl.Count()))
	case "s":
		m.openPrompt(promptSave, "save as: ", m.defaultSavePath())
	case "e":
		p := strings.TrimSuffix(m.defaultSavePath(), filepath.Ext(m.defaultSavePath())) + ".png"
		m.openPrompt(promptPlot, "plot to: ", p)
	case "tab", "o":
		m.showSidebar = true
		m.refreshDir()
		m.l.SetSize(sidebarWidth-2, m.frame().contentH-2)
	case "t":
		m.showTable = true
		m.refreshTable()
	case "i":
		if m.popup != "" {
			m.popup = ""
		} else {
			m.popup = m.statsText()
		}
	case "h":
		m.helpVisible = !m.helpVisible
	case "f":
		if m.fitView() {
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "0":
		m.resetView()
		m.status = "view reset"
	case "+", "=":
		if m.zoom < 64 {
			m.zoom *= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "-", "_":
		if m.zoom > 0.05 {
			m.zoom /= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "up":
		m.offsetY -= 1
	case "down":
		m.offsetY += 1
	case "left":
		m.offsetX -= 2
	case "right":
		m.offsetX += 2
	}
	if m.popup != "" {
		m.popup = m.statsText()
	}
	return m, nil
}

func (m *Model) setLabel(l dataset.Label) {
	m.ctrl.SetLabel(l)
	m.status = "label: " + l.String()
}

func (m Model) defaultSavePath() string {
	if m.selPath != "" {
		return m.selPath
	}
	return filepath.Join(m.cwd, "dataset.csv")
}

func (m *Model) openPrompt(kind promptKind, label, value string) {
	m.prompt = kind
	m.ti.Prompt = label
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.ti.Blur()
}

// updatePrompt handles keys while the path or parameter prompt is open. Esc
// cancels without side effects.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		switch m.prompt {
		case promptSave:
			m.status = "save cancelled"
		case promptPlot:
			m.status = "plot cancelled"
		default:
			m.status = "unchanged"
		}
		m.closePrompt()
		return m, nil
	case "enter":
		kind := m.prompt
		v := strings.TrimSpace(m.ti.Value())
		m.closePrompt()
		m.submitPrompt(kind, v)
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) submitPrompt(kind promptKind, v string) {
	switch kind {
	case promptSave, promptPlot:
		if v == "" {
			m.status = "no path given"
			return
		}
		if !filepath.IsAbs(v) {
			v = filepath.Join(m.cwd, v)
		}
		if kind == promptPlot {
			m.savePlot(v)
			return
		}
		m.savePath(v)
	case promptSigma:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			m.status = "sigma must be a non-negative number"
			return
		}
		m.ctrl.SetSigma(f)
		m.status = fmt.Sprintf("sigma: %g", f)
		if f > dataset.MaxSigma {
			m.status += fmt.Sprintf(" (clusters use %g)", dataset.MaxSigma)
		}
	case promptCount:
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			m.status = "count must be a non-negative integer"
			return
		}
		m.ctrl.SetCount(n)
		m.status = fmt.Sprintf("count: %d", n)
		if n > dataset.MaxCount {
			m.status += fmt.Sprintf(" (clusters use %d)", dataset.MaxCount)
		}
	}
}

// updateMouse tracks hover and feeds left-button gestures to the controller.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	f := m.frame()
	cx, cy := msg.X-f.originX, msg.Y-f.originY
	x, y := m.cellToCanvas(cx, cy)

	if f.inCanvas(msg.X, msg.Y) {
		m.hovering = true
		m.hoverCellX, m.hoverCellY = cx, cy
		m.hoverX, m.hoverY = x, y
	} else {
		m.hovering = false
	}
	if m.prompt != promptNone || m.showTable {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.hovering {
				before := m.store.Len()
				m.ctrl.Press(x, y)
				m.reportGesture(before)
			}
		case tea.MouseButtonWheelUp:
			if m.hovering && m.zoom < 64 {
				m.zoom *= 1.2
			}
		case tea.MouseButtonWheelDown:
			if m.hovering && m.zoom > 0.05 {
				m.zoom /= 1.2
			}
		}
	case tea.MouseActionMotion:
		if !m.ctrl.Dragging() {
			break
		}
		before := m.store.Len()
		if msg.Button == tea.MouseButtonNone {
			// the release was lost, e.g. the button came up outside the window
			m.ctrl.Release(x, y)
		} else {
			m.ctrl.Move(x, y)
		}
		m.reportGesture(before)
	case tea.MouseActionRelease:
		if m.ctrl.Dragging() {
			before := m.store.Len()
			m.ctrl.Release(x, y)
			m.reportGesture(before)
		}
	}
}

func (m *Model) reportGesture(before int) {
	after := m.store.Len()
	switch {
	case after > before:
		m.status = fmt.Sprintf("+%d %s  total=%d", after-before, m.ctrl.Label(), after)
	case after < before:
		m.status = fmt.Sprintf("erased %d  total=%d", before-after, after)
	}
}
