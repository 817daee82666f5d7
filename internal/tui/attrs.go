package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"drawdata/internal/dataset"
)

// refreshTable rebuilds the point table from the exported dataset.
func (m *Model) refreshTable() {
	t := m.store.Export()
	cols := []table.Column{
		{Title: "#", Width: 6},
		{Title: dataset.ColumnX, Width: 12},
		{Title: dataset.ColumnY, Width: 12},
		{Title: dataset.ColumnColor, Width: 10},
	}
	rows := make([]table.Row, 0, len(t))
	for i, r := range t {
		l, _ := dataset.LabelFromCode(r.Code)
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(r.X, 'f', 3, 64),
			strconv.FormatFloat(r.Y, 'f', 3, 64),
			fmt.Sprintf("%d %s", r.Code, l),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	if len(rows) > 0 {
		m.tbl.GotoBottom()
	}
}

// statsText summarises the dataset for the info popup.
func (m Model) statsText() string {
	counts := m.store.Counts()
	name := "<unsaved>"
	if m.selPath != "" {
		name = m.selPath
	}
	s := fmt.Sprintf("file: %s\npoints: %d", name, m.store.Len())
	for _, l := range dataset.Labels {
		s += fmt.Sprintf("\n  %d %-5s %d", l.Code(), l, counts[l])
	}
	if bb, ok := m.store.Bounds(); ok {
		s += fmt.Sprintf("\nbbox: [%.2f, %.2f, %.2f, %.2f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)
	}
	s += fmt.Sprintf("\nsigma: %g  count: %d  mode: %s", m.ctrl.Sigma(), m.ctrl.Count(), m.ctrl.Mode())
	return s
}
