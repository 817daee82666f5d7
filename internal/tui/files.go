package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"drawdata/internal/dataio"
	"drawdata/internal/dataset"
)

type fileItem struct {
	title, desc string
	path        string
	isDir       bool
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var dirs, files []list.Item
	if parent := filepath.Dir(m.cwd); parent != m.cwd {
		dirs = append(dirs, fileItem{title: "../", desc: "dir", path: parent, isDir: true})
	}
	for _, e := range entries {
		name := e.Name()
		p := filepath.Join(m.cwd, name)
		if e.IsDir() {
			if name[0] != '.' {
				dirs = append(dirs, fileItem{title: name + "/", desc: "dir", path: p, isDir: true})
			}
			continue
		}
		if dataio.Supported(name) {
			files = append(files, fileItem{title: name, desc: filepath.Ext(name), path: p})
		}
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(fileItem).Title() < files[j].(fileItem).Title() })
	items := append(dirs, files...)
	m.l.SetItems(items)
	m.l.Title = "Open " + m.cwd
	if len(files) == 0 {
		m.status = "no dataset files in " + m.cwd
	}
}

// openItem enters a directory or loads a file chosen in the sidebar.
func (m *Model) openItem(it fileItem) {
	if it.isDir {
		m.cwd = it.path
		m.refreshDir()
		m.l.ResetSelected()
		return
	}
	m.loadPath(it.path)
	m.showSidebar = false
}

// loadPath appends the points stored at p. The file is parsed in full before
// the store is touched, so a bad file adds nothing.
func (m *Model) loadPath(p string) {
	t, err := dataio.Load(p)
	if err != nil {
		var ife *dataset.InvalidFileError
		if errors.As(err, &ife) {
			m.status = "invalid file: " + err.Error()
		} else {
			m.status = "load error: " + err.Error()
		}
		m.log.Error().Err(err).Str("path", p).Msg("load failed")
		return
	}
	n, err := m.store.Import(t)
	if err != nil {
		m.status = "invalid file: " + err.Error()
		m.log.Error().Err(err).Str("path", p).Msg("import failed")
		return
	}
	m.selPath = p
	m.status = fmt.Sprintf("loaded: %s  points=%d  total=%d", filepath.Base(p), n, m.store.Len())
	m.log.Info().Str("path", p).Int("points", n).Msg("dataset loaded")
	if m.showTable {
		m.refreshTable()
	}
}

// savePath writes the dataset to p, or a plot of it when p has an image
// extension.
func (m *Model) savePath(p string) {
	if dataio.IsPlot(p) {
		m.savePlot(p)
		return
	}
	if err := dataio.Save(p, m.store.Export()); err != nil {
		m.status = "save error: " + err.Error()
		m.log.Error().Err(err).Str("path", p).Msg("save failed")
		return
	}
	m.selPath = p
	m.status = fmt.Sprintf("saved: %s  points=%d", filepath.Base(p), m.store.Len())
	m.log.Info().Str("path", p).Int("points", m.store.Len()).Msg("dataset saved")
}

func (m *Model) savePlot(p string) {
	if err := dataio.SavePlot(p, m.store.Points()); err != nil {
		m.status = "plot error: " + err.Error()
		m.log.Error().Err(err).Str("path", p).Msg("plot failed")
		return
	}
	m.status = "plot written: " + filepath.Base(p)
	m.log.Info().Str("path", p).Msg("plot written")
}
