package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"drawdata/internal/config"
	"drawdata/internal/controller"
	"drawdata/internal/dataset"
	"drawdata/internal/logging"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptSave
	promptPlot
	promptSigma
	promptCount
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string
	log    zerolog.Logger

	// Data
	canvas *canvas
	store  *dataset.Store
	ctrl   *controller.Controller

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// path and parameter prompt
	prompt promptKind
	ti     textinput.Model

	// stats popup
	popup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverX     float64
	hoverY     float64

	// point table
	showTable bool
	tbl       table.Model
}

// New returns a model with an empty dataset configured from cfg.
func New(cfg config.Config, log zerolog.Logger) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "drawdata ready",
		log:         logging.Component(log, "tui"),
	}
	m.canvas = newCanvas()
	opts := []dataset.Option{
		dataset.WithMarkerSize(cfg.MarkerSize),
		dataset.WithLogger(log),
	}
	if cfg.Seed != 0 {
		opts = append(opts, dataset.WithSampler(dataset.NewGaussianSampler(cfg.Seed)))
	}
	m.store = dataset.NewStore(m.canvas, opts...)
	m.ctrl = controller.New(m.store, controller.Config{
		Label: cfg.InitialLabel(),
		Mode:  controller.Draw,
		Sigma: cfg.Sigma,
		Count: cfg.Count,
	})

	m.cwd = cfg.Dir
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Open"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.l.DisableQuitKeybindings()
	// prompt setup
	m.ti = textinput.New()
	m.ti.CharLimit = 0
	m.ti.Width = 50
	// point table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

// NewWithPath preloads a dataset file at launch.
func NewWithPath(cfg config.Config, log zerolog.Logger, path string) Model {
	m := New(cfg, log)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Store exposes the dataset, mainly for tests and the entry point.
func (m Model) Store() *dataset.Store { return m.store }
