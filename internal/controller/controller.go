// Package controller turns pointer events into dataset operations.
package controller

import (
	"fmt"

	"drawdata/internal/dataset"
)

// Threshold is the distance a drag must travel from the last sampled
// position before it samples again.
const Threshold = 5.0

// Mode selects what a press does.
type Mode int

const (
	Draw Mode = iota
	Erase
)

func (m Mode) String() string {
	switch m {
	case Draw:
		return "draw"
	case Erase:
		return "erase"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Store is the part of *dataset.Store the controller drives.
type Store interface {
	AddCluster(cx, cy float64, label dataset.Label, sigma float64, count int) int
	EraseNear(x, y, radius float64) int
}

// Config is the initial drawing state.
type Config struct {
	Label dataset.Label
	Mode  Mode
	Sigma float64
	Count int
}

// Controller tracks a single press-drag-release gesture.
type Controller struct {
	store Store

	label dataset.Label
	mode  Mode
	sigma float64
	count int

	dragging     bool
	lastX, lastY float64
}

// New returns an idle controller.
func New(store Store, cfg Config) *Controller {
	return &Controller{
		store: store,
		label: cfg.Label,
		mode:  cfg.Mode,
		sigma: cfg.Sigma,
		count: cfg.Count,
	}
}

// Press starts a gesture at (x, y) and samples or erases there.
func (c *Controller) Press(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
	if c.mode == Erase {
		c.store.EraseNear(x, y, c.sigma)
		return
	}
	c.store.AddCluster(x, y, c.label, c.sigma, c.count)
}

// Move acts like a press once the pointer is Threshold away from the last
// sampled position. It does nothing outside a gesture.
func (c *Controller) Move(x, y float64) {
	if !c.dragging {
		return
	}
	dx, dy := c.lastX-x, c.lastY-y
	if dx*dx+dy*dy >= Threshold*Threshold {
		c.Press(x, y)
	}
}

// Release runs a last move check and ends the gesture.
func (c *Controller) Release(x, y float64) {
	c.Move(x, y)
	c.dragging = false
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// SetLabel selects the label for new clusters and switches back to drawing.
func (c *Controller) SetLabel(l dataset.Label) {
	c.label = l
	c.mode = Draw
}

func (c *Controller) SetMode(m Mode)       { c.mode = m }
func (c *Controller) SetSigma(s float64)   { c.sigma = s }
func (c *Controller) SetCount(n int)       { c.count = n }
func (c *Controller) Label() dataset.Label { return c.label }
func (c *Controller) Mode() Mode           { return c.mode }
func (c *Controller) Sigma() float64       { return c.sigma }
func (c *Controller) Count() int           { return c.count }
