package tui

import (
	"maps"
	"slices"

	"drawdata/internal/dataset"
)

type marker struct {
	x, y  float64
	size  float64
	label dataset.Label
}

// canvas keeps the markers created by the store. It is the store's
// dataset.Renderer; the View draws whatever is registered here.
type canvas struct {
	next    dataset.Handle
	markers map[dataset.Handle]marker
}

func newCanvas() *canvas {
	return &canvas{markers: make(map[dataset.Handle]marker)}
}

func (c *canvas) CreateMarker(x, y, size float64, label dataset.Label) dataset.Handle {
	c.next++
	c.markers[c.next] = marker{x: x, y: y, size: size, label: label}
	return c.next
}

func (c *canvas) DestroyMarker(h dataset.Handle) {
	delete(c.markers, h)
}

func (c *canvas) len() int { return len(c.markers) }

// each visits markers in creation order so later markers paint over earlier
// ones.
func (c *canvas) each(fn func(marker)) {
	for _, h := range slices.Sorted(maps.Keys(c.markers)) {
		fn(c.markers[h])
	}
}
