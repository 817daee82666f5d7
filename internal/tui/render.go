package tui

import (
	"math"
	"strings"

	"drawdata/internal/controller"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// frame is the screen geometry of one render; Update and View must agree on it.
type frame struct {
	contentW, contentH int
	originX, originY   int // top-left cell of the canvas
	canvasW, canvasH   int // canvas size in cells
}

func (m Model) frame() frame {
	f := frame{
		contentH: max(4, m.height-headerHeight-footerHeight),
		contentW: max(10, m.width),
		originY:  headerHeight,
	}
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
		f.originX = sidebarWidth + 1
	}
	f.canvasW = max(10, f.contentW-sw-1)
	f.canvasH = f.contentH
	return f
}

// inCanvas reports whether screen cell (x, y) lies on the canvas.
func (f frame) inCanvas(x, y int) bool {
	return x >= f.originX && x < f.originX+f.canvasW && y >= f.originY && y < f.originY+f.canvasH
}

// toMicro maps canvas units to braille micro-pixels considering zoom and pan.
func (m Model) toMicro(x, y float64) (int, int) {
	mx := int(math.Floor(x*m.zoom)) + m.offsetX*2
	my := int(math.Floor(y*m.zoom)) + m.offsetY*4
	return mx, my
}

// cellToCanvas converts a canvas cell to canvas units, taking the centre of
// the cell's 2x4 micro-pixel block.
func (m Model) cellToCanvas(cx, cy int) (float64, float64) {
	x := float64(cx*2+1-m.offsetX*2) / m.zoom
	y := float64(cy*4+2-m.offsetY*4) / m.zoom
	return x, y
}

func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	m.canvas.each(func(mk marker) {
		mx, my := m.toMicro(mk.x, mk.y)
		r := int(mk.size * m.zoom / 2)
		br.stamp(mx, my, min(r, 8), mk.label)
	})
	if m.hovering {
		br.cursor = [2]int{m.hoverCellX, m.hoverCellY}
		br.cursorGlyph = '+'
		if m.ctrl.Mode() == controller.Erase {
			br.cursorGlyph = '◯'
			// a ring wider than the canvas diagonal cannot cross the canvas
			r := m.ctrl.Sigma() * m.zoom
			if r <= math.Hypot(float64(w*2), float64(h*4)) {
				br.ring(m.hoverCellX*2+1, m.hoverCellY*4+2, r, tintCursor)
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// fitView sets zoom and pan so every point is visible.
func (m *Model) fitView() bool {
	bb, ok := m.store.Bounds()
	if !ok {
		return false
	}
	f := m.frame()
	wMic := float64(f.canvasW*2 - 1)
	hMic := float64(f.canvasH*4 - 1)
	bw := math.Max(bb.MaxX-bb.MinX, 1)
	bh := math.Max(bb.MaxY-bb.MinY, 1)
	m.zoom = math.Min(wMic/bw, hMic/bh) * 0.9
	m.zoom = math.Min(math.Max(m.zoom, 0.05), 64)
	cx := (bb.MinX + bb.MaxX) / 2 * m.zoom
	cy := (bb.MinY + bb.MaxY) / 2 * m.zoom
	m.offsetX = int(math.Round((wMic/2 - cx) / 2))
	m.offsetY = int(math.Round((hMic/2 - cy) / 4))
	return true
}

func (m *Model) resetView() {
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
}
