package tui

import (
	"math"
	"strings"

	"drawdata/internal/dataset"
)

// Cell tints besides the label codes.
const (
	tintNone   int8 = -1
	tintCursor int8 = -2
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	t    [][]int8  // per-cell tint of the last pixel set

	cursor      [2]int
	cursorGlyph rune // zero hides the cursor
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	t := make([][]int8, h)
	for i := range m {
		m[i] = make([]uint8, w)
		t[i] = make([]int8, w)
	}
	return &brailleBuf{w: w, h: h, m: m, t: t}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, tint int8) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.t[cy][cx] = tint
}

// stamp draws a filled disc of radius r micro-pixels centred on (mx, my).
func (b *brailleBuf) stamp(mx, my, r int, label dataset.Label) {
	if r <= 0 {
		b.setPixel(mx, my, int8(label))
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				b.setPixel(mx+dx, my+dy, int8(label))
			}
		}
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, tint int8) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, tint)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ring outlines a circle of radius r micro-pixels as a closed polygon.
func (b *brailleBuf) ring(mx, my int, r float64, tint int8) {
	if r < 1 || math.IsInf(r, 0) || math.IsNaN(r) {
		return
	}
	const segments = 32
	px, py := mx+int(math.Round(r)), my
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x := mx + int(math.Round(r*math.Cos(a)))
		y := my + int(math.Round(r*math.Sin(a)))
		b.drawLineMicro(px, py, x, y, tint)
		px, py = x, y
	}
}

// toLines renders the buffer, colouring runs of cells that share a tint.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	var sb, run strings.Builder
	for y := 0; y < b.h; y++ {
		sb.Reset()
		run.Reset()
		cur := tintNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch cur {
			case tintNone:
				sb.WriteString(run.String())
			case tintCursor:
				sb.WriteString(cursorStyle.Render(run.String()))
			default:
				sb.WriteString(labelStyles[dataset.Label(cur)].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			if b.cursorGlyph != 0 && b.cursor == [2]int{x, y} {
				flush()
				cur = tintNone
				sb.WriteString(cursorStyle.Render(string(b.cursorGlyph)))
				continue
			}
			mask := b.m[y][x]
			tint := b.t[y][x]
			if mask == 0 {
				tint = tintNone
			}
			if tint != cur {
				flush()
				cur = tint
			}
			if mask == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
