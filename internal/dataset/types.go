// Package dataset holds the labeled points of a drawing session and keeps
// them aligned with the markers that display them.
package dataset

import (
	"fmt"
	"strings"
)

// Label is the class of a point. The numeric value is also the code written
// to the color column of exported tables.
type Label int

const (
	Red Label = iota
	Green
	Blue
)

// Labels lists every label in code order.
var Labels = []Label{Red, Green, Blue}

func (l Label) String() string {
	switch l {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}

// Code returns the integer written to the color column.
func (l Label) Code() int { return int(l) }

// Valid reports whether l is one of the three fixed labels.
func (l Label) Valid() bool { return l >= Red && l <= Blue }

// LabelFromCode maps a color column value back to a label.
func LabelFromCode(code int) (Label, bool) {
	l := Label(code)
	return l, l.Valid()
}

// ParseLabel accepts a label name (case-insensitive).
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	}
	return 0, fmt.Errorf("unknown label %q", s)
}

// Point is a single sample. Points are never modified after creation.
type Point struct {
	X     float64
	Y     float64
	Label Label
}

// Handle identifies a marker created by a Renderer.
type Handle uint64

// Renderer draws and removes point markers.
type Renderer interface {
	CreateMarker(x, y, size float64, label Label) Handle
	DestroyMarker(h Handle)
}

// BBox is the axis-aligned extent of a set of points.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// extend grows b to include (x, y). first resets b to the single point.
func (b *BBox) extend(x, y float64, first bool) {
	if first {
		*b = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}
