package dataio

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"drawdata/internal/dataset"
)

// LabelColors are the plot colors of each label.
var LabelColors = map[dataset.Label]color.RGBA{
	dataset.Red:   {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	dataset.Green: {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	dataset.Blue:  {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
}

// PlotSize is the side length of saved plots.
const PlotSize = 12 * vg.Centimeter

// NewPlot builds a scatter plot with one series per label present in points.
// Canvas y grows downwards, so the y axis is inverted to match the screen.
func NewPlot(title string, points []dataset.Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = dataset.ColumnX
	p.Y.Label.Text = dataset.ColumnY
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	byLabel := make(map[dataset.Label]plotter.XYs, len(dataset.Labels))
	for _, pt := range points {
		byLabel[pt.Label] = append(byLabel[pt.Label], plotter.XY{X: pt.X, Y: pt.Y})
	}
	for _, l := range dataset.Labels {
		xys := byLabel[l]
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("scatter %s: %w", l, err)
		}
		s.GlyphStyle.Color = LabelColors[l]
		s.GlyphStyle.Radius = vg.Points(1.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(l.String(), s)
	}
	return p, nil
}

// SavePlot writes a scatter plot of points to path. The format follows the
// extension (.png, .svg, .pdf, ...).
func SavePlot(path string, points []dataset.Point) error {
	p, err := NewPlot("drawdata", points)
	if err != nil {
		return err
	}
	return p.Save(PlotSize, PlotSize, path)
}
