// Package chart draws throughput line charts, one line per scheduling policy, and saves them as PNG.
package chart

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Marker is the glyph drawn on every point of a chart.
type Marker int

const (
	Circle Marker = iota
	Triangle
	Square
	Diamond
)

func (m Marker) glyph() draw.GlyphDrawer {
	switch m {
	case Circle:
		return draw.CircleGlyph{}
	case Triangle:
		return draw.PyramidGlyph{}
	case Square:
		return draw.BoxGlyph{}
	case Diamond:
		return DiamondGlyph{}
	default:
		panic("Wrong marker: only circle, triangle, square and diamond are allowed")
	}
}

// DiamondGlyph is a filled square standing on one corner.
type DiamondGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

// Chart is the layout of one throughput chart.
type Chart struct {
	Title    string
	XLabel   string
	YLabel   string
	Filename string
	Marker   Marker
	XTicks   []float64 // fixed tick positions, the x range always covers them

	Width  vg.Length
	Height vg.Length

	LineWidth  vg.Length
	MarkerSize vg.Length // glyph diameter
	TitleSize  vg.Length
	LabelSize  vg.Length
}

const (
	DPI         = 100
	AxisTicks   = 8
	LegendTitle = "Policy"
)

var (
	legendFontSize = vg.Points(11)
	tickFontSize   = vg.Points(11)
	gridColor      = color.Gray{Y: 0xdd}
)
