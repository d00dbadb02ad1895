package chart

import (
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/Maneesh-s-k/networks-lab/pkg/measurement"
	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Series is the line of one policy: points sorted by message size, one per size.
type Series struct {
	Policy string
	XYs    plotter.XYs
}

// GroupSeries splits points by policy, keeping the policies in order of first appearance.
// Points sharing a size are averaged; non-finite values are dropped.
// A policy whose values are all dropped still gets an (empty) series; points without a policy get none.
func GroupSeries(points []measurement.Point) []Series {
	var order []string
	bySize := make(map[string]map[float64][]float64)
	for _, p := range points {
		if p.Policy == "" {
			continue
		}
		if _, seen := bySize[p.Policy]; !seen {
			order = append(order, p.Policy)
			bySize[p.Policy] = make(map[float64][]float64)
		}
		if !finite(p.MessageSizeKB) || !finite(p.ThroughputKbps) {
			continue
		}
		bySize[p.Policy][p.MessageSizeKB] = append(bySize[p.Policy][p.MessageSizeKB], p.ThroughputKbps)
	}

	series := make([]Series, 0, len(order))
	for _, policy := range order {
		sizes := make([]float64, 0, len(bySize[policy]))
		for size := range bySize[policy] {
			sizes = append(sizes, size)
		}
		sort.Float64s(sizes)
		xys := make(plotter.XYs, 0, len(sizes))
		for _, size := range sizes {
			xys = append(xys, plotter.XY{X: size, Y: stat.Mean(bySize[policy][size], nil)})
		}
		series = append(series, Series{Policy: policy, XYs: xys})
	}
	return series
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Build lays out the chart for the given points without drawing it.
func Build(c Chart, points []measurement.Point) (*plot.Plot, error) {
	p := plot.New()
	configurePlot(p, c)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	p.Legend.Add(LegendTitle)
	for i, s := range GroupSeries(points) {
		line := &plotter.Line{LineStyle: draw.LineStyle{Color: plotutil.Color(i), Width: c.LineWidth}}
		marks := &plotter.Scatter{GlyphStyle: draw.GlyphStyle{Color: plotutil.Color(i), Radius: c.MarkerSize / 2, Shape: c.Marker.glyph()}}
		if len(s.XYs) > 0 {
			l, sc, err := plotter.NewLinePoints(s.XYs)
			if err != nil {
				return nil, errors.Wrapf(err, "policy %s", s.Policy)
			}
			l.LineStyle = line.LineStyle
			sc.GlyphStyle = marks.GlyphStyle
			p.Add(l, sc)
		}
		p.Legend.Add(s.Policy, line, marks)
	}

	if len(c.XTicks) > 0 {
		p.X.Min = math.Min(p.X.Min, floats.Min(c.XTicks))
		p.X.Max = math.Max(p.X.Max, floats.Max(c.XTicks))
	}
	return p, nil
}

// Set titles, fonts and tick markers of the chart
func configurePlot(p *plot.Plot, c Chart) {
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = c.TitleSize
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.X.Label.TextStyle.Font.Size = c.LabelSize
	p.Y.Label.TextStyle.Font.Size = c.LabelSize
	p.X.Tick.Label.Font.Size = tickFontSize
	p.Y.Tick.Label.Font.Size = tickFontSize
	p.Legend.TextStyle.Font.Size = legendFontSize
	p.Legend.Top = true

	p.X.Tick.Marker = fixedTicks(c.XTicks)
	p.Y.Tick.Marker = ThousandsTicks{}
}

func fixedTicks(values []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}

// Render builds the chart and writes it as a PNG at path, replacing any existing file.
func Render(c Chart, points []measurement.Point, path string) (*plot.Plot, error) {
	p, err := Build(c, points)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", c.Title)
	}
	if err := Save(p, c.Width, c.Height, path); err != nil {
		return nil, err
	}
	return p, nil
}

// Save draws the plot on a w x h canvas and writes it as a PNG.
func Save(p *plot.Plot, w, h vg.Length, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))
	p.Draw(draw.New(img))
	return writePNG(img, path)
}

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating chart file")
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
