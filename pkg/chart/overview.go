package chart

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// SaveOverview draws the plots as a grid with cols columns into a single PNG.
// Every cell is cellWidth x cellHeight; missing cells of the last row stay blank.
func SaveOverview(plots []*plot.Plot, cols int, cellWidth, cellHeight vg.Length, path string) error {
	if len(plots) == 0 || cols <= 0 {
		return errors.Errorf("cannot tile %d plots on %d columns", len(plots), cols)
	}
	rows := (len(plots) + cols - 1) / cols

	// row-major, padded with nil plots
	cells := make([]*plot.Plot, rows*cols)
	copy(cells, plots)
	matrix := make([][]*plot.Plot, rows)
	for i := range matrix {
		matrix[i] = cells[i*cols : (i+1)*cols]
	}

	img := vgimg.NewWith(vgimg.UseWH(cellWidth*vg.Length(cols), cellHeight*vg.Length(rows)), vgimg.UseDPI(DPI))
	canvases := plot.Align(matrix, draw.Tiles{Rows: rows, Cols: cols, PadX: vg.Millimeter, PadY: vg.Millimeter}, draw.New(img))
	for i, row := range matrix {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
	return writePNG(img, path)
}
