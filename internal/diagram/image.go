package diagram

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportDisplacementDiagram writes a line plot of nodal displacement
// magnitudes, one series per load case or combination, to an image file.
// The format follows the file extension (png, svg, pdf).
func ExportDisplacementDiagram(series []DisplacementSeries, filename string) error {
	if err := validateExportFormat(filename); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Nodal Displacements"
	p.X.Label.Text = "Node"
	p.Y.Label.Text = "Displacement Magnitude"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			pts[j] = plotter.XY{X: float64(j + 1), Y: v}
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("plotting series %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(2.5)

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("saving diagram to %s: %w", filename, err)
	}
	return nil
}

func validateExportFormat(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".tif", ".tiff", ".eps":
		return nil
	}
	return fmt.Errorf("unsupported export format %q (use png, svg, or pdf)", filepath.Ext(filename))
}
