package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveChart renders default rate by grade as a bar chart. The image format follows
// the file extension (png, svg, pdf...).
func SaveChart(s Summary, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Default rate by grade (%d loans)", s.Rows)
	p.X.Label.Text = "Grade"
	p.Y.Label.Text = "Default rate"
	p.Y.Min = 0

	values := make(plotter.Values, len(s.ByGrade))
	labels := make([]string, len(s.ByGrade))
	for i, g := range s.ByGrade {
		values[i] = g.Rate
		labels[i] = g.Group
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 50, G: 90, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
