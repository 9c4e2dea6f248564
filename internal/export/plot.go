package export

import (
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// NewPlot builds a line plot with one series per state component.
func NewPlot(title string, times []float64, states []linalg.Vector) (*plot.Plot, error) {
	if len(states) == 0 {
		return nil, ErrEmpty
	}
	if len(times) != len(states) {
		return nil, fmt.Errorf("export: %d times for %d states", len(times), len(states))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "x"
	p.Add(plotter.NewGrid())

	for i := range states[0] {
		pts := make(plotter.XYs, len(times))
		for k := range times {
			pts[k].X = times[k]
			if i < len(states[k]) {
				pts[k].Y = states[k][i]
			}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("x%d", i), line)
	}
	return p, nil
}

// SavePlot renders the trajectory to path. The image format follows the
// file extension (png, svg, pdf, ...).
func SavePlot(path, title string, times []float64, states []linalg.Vector) error {
	p, err := NewPlot(title, times, states)
	if err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}
