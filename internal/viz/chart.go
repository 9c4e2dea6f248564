package viz

import "github.com/guptarohit/asciigraph"

// Chart renders a line chart of values. An empty series renders as "".
func Chart(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	opts := []asciigraph.Option{asciigraph.Height(height), asciigraph.Caption(caption)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(values, opts...)
}

// MultiChart overlays several series of equal length in distinct colors.
func MultiChart(series [][]float64, width, height int, caption string) string {
	if len(series) == 0 || len(series[0]) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{
		asciigraph.Cyan, asciigraph.Yellow, asciigraph.Magenta,
		asciigraph.Green, asciigraph.Red, asciigraph.Blue,
	}
	palette := make([]asciigraph.AnsiColor, len(series))
	for i := range series {
		palette[i] = colors[i%len(colors)]
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(palette...),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.PlotMany(series, opts...)
}
