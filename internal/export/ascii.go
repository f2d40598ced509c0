package export

import (
	"github.com/guptarohit/asciigraph"

	"github.com/avenkat/magcurve/internal/sample"
)

// Preview renders both curves as a terminal chart.
func Preview(step, smooth sample.Series, width, height int) string {
	return asciigraph.PlotMany(
		[][]float64{step.Ys, smooth.Ys},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("log10(k): exact step curve vs smooth gamma approximation"),
	)
}
