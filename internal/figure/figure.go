package figure

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/avenkat/magcurve/internal/config"
	"github.com/avenkat/magcurve/internal/magnitude"
	"github.com/avenkat/magcurve/internal/sample"
)

// Build assembles the figure from a configuration, the solution records,
// and the two pre-sampled curves. It draws nothing; callers hand the
// returned plot to one of the writers.
func Build(cfg *config.Config, sols []magnitude.Solution, step, smooth sample.Series) (*plot.Plot, error) {
	p := plot.New()

	p.Title.Text = cfg.Figure.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold

	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.Min, p.X.Max = cfg.Figure.XMin, cfg.Figure.XMax
	p.Y.Min, p.Y.Max = cfg.Figure.YMin, cfg.Figure.YMax
	tickLo, tickHi := tickBounds(cfg.Figure.XMin, cfg.Figure.XMax)
	p.X.Tick.Marker = integerTicks(tickLo, tickHi)

	grid := plotter.NewGrid()
	grid.Vertical = gridLineStyle()
	grid.Horizontal = gridLineStyle()
	p.Add(grid)

	stepLine, err := plotter.NewLine(step)
	if err != nil {
		return nil, fmt.Errorf("figure: step curve: %w", err)
	}
	stepLine.LineStyle = stepLineStyle()
	p.Add(stepLine)
	p.Legend.Add(stepLegendLabel, stepLine)

	smoothLine, err := plotter.NewLine(smooth)
	if err != nil {
		return nil, fmt.Errorf("figure: smooth curve: %w", err)
	}
	smoothLine.LineStyle = smoothLineStyle()
	p.Add(smoothLine)
	p.Legend.Add(smoothLegendLabel, smoothLine)

	// One legend entry per category, first appearance wins. The black
	// outline glyph on top of each filled marker stands in for
	// matplotlib's edgecolors.
	cats, pts := pointsByCategory(sols)
	for _, a := range cats {
		cs := styleFor(a)

		sc, err := plotter.NewScatter(pts[a])
		if err != nil {
			return nil, fmt.Errorf("figure: scatter a=%d: %w", a, err)
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: cs.Color, Radius: cs.Radius(), Shape: cs.Fill}

		outline, err := plotter.NewScatter(pts[a])
		if err != nil {
			return nil, fmt.Errorf("figure: outline a=%d: %w", a, err)
		}
		outline.GlyphStyle = draw.GlyphStyle{Color: color.Black, Radius: cs.Radius(), Shape: cs.Outline}

		p.Add(sc, outline)
		p.Legend.Add(cs.Label, sc)
	}

	labels, err := annotations(sols)
	if err != nil {
		return nil, fmt.Errorf("figure: annotations: %w", err)
	}
	p.Add(labels)

	if cfg.Figure.Caveat != "" {
		p.Add(newNote(cfg.Figure.Caveat, 0.97, 0.03, p.Title.TextStyle))
	}

	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Render samples both curves per the configuration and builds the plot.
func Render(cfg *config.Config, sols []magnitude.Solution) (*plot.Plot, error) {
	step, err := sample.Curve(magnitude.StepCurve, cfg.Sampling.Lo, cfg.Sampling.Hi, cfg.Sampling.Samples)
	if err != nil {
		return nil, fmt.Errorf("figure: step curve: %w", err)
	}
	smooth, err := sample.Curve(magnitude.SmoothCurve, cfg.Sampling.Lo, cfg.Sampling.Hi, cfg.Sampling.Samples)
	if err != nil {
		return nil, fmt.Errorf("figure: smooth curve: %w", err)
	}
	return Build(cfg, sols, step, smooth)
}

// Save renders the figure and writes one file per configured format into
// the output directory, overwriting silently. It returns the paths
// written.
func Save(cfg *config.Config, sols []magnitude.Solution) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, err := Render(cfg, sols)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, format := range cfg.Output.Formats {
		name := filepath.Join(cfg.Output.Dir, cfg.Output.Basename+"."+format)

		f, err := os.Create(name)
		if err != nil {
			return written, err
		}
		switch format {
		case "png":
			err = WritePNG(p, cfg.Figure.WidthIn, cfg.Figure.HeightIn, cfg.Output.PNGDPI, f)
		case "pdf":
			err = WritePDF(p, cfg.Figure.WidthIn, cfg.Figure.HeightIn, f)
		default:
			err = fmt.Errorf("figure: unsupported format %q", format)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}

// WritePNG rasterizes p at the given physical size and DPI.
func WritePNG(p *plot.Plot, widthIn, heightIn float64, dpi int, out io.Writer) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))
	png := vgimg.PngCanvas{Canvas: c}
	_, err := png.WriteTo(out)
	return err
}

// WritePDF writes p as a vector PDF at the given physical size.
func WritePDF(p *plot.Plot, widthIn, heightIn float64, out io.Writer) error {
	c := vgpdf.New(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch)
	p.Draw(draw.New(c))
	_, err := c.WriteTo(out)
	return err
}

// pointsByCategory splits solutions into per-category point sets,
// preserving first-appearance category order.
func pointsByCategory(sols []magnitude.Solution) ([]int, map[int]plotter.XYs) {
	cats := magnitude.Categories(sols)
	pts := make(map[int]plotter.XYs, len(cats))
	for _, s := range sols {
		pts[s.A] = append(pts[s.A], plotter.XY{X: s.X(), Y: s.LogK()})
	}
	return cats, pts
}

// annotations places a bold "k={k}" label 8 points above every solution.
func annotations(sols []magnitude.Solution) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(sols)),
		Labels: make([]string, len(sols)),
	}
	for i, s := range sols {
		xyl.XYs[i] = plotter.XY{X: s.X(), Y: s.LogK()}
		xyl.Labels[i] = fmt.Sprintf("k=%d", s.K)
	}

	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(9)
		labels.TextStyle[i].Font.Weight = xfont.WeightBold
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
	}
	labels.Offset = vg.Point{Y: vg.Points(8)}
	return labels, nil
}

// tickBounds returns the integer tick range covered by the configured
// x axis: the first and last whole numbers inside [xmin, xmax].
func tickBounds(xmin, xmax float64) (lo, hi int) {
	return int(math.Ceil(xmin)), int(math.Floor(xmax))
}

func integerTicks(lo, hi int) plot.ConstantTicks {
	if hi < lo {
		return nil
	}
	ticks := make([]plot.Tick, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: strconv.Itoa(i)})
	}
	return plot.ConstantTicks(ticks)
}
