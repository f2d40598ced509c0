package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avenkat/magcurve/internal/config"
	"github.com/avenkat/magcurve/internal/export"
	"github.com/avenkat/magcurve/internal/figure"
	"github.com/avenkat/magcurve/internal/magnitude"
	"github.com/avenkat/magcurve/internal/sample"
	"github.com/avenkat/magcurve/internal/viz"
)

var (
	configFile string
	preset     string
	outDir     string
	basename   string
	formats    []string
	samples    int
	pngDPI     int
	widthIn    float64
	heightIn   float64
	// Sampling window for export/preview/explore
	rangeLo float64
	rangeHi float64
	// Preview dimensions
	previewWidth  int
	previewHeight int
)

// main registers the command tree. Running with no subcommand renders
// the figure with publication defaults into the working directory.
func main() {
	rootCmd := &cobra.Command{
		Use:   "magcurve",
		Short: "magnitude curve figure for the generalized Brocard-Ramanujan solutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderFigure(config.DefaultConfig())
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the figure with explicit settings",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	renderCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	renderCmd.Flags().StringVar(&basename, "base", config.DefaultBasename, "output basename")
	renderCmd.Flags().StringSliceVar(&formats, "formats", []string{"pdf", "png"}, "output formats")
	renderCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "curve samples")
	renderCmd.Flags().IntVar(&pngDPI, "png-dpi", config.DefaultPNGDPI, "png resolution")
	renderCmd.Flags().Float64Var(&widthIn, "width", config.DefaultWidthIn, "figure width (inches)")
	renderCmd.Flags().Float64Var(&heightIn, "height", config.DefaultHeightIn, "figure height (inches)")

	evalCmd := &cobra.Command{
		Use:   "eval [x]",
		Short: "evaluate both curves at x",
		Args:  cobra.ExactArgs(1),
		RunE:  evalCurves,
	}

	solutionsCmd := &cobra.Command{
		Use:   "solutions",
		Short: "list the known solutions",
		RunE:  listSolutions,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "verify the defining identity for every solution",
		RunE:  checkSolutions,
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "terminal chart of both curves",
		RunE:  previewCurves,
	}
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "chart width")
	previewCmd.Flags().IntVar(&previewHeight, "height", 15, "chart height")
	previewCmd.Flags().Float64Var(&rangeLo, "lo", config.DefaultRangeLo, "window start")
	previewCmd.Flags().Float64Var(&rangeHi, "hi", config.DefaultRangeHi, "window end")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export sampled curve data to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			step, smooth, err := sampleCurves(rangeLo, rangeHi, samples)
			if err != nil {
				return err
			}
			return export.WriteCSV(os.Stdout, step, smooth)
		},
	}
	exportCSVCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "curve samples")
	exportCSVCmd.Flags().Float64Var(&rangeLo, "lo", config.DefaultRangeLo, "window start")
	exportCSVCmd.Flags().Float64Var(&rangeHi, "hi", config.DefaultRangeHi, "window end")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export sampled curve data and solutions to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			step, smooth, err := sampleCurves(rangeLo, rangeHi, samples)
			if err != nil {
				return err
			}
			return export.WriteJSON(os.Stdout, step, smooth, magnitude.Known())
		},
	}
	exportJSONCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "curve samples")
	exportJSONCmd.Flags().Float64Var(&rangeLo, "lo", config.DefaultRangeLo, "window start")
	exportJSONCmd.Flags().Float64Var(&rangeHi, "hi", config.DefaultRangeHi, "window end")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive curve explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := viz.NewExplorer(rangeLo, rangeHi, magnitude.Known())
			if err != nil {
				return err
			}
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}
	exploreCmd.Flags().Float64Var(&rangeLo, "lo", config.DefaultRangeLo, "window start")
	exploreCmd.Flags().Float64Var(&rangeHi, "hi", config.DefaultRangeHi, "window end")

	rootCmd.AddCommand(renderCmd, evalCmd, solutionsCmd, checkCmd, previewCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config and preset values only when set.
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = outDir
	}
	if cmd.Flags().Changed("base") {
		cfg.Output.Basename = basename
	}
	if cmd.Flags().Changed("formats") {
		cfg.Output.Formats = formats
	}
	if cmd.Flags().Changed("samples") {
		cfg.Sampling.Samples = samples
	}
	if cmd.Flags().Changed("png-dpi") {
		cfg.Output.PNGDPI = pngDPI
	}
	if cmd.Flags().Changed("width") {
		cfg.Figure.WidthIn = widthIn
	}
	if cmd.Flags().Changed("height") {
		cfg.Figure.HeightIn = heightIn
	}

	return renderFigure(cfg)
}

func renderFigure(cfg *config.Config) error {
	start := time.Now()

	files, err := figure.Save(cfg, magnitude.Known())
	if err != nil {
		return err
	}

	fmt.Printf("figure saved as %s (%v)\n", strings.Join(files, " and "), time.Since(start).Round(time.Millisecond))
	return nil
}

func evalCurves(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid x: %w", err)
	}

	fmt.Printf("x:      %.6f\n", x)
	fmt.Printf("step:   %.9f\n", magnitude.StepCurve(x))
	fmt.Printf("smooth: %.9f\n", magnitude.SmoothCurve(x))
	return nil
}

func listSolutions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tK\tA\tX\tLOG10(K)\tCATEGORY")

	for _, s := range magnitude.Known() {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.0f\t%.6f\t%s\n",
			s.N, s.K, s.A, s.X(), s.LogK(), figure.CategoryLabel(s.A))
	}

	return w.Flush()
}

func checkSolutions(cmd *cobra.Command, args []string) error {
	for _, s := range magnitude.Known() {
		if err := s.Verify(); err != nil {
			return err
		}
		fmt.Printf("ok  n=%d k=%d a=%d: sum of %d factorial term(s) + 1 = %d^2\n",
			s.N, s.K, s.A, s.A+1, s.K)
	}
	fmt.Println("all solutions verified")
	return nil
}

func previewCurves(cmd *cobra.Command, args []string) error {
	step, smooth, err := sampleCurves(rangeLo, rangeHi, 4*previewWidth)
	if err != nil {
		return err
	}
	fmt.Println(export.Preview(step, smooth, previewWidth, previewHeight))
	return nil
}

func sampleCurves(lo, hi float64, n int) (sample.Series, sample.Series, error) {
	step, err := sample.Curve(magnitude.StepCurve, lo, hi, n)
	if err != nil {
		return sample.Series{}, sample.Series{}, err
	}
	smooth, err := sample.Curve(magnitude.SmoothCurve, lo, hi, n)
	if err != nil {
		return sample.Series{}, sample.Series{}, err
	}
	return step, smooth, nil
}
