package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples  = 1000
	DefaultRangeLo  = 0.9
	DefaultRangeHi  = 9.1
	DefaultWidthIn  = 10.0
	DefaultHeightIn = 6.5
	DefaultPNGDPI   = 150
	DefaultBasename = "magnitude_curve_refined"
)

// Config collects everything the renderer needs beyond the solution
// records themselves. The renderer is a pure function of a Config and a
// solution list; nothing is read from package-level state.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Figure   FigureConfig   `yaml:"figure"`
	Sampling SamplingConfig `yaml:"sampling"`
}

type OutputConfig struct {
	Dir      string   `yaml:"dir"`
	Basename string   `yaml:"basename"`
	Formats  []string `yaml:"formats"`
	PNGDPI   int      `yaml:"png_dpi"`
}

type FigureConfig struct {
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	Title    string  `yaml:"title"`
	Caveat   string  `yaml:"caveat"`
	XMin     float64 `yaml:"x_min"`
	XMax     float64 `yaml:"x_max"`
	YMin     float64 `yaml:"y_min"`
	YMax     float64 `yaml:"y_max"`
}

type SamplingConfig struct {
	Lo      float64 `yaml:"lo"`
	Hi      float64 `yaml:"hi"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:      ".",
			Basename: DefaultBasename,
			Formats:  []string{"pdf", "png"},
			PNGDPI:   DefaultPNGDPI,
		},
		Figure: FigureConfig{
			WidthIn:  DefaultWidthIn,
			HeightIn: DefaultHeightIn,
			Title:    "All Known Solutions Lie on the Theoretical Magnitude Curve",
			Caveat:   "Note: Curve shows necessary but not sufficient condition",
			XMin:     0.5,
			XMax:     9.5,
			YMin:     -0.1,
			YMax:     2.6,
		},
		Sampling: SamplingConfig{
			Lo:      DefaultRangeLo,
			Hi:      DefaultRangeHi,
			Samples: DefaultSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the renderer cannot act on.
func (c *Config) Validate() error {
	if c.Sampling.Samples < 2 {
		return fmt.Errorf("config: samples must be at least 2, got %d", c.Sampling.Samples)
	}
	if c.Sampling.Lo >= c.Sampling.Hi {
		return fmt.Errorf("config: sampling range [%v, %v] is empty", c.Sampling.Lo, c.Sampling.Hi)
	}
	if c.Figure.WidthIn <= 0 || c.Figure.HeightIn <= 0 {
		return fmt.Errorf("config: figure size %vx%v inches is invalid", c.Figure.WidthIn, c.Figure.HeightIn)
	}
	if c.Figure.XMin >= c.Figure.XMax || c.Figure.YMin >= c.Figure.YMax {
		return fmt.Errorf("config: axis ranges are empty")
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("config: no output formats")
	}
	for _, f := range c.Output.Formats {
		if f != "pdf" && f != "png" {
			return fmt.Errorf("config: unsupported output format %q", f)
		}
	}
	if c.Output.PNGDPI <= 0 {
		return fmt.Errorf("config: png dpi must be positive, got %d", c.Output.PNGDPI)
	}
	return nil
}
