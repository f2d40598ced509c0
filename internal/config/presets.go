package config

// Presets are named figure configurations. "paper" matches the
// publication defaults; the others trade fidelity for speed or screen
// legibility.
var Presets = map[string]func() *Config{
	"paper": DefaultConfig,
	"draft": func() *Config {
		cfg := DefaultConfig()
		cfg.Output.Formats = []string{"png"}
		cfg.Output.PNGDPI = 96
		cfg.Sampling.Samples = 250
		return cfg
	},
	"slides": func() *Config {
		cfg := DefaultConfig()
		cfg.Output.Formats = []string{"png"}
		cfg.Output.PNGDPI = 200
		cfg.Figure.WidthIn = 12.0
		cfg.Figure.HeightIn = 6.75
		return cfg
	},
}

func GetPreset(name string) *Config {
	mk, ok := Presets[name]
	if !ok {
		return nil
	}
	return mk()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
