package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Basename != "magnitude_curve_refined" {
		t.Errorf("unexpected basename %q", cfg.Output.Basename)
	}
	if len(cfg.Output.Formats) != 2 {
		t.Errorf("expected pdf+png formats, got %v", cfg.Output.Formats)
	}
	if cfg.Sampling.Samples != 1000 {
		t.Errorf("expected 1000 samples, got %d", cfg.Sampling.Samples)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("draft")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Output.PNGDPI != 96 {
		t.Errorf("expected draft dpi 96, got %d", cfg.Output.PNGDPI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("draft preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figure.yaml")

	cfg := DefaultConfig()
	cfg.Sampling.Samples = 500
	cfg.Output.Formats = []string{"png"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Sampling.Samples != 500 {
		t.Errorf("expected 500 samples after round trip, got %d", loaded.Sampling.Samples)
	}
	if len(loaded.Output.Formats) != 1 || loaded.Output.Formats[0] != "png" {
		t.Errorf("expected png format after round trip, got %v", loaded.Output.Formats)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few samples", func(c *Config) { c.Sampling.Samples = 1 }},
		{"empty range", func(c *Config) { c.Sampling.Lo, c.Sampling.Hi = 5, 5 }},
		{"zero width", func(c *Config) { c.Figure.WidthIn = 0 }},
		{"inverted axis", func(c *Config) { c.Figure.YMin, c.Figure.YMax = 3, -1 }},
		{"no formats", func(c *Config) { c.Output.Formats = nil }},
		{"bad format", func(c *Config) { c.Output.Formats = []string{"bmp"} }},
		{"bad dpi", func(c *Config) { c.Output.PNGDPI = 0 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
