package viz

import (
	"strings"
	"testing"

	"github.com/avenkat/magcurve/internal/magnitude"
)

func TestNewExplorerRejectsEmptyWindow(t *testing.T) {
	if _, err := NewExplorer(9.1, 0.9, magnitude.Known()); err == nil {
		t.Error("expected error for inverted window")
	}
	if _, err := NewExplorer(2.0, 2.0, magnitude.Known()); err == nil {
		t.Error("expected error for zero-width window")
	}
}

func TestExplorerView(t *testing.T) {
	e, err := NewExplorer(0.9, 9.1, magnitude.Known())
	if err != nil {
		t.Fatalf("new explorer: %v", err)
	}

	out := e.View()
	if !strings.Contains(out, "magnitude curve explorer") {
		t.Error("view missing header")
	}
	if !strings.Contains(out, "nearest solution") {
		t.Error("view missing nearest solution readout")
	}
}
