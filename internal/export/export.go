// Package export writes sampled curve data as CSV or JSON and renders a
// quick terminal preview.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/avenkat/magcurve/internal/magnitude"
	"github.com/avenkat/magcurve/internal/sample"
)

// WriteCSV emits x,step,smooth rows. Both series must share the same
// sampling grid.
func WriteCSV(w io.Writer, step, smooth sample.Series) error {
	if step.Len() != smooth.Len() {
		return fmt.Errorf("export: series lengths differ (%d vs %d)", step.Len(), smooth.Len())
	}

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"x", "step", "smooth"}); err != nil {
		return err
	}
	for i := 0; i < step.Len(); i++ {
		x, ys := step.XY(i)
		_, yc := smooth.XY(i)
		row := []string{
			strconv.FormatFloat(x, 'f', 6, 64),
			strconv.FormatFloat(ys, 'f', 6, 64),
			strconv.FormatFloat(yc, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Document is the JSON export shape: the shared grid, both curves, and
// the solution records.
type Document struct {
	X         []float64            `json:"x"`
	Step      []float64            `json:"step"`
	Smooth    []float64            `json:"smooth"`
	Solutions []magnitude.Solution `json:"solutions"`
}

// WriteJSON emits an indented Document.
func WriteJSON(w io.Writer, step, smooth sample.Series, sols []magnitude.Solution) error {
	if step.Len() != smooth.Len() {
		return fmt.Errorf("export: series lengths differ (%d vs %d)", step.Len(), smooth.Len())
	}

	doc := Document{
		X:         step.Xs,
		Step:      step.Ys,
		Smooth:    smooth.Ys,
		Solutions: sols,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
