package figure

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	xAxisLabel = "x = n + a (index of largest factorial term)"
	yAxisLabel = "log10(k)"

	stepLegendLabel   = "Exact integer magnitude: k = sqrt(floor(n+a)! + 1)"
	smoothLegendLabel = "Theoretical approximation: k ~ sqrt((n+a)! + 1)"
)

// CategoryStyle fixes marker, color, size, and legend label for one
// family of solutions.
type CategoryStyle struct {
	Label   string
	Color   color.Color
	Fill    draw.GlyphDrawer
	Outline draw.GlyphDrawer
	Area    float64 // marker area in square points
}

// Radius converts the matplotlib-style marker area to a glyph radius.
func (cs CategoryStyle) Radius() vg.Length {
	return vg.Points(math.Sqrt(cs.Area / math.Pi))
}

var categoryStyles = map[int]CategoryStyle{
	0: {
		Label:   "Brocard-Ramanujan (a=0)",
		Color:   color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
		Fill:    draw.CircleGlyph{},
		Outline: draw.RingGlyph{},
		Area:    90,
	},
	1: {
		Label:   "Consecutive pairs (a=1)",
		Color:   color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
		Fill:    draw.BoxGlyph{},
		Outline: draw.SquareGlyph{},
		Area:    90,
	},
	4: {
		Label:   "New discovery (a=4)",
		Color:   color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
		Fill:    draw.PyramidGlyph{},
		Outline: draw.TriangleGlyph{},
		Area:    130,
	},
}

// styleFor returns the style for category a. Categories without a fixed
// style get a neutral marker so an extended dataset still renders.
func styleFor(a int) CategoryStyle {
	if cs, ok := categoryStyles[a]; ok {
		return cs
	}
	return CategoryStyle{
		Label:   fmt.Sprintf("a=%d", a),
		Color:   color.RGBA{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff},
		Fill:    draw.CircleGlyph{},
		Outline: draw.RingGlyph{},
		Area:    90,
	}
}

// CategoryLabel returns the legend label used for category a.
func CategoryLabel(a int) string {
	return styleFor(a).Label
}

func stepLineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  color.Black,
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}
}

func smoothLineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		Width:  vg.Points(1.5),
		Dashes: []vg.Length{vg.Points(1), vg.Points(1.5)},
	}
}

func gridLineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
	}
}
