package figure

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var wheat = color.RGBA{R: 0xf5, G: 0xde, B: 0xb3, A: 0x99}

// note draws a short caption anchored at a fractional position of the
// plot area, matplotlib axes-fraction style, over a wheat backing box.
type note struct {
	msg    string
	fx, fy float64
	style  text.Style
}

// newNote derives the caption style from base so the text handler and
// typeface stay consistent with the rest of the plot.
func newNote(msg string, fx, fy float64, base text.Style) *note {
	st := base
	st.Color = color.Black
	st.Font.Size = vg.Points(8)
	st.Font.Weight = xfont.WeightNormal
	st.Font.Style = xfont.StyleItalic
	st.XAlign = text.XRight
	st.YAlign = text.YBottom
	return &note{msg: msg, fx: fx, fy: fy, style: st}
}

func (n *note) Plot(c draw.Canvas, _ *plot.Plot) {
	pt := vg.Point{
		X: c.Min.X + vg.Length(n.fx)*(c.Max.X-c.Min.X),
		Y: c.Min.Y + vg.Length(n.fy)*(c.Max.Y-c.Min.Y),
	}

	w := n.style.Width(n.msg)
	h := n.style.Height(n.msg)
	pad := vg.Points(3)

	var box vg.Path
	box.Move(vg.Point{X: pt.X - w - pad, Y: pt.Y - pad})
	box.Line(vg.Point{X: pt.X + pad, Y: pt.Y - pad})
	box.Line(vg.Point{X: pt.X + pad, Y: pt.Y + h + pad})
	box.Line(vg.Point{X: pt.X - w - pad, Y: pt.Y + h + pad})
	box.Close()
	c.SetColor(wheat)
	c.Fill(box)

	c.FillText(n.style, pt, n.msg)
}
