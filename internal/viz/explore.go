// Package viz provides an interactive terminal explorer for the
// magnitude curves.
//
// The explorer moves a cursor x across the sampling window and shows
// both curve values live, together with the nearest known solution.
//
// # Key Bindings
//
//	left/right - move the cursor
//	up/down    - grow/shrink the cursor step
//	g/G        - jump to window start/end
//	q          - quit
package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avenkat/magcurve/internal/magnitude"
	"github.com/avenkat/magcurve/internal/sample"
)

const (
	graphWidth  = 70
	graphHeight = 14
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Explorer is a bubbletea model holding the cursor position and the
// pre-sampled smooth curve backdrop.
type Explorer struct {
	x      float64
	step   float64
	lo, hi float64
	sols   []magnitude.Solution
	smooth sample.Series
}

func NewExplorer(lo, hi float64, sols []magnitude.Solution) (Explorer, error) {
	smooth, err := sample.Curve(magnitude.SmoothCurve, lo, hi, graphWidth)
	if err != nil {
		return Explorer{}, err
	}
	return Explorer{
		x:      lo,
		step:   0.1,
		lo:     lo,
		hi:     hi,
		sols:   sols,
		smooth: smooth,
	}, nil
}

func (e Explorer) Init() tea.Cmd {
	return nil
}

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return e, tea.Quit
		case "left", "h":
			e.x = math.Max(e.lo, e.x-e.step)
		case "right", "l":
			e.x = math.Min(e.hi, e.x+e.step)
		case "up", "k":
			e.step = math.Min(1.0, e.step*2)
		case "down", "j":
			e.step = math.Max(0.001, e.step/2)
		case "g":
			e.x = e.lo
		case "G":
			e.x = e.hi
		}
	}
	return e, nil
}

func (e Explorer) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("magnitude curve explorer"))
	b.WriteString("\n")

	graph := asciigraph.Plot(e.smooth.Ys,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("smooth curve on [%.1f, %.1f]", e.lo, e.hi)),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"x", fmt.Sprintf("%.3f", e.x)},
		{"floor(x)", fmt.Sprintf("%d", int(math.Floor(e.x)))},
		{"step curve", fmt.Sprintf("%.6f", magnitude.StepCurve(e.x))},
		{"smooth curve", fmt.Sprintf("%.6f", magnitude.SmoothCurve(e.x))},
		{"cursor step", fmt.Sprintf("%.3f", e.step)},
	}
	if s, dx, ok := e.nearest(); ok {
		rows = append(rows, [2]string{
			"nearest solution",
			fmt.Sprintf("n=%d k=%d a=%d (dx=%.2f)", s.N, s.K, s.A, dx),
		})
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(valueStyle.Render(r[1]))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("left/right move  up/down step  g/G jump  q quit"))
	return b.String()
}

func (e Explorer) nearest() (magnitude.Solution, float64, bool) {
	if len(e.sols) == 0 {
		return magnitude.Solution{}, 0, false
	}
	best := e.sols[0]
	bestDx := math.Abs(e.x - best.X())
	for _, s := range e.sols[1:] {
		if dx := math.Abs(e.x - s.X()); dx < bestDx {
			best, bestDx = s, dx
		}
	}
	return best, bestDx, true
}
