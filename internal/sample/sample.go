// Package sample turns scalar functions into evenly spaced series ready
// for plotting.
package sample

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Series holds one sampled curve as parallel x and y slices. It
// implements plotter.XYer so it can be handed to gonum/plot directly.
type Series struct {
	Xs []float64
	Ys []float64
}

// Linspace returns n evenly spaced values across [lo, hi] inclusive.
// n must be at least 2; floats.Span panics below that, so validating
// callers go through Curve.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Curve samples f at n evenly spaced points across [lo, hi]. Degenerate
// requests are rejected with an error rather than a panic.
func Curve(f func(float64) float64, lo, hi float64, n int) (Series, error) {
	if n < 2 {
		return Series{}, fmt.Errorf("sample: need at least 2 samples, got %d", n)
	}
	if lo >= hi {
		return Series{}, fmt.Errorf("sample: range [%v, %v] is empty", lo, hi)
	}
	xs := Linspace(lo, hi, n)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return Series{Xs: xs, Ys: ys}, nil
}

func (s Series) Len() int {
	return len(s.Xs)
}

func (s Series) XY(i int) (x, y float64) {
	return s.Xs[i], s.Ys[i]
}
