package magnitude

import "math"

// LogAddExp returns ln(e^a + e^b) without overflowing either
// exponential. The larger argument is factored out so the remaining
// exponent is never positive.
func LogAddExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}
	return a + math.Log1p(math.Exp(b-a))
}

// StepCurve evaluates log10(sqrt(floor(x)! + 1)) from the exact
// factorial table. Outside the table the factorial reads as 0 and the
// curve collapses to log10(sqrt(1)) = 0.
func StepCurve(x float64) float64 {
	f := FactorialAt(int(math.Floor(x)))
	return 0.5 * math.Log10(f+1)
}

// SmoothCurve evaluates log10(sqrt(x! + 1)) with x! generalized through
// the gamma function, x! = gamma(x+1). The sum x!+1 is formed in log
// space via LogAddExp(lgamma(x+1), 0), so the curve stays finite for x
// far beyond the float64 overflow point of a direct factorial.
func SmoothCurve(x float64) float64 {
	logFactorial, _ := math.Lgamma(x + 1)
	return 0.5 * LogAddExp(logFactorial, 0) / math.Ln10
}
