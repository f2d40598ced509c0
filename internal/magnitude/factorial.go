package magnitude

// factorialTableSize bounds the exact factorial table. 10! = 3628800 is
// the largest value the figure's sampling window can reach; every entry
// is exactly representable as a float64.
const factorialTableSize = 11

var factorials = [factorialTableSize]float64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
}

// FactorialAt returns i! for i in [0, 10]. Indices outside the table
// return 0. That zero is a degenerate placeholder, not an extrapolation:
// the continuous sampling window caps at 9.1, so in-range callers never
// see it.
func FactorialAt(i int) float64 {
	if i < 0 || i >= factorialTableSize {
		return 0
	}
	return factorials[i]
}
