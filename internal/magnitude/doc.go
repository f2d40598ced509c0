// Package magnitude implements the theoretical magnitude model for the
// generalized Brocard-Ramanujan equation
//
//	sum_{i=0..a} (n+i)! + 1 = k^2.
//
// Two views of the same quantity log10(k) = log10(sqrt(x! + 1)) are
// provided, where x = n + a is the index of the largest factorial term:
//
//   - [StepCurve]: exact integer magnitude from a factorial lookup table
//   - [SmoothCurve]: continuous approximation through the gamma function
//
// Both agree at integer x. The smooth curve is evaluated entirely in log
// space so it stays finite long after x! overflows a float64.
//
// [Known] returns the seven solution records from Table 1 of the paper;
// [Solution.Verify] checks the defining identity with exact integer
// arithmetic.
package magnitude
