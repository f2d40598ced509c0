package magnitude

import (
	"fmt"
	"math"
	"math/big"
)

// Solution is one known integer solution (n, k, a) of
// sum_{i=0..a} (n+i)! + 1 = k^2. The identity holds by construction;
// Verify re-derives it exactly.
type Solution struct {
	N int `json:"n"`
	K int `json:"k"`
	A int `json:"a"`
}

// X returns n + a, the index of the largest factorial term. It is the
// abscissa the solution is plotted at.
func (s Solution) X() float64 {
	return float64(s.N + s.A)
}

// LogK returns log10(k), the ordinate the solution is plotted at.
func (s Solution) LogK() float64 {
	return math.Log10(float64(s.K))
}

// Verify checks the defining identity with exact integer arithmetic.
func (s Solution) Verify() error {
	sum := big.NewInt(1)
	for i := 0; i <= s.A; i++ {
		sum.Add(sum, new(big.Int).MulRange(1, int64(s.N+i)))
	}
	k2 := new(big.Int).Mul(big.NewInt(int64(s.K)), big.NewInt(int64(s.K)))
	if sum.Cmp(k2) != 0 {
		return fmt.Errorf("solution (n=%d, k=%d, a=%d): sum of factorials + 1 = %s, want k^2 = %s",
			s.N, s.K, s.A, sum, k2)
	}
	return nil
}

// Known returns the seven known solutions from Table 1 of the paper:
// the three classical Brocard-Ramanujan solutions (a=0), the three
// consecutive-pair solutions (a=1), and the five-term discovery (a=4).
func Known() []Solution {
	return []Solution{
		{N: 4, K: 5, A: 0},
		{N: 5, K: 11, A: 0},
		{N: 7, K: 71, A: 0},
		{N: 1, K: 2, A: 1},
		{N: 2, K: 3, A: 1},
		{N: 5, K: 29, A: 1},
		{N: 4, K: 215, A: 4},
	}
}

// Categories returns the distinct a values of sols in first-appearance
// order. Legend construction depends on this order being stable.
func Categories(sols []Solution) []int {
	seen := make(map[int]bool)
	var cats []int
	for _, s := range sols {
		if !seen[s.A] {
			seen[s.A] = true
			cats = append(cats, s.A)
		}
	}
	return cats
}
