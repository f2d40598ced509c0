package magnitude

import (
	"math"
	"testing"
)

func TestKnownSolutionsSatisfyIdentity(t *testing.T) {
	sols := Known()
	if len(sols) != 7 {
		t.Fatalf("expected 7 known solutions, got %d", len(sols))
	}
	for _, s := range sols {
		if err := s.Verify(); err != nil {
			t.Error(err)
		}
	}
}

func TestVerifyRejectsBadRecord(t *testing.T) {
	bad := Solution{N: 4, K: 6, A: 0}
	if err := bad.Verify(); err == nil {
		t.Error("expected verification failure for (4, 6, 0)")
	}
}

func TestSolutionDerivedValues(t *testing.T) {
	s := Solution{N: 4, K: 215, A: 4}
	if s.X() != 8 {
		t.Errorf("X() = %v, want 8", s.X())
	}
	if math.Abs(s.LogK()-math.Log10(215)) > 1e-12 {
		t.Errorf("LogK() = %v, want log10(215)", s.LogK())
	}
}

func TestCategoriesFirstAppearanceOrder(t *testing.T) {
	cats := Categories(Known())
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d: %v", len(cats), cats)
	}
	want := []int{0, 1, 4}
	for i, c := range cats {
		if c != want[i] {
			t.Errorf("category order %v, want %v", cats, want)
			break
		}
	}
}

// The smooth curve models sqrt(x! + 1) from the largest factorial term
// only, so a=0 solutions (k^2 = n! + 1) sit exactly on it.
func TestSingleTermSolutionsOnSmoothCurve(t *testing.T) {
	for _, s := range Known() {
		if s.A != 0 {
			continue
		}
		got := SmoothCurve(s.X())
		if math.Abs(got-s.LogK()) > 1e-9 {
			t.Errorf("solution %+v: SmoothCurve(%v) = %v, want log10(k) = %v", s, s.X(), got, s.LogK())
		}
	}
}

// Multi-term solutions are only near the curve; the a=4 discovery lands
// within a few hundredths in log10 space at x = 8.
func TestDiscoveryNearSmoothCurve(t *testing.T) {
	s := Solution{N: 4, K: 215, A: 4}
	got := SmoothCurve(s.X())
	if d := math.Abs(got - s.LogK()); d > 0.05 {
		t.Errorf("SmoothCurve(8) = %v vs log10(215) = %v: gap %v exceeds 0.05", got, s.LogK(), d)
	}
}
