package koch

import (
	"math"
	"testing"
)

func TestRot90(t *testing.T) {
	if got := Pt(1, 0).Rot90(); got != Pt(0, 1) {
		t.Errorf("got %v, want (0, 1)", got)
	}

	if got := Pt(0, 1).Rot90(); got != Pt(-1, 0) {
		t.Errorf("got %v, want (-1, 0)", got)
	}
}

func TestLerp(t *testing.T) {
	a, b := Pt(0, 0), Pt(3, 6)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("t=0: got %v, want %v", got, a)
	}

	if got := a.Lerp(b, 1); got != b {
		t.Errorf("t=1: got %v, want %v", got, b)
	}

	if got, want := a.Lerp(b, 1.0/3.0), Pt(1, 2); got.Sub(want).Hypot() > 1e-12 {
		t.Errorf("t=1/3: got %v, want %v", got, want)
	}
}

func TestMidpoint(t *testing.T) {
	if got := Pt(-1, 2).Midpoint(Pt(3, 4)); got != Pt(1, 3) {
		t.Errorf("got %v, want (1, 3)", got)
	}
}

func TestHypot(t *testing.T) {
	if got := Pt(3, 4).Hypot(); got != 5 {
		t.Errorf("got %g, want 5", got)
	}

	if got := Pt(1, 1).Hypot(); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("got %g, want sqrt(2)", got)
	}
}
