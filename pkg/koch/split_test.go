package koch

import "testing"

func TestSplitXY(t *testing.T) {
	p := Polyline{Pt(1, 7), Pt(2, 8), Pt(3, 9)}
	xs, ys := SplitXY(p)

	diff(t, []float64{1, 2, 3}, xs)
	diff(t, []float64{7, 8, 9}, ys)
}

func TestSplitXYPreservesOrder(t *testing.T) {
	p, err := Build(FlakeBase(), 2, true)
	if err != nil {
		t.Fatal(err)
	}

	xs, ys := SplitXY(p)
	if len(xs) != len(p) || len(ys) != len(p) {
		t.Fatalf("got %d/%d values for %d points", len(xs), len(ys), len(p))
	}

	for i := range p {
		if xs[i] != p[i].X || ys[i] != p[i].Y {
			t.Errorf("index %d: got (%g, %g), want %v", i, xs[i], ys[i], p[i])
		}
	}
}

func TestSplitXYEmpty(t *testing.T) {
	xs, ys := SplitXY(nil)
	if len(xs) != 0 || len(ys) != 0 {
		t.Errorf("got %d/%d values, want empty", len(xs), len(ys))
	}
}
