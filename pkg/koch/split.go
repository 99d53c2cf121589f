package koch

// SplitXY splits a polyline into parallel coordinate slices, in point order.
// This is the hand-off format plotting backends want: one slice per axis,
// values untouched.
func SplitXY(p Polyline) (xs, ys []float64) {
	xs = make([]float64, len(p))
	ys = make([]float64, len(p))
	for i, pt := range p {
		xs[i] = pt.X
		ys[i] = pt.Y
	}

	return xs, ys
}
