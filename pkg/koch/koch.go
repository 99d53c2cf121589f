// Package koch grows Koch curve and Koch snowflake polylines by repeated
// segment subdivision.
package koch

import (
	"fmt"
	"math"
)

// Subdivide replaces the segment a-b with the classic Koch bump: both ends,
// the two points a third of the way in, and an apex raised perpendicular to
// the segment. The sqrt(3)/6 factor is the height-to-base ratio that makes
// the two inner segments the same length as the outer ones (|b-a|/3), so the
// construction stays self-similar under repeated application.
//
// Coincident a and b degenerate to five copies of a. Not an error.
func Subdivide(a, b Point) [5]Point {
	d := b.Sub(a)
	apex := a.Midpoint(b).Add(d.Rot90().Mul(math.Sqrt(3) / 6))

	return [5]Point{a, a.Lerp(b, 1.0/3.0), apex, a.Lerp(b, 2.0/3.0), b}
}

// Build runs the given number of subdivision generations over base. Each
// generation replaces every segment with the four segments of its Koch bump,
// so a polyline of L segments comes out with 4*L. Zero generations returns
// base unchanged (as a fresh copy).
//
// For closed curves the closing point is taken from the polyline's own first
// point, so closure survives arbitrary base shapes.
func Build(base Polyline, generations int, closed bool) (Polyline, error) {
	if generations < 0 {
		return nil, fmt.Errorf("%d generations: %w", generations, ErrNegativeGenerations)
	}

	if len(base) < 2 {
		return nil, fmt.Errorf("%d points: %w", len(base), ErrDegeneratePolyline)
	}

	current := append(Polyline{}, base...)
	for i := 0; i < generations; i++ {
		next := make(Polyline, 0, 4*(len(current)-1)+1)
		for s := 0; s < len(current)-1; s++ {
			t := Subdivide(current[s], current[s+1])
			// the bump's last point is the next segment's first; drop it
			next = append(next, t[:4]...)
		}

		if closed {
			next = append(next, current[0])
		} else {
			next = append(next, current[len(current)-1])
		}

		current = next
	}

	return current, nil
}

// KochBase is the single horizontal segment the open curve grows from.
func KochBase() Polyline {
	return Polyline{Pt(0, 0), Pt(3, 0)}
}

// FlakeBase is an equilateral triangle with the first vertex repeated to
// close the loop. The triangle winds clockwise below the x axis so the
// bumps point outward.
func FlakeBase() Polyline {
	return Polyline{Pt(0, 0), Pt(3, 0), Pt(1.5, -3*math.Sqrt(3)/2), Pt(0, 0)}
}
