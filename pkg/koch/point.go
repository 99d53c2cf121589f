package koch

import (
	"fmt"
	"math"
)

// Point is a 2D point with real coordinates. Where convenient it doubles as
// a vector (see Sub, Rot90, Hypot).
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{p.X + (o.X-p.X)*t, p.Y + (o.Y-p.Y)*t}
}

// Midpoint returns the midpoint of p and o.
func (p Point) Midpoint(o Point) Point {
	return Point{0.5 * (p.X + o.X), 0.5 * (p.Y + o.Y)}
}

// Rot90 returns p rotated 90 degrees counterclockwise about the origin.
func (p Point) Rot90() Point {
	return Point{-p.Y, p.X}
}

// Hypot returns the euclidean length of p treated as a vector.
func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// Polyline is an ordered sequence of points joined by straight segments.
// The order defines the path; the first and last point are the path's ends
// (or coincide for a closed path).
type Polyline []Point
