package frosty

import (
	"fmt"

	"github.com/gucio321/frosty/pkg/koch"
	"github.com/gucio321/frosty/pkg/viewport"
)

// Figure describes one of the named fractals and how deep to grow it.
type Figure struct {
	figureType  FigureType
	base        koch.Polyline
	closed      bool
	generations int
}

// Koch returns the open-curve figure: a single horizontal segment.
func Koch() *Figure {
	return &Figure{
		figureType: FigureKoch,
		base:       koch.KochBase(),
	}
}

// Flake returns the closed snowflake figure grown from a triangle.
func Flake() *Figure {
	return &Figure{
		figureType: FigureFlake,
		base:       koch.FlakeBase(),
		closed:     true,
	}
}

// New returns the figure registered under name (see FigureTypeEnum).
func New(name string) (*Figure, error) {
	t, ok := FigureTypeEnum[name]
	if !ok {
		return nil, fmt.Errorf("unknown figure %q", name)
	}

	switch t {
	case FigureFlake:
		return Flake(), nil
	default:
		return Koch(), nil
	}
}

// Generations sets how many subdivision passes Build will run.
func (f *Figure) Generations(n int) *Figure {
	f.generations = n
	return f
}

func (f *Figure) Type() FigureType {
	return f.figureType
}

func (f *Figure) Closed() bool {
	return f.closed
}

// Build returns the polyline after the configured number of generations.
func (f *Figure) Build() (koch.Polyline, error) {
	return koch.Build(f.base, f.generations, f.closed)
}

// BuildAll returns every generation from 0 up to the configured count, in
// order. The viewer layers these for the depth-colored overlay.
func (f *Figure) BuildAll() ([]koch.Polyline, error) {
	if f.generations < 0 {
		return nil, fmt.Errorf("%d generations: %w", f.generations, koch.ErrNegativeGenerations)
	}

	all := make([]koch.Polyline, 0, f.generations+1)
	for i := 0; i <= f.generations; i++ {
		p, err := koch.Build(f.base, i, f.closed)
		if err != nil {
			return nil, fmt.Errorf("cant build generation %d: %w", i, err)
		}

		all = append(all, p)
	}

	return all, nil
}

// Viewport returns the drawing-area preset matching this figure.
func (f *Figure) Viewport() (*viewport.Viewport, error) {
	return viewport.Get(f.figureType.String())
}
