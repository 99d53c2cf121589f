package viewport

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed viewports.json
var viewports []byte

// Viewport represents the drawing area for one figure. Bounds are in world
// units, not pixels; the viewer maps them to the screen with the same scale
// on both axes so figures are not distorted.
type Viewport struct {
	// MinX and MinY are the lower-left corner of the drawing area.
	MinX, MinY,
	// MaxX and MaxY are the upper-right corner of the drawing area.
	MaxX, MaxY int

	Name        string
	Description string
}

// Dx returns the width of the drawing area.
func (v *Viewport) Dx() int {
	return v.MaxX - v.MinX
}

// Dy returns the height of the drawing area.
func (v *Viewport) Dy() int {
	return v.MaxY - v.MinY
}

func decodeViewports() ([]Viewport, error) {
	var result []Viewport
	if err := json.Unmarshal(viewports, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func Get(name string) (*Viewport, error) {
	all, err := decodeViewports()
	if err != nil {
		return nil, err
	}

	for _, v := range all {
		if v.Name == name {
			return &v, nil
		}
	}

	return nil, fmt.Errorf("no viewport named %q", name)
}
