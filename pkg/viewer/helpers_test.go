package viewer

import (
	"image/color"
	"testing"
)

func TestHSVtoRGB(t *testing.T) {
	for _, tt := range []struct {
		h    float64
		want color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{120, color.RGBA{0, 255, 0, 255}},
		{240, color.RGBA{0, 0, 255, 255}},
	} {
		if got := HSVtoRGB(tt.h, 1, 1); got != tt.want {
			t.Errorf("h=%g: got %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestGreenToRedHSV(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	red := color.RGBA{255, 0, 0, 255}

	if got := GreenToRedHSV(0); got != green {
		t.Errorf("v=0: got %v, want green", got)
	}

	if got := GreenToRedHSV(1); got != red {
		t.Errorf("v=1: got %v, want red", got)
	}

	// out-of-range values clamp
	if got := GreenToRedHSV(-5); got != green {
		t.Errorf("v=-5: got %v, want green", got)
	}

	if got := GreenToRedHSV(5); got != red {
		t.Errorf("v=5: got %v, want red", got)
	}
}
