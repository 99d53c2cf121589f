package viewer

import (
	"image"
	"math"

	"github.com/gucio321/frosty/pkg/koch"
	"github.com/gucio321/frosty/pkg/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"
)

var _ ebiten.Game = &Viewer{}

const (
	screenW = 800
	screenH = 600
	margin  = 20
)

var (
	backgroundColor = colornames.Black
	borderColor     = colornames.White
	curveColor      = colornames.Red
)

// Viewer renders polylines into an image once in NewViewer and statically
// displays it in ebiten. Mouse wheel zooms towards the cursor.
type Viewer struct {
	scale   float64
	vp      *viewport.Viewport
	lines   []koch.Polyline
	overlay bool
	current *ebiten.Image
}

// NewViewer shows a single polyline.
func NewViewer(p koch.Polyline, vp *viewport.Viewport) *Viewer {
	return newViewer([]koch.Polyline{p}, vp, false)
}

// NewOverlayViewer layers every polyline given, colored green (first) to
// red (last). Meant for showing all generations of one figure at once.
func NewOverlayViewer(lines []koch.Polyline, vp *viewport.Viewport) *Viewer {
	return newViewer(lines, vp, true)
}

func newViewer(lines []koch.Polyline, vp *viewport.Viewport, overlay bool) *Viewer {
	result := &Viewer{
		scale:   1,
		vp:      vp,
		lines:   lines,
		overlay: overlay,
	}

	result.current = result.render()
	return result
}

// unitScale is pixels per world unit. Same on both axes so the figure keeps
// its aspect ratio regardless of the viewport's shape.
func (v *Viewer) unitScale() float64 {
	sx := float64(screenW-2*margin) / float64(v.vp.Dx())
	sy := float64(screenH-2*margin) / float64(v.vp.Dy())
	return math.Min(sx, sy)
}

// project maps world coordinates to screen pixels. World y grows up, screen
// y grows down.
func (v *Viewer) project(x, y float64) (px, py float64) {
	s := v.unitScale()
	px = margin + (x-float64(v.vp.MinX))*s
	py = screenH - margin - (y-float64(v.vp.MinY))*s
	return px, py
}

func (v *Viewer) render() *ebiten.Image {
	dest := ebiten.NewImage(screenW, screenH)
	dest.Fill(backgroundColor)

	// frame the drawing area
	x0, y0 := v.project(float64(v.vp.MinX), float64(v.vp.MinY))
	x1, y1 := v.project(float64(v.vp.MaxX), float64(v.vp.MaxY))
	ebitenutil.DrawLine(dest, x0, y0, x1, y0, borderColor)
	ebitenutil.DrawLine(dest, x1, y0, x1, y1, borderColor)
	ebitenutil.DrawLine(dest, x1, y1, x0, y1, borderColor)
	ebitenutil.DrawLine(dest, x0, y1, x0, y0, borderColor)

	for i, line := range v.lines {
		c := curveColor
		if v.overlay && len(v.lines) > 1 {
			c = GreenToRedHSV(float64(i) / float64(len(v.lines)-1))
		}

		xs, ys := koch.SplitXY(line)
		for s := 0; s < len(xs)-1; s++ {
			px0, py0 := v.project(xs[s], ys[s])
			px1, py1 := v.project(xs[s+1], ys[s+1])
			ebitenutil.DrawLine(dest, px0, py0, px1, py1, c)
		}
	}

	return dest
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 1 {
		v.scale = 1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	mouseX, mouseY := ebiten.CursorPosition()
	if mouseX < 0 {
		mouseX = 0
	}

	if mouseY < 0 {
		mouseY = 0
	}

	renderable := v.current.SubImage(image.Rect(
		int((v.scale-1)*float64(mouseX)), int((v.scale-1)*float64(mouseY)),
		int(screenW+(v.scale-1)*float64(mouseX)), int(screenH+(v.scale-1)*float64(mouseY))))

	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	geom := ebiten.GeoM{}
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(ebiten.NewImageFromImage(renderable),
		&ebiten.DrawImageOptions{
			GeoM: geom,
		})
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
