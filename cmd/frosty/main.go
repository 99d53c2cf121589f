package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	frosty "github.com/gucio321/frosty/pkg"
	"github.com/gucio321/frosty/pkg/koch"
	"github.com/gucio321/frosty/pkg/viewer"
)

type Flags struct {
	Figure      string
	Generations int
	Print       bool
	View        bool
	Overlay     bool
}

// above this, segment count (4^n per base segment) makes rendering sluggish
const safeGenerations = 6

func main() {
	var f Flags
	flag.StringVar(&f.Figure, "figure", "flake", "figure to build: koch or flake")
	flag.IntVar(&f.Generations, "n", 3, "number of subdivision generations")
	flag.BoolVar(&f.Print, "p", false, "print x and y coordinate rows to stdout even when viewing (printing is the default without -v)")
	flag.BoolVar(&f.View, "v", false, "view the figure in a window")
	flag.BoolVar(&f.Overlay, "overlay", false, "layer all generations colored by depth (use with -v)")
	flag.Parse()

	fig, err := frosty.New(f.Figure)
	if err != nil {
		flag.Usage()
		glg.Fatalf("Cannot pick figure: %v", err)
	}

	if f.Generations > safeGenerations {
		glg.Warnf("%d generations is above the recommended %d; segment count quadruples every generation", f.Generations, safeGenerations)
	}

	fig.Generations(f.Generations)

	result, err := fig.Build()
	if err != nil {
		glg.Fatalf("Cannot build %s: %v", f.Figure, err)
	}

	glg.Infof("built %s: %d generations, %d segments", f.Figure, f.Generations, len(result)-1)

	if shouldPrint(f.Print, f.View) {
		xs, ys := koch.SplitXY(result)
		fmt.Println(formatRow(xs))
		fmt.Println(formatRow(ys))
	}

	if f.View {
		var game *viewer.Viewer

		vp, err := fig.Viewport()
		if err != nil {
			glg.Fatalf("Cannot pick viewport: %v", err)
		}

		if f.Overlay {
			all, err := fig.BuildAll()
			if err != nil {
				glg.Fatalf("Cannot build %s overlay: %v", f.Figure, err)
			}

			game = viewer.NewOverlayViewer(all, vp)
		} else {
			game = viewer.NewViewer(result, vp)
		}

		ebiten.SetWindowSize(800, 600)
		ebiten.SetWindowTitle("frosty: " + f.Figure)
		if err := ebiten.RunGame(game); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

// shouldPrint reports whether the coordinate rows go to stdout. Printing is
// the default hand-off; -v replaces it with the viewer unless -p asks for
// both.
func shouldPrint(print, view bool) bool {
	return print || !view
}

func formatRow(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
