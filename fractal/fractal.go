// Package fractal wires the expression parser, JIT compiler, palette
// builder, root registry, shadow field and render kernel together
// into the single render operation described end-to-end in spec.md
// §2.
package fractal

import (
	"runtime"
	"sync"

	"github.com/golang/glog"
	"github.com/nfractal/newtongen/expr"
	"github.com/nfractal/newtongen/imagewriter"
	"github.com/nfractal/newtongen/jit"
	"github.com/nfractal/newtongen/newton"
	"github.com/nfractal/newtongen/palette"
	"github.com/nfractal/newtongen/render"
	"github.com/nfractal/newtongen/rootreg"
	"github.com/nfractal/newtongen/shadow"
)

// Request is the full set of user-supplied parameters for one render
// (spec.md §6 CLI surface).
type Request struct {
	Function string
	Height   int
	Viewport newton.Viewport

	Palette string // empty disables palette mode
	Shadow  float64
	Negate  bool
}

// Render parses Function, JIT-compiles it, discovers its roots (when
// a palette is requested), builds the shadow field (when requested),
// runs the kernel, and returns the assembled result. The caller is
// responsible for writing the result to an image file, e.g. via
// imagewriter.WriteFile.
func Render(req Request) (render.Result, error) {
	tree, err := expr.Parse(req.Function)
	if err != nil {
		return render.Result{}, err
	}
	deriv := expr.Diff(tree)

	width := req.Viewport.Width(req.Height)
	glog.Infof("fractal: rendering %q at %dx%d", req.Function, width, req.Height)

	mod, err := jit.Compile(expr.EmitC(tree, deriv))
	if err != nil {
		return render.Result{}, err
	}
	defer mod.Close()

	mode := render.Mode{Negate: req.Negate}
	var reg *rootreg.Registry
	var field *shadow.Field

	if req.Palette != "" {
		colors, def, err := palette.Parse(req.Palette)
		if err != nil {
			return render.Result{}, err
		}
		mode.Palette = true
		mode.Colors = colors
		mode.Default = def
		mode.Alpha = req.Shadow

		reg = rootreg.Discover(mod.Func, mod.Deriv, req.Viewport, width, req.Height)

		if req.Shadow != 0 {
			diverged := seedDivergence(mod.Func, mod.Deriv, req.Viewport, width, req.Height)
			field = shadow.Build(width, req.Height, func(i, j int) bool {
				return diverged[i*width+j]
			})
		}
	}

	result, err := render.Render(mod.Func, mod.Deriv, req.Viewport, width, req.Height, mode, reg, field)
	if err != nil {
		return render.Result{}, err
	}

	glog.Infof("fractal: %.2f%% of pixels failed to converge", result.Ratio()*100)
	return result, nil
}

// seedDivergence identifies, in parallel over rows, every pixel whose
// Newton iteration from its center fails to converge — the F.1
// "shadow seeding" parallel section of spec.md §5, kept separate from
// the single-threaded BFS that follows it.
func seedDivergence(f, fPrime newton.Fn, vp newton.Viewport, width, height int) []bool {
	diverged := make([]bool, width*height)

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i := 0; i < height; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			for j := 0; j < width; j++ {
				z0 := vp.Point(i, j, width, height)
				_, _, ok := newton.Iterate(f, fPrime, z0)
				diverged[i*width+j] = !ok
			}
		}(i)
	}
	wg.Wait()

	return diverged
}

// RenderToFile runs Render and writes the resulting pixel buffer as a
// PNG at outputPath.
func RenderToFile(req Request, outputPath string) (render.Result, error) {
	result, err := Render(req)
	if err != nil {
		return render.Result{}, err
	}
	width := req.Viewport.Width(req.Height)
	if err := imagewriter.WriteFile(outputPath, result.Pixels, width, req.Height); err != nil {
		return render.Result{}, err
	}
	return result, nil
}
